// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"

	"github.com/YOUR-WORST-TACO/SnugInt"
	"github.com/YOUR-WORST-TACO/SnugInt/internal/calc"
	"github.com/YOUR-WORST-TACO/SnugInt/internal/xlog"
)

const (
	version  = "0.5.0"
	usageStr = `Usage: snugcalc [OPTION]... [EXPR]...
Evaluate integer expressions with overflow-checked arithmetic. Instead of
wrapping around silently, an expression whose result exceeds the range of
the selected type fails with the kind of the violated check.

  -t, --type TYPE   integer type to evaluate with; default is int64
  -v, --verbose     verbose mode
      --debug       print the parsed expression trees
  -h, --help        give this help
  -V, --version     display version string

With no expression, read one expression per line from standard input.

Report bugs using <https://github.com/YOUR-WORST-TACO/SnugInt/issues>.
`
)

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

type evaluator struct {
	typ     string
	debug   bool
	verbose xlog.Logger
}

func (e *evaluator) eval(w io.Writer, s string) error {
	expr, err := calc.Parse(s)
	if err != nil {
		log.Printf("%s", err)
		return err
	}
	if e.debug {
		pretty.Println(expr)
	}
	xlog.Printf(e.verbose, "evaluating %q as %s", s, e.typ)
	out, err := calc.Evaluate(e.typ, expr)
	if err != nil {
		if errors.Is(err, snugint.ErrTypeMismatch) {
			log.Fatalf("unsupported type %q; supported types: %s",
				e.typ, strings.Join(calc.Types(), " "))
		}
		log.Printf("%q: %s", s, err)
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = pflag.BoolP("help", "h", false, "")
		versionFlg = pflag.BoolP("version", "V", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
		debug      = pflag.Bool("debug", false, "")
		typ        = pflag.StringP("type", "t", "int64", "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	if *versionFlg {
		log.Printf("version %s", version)
		os.Exit(0)
	}

	e := &evaluator{typ: *typ, debug: *debug}
	if *verbose {
		e.verbose = log.New(os.Stderr, log.Prefix(), 0)
	}

	exit := 0
	if pflag.NArg() > 0 {
		for _, arg := range pflag.Args() {
			if err := e.eval(os.Stdout, arg); err != nil {
				exit = 1
			}
		}
		os.Exit(exit)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := e.eval(os.Stdout, line); err != nil {
			exit = 1
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("error %s reading standard input", err)
	}
	os.Exit(exit)
}
