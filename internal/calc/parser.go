// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/YOUR-WORST-TACO/SnugInt"
)

// Parse parses an integer expression over the binary operators + - * /,
// unary minus and parentheses, with the usual precedence. Literals use Go
// syntax: decimal, 0x/0o/0b prefixes and underscore separators.
func Parse(s string) (*Expr, error) {
	p := &parser{input: s}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if c := p.peek(); c != 0 {
		return nil, p.errorf("unexpected character %q", c)
	}
	return e, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("calc: offset %d: %s", p.pos,
		fmt.Sprintf(format, args...))
}

// peek returns the next byte after skipping whitespace without consuming
// it, or 0 at the end of the input.
func (p *parser) peek() byte {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return p.input[p.pos]
		}
	}
	return 0
}

func (p *parser) expr() (*Expr, error) {
	e, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek() {
		case '+':
			op = Add
		case '-':
			op = Sub
		default:
			return e, nil
		}
		p.pos++
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		e = &Expr{Op: op, X: e, Y: t}
	}
}

func (p *parser) term() (*Expr, error) {
	e, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch p.peek() {
		case '*':
			op = Mul
		case '/':
			op = Div
		default:
			return e, nil
		}
		p.pos++
		u, err := p.unary()
		if err != nil {
			return nil, err
		}
		e = &Expr{Op: op, X: e, Y: u}
	}
}

func (p *parser) unary() (*Expr, error) {
	if p.peek() == '-' {
		p.pos++
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Expr{Op: Neg, X: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (*Expr, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return e, nil
	case '0' <= c && c <= '9':
		return p.literal()
	case c == 0:
		return nil, p.errorf("unexpected end of expression")
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

// literal scans a Go integer literal. A literal beyond the 64-bit range is
// out of range for every supported type and reported as such.
func (p *parser) literal() (*Expr, error) {
	start := p.pos
	for p.pos < len(p.input) && literalByte(p.input[p.pos]) {
		p.pos++
	}
	tok := p.input[start:p.pos]
	v, err := strconv.ParseUint(tok, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, snugint.ErrSizeMismatch
		}
		p.pos = start
		return nil, p.errorf("invalid literal %q", tok)
	}
	return &Expr{Op: Lit, Lit: v}, nil
}

func literalByte(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' || c == '_'
}
