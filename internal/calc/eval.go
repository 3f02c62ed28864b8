// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package calc

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/YOUR-WORST-TACO/SnugInt"
)

// Eval evaluates the expression tree over the integer type T. Literals
// enter through the snugint conversion guard, so an out-of-range literal
// fails with snugint.ErrSizeMismatch; the operators map to the checked
// arithmetic methods. The first failure aborts the evaluation.
func Eval[T constraints.Integer](e *Expr) (snugint.Int[T], error) {
	switch e.Op {
	case Lit:
		return snugint.From[T](e.Lit)
	case Neg:
		// A directly negated literal converts as one signed value,
		// so Min[T]() itself is expressible.
		if e.X.Op == Lit {
			if e.X.Lit > 1<<63 {
				return snugint.Int[T]{}, snugint.ErrSizeMismatch
			}
			return snugint.From[T](int64(-e.X.Lit))
		}
		x, err := Eval[T](e.X)
		if err != nil {
			return snugint.Int[T]{}, err
		}
		return snugint.Of[T](0).Sub(x)
	}
	x, err := Eval[T](e.X)
	if err != nil {
		return snugint.Int[T]{}, err
	}
	y, err := Eval[T](e.Y)
	if err != nil {
		return snugint.Int[T]{}, err
	}
	switch e.Op {
	case Add:
		return x.Add(y)
	case Sub:
		return x.Sub(y)
	case Mul:
		return x.Mul(y)
	case Div:
		return x.Div(y)
	}
	return snugint.Int[T]{}, fmt.Errorf("calc: unknown operation %s", e.Op)
}

// Evaluate evaluates e over the integer type named by typ and renders the
// result in decimal. It fails with snugint.ErrTypeMismatch if typ does not
// name a supported integer type.
func Evaluate(typ string, e *Expr) (string, error) {
	eval, ok := evaluators[typ]
	if !ok {
		return "", snugint.ErrTypeMismatch
	}
	return eval(e)
}

// Types returns the supported type names in sorted order.
func Types() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var evaluators = map[string]func(*Expr) (string, error){
	"int":    render[int],
	"int8":   render[int8],
	"int16":  render[int16],
	"int32":  render[int32],
	"int64":  render[int64],
	"uint":   render[uint],
	"uint8":  render[uint8],
	"uint16": render[uint16],
	"uint32": render[uint32],
	"uint64": render[uint64],
}

func render[T constraints.Integer](e *Expr) (string, error) {
	x, err := Eval[T](e)
	if err != nil {
		return "", err
	}
	return x.String(), nil
}
