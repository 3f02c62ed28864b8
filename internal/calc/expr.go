// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

// Package calc parses integer expressions and evaluates them with
// overflow-checked arithmetic over a selectable fixed-width type.
package calc

import "fmt"

// Op identifies the kind of an expression node.
type Op int

const (
	Lit Op = iota // integer literal
	Neg           // unary minus
	Add
	Sub
	Mul
	Div
)

var opNames = [...]string{"Lit", "Neg", "Add", "Sub", "Mul", "Div"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Expr is a node of a parsed expression tree. Lit nodes carry the literal
// magnitude in Lit and have no operands; Neg nodes use X only; the binary
// operators use X and Y.
type Expr struct {
	Op   Op
	Lit  uint64
	X, Y *Expr
}
