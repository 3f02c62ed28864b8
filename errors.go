// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package snugint

import "errors"

// Errors reported by the checked operations. Every failure path of the
// package returns exactly one of these values, so callers can distinguish
// failure classes with errors.Is. A failed operation never modifies its
// operands.
var (
	// ErrAdditionOverflow signals a sum that would exceed the maximum of
	// the wrapped type, or an increment at the maximum.
	ErrAdditionOverflow = errors.New("snugint: addition would overflow")

	// ErrAdditionUnderflow signals a sum of two negative values that would
	// fall below the minimum of the wrapped type.
	ErrAdditionUnderflow = errors.New("snugint: addition would underflow")

	// ErrSubtractionOverflow signals a difference that would exceed the
	// maximum of the wrapped type.
	ErrSubtractionOverflow = errors.New("snugint: subtraction would overflow")

	// ErrSubtractionUnderflow signals a difference that would fall below
	// the minimum of the wrapped type, or a decrement at the minimum.
	ErrSubtractionUnderflow = errors.New("snugint: subtraction would underflow")

	// ErrMultiplicationOverflow signals a product of same-signed operands
	// that would exceed the maximum of the wrapped type.
	ErrMultiplicationOverflow = errors.New("snugint: multiplication would overflow")

	// ErrMultiplicationUnderflow signals a product of opposite-signed
	// operands that would fall below the minimum of the wrapped type.
	ErrMultiplicationUnderflow = errors.New("snugint: multiplication would underflow")

	// ErrSizeMismatch signals a value outside the representable range of
	// the wrapped type during conversion.
	ErrSizeMismatch = errors.New("snugint: value out of range for wrapped type")

	// ErrTypeMismatch signals a value whose dynamic type is not one of the
	// builtin integer types.
	ErrTypeMismatch = errors.New("snugint: not an integer type")

	// ErrDivisionByZero signals a division with a zero-valued divisor.
	ErrDivisionByZero = errors.New("snugint: division by zero")
)
