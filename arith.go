// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package snugint

// The checks below compare against bounds that have been rearranged
// algebraically (Max-r instead of l+r) so that they only ever evaluate
// values already known to be in range. The raw operator runs after its
// check has passed, never before.

// Add returns x + y. It fails with ErrAdditionOverflow when the sum would
// exceed Max[T]() and with ErrAdditionUnderflow when it would fall below
// Min[T](). The operands are left unchanged on failure.
func (x Int[T]) Add(y Int[T]) (Int[T], error) {
	l, r := x.value, y.value
	if r > 0 && l > Max[T]()-r {
		return Int[T]{}, ErrAdditionOverflow
	}
	if r < 0 && l < Min[T]()-r {
		return Int[T]{}, ErrAdditionUnderflow
	}
	return Int[T]{value: l + r}, nil
}

// Sub returns x - y. Subtracting a negative value can exceed Max[T]()
// (ErrSubtractionOverflow), subtracting a positive one can fall below
// Min[T]() (ErrSubtractionUnderflow). For unsigned types any y greater than
// x is an underflow. The operands are left unchanged on failure.
func (x Int[T]) Sub(y Int[T]) (Int[T], error) {
	l, r := x.value, y.value
	if !signed[T]() {
		if r > l {
			return Int[T]{}, ErrSubtractionUnderflow
		}
		return Int[T]{value: l - r}, nil
	}
	if r < 0 && l > Max[T]()+r {
		return Int[T]{}, ErrSubtractionOverflow
	}
	if r > 0 && l < Min[T]()+r {
		return Int[T]{}, ErrSubtractionUnderflow
	}
	return Int[T]{value: l - r}, nil
}

// Mul returns x * y. A product of same-signed operands can exceed Max[T]()
// (ErrMultiplicationOverflow), one of opposite-signed operands can fall
// below Min[T]() (ErrMultiplicationUnderflow). Each sign quadrant tests the
// bound divided by one operand; zero operands never reach the quadrant
// checks, so those divisions are safe. The operands are left unchanged on
// failure.
func (x Int[T]) Mul(y Int[T]) (Int[T], error) {
	l, r := x.value, y.value
	switch {
	case l == 0 || r == 0:
		// zero product, nothing to check
	case l > 0 && r > 0:
		if l > Max[T]()/r {
			return Int[T]{}, ErrMultiplicationOverflow
		}
	case l > 0 && r < 0:
		if r < Min[T]()/l {
			return Int[T]{}, ErrMultiplicationUnderflow
		}
	case l < 0 && r > 0:
		if l < Min[T]()/r {
			return Int[T]{}, ErrMultiplicationUnderflow
		}
	default: // l < 0 && r < 0
		if r < Max[T]()/l {
			return Int[T]{}, ErrMultiplicationOverflow
		}
	}
	return Int[T]{value: l * r}, nil
}

// Div returns the quotient x / y truncated towards zero. A zero divisor
// fails with ErrDivisionByZero. The one quotient outside the representable
// range, Min[T]()/-1 on signed types, fails with ErrSizeMismatch; Go wraps
// it silently, so it is rejected before the division.
func (x Int[T]) Div(y Int[T]) (Int[T], error) {
	l, r := x.value, y.value
	if r == 0 {
		return Int[T]{}, ErrDivisionByZero
	}
	if signed[T]() && r == ^T(0) && l == Min[T]() {
		return Int[T]{}, ErrSizeMismatch
	}
	return Int[T]{value: l / r}, nil
}

// Inc increments the wrapped value by one. At Max[T]() it fails with
// ErrAdditionOverflow and leaves the value unchanged.
func (x *Int[T]) Inc() error {
	if x.value == Max[T]() {
		return ErrAdditionOverflow
	}
	x.value++
	return nil
}

// Dec decrements the wrapped value by one. At Min[T]() it fails with
// ErrSubtractionUnderflow and leaves the value unchanged.
func (x *Int[T]) Dec() error {
	if x.value == Min[T]() {
		return ErrSubtractionUnderflow
	}
	x.value--
	return nil
}
