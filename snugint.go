// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package snugint

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Int wraps a value of the fixed-width integer type T. The arithmetic
// methods check their preconditions against the representable range of T
// before they compute anything, so a result can never wrap around silently.
//
// The zero value of Int[T] holds zero and is ready to use. Int[T] values
// are comparable with == and !=.
type Int[T constraints.Integer] struct {
	value T
}

// Of returns an Int holding v. A value of the wrapped type itself is always
// within range, so this construction cannot fail.
func Of[T constraints.Integer](v T) Int[T] {
	return Int[T]{value: v}
}

// From converts an integer value of any width and signedness into an Int[T].
// It fails with ErrSizeMismatch if item lies outside [Min[T](), Max[T]()];
// there is no silent truncation. On success the wrapper holds exactly item.
func From[T, F constraints.Integer](item F) (Int[T], error) {
	if !fits[T](item) {
		return Int[T]{}, ErrSizeMismatch
	}
	return Int[T]{value: T(item)}, nil
}

// FromAny converts a dynamically typed value into an Int[T]. Any value
// whose dynamic type is of integer kind, builtin or named, passes through
// the same range guard as From; every other dynamic type fails with
// ErrTypeMismatch.
func FromAny[T constraints.Integer](item any) (Int[T], error) {
	switch v := item.(type) {
	case int:
		return From[T](v)
	case int8:
		return From[T](v)
	case int16:
		return From[T](v)
	case int32:
		return From[T](v)
	case int64:
		return From[T](v)
	case uint:
		return From[T](v)
	case uint8:
		return From[T](v)
	case uint16:
		return From[T](v)
	case uint32:
		return From[T](v)
	case uint64:
		return From[T](v)
	case uintptr:
		return From[T](v)
	}
	// named integer types carry their kind, not a builtin type
	switch rv := reflect.ValueOf(item); rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return From[T](rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return From[T](rv.Uint())
	}
	return Int[T]{}, ErrTypeMismatch
}

// Value returns the wrapped value.
func (x Int[T]) Value() T {
	return x.value
}

// Set stores v without a range check; a value of the wrapped type cannot be
// out of range. It must not stand in for From when the value originates from
// an unchecked wider computation.
func (x *Int[T]) Set(v T) {
	x.value = v
}

// Sign returns -1 if the wrapped value is negative, 0 if it is zero, and +1
// if it is positive.
func (x Int[T]) Sign() int {
	switch {
	case x.value > 0:
		return 1
	case x.value < 0:
		return -1
	}
	return 0
}

// Cmp compares the wrapped values of x and y and returns -1 if x < y, 0 if
// x == y and +1 if x > y. Comparisons carry no safety contract.
func (x Int[T]) Cmp(y Int[T]) int {
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return 1
	}
	return 0
}

// Min returns the minimum value representable by T.
func Min[T constraints.Integer]() T {
	var zero T
	ones := ^zero // all bits set: -1 if T is signed, the maximum if unsigned
	if ones > zero {
		return zero
	}
	return ones << (width[T]() - 1)
}

// Max returns the maximum value representable by T.
func Max[T constraints.Integer]() T {
	var zero T
	ones := ^zero
	if ones > zero {
		return ones
	}
	return ^(ones << (width[T]() - 1))
}

// width returns the bit width of T.
func width[T constraints.Integer]() uint {
	var n uint
	for v := ^T(0); v != 0; v <<= 1 {
		n++
	}
	return n
}

// signed reports whether T is a signed type.
func signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// fits reports whether item is within the representable range of T. The
// comparison itself never overflows: negative candidates are compared in the
// int64 domain, non-negative ones in the uint64 domain.
func fits[T, F constraints.Integer](item F) bool {
	if item < 0 {
		min := Min[T]()
		if min >= 0 {
			return false
		}
		return int64(item) >= int64(min)
	}
	return uint64(item) <= uint64(Max[T]())
}
