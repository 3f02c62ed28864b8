// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

// Package snugint provides overflow-safe arithmetic over fixed-width
// integer types.
//
// An Int[T] wraps a value of any builtin integer type. Its Add, Sub, Mul
// and Div methods verify before computing anything that the result fits
// into the representable range of T; instead of wrapping around silently
// they return one of the package's sentinel errors, which callers match
// with errors.Is:
//
//	a := snugint.Of[int8](120)
//	b := snugint.Of[int8](10)
//	if _, err := a.Add(b); errors.Is(err, snugint.ErrAdditionOverflow) {
//		// 120 + 10 does not fit into an int8
//	}
//
// A failed operation never modifies its operands. Cross-width conversion
// goes through From, which rejects out-of-range values instead of
// truncating them. The package performs no I/O and keeps no global state;
// Int[T] values follow the concurrency rules of any plain value type.
package snugint
