// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package snugint

import (
	"errors"
	"fmt"
	"strconv"
)

// String returns the decimal representation of the wrapped value, matching
// the formatting of the underlying type.
func (x Int[T]) String() string {
	return fmt.Sprintf("%d", x.value)
}

// MarshalText implements encoding.TextMarshaler.
func (x Int[T]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The parsed value passes
// through the same range guard as From, so text representing a value outside
// [Min[T](), Max[T]()] fails with ErrSizeMismatch. The receiver is left
// unchanged on failure.
func (x *Int[T]) UnmarshalText(text []byte) error {
	s := string(text)
	var y Int[T]
	var err error
	// Parse in the widest domain matching the sign of the text, then
	// convert. Values beyond even the 64-bit range are size mismatches
	// like any other out-of-range value.
	if len(s) > 0 && s[0] == '-' {
		var v int64
		v, err = strconv.ParseInt(s, 10, 64)
		if err == nil {
			y, err = From[T](v)
		}
	} else {
		// ParseUint accepts no sign at all; an explicit plus is
		// valid input for every integer type.
		if len(s) > 0 && s[0] == '+' {
			s = s[1:]
		}
		var v uint64
		v, err = strconv.ParseUint(s, 10, 64)
		if err == nil {
			y, err = From[T](v)
		}
	}
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return ErrSizeMismatch
		}
		return err
	}
	*x = y
	return nil
}

// Scan implements fmt.Scanner for the verbs d, v and s. The scanned value
// passes through the same range guard as From; the receiver is left
// unchanged on failure.
func (x *Int[T]) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 'v', 's':
	default:
		return fmt.Errorf("snugint: unsupported scan verb %c", verb)
	}
	n := 0
	tok, err := state.Token(true, func(r rune) bool {
		n++
		if r == '+' || r == '-' {
			return n == 1 // a sign is only valid up front
		}
		return '0' <= r && r <= '9'
	})
	if err != nil {
		return err
	}
	return x.UnmarshalText(tok)
}
