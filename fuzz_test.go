// Copyright 2023 Stephen Tafoya. All rights reserved.
// Use of this source code is governed by the Apache License
// 2.0 that can be found in the LICENSE file.

package snugint

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

// The fuzz targets compare every checked operation against the same
// computation in math/big: an operation must succeed exactly when the
// wide result fits the wrapped type, and then agree with it.

func FuzzArithInt64(f *testing.F) {
	f.Add(int64(0), int64(0), uint8(0))
	f.Add(int64(math.MaxInt64), int64(1), uint8(0))
	f.Add(int64(math.MinInt64), int64(-1), uint8(1))
	f.Add(int64(math.MinInt64), int64(-1), uint8(3))
	f.Add(int64(3037000500), int64(3037000500), uint8(2))
	f.Add(int64(-3037000500), int64(3037000500), uint8(2))
	f.Fuzz(func(t *testing.T, x, y int64, op uint8) {
		var (
			z   Int[int64]
			err error
		)
		bx, by := big.NewInt(x), big.NewInt(y)
		want := new(big.Int)
		switch op % 4 {
		case 0:
			z, err = Of(x).Add(Of(y))
			want.Add(bx, by)
		case 1:
			z, err = Of(x).Sub(Of(y))
			want.Sub(bx, by)
		case 2:
			z, err = Of(x).Mul(Of(y))
			want.Mul(bx, by)
		case 3:
			if y == 0 {
				_, err = Of(x).Div(Of(y))
				if !errors.Is(err, ErrDivisionByZero) {
					t.Fatalf("%d / 0 error %v; want %v",
						x, err, ErrDivisionByZero)
				}
				return
			}
			z, err = Of(x).Div(Of(y))
			want.Quo(bx, by)
		}
		if !want.IsInt64() {
			if err == nil {
				t.Fatalf("op %d on %d, %d = %d; want failure",
					op%4, x, y, z.Value())
			}
			return
		}
		if err != nil {
			t.Fatalf("op %d on %d, %d error %v; want %d",
				op%4, x, y, err, want)
		}
		if z.Value() != want.Int64() {
			t.Fatalf("op %d on %d, %d = %d; want %d",
				op%4, x, y, z.Value(), want)
		}
	})
}

func FuzzArithUint8(f *testing.F) {
	f.Add(uint8(255), uint8(1), uint8(0))
	f.Add(uint8(1), uint8(10), uint8(1))
	f.Add(uint8(16), uint8(16), uint8(2))
	f.Add(uint8(10), uint8(0), uint8(3))
	f.Fuzz(func(t *testing.T, x, y uint8, op uint8) {
		var (
			z   Int[uint8]
			err error
		)
		var want int64
		switch op % 4 {
		case 0:
			z, err = Of(x).Add(Of(y))
			want = int64(x) + int64(y)
		case 1:
			z, err = Of(x).Sub(Of(y))
			want = int64(x) - int64(y)
		case 2:
			z, err = Of(x).Mul(Of(y))
			want = int64(x) * int64(y)
		case 3:
			if y == 0 {
				_, err = Of(x).Div(Of(y))
				if !errors.Is(err, ErrDivisionByZero) {
					t.Fatalf("%d / 0 error %v; want %v",
						x, err, ErrDivisionByZero)
				}
				return
			}
			z, err = Of(x).Div(Of(y))
			want = int64(x) / int64(y)
		}
		if want < 0 || want > math.MaxUint8 {
			if err == nil {
				t.Fatalf("op %d on %d, %d = %d; want failure",
					op%4, x, y, z.Value())
			}
			return
		}
		if err != nil {
			t.Fatalf("op %d on %d, %d error %v; want %d",
				op%4, x, y, err, want)
		}
		if int64(z.Value()) != want {
			t.Fatalf("op %d on %d, %d = %d; want %d",
				op%4, x, y, z.Value(), want)
		}
	})
}
