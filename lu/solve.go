// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lu

import (
	"github.com/solvelab/ludense/dense"
	"github.com/solvelab/ludense/tri"
)

// SolveVec solves A·x = b using the computed factorization: a permuted
// forward pass over the implicit-unit L, then a backward pass over U,
// both reading the in-place factors.
func (f *LU) SolveVec(b []float64) ([]float64, error) {
	n := f.Size()
	if len(b) != n {
		return nil, ErrShape
	}
	y := make([]float64, n)
	err := substCol(f.lu, y, func(i int) float64 { return b[f.perm[i]] }, Forward, Unit)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n)
	err = substCol(f.lu, x, func(i int) float64 { return y[i] }, Backward, NonUnit)
	if err != nil {
		return nil, err
	}
	return x, nil
}

// InvertTo computes the inverse of the factorized matrix into dst, one
// identity column at a time. The factors are first copied into packed
// triangular storage, which the blocked kernel traverses with fewer
// cache conflicts than the dense layout.
func (f *LU) InvertTo(dst *dense.ColMajor) error {
	n := f.Size()
	if dst.Size() != n {
		return ErrShape
	}
	low := tri.NewLower(n)
	low.SetFromDense(f.lu)
	upp := tri.NewUpper(n)
	upp.SetFromDense(f.lu)

	y := make([]float64, n)
	for c := 0; c < n; c++ {
		// Forward pass on the permuted identity column e_c.
		err := substCol(low, y, func(i int) float64 {
			if f.perm[i] == c {
				return 1
			}
			return 0
		}, Forward, Unit)
		if err != nil {
			return err
		}
		err = substCol(upp, dst.Col(c), func(i int) float64 { return y[i] }, Backward, NonUnit)
		if err != nil {
			return err
		}
	}
	return nil
}

// Invert factorizes a and writes its inverse into dst.
func Invert(a *dense.Dense, dst *dense.ColMajor) error {
	var f LU
	if err := f.Factorize(a); err != nil {
		return err
	}
	return f.InvertTo(dst)
}
