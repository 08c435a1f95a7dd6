// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lu

import (
	"math"

	"github.com/solvelab/ludense/dense"
	"github.com/solvelab/ludense/internal/asm/f64"
)

// pivotTol is the relative tolerance below which a pivot candidate is
// treated as zero. It scales with the largest magnitude of the input.
const pivotTol = 1e-12

// LU holds the in-place factors and row permutation of a factorized
// matrix, P·A = L·U.
type LU struct {
	lu   *dense.Dense
	perm []int
	sign int // permutation parity, for Det
}

// Factorize computes the LU decomposition of a with partial row pivoting.
// On success the receiver holds the factors; on failure its contents are
// unspecified.
func (f *LU) Factorize(a *dense.Dense) error {
	n := a.Size()
	if f.lu == nil || f.lu.Size() != n {
		f.lu = dense.New(n)
		f.perm = make([]int, n)
	}
	dense.Copy(f.lu, a)
	for i := range f.perm {
		f.perm[i] = i
	}
	f.sign = 1

	lu := f.lu
	small := pivotTol * dense.MaxAbs(a)
	for p := 0; p < n; p++ {
		// Partial pivoting: the first row with the largest magnitude in
		// column p wins ties.
		maxRow := p
		maxAbs := math.Abs(lu.At(p, p))
		for i := p + 1; i < n; i++ {
			if v := math.Abs(lu.At(i, p)); v > maxAbs {
				maxAbs, maxRow = v, i
			}
		}
		if maxAbs <= small {
			return ErrSingularPivot
		}
		dense.SwapRows(lu, p, maxRow)
		if maxRow != p {
			f.perm[p], f.perm[maxRow] = f.perm[maxRow], f.perm[p]
			f.sign = -f.sign
		}

		calcMultipliers(lu, p)

		rowP := lu.Row(p)[p+1 : n]
		for i := p + 1; i < n; i++ {
			// A zero multiplier leaves the row untouched.
			m := lu.At(i, p)
			if m == 0 {
				continue
			}
			f64.AxpyUnitary(-m, rowP, lu.Row(i)[p+1:n])
		}
	}
	return nil
}

// calcMultipliers divides column p below the pivot by the pivot, storing
// the multipliers that form L. Rows are visited from the bottom up, the
// warm direction after the pivot scan. Entries that are already zero stay
// zero without a division.
func calcMultipliers(lu *dense.Dense, p int) {
	piv := lu.At(p, p)
	for i := lu.Size() - 1; i > p; i-- {
		if v := lu.At(i, p); v != 0 {
			lu.Set(i, p, v/piv)
		}
	}
}

// Size returns the dimension of the factorized matrix, or 0 before the
// first Factorize.
func (f *LU) Size() int {
	if f.lu == nil {
		return 0
	}
	return f.lu.Size()
}

// Factors returns the matrix holding both factors in place: multipliers
// below the diagonal (unit diagonal of L implicit), U on and above.
func (f *LU) Factors() *dense.Dense { return f.lu }

// Pivots returns P: element k is the original row in position k after
// pivoting. The slice is written into dst if it has length Size.
func (f *LU) Pivots(dst []int) []int {
	if dst == nil {
		dst = make([]int, len(f.perm))
	}
	if len(dst) != len(f.perm) {
		panic(ErrShape)
	}
	copy(dst, f.perm)
	return dst
}

// Det returns the determinant of the factorized matrix.
func (f *LU) Det() float64 {
	det := float64(f.sign)
	for i := 0; i < f.lu.Size(); i++ {
		det *= f.lu.At(i, i)
	}
	return det
}
