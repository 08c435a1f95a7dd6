// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lu

import (
	"github.com/solvelab/ludense/dense"
	"github.com/solvelab/ludense/internal/asm/f64"
	"github.com/solvelab/ludense/tri"
)

// BL1 is the substitution block size in rows. The default suits a 32 KiB
// L1 data cache; the best value is platform-dependent.
const BL1 = 32

// Direction selects the traversal order of the substitution kernel.
type Direction int

const (
	// Forward solves rows 0..n-1 against a lower-triangular matrix.
	Forward Direction = iota
	// Backward solves rows n-1..0 against an upper-triangular matrix.
	Backward
)

// Diag states whether the triangular matrix has an implicit unit
// diagonal or explicit diagonal values.
type Diag int

const (
	// Unit skips the division by the diagonal.
	Unit Diag = iota
	// NonUnit divides each solved element by the diagonal value.
	NonUnit
)

// Triangular is the coefficient-matrix contract consumed by the
// substitution kernel. The kernel only reads the triangle selected by the
// direction, so a dense matrix holding both factors in place satisfies it
// for either direction.
type Triangular interface {
	At(i, j int) float64
	Size() int
}

// RHS provides read access to right-hand-side columns.
type RHS interface {
	At(i, j int) float64
	Size() int
}

// Subst solves T·x = b for column col of x, where b is column col of
// rhs. A non-nil perm loads b through the row permutation, rhs[perm[i]].
// With diag == NonUnit a zero diagonal element yields
// ErrSingularDiagonal.
func Subst(t Triangular, x *dense.ColMajor, rhs RHS, perm []int, col int, dir Direction, diag Diag) error {
	n := t.Size()
	if x.Size() != n || rhs.Size() != n || (perm != nil && len(perm) != n) || col < 0 || col >= n {
		return ErrShape
	}
	load := func(i int) float64 { return rhs.At(i, col) }
	if perm != nil {
		load = func(i int) float64 { return rhs.At(perm[i], col) }
	}
	return substCol(t, x.Col(col), load, dir, diag)
}

// substCol is the blocked substitution kernel over one solution column.
// xc must have at least t.Size() elements; load(i) supplies the
// right-hand side for row i, with any permutation already applied.
//
// The column is processed in blocks of BL1 rows. Each block first loads
// its right-hand sides, then accumulates the full already-solved blocks,
// and finally runs the triangular cleanup within the diagonal block,
// dividing by the diagonal when it is not unit. The remainder when n is
// not a multiple of BL1 is handled by clipping the block end.
func substCol(t Triangular, xc []float64, load func(i int) float64, dir Direction, diag Diag) error {
	switch tt := t.(type) {
	case *tri.Lower:
		if dir == Forward {
			return substLowerFwd(tt, xc, load, diag)
		}
	case *tri.Upper:
		if dir == Backward {
			return substUpperBwd(tt, xc, load, diag)
		}
	}
	return substGeneric(t, xc, load, dir, diag)
}

func substGeneric(t Triangular, xc []float64, load func(i int) float64, dir Direction, diag Diag) error {
	n := t.Size()
	step, bi := 1, 0
	if dir == Backward {
		step, bi = -1, n-1
	}
	bstep := step * BL1

	for ; bi >= 0 && bi < n; bi += bstep {
		endi := bi + bstep
		if dir == Forward {
			if endi > n {
				endi = n
			}
		} else if endi < -1 {
			endi = -1
		}

		for i := bi; i != endi; i += step {
			xc[i] = load(i)
		}

		// Every column of a prior block is already solved, so those
		// blocks apply whole.
		bj := 0
		if dir == Backward {
			bj = n - 1
		}
		for ; bj != bi; bj += bstep {
			for i := bi; i != endi; i += step {
				s := xc[i]
				for j := bj; j != bj+bstep; j += step {
					s -= t.At(i, j) * xc[j]
				}
				xc[i] = s
			}
		}

		// Triangular cleanup of the diagonal block, rows in solve order.
		for i := bi; i != endi; i += step {
			endj := bj + bstep
			if dir == Forward {
				if endj > i {
					endj = i
				}
			} else if endj < i {
				endj = i
			}
			s := xc[i]
			for j := bj; j != endj; j += step {
				s -= t.At(i, j) * xc[j]
			}
			if diag == NonUnit {
				d := t.At(i, i)
				if d == 0 {
					return ErrSingularDiagonal
				}
				s /= d
			}
			xc[i] = s
		}
	}
	return nil
}

// substLowerFwd is the forward kernel specialized for packed lower
// storage and a contiguous solution column. Full-block updates reduce to
// dot products over the stored row.
func substLowerFwd(t *tri.Lower, xc []float64, load func(i int) float64, diag Diag) error {
	n := t.Size()
	for bi := 0; bi < n; bi += BL1 {
		endi := bi + BL1
		if endi > n {
			endi = n
		}
		for i := bi; i < endi; i++ {
			xc[i] = load(i)
		}
		for bj := 0; bj != bi; bj += BL1 {
			for i := bi; i < endi; i++ {
				row := t.Row(i)
				xc[i] -= f64.DotUnitary(row[bj:bj+BL1], xc[bj:bj+BL1])
			}
		}
		for i := bi; i < endi; i++ {
			row := t.Row(i)
			s := xc[i]
			for j := bi; j < i; j++ {
				s -= row[j] * xc[j]
			}
			if diag == NonUnit {
				d := row[i]
				if d == 0 {
					return ErrSingularDiagonal
				}
				s /= d
			}
			xc[i] = s
		}
	}
	return nil
}

// substUpperBwd is the backward kernel specialized for packed upper
// storage. Element k of a stored row holds column i+k.
func substUpperBwd(t *tri.Upper, xc []float64, load func(i int) float64, diag Diag) error {
	n := t.Size()
	for bi := n - 1; bi >= 0; bi -= BL1 {
		endi := bi - BL1
		if endi < -1 {
			endi = -1
		}
		for i := bi; i != endi; i-- {
			xc[i] = load(i)
		}
		for bj := n - 1; bj != bi; bj -= BL1 {
			lo := bj - BL1 + 1
			for i := bi; i != endi; i-- {
				row := t.Row(i)
				xc[i] -= f64.DotUnitary(row[lo-i:bj+1-i], xc[lo:bj+1])
			}
		}
		for i := bi; i != endi; i-- {
			row := t.Row(i)
			s := xc[i]
			for j := bi; j > i; j-- {
				s -= row[j-i] * xc[j]
			}
			if diag == NonUnit {
				d := row[0]
				if d == 0 {
					return ErrSingularDiagonal
				}
				s /= d
			}
			xc[i] = s
		}
	}
	return nil
}
