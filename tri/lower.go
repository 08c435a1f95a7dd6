// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

import (
	"github.com/solvelab/ludense/dense"
	"github.com/solvelab/ludense/vec"
)

// Lower is a packed lower-triangular matrix. Row i stores columns [0, i].
// The diagonal is stored even when the factor it holds has an implicit
// unit diagonal.
type Lower struct {
	n   int
	buf *vec.Aligned
}

// NewLower returns a zeroed packed lower-triangular matrix of size n.
func NewLower(n int) *Lower {
	if n <= 0 {
		panic("tri: non-positive size")
	}
	t := &Lower{n: n}
	t.buf = vec.New(t.offset(n-1, n-1) + 1)
	return t
}

// padBefore is the pad inserted before row i.
func (t *Lower) padBefore(i int) int {
	pos := mod(i, vec.LineD)
	return padBlocks(i) + pos*(2*vec.LineD-1-pos)/2
}

func (t *Lower) offset(i, j int) int {
	return i*(i+1)/2 + j + t.padBefore(i)
}

// Size returns the dimension n.
func (t *Lower) Size() int { return t.n }

// At returns the element at row i, column j. It panics when (i, j) is
// outside the lower triangle.
func (t *Lower) At(i, j int) float64 {
	if j > i || i >= t.n || j < 0 {
		panic("tri: index outside lower triangle")
	}
	return t.buf.At(t.offset(i, j))
}

// Set stores v at row i, column j. It panics when (i, j) is outside the
// lower triangle.
func (t *Lower) Set(i, j int, v float64) {
	if j > i || i >= t.n || j < 0 {
		panic("tri: index outside lower triangle")
	}
	t.buf.Set(t.offset(i, j), v)
}

// Row returns the stored elements of row i, columns [0, i], as a
// contiguous slice indexed by column.
func (t *Lower) Row(i int) []float64 {
	base := t.offset(i, 0)
	return t.buf.Data()[base : base+i+1]
}

// SetFromDense copies the lower triangle of m, diagonal included.
func (t *Lower) SetFromDense(m dense.Matrix) {
	if m.Size() != t.n {
		panic(dense.ErrShape)
	}
	for i := 0; i < t.n; i++ {
		row := t.Row(i)
		for j := 0; j <= i; j++ {
			row[j] = m.At(i, j)
		}
	}
}
