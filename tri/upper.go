// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

import (
	"github.com/solvelab/ludense/dense"
	"github.com/solvelab/ludense/vec"
)

// Upper is a packed upper-triangular matrix. Row i stores columns [i, n).
type Upper struct {
	n        int
	shift    int // aligns the pad sequence to (n+1) mod LineD
	firstPad int // pad run before row 0
	buf      *vec.Aligned
}

// NewUpper returns a zeroed packed upper-triangular matrix of size n.
func NewUpper(n int) *Upper {
	if n <= 0 {
		panic("tri: non-positive size")
	}
	t := &Upper{n: n, shift: mod(n+1, vec.LineD)}
	if r := mod(n, vec.LineD); r != vec.LineD-1 {
		// Sum of the arithmetic run LineD-r, ..., LineD-1.
		a1 := vec.LineD - r
		an := vec.LineD - 1
		t.firstPad = (an - a1 + 1) * (a1 + an) / 2
	}
	t.buf = vec.New(t.offset(n-1, n-1) + 1)
	return t
}

// padBefore is the pad inserted before row i. The sequence is shifted so
// that row ends of the upper layout get the alignment row starts get in
// the lower layout.
func (t *Upper) padBefore(i int) int {
	pos := mod(i-t.shift, vec.LineD)
	return t.firstPad + padBlocks(i-t.shift) + pos*(pos+1)/2
}

func (t *Upper) offset(i, j int) int {
	return i*(2*t.n-i+1)/2 + (j - i) + t.padBefore(i)
}

// Size returns the dimension n.
func (t *Upper) Size() int { return t.n }

// At returns the element at row i, column j. It panics when (i, j) is
// outside the upper triangle.
func (t *Upper) At(i, j int) float64 {
	if j < i || j >= t.n || i < 0 {
		panic("tri: index outside upper triangle")
	}
	return t.buf.At(t.offset(i, j))
}

// Set stores v at row i, column j. It panics when (i, j) is outside the
// upper triangle.
func (t *Upper) Set(i, j int, v float64) {
	if j < i || j >= t.n || i < 0 {
		panic("tri: index outside upper triangle")
	}
	t.buf.Set(t.offset(i, j), v)
}

// Row returns the stored elements of row i, columns [i, n), as a
// contiguous slice; element k holds column i+k.
func (t *Upper) Row(i int) []float64 {
	base := t.offset(i, i)
	return t.buf.Data()[base : base+t.n-i]
}

// SetFromDense copies the upper triangle of m, diagonal included.
func (t *Upper) SetFromDense(m dense.Matrix) {
	if m.Size() != t.n {
		panic(dense.ErrShape)
	}
	for i := 0; i < t.n; i++ {
		row := t.Row(i)
		for j := i; j < t.n; j++ {
			row[j-i] = m.At(i, j)
		}
	}
}
