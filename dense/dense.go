// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"errors"

	"github.com/solvelab/ludense/vec"
)

// ErrShape is the panic value of bulk operations whose operands do not
// have matching logical sizes. A mismatch is a programmer error, not an
// input error.
var ErrShape = errors.New("dense: dimension mismatch")

// Matrix is the access contract shared by the row-major and column-major
// layouts. Indices up to SizeMem are addressable; only the top-left
// Size×Size region is logically valid.
type Matrix interface {
	At(i, j int) float64
	Set(i, j int, v float64)
	Size() int
	SizeMem() int
}

var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*ColMajor)(nil)
)

// sizeMem returns the padded leading dimension for logical size n.
func sizeMem(n int) int {
	m := n
	if r := m % vec.LineD; r != 0 {
		m += vec.LineD - r
	}
	// An odd multiple of the line size keeps rows out of a single
	// associativity set.
	if m > vec.LineD && m&(m-1) == 0 {
		m += vec.LineD
	}
	return m
}

// Dense is a square matrix in padded row-major storage.
type Dense struct {
	n    int
	nMem int
	buf  *vec.Aligned
}

// New returns a zeroed n×n row-major matrix.
func New(n int) *Dense {
	if n <= 0 {
		panic("dense: non-positive size")
	}
	m := sizeMem(n)
	return &Dense{n: n, nMem: m, buf: vec.New(m * m)}
}

// Size returns the logical dimension n.
func (m *Dense) Size() int { return m.n }

// SizeMem returns the in-memory leading dimension.
func (m *Dense) SizeMem() int { return m.nMem }

// Pad returns SizeMem - Size.
func (m *Dense) Pad() int { return m.nMem - m.n }

// At returns the element at row i, column j. Padded cells up to SizeMem
// are addressable.
func (m *Dense) At(i, j int) float64 {
	return m.buf.At(i*m.nMem + j)
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v float64) {
	m.buf.Set(i*m.nMem+j, v)
}

// Row returns row i as a contiguous slice of length SizeMem. Rows start
// lane-aligned because the leading dimension is a multiple of the line
// size, so a vectorized kernel can consume the slice in whole lane
// groups.
func (m *Dense) Row(i int) []float64 {
	return m.buf.Data()[i*m.nMem : (i+1)*m.nMem]
}

// ColMajor is a square matrix in padded column-major storage. It differs
// from Dense only in the index function.
type ColMajor struct {
	n    int
	nMem int
	buf  *vec.Aligned
}

// NewColMajor returns a zeroed n×n column-major matrix.
func NewColMajor(n int) *ColMajor {
	if n <= 0 {
		panic("dense: non-positive size")
	}
	m := sizeMem(n)
	return &ColMajor{n: n, nMem: m, buf: vec.New(m * m)}
}

// Size returns the logical dimension n.
func (m *ColMajor) Size() int { return m.n }

// SizeMem returns the in-memory leading dimension.
func (m *ColMajor) SizeMem() int { return m.nMem }

// Pad returns SizeMem - Size.
func (m *ColMajor) Pad() int { return m.nMem - m.n }

// At returns the element at row i, column j.
func (m *ColMajor) At(i, j int) float64 {
	return m.buf.At(j*m.nMem + i)
}

// Set stores v at row i, column j.
func (m *ColMajor) Set(i, j int, v float64) {
	m.buf.Set(j*m.nMem+i, v)
}

// Col returns column j as a contiguous slice of length SizeMem. Columns
// start lane-aligned, like the rows of the row-major layout.
func (m *ColMajor) Col(j int) []float64 {
	return m.buf.Data()[j*m.nMem : (j+1)*m.nMem]
}
