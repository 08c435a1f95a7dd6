// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"math/rand/v2"

	"github.com/solvelab/ludense/internal/asm/f64"
)

// SwapRows exchanges rows r0 and r1 over the logical region of m.
// Swapping a row with itself is a no-op.
func SwapRows(m Matrix, r0, r1 int) {
	if r0 == r1 {
		return
	}
	if rm, ok := m.(*Dense); ok {
		n := rm.n
		f64.SwapUnitary(rm.Row(r0)[:n], rm.Row(r1)[:n])
		return
	}
	n := m.Size()
	for j := 0; j < n; j++ {
		v0, v1 := m.At(r0, j), m.At(r1, j)
		m.Set(r0, j, v1)
		m.Set(r1, j, v0)
	}
}

// Copy sets dst to src. The matrices may have different storage orders
// but must have the same logical size.
func Copy(dst, src Matrix) {
	n := dst.Size()
	if src.Size() != n {
		panic(ErrShape)
	}
	if d, ok := dst.(*Dense); ok {
		if s, ok := src.(*Dense); ok && s.nMem == d.nMem {
			copy(d.buf.Data(), s.buf.Data())
			return
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst.Set(i, j, src.At(i, j))
		}
	}
}

// Add increments m by sign*b over the logical region.
func Add(m, b Matrix, sign float64) {
	n := m.Size()
	if b.Size() != n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, m.At(i, j)+sign*b.At(i, j))
		}
	}
}

// Fill sets every logical element of m to x.
func Fill(m Matrix, x float64) {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, x)
		}
	}
}

// SetIdentity sets m to the identity matrix.
func SetIdentity(m Matrix) {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, 0)
		}
		m.Set(i, i, 1)
	}
}

// RandomFill assigns uniform [0,1) values to every logical element of m.
func RandomFill(m Matrix, rnd *rand.Rand) {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, rnd.Float64())
		}
	}
}

// MaxAbs returns the largest absolute value over the logical region.
func MaxAbs(m Matrix) float64 {
	n := m.Size()
	var max float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}
