// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec

import "unsafe"

// LineD is the number of float64 elements in one L1 cache line on the
// targets this package supports (64-byte lines).
const LineD = 8

// alignBytes is the base-address alignment of every buffer. One cache
// line also satisfies w*8 bytes for every supported lane width w.
const alignBytes = 64

var regEN = laneWidth()

// RegEN returns the number of float64 lanes in one SIMD register group on
// the running CPU.
func RegEN() int { return regEN }

// Aligned is an owned contiguous region of float64. The base address is
// aligned to a cache line and the length is a multiple of RegEN.
type Aligned struct {
	data []float64
	raw  []float64 // backing allocation, kept alive for data
}

// New returns a zero-initialized buffer holding at least n elements.
func New(n int) *Aligned {
	a := new(Aligned)
	a.Alloc(n)
	return a
}

// Alloc replaces the buffer with a zero-initialized one holding at least
// n elements, rounded up to a whole number of lane groups. Any prior
// allocation is released.
func (a *Aligned) Alloc(n int) {
	if n < 0 {
		panic("vec: negative length")
	}
	size := roundUp(n, regEN)
	raw := make([]float64, size+alignBytes/8)
	off := 0
	// A float64 slice is always 8-byte aligned, so the adjustment is a
	// whole number of elements.
	if rem := uintptr(unsafe.Pointer(unsafe.SliceData(raw))) % alignBytes; rem != 0 {
		off = int((alignBytes - rem) / 8)
	}
	a.raw = raw
	a.data = raw[off : off+size : off+size]
}

// Len returns the allocated length, a multiple of RegEN.
func (a *Aligned) Len() int { return len(a.data) }

// At returns element k.
func (a *Aligned) At(k int) float64 { return a.data[k] }

// Set stores v at element k.
func (a *Aligned) Set(k int, v float64) { a.data[k] = v }

// Lane returns the g-th lane group, the RegEN consecutive elements
// starting at g*RegEN.
func (a *Aligned) Lane(g int) []float64 {
	w := regEN
	return a.data[g*w : g*w+w : g*w+w]
}

// Data returns the aligned region. Consecutive lane groups are contiguous
// within it.
func (a *Aligned) Data() []float64 { return a.data }

func roundUp(n, m int) int {
	if r := n % m; r != 0 {
		return n + m - r
	}
	return n
}
