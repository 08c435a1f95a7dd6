// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestRegEN(t *testing.T) {
	w := RegEN()
	require.GreaterOrEqual(t, w, 1)
	require.LessOrEqual(t, w, LineD)
	require.Zero(t, LineD%w, "lane width must divide the cache line")
}

func TestAllocAlignment(t *testing.T) {
	for _, n := range []int{1, 2, 7, 8, 9, 63, 64, 65, 1000} {
		a := New(n)
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(a.Data())))
		require.Zerof(t, addr%alignBytes, "n=%d: base not line-aligned", n)
	}
}

func TestAllocRounding(t *testing.T) {
	w := RegEN()
	for _, n := range []int{0, 1, w - 1, w, w + 1, 3*w + 1} {
		a := New(n)
		require.GreaterOrEqual(t, a.Len(), n)
		require.Zerof(t, a.Len()%w, "n=%d: length %d not a whole number of lane groups", n, a.Len())
	}
}

func TestAllocZeroes(t *testing.T) {
	a := New(100)
	for _, v := range a.Data() {
		require.Zero(t, v)
	}
}

func TestScalarAccess(t *testing.T) {
	a := New(10)
	a.Set(3, 2.5)
	require.Equal(t, 2.5, a.At(3))
	require.Equal(t, 2.5, a.Data()[3])
}

func TestLaneAccess(t *testing.T) {
	w := RegEN()
	a := New(4 * w)
	for k := 0; k < a.Len(); k++ {
		a.Set(k, float64(k))
	}
	for g := 0; g < a.Len()/w; g++ {
		lane := a.Lane(g)
		require.Len(t, lane, w)
		for l, v := range lane {
			require.Equal(t, float64(g*w+l), v, "lane groups must be contiguous")
		}
	}
}

func TestRealloc(t *testing.T) {
	a := New(8)
	a.Set(0, 1)
	a.Alloc(16)
	require.GreaterOrEqual(t, a.Len(), 16)
	require.Zero(t, a.At(0), "Alloc must zero-initialize")
}
