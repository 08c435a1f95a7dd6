// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solvelab/ludense/dense"
)

func TestDivDownMod(t *testing.T) {
	require.Equal(t, -1, divDown(-1, 8))
	require.Equal(t, -1, divDown(-8, 8))
	require.Equal(t, -2, divDown(-9, 8))
	require.Equal(t, 0, divDown(7, 8))
	require.Equal(t, 7, mod(-1, 8))
	require.Equal(t, 0, mod(-8, 8))
	require.Equal(t, 3, mod(11, 8))
}

func TestLowerOffsetsInjective(t *testing.T) {
	for n := 1; n <= 64; n++ {
		tl := NewLower(n)
		seen := make(map[int][2]int)
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				off := tl.offset(i, j)
				require.GreaterOrEqualf(t, off, 0, "n=%d (%d,%d)", n, i, j)
				require.Lessf(t, off, tl.buf.Len(), "n=%d (%d,%d) outside buffer", n, i, j)
				prev, dup := seen[off]
				require.Falsef(t, dup, "n=%d: (%d,%d) and (%d,%d) alias offset %d", n, i, j, prev[0], prev[1], off)
				seen[off] = [2]int{i, j}
			}
		}
	}
}

func TestUpperOffsetsInjective(t *testing.T) {
	for n := 1; n <= 64; n++ {
		tu := NewUpper(n)
		seen := make(map[int][2]int)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				off := tu.offset(i, j)
				require.GreaterOrEqualf(t, off, 0, "n=%d (%d,%d)", n, i, j)
				require.Lessf(t, off, tu.buf.Len(), "n=%d (%d,%d) outside buffer", n, i, j)
				prev, dup := seen[off]
				require.Falsef(t, dup, "n=%d: (%d,%d) and (%d,%d) alias offset %d", n, i, j, prev[0], prev[1], off)
				seen[off] = [2]int{i, j}
			}
		}
	}
}

func TestLowerAtSet(t *testing.T) {
	const n = 21
	tl := NewLower(n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			tl.Set(i, j, float64(i*n+j))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			require.Equal(t, float64(i*n+j), tl.At(i, j))
		}
	}
	require.Panics(t, func() { tl.At(0, 1) })
	require.Panics(t, func() { tl.Set(1, 2, 0) })
}

func TestUpperAtSet(t *testing.T) {
	const n = 21
	tu := NewUpper(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			tu.Set(i, j, float64(i*n+j))
		}
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			require.Equal(t, float64(i*n+j), tu.At(i, j))
		}
	}
	require.Panics(t, func() { tu.At(1, 0) })
	require.Panics(t, func() { tu.Set(2, 1, 0) })
}

func TestRowSlices(t *testing.T) {
	for _, n := range []int{1, 5, 8, 13, 32} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			tl := NewLower(n)
			tu := NewUpper(n)
			v := 1.0
			for i := 0; i < n; i++ {
				for j := 0; j <= i; j++ {
					tl.Set(i, j, v)
					v++
				}
				for j := i; j < n; j++ {
					tu.Set(i, j, v)
					v++
				}
			}
			for i := 0; i < n; i++ {
				lrow := tl.Row(i)
				require.Len(t, lrow, i+1)
				for j := 0; j <= i; j++ {
					require.Equal(t, tl.At(i, j), lrow[j])
				}
				urow := tu.Row(i)
				require.Len(t, urow, n-i)
				for j := i; j < n; j++ {
					require.Equal(t, tu.At(i, j), urow[j-i])
				}
			}
		})
	}
}

func TestSetFromDense(t *testing.T) {
	const n = 17
	rnd := rand.New(rand.NewPCG(3, 3))
	m := dense.New(n)
	dense.RandomFill(m, rnd)

	tl := NewLower(n)
	tl.SetFromDense(m)
	tu := NewUpper(n)
	tu.SetFromDense(m)

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			require.Equal(t, m.At(i, j), tl.At(i, j))
		}
		for j := i; j < n; j++ {
			require.Equal(t, m.At(i, j), tu.At(i, j))
		}
	}
}
