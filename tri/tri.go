// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tri

import "github.com/solvelab/ludense/vec"

// divDown is floored integer division. The upper pad evaluates it on
// negative operands, where Go's truncating division would differ.
func divDown(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

// mod is the floored modulus, always in [0, y).
func mod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}

// padBlocks is the pad accumulated by whole line-sized groups of rows
// before row x.
func padBlocks(x int) int {
	return divDown(x, vec.LineD) * (vec.LineD * (vec.LineD - 1)) / 2
}
