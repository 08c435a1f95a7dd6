// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tri implements packed storage for the triangular factors of an
// LU decomposition.
//
// Row i of a lower matrix stores columns [0, i]; row i of an upper matrix
// stores columns [i, n). Packing halves the footprint of a dense layout.
// On top of the arithmetic index mapping, a variable pad is inserted
// before each row so that row starts fall at distinct offsets within the
// cache line; without it, the substitution kernel traversing several rows
// interleaved would collide on the same L1 sets. The upper layout shifts
// its pad sequence so that row ends line up the way lower row starts do.
package tri
