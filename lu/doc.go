// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lu computes the LU decomposition of a square dense matrix with
// partial row pivoting and uses it to solve linear systems and compute
// inverses by blocked forward and backward substitution.
//
// Factorization runs in place: the multipliers form the strict lower
// triangle (the unit diagonal of L is implicit) and U fills the diagonal
// and above. The substitution kernel is tiled with block size BL1 to keep
// the already-solved prefix of the solution column resident in L1 while a
// block of rows accumulates against it.
package lu
