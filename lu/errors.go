// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lu

import "errors"

var (
	// ErrSingularPivot is returned by Factorize when every pivot
	// candidate in a column is within tolerance of zero.
	ErrSingularPivot = errors.New("lu: matrix is singular to working precision")

	// ErrSingularDiagonal is returned by the substitution kernel when a
	// non-unit diagonal element is zero.
	ErrSingularDiagonal = errors.New("lu: zero on triangular diagonal")

	// ErrShape is returned when the inputs of a kernel do not have
	// matching sizes.
	ErrShape = errors.New("lu: dimension mismatch")
)
