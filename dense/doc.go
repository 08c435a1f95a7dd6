// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dense implements square float64 matrices in padded row-major
// and column-major storage.
//
// The in-memory leading dimension of a matrix is its logical size rounded
// up to a whole number of cache lines; a result that lands on a power of
// two larger than one line is pushed out by one further line, so that
// rows (or columns) never alias the same L1 set when the kernels walk
// several of them interleaved. Callers depend only on the At/Set/Size/
// SizeMem contract, never on storage order.
package dense
