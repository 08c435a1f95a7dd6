// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec provides SIMD-aligned float64 buffers and the lane and
// cache-line geometry constants shared by the dense and packed matrix
// layouts.
//
// A buffer allocated by this package has its base address aligned to a
// full L1 cache line and its length rounded up to a whole number of lane
// groups, so vectorized kernels can load aligned groups without edge
// handling.
package vec
