// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package f64 provides the float64 vector primitives used by the
// elimination and substitution kernels.
package f64
