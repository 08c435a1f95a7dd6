// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build arm64

package vec

import "golang.org/x/sys/cpu"

func laneWidth() int {
	if cpu.ARM64.HasASIMD {
		// NEON registers hold two doubles.
		return 2
	}
	return 1
}
