// Copyright ©2026 The Ludense Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"fmt"
	"strings"
)

// String formats the logical region of m, one row per line.
func (m *Dense) String() string { return format(m) }

// String formats the logical region of m, one row per line.
func (m *ColMajor) String() string { return format(m) }

func format(m Matrix) string {
	var sb strings.Builder
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.At(i, j))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
