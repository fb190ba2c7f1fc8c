// Shelfwise - Book Recommendations with Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package logging

import "strings"

// maxSanitizedLength bounds user-influenced strings written to logs.
const maxSanitizedLength = 256

// Sanitize makes a user-influenced string safe to log as a single line.
// Control characters are replaced with spaces and the result is truncated.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(min(len(s), maxSanitizedLength))

	n := 0
	for _, r := range s {
		if n >= maxSanitizedLength {
			b.WriteString("...")
			break
		}
		if r < 0x20 || r == 0x7f {
			r = ' '
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
