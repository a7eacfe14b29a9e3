// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package main

import "os"

// Ext returns the file name extension used by path. The extension is the
// suffix beginning _after_ the final, non-commencing dot in the final
// element of path; it is empty if there is no dot.
func Ext(path string) string {
	if len(path) == 0 {
		return ""
	}
	for i := len(path) - 2; i > 0 && !os.IsPathSeparator(path[i-1]); i-- {
		// Stop before a one-character final element lets the scan run into
		// a dotted directory name.
		if os.IsPathSeparator(path[i]) {
			return ""
		}
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return ""
}
