// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

/*
Package remap indexes the external resources referenced by an LMMS project
and rewrites them under a category guard.

Every element naming an external file does so through a single attribute:
most through "src", the VST wrapper through "plugin". The index groups such
elements by the literal resource string (which may be alias-prefixed, e.g.
"usersample:kick.wav") and supports renaming a whole group at once. Renames
only go through when the old and new resource carry file extensions of the
same category, so a sample is never silently repointed at a plugin binary.
*/
package remap

import "strings"

// Category classifies a resource by its file extension.
type Category int

const (
	Audio Category = iota
	Soundfont
	PluginBinary
)

func (c Category) String() string {
	switch c {
	case Audio:
		return "audio"
	case Soundfont:
		return "soundfont"
	case PluginBinary:
		return "plugin binary"
	}
	return "unknown"
}

// The extension sets are closed and never mutated at runtime. Lookup order
// is fixed: audio, then soundfont, then plugin binary.
var categoryOrder = [...]Category{Audio, Soundfont, PluginBinary}

var categoryExtensions = map[Category][]string{
	Audio:        {"wav", "ogg", "mp3", "flac", "aiff", "ds", "spx", "voc", "aif", "au"},
	Soundfont:    {"sf2", "sf3"},
	PluginBinary: {"dll", "exe", "so"},
}

// Extensions returns the recognized extensions of a category, for hints.
func Extensions(c Category) []string {
	exts := categoryExtensions[c]
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}

// Classify maps a file extension to its category. The extension is matched
// case-insensitively and a leading dot is ignored. Returns false for an
// empty or unrecognized extension.
func Classify(ext string) (Category, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return 0, false
	}
	for _, c := range categoryOrder {
		for _, e := range categoryExtensions[c] {
			if e == ext {
				return c, true
			}
		}
	}
	return 0, false
}

// ClassifyResource classifies a resource string by its file extension.
func ClassifyResource(resource string) (Category, bool) {
	return Classify(resourceExt(resource))
}

// resourceExt extracts the file extension of a resource string: the suffix
// after the final, non-leading dot of the last path element. Alias prefixes
// like "usersample:" need no special handling since they never contain dots.
func resourceExt(resource string) string {
	for i := len(resource) - 2; i > 0 && !isPathSep(resource[i-1]); i-- {
		// A separator here means the last path element has no dot; without
		// this check a one-character final element lets the scan run into a
		// dotted directory name.
		if isPathSep(resource[i]) {
			return ""
		}
		if resource[i] == '.' {
			return resource[i+1:]
		}
	}
	return ""
}

func isPathSep(c byte) bool {
	// Project files written on Windows carry backslash paths.
	return c == '/' || c == '\\'
}
