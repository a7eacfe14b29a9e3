// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package remap

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrIndexOutOfRange reports an ordinal outside [1, Len].
	ErrIndexOutOfRange = errors.New("no resource at index")
	// ErrUnclassifiedResource reports an existing resource whose extension
	// belongs to no category; such a resource cannot be remapped safely.
	ErrUnclassifiedResource = errors.New("resource has no recognized category")
	// ErrEmptyExtension reports a replacement without a file extension.
	ErrEmptyExtension = errors.New("replacement has no file extension")
	// ErrCategoryMismatch reports a replacement of a different category.
	ErrCategoryMismatch = errors.New("replacement category differs")
	// ErrInvalidPattern reports a regular expression that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Rename records one committed resource rename.
type Rename struct {
	Old string
	New string
}

// Rejection records one resource the category guard refused to rename.
type Rejection struct {
	Key string
	Err error
}

// Report is the outcome of a batch remap. Keys are independent edits:
// rejections never roll back or abort sibling renames.
type Report struct {
	Renamed  []Rename
	Rejected []Rejection
}

// Changed returns how many resources were actually renamed.
func (r *Report) Changed() int {
	return len(r.Renamed)
}

// guard validates a rename before any mutation: the old resource must have a
// recognized category, the new one a non-empty extension of that same
// category. This is what keeps a mixed-up replacement from corrupting the
// project for the host application.
func guard(old, new string) error {
	oldCat, ok := ClassifyResource(old)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnclassifiedResource, old)
	}
	if resourceExt(new) == "" {
		return fmt.Errorf("%w: %q (expected one of %v)",
			ErrEmptyExtension, new, Extensions(oldCat))
	}
	newCat, ok := ClassifyResource(new)
	if !ok || newCat != oldCat {
		return fmt.Errorf("%w: cannot remap %q (%v) to %q (allowed extensions: %v)",
			ErrCategoryMismatch, old, oldCat, new, Extensions(oldCat))
	}
	return nil
}

// ByIndex remaps the single resource at a 1-based ordinal (0 aliases to 1).
// Returns the committed rename, or an error naming why nothing changed.
func ByIndex(idx *Index, ordinal int, replacement string) (Rename, error) {
	key, ok := idx.KeyAt(ordinal)
	if !ok {
		return Rename{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, ordinal)
	}
	if err := guard(key, replacement); err != nil {
		return Rename{}, err
	}
	if err := idx.Rename(key, replacement); err != nil {
		return Rename{}, err
	}
	return Rename{Old: key, New: replacement}, nil
}

// ByMatch remaps every resource containing needle, replacing its first
// occurrence with replacement.
func ByMatch(idx *Index, needle, replacement string) *Report {
	return rewriteAll(idx, func(key string) string {
		return strings.Replace(key, needle, replacement, 1)
	})
}

// ByPattern remaps every resource the regular expression rewrites to a
// different string. The pattern is compiled before any key is touched.
func ByPattern(idx *Index, pattern, replacement string) (*Report, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return rewriteAll(idx, func(key string) string {
		return re.ReplaceAllString(key, replacement)
	}), nil
}

// ByRewrite remaps every resource the rewrite function maps to a different
// string. Used for whole-index passes such as alias shortening.
func ByRewrite(idx *Index, rewrite func(string) string) *Report {
	return rewriteAll(idx, rewrite)
}

// rewriteAll applies a guarded rename per key over a snapshot of the current
// keys; renames re-key the index, so the live key list must not be iterated.
func rewriteAll(idx *Index, rewrite func(string) string) *Report {
	report := &Report{}
	for _, key := range idx.Keys() {
		candidate := rewrite(key)
		if candidate == key {
			continue
		}
		if err := guard(key, candidate); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Key: key, Err: err})
			continue
		}
		if err := idx.Rename(key, candidate); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Key: key, Err: err})
			continue
		}
		report.Renamed = append(report.Renamed, Rename{Old: key, New: candidate})
	}
	return report
}
