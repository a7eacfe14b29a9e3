// Copyright © 2023-2026 B0ney
// Use of this file is governed by the license that can be found in LICENSE.

package main

import (
	"regexp"
	"strings"

	"github.com/ambrevar/damerau"
)

var reNorm = regexp.MustCompile(`\b0+|[^\pL\pN]`)

// Remove punctuation and padding zeros for number comparisons. Return the
// result in lowercase. This makes string relations more relevant when
// resources differ only in separators or numbering.
func stringNorm(s string) string {
	return strings.ToLower(reNorm.ReplaceAllString(s, ""))
}

// Return the Damerau-Levenshtein distance divided by the length of the
// longest string, so that two identical strings return 1, and two completely
// unrelated strings return 0.
func stringRel(a, b string) float64 {
	max := len([]rune(a))
	if len([]rune(b)) > max {
		max = len([]rune(b))
	} else if max == 0 {
		return 1
	}

	distance := damerau.DamerauLevenshteinDistance(a, b)
	return 1 - float64(distance)/float64(max)
}

// closestResource returns the resource most related to target, for "did you
// mean" hints when a lookup matches nothing.
func closestResource(resources []string, target string) (best string, rel float64) {
	normTarget := stringNorm(target)
	for _, r := range resources {
		if v := stringRel(stringNorm(r), normTarget); v > rel {
			best, rel = r, v
		}
	}
	return best, rel
}
