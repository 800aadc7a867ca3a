// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

// Package textnorm folds Unicode strings for accent-insensitive matching.
//
// # Usage
//
// Catalogue search must treat "écouté", "ecoute" and "ECOUTE" as the same
// word — French learners rarely type accents, and the content itself always
// carries them. Folding both sides of a comparison through [Fold] makes the
// match diacritic- and case-insensitive.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases the input and strips combining marks (accents).
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Fall back to plain lowercasing on malformed input.
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// ContainsFold reports whether needle occurs in haystack after both sides
// are folded. An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// isMn reports whether the rune is a nonspacing combining mark (Unicode Mn).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
