// Package normalize canonicalizes user-supplied text before pattern
// matching. NFKC folds visually-confusable code points (fullwidth Latin,
// ligatures) onto their plain forms, and a fixed set of invisible code
// points is stripped so characters interleaved inside a banned phrase
// cannot defeat literal matching.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of s. It is idempotent.
func Normalize(s string) string {
	folded := norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if isInvisible(r) {
			continue
		}
		b.WriteRune(r)
	}

	// Stripping a join control can expose a combining sequence that the
	// first pass could not compose, so fold once more to keep Normalize
	// idempotent.
	return norm.NFKC.String(b.String())
}

// isInvisible reports whether r is one of the zero-width or formatting
// characters used to smuggle instructions past literal matching.
func isInvisible(r rune) bool {
	switch r {
	case '\u200B', // ZERO WIDTH SPACE
		'\u200C', // ZERO WIDTH NON-JOINER
		'\u200D', // ZERO WIDTH JOINER
		'\u2060', // WORD JOINER
		'\uFEFF', // ZERO WIDTH NO-BREAK SPACE (BOM)
		'\u00AD', // SOFT HYPHEN
		'\u180E', // MONGOLIAN VOWEL SEPARATOR
		'\u200E', // LEFT-TO-RIGHT MARK
		'\u200F', // RIGHT-TO-LEFT MARK
		'\u202A', // LEFT-TO-RIGHT EMBEDDING
		'\u202B', // RIGHT-TO-LEFT EMBEDDING
		'\u202C', // POP DIRECTIONAL FORMATTING
		'\u202D', // LEFT-TO-RIGHT OVERRIDE
		'\u202E': // RIGHT-TO-LEFT OVERRIDE
		return true
	}

	// Unicode tag characters can carry hidden ASCII payloads.
	if r >= 0xE0000 && r <= 0xE007F {
		return true
	}

	return false
}
