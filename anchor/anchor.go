// Package anchor implements the normalization contract that highlight and
// search consumers use to relocate a text fragment inside reconstructed
// page text. The rule is fixed: fold to NFKC, strip everything except
// letters and digits (CJK included), lowercase, and compare the first
// 30-50 normalized characters of the target fragment as an anchor.
// Reimplementations must preserve this bit-for-bit; the viewer's highlight
// feature depends on it.
package anchor

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultLength is the anchor length used when callers do not specify one.
// The contract permits 30-50; 40 is the midpoint.
const DefaultLength = 40

// Normalize reduces text to its comparable form: NFKC fold (so full-width
// and compatibility forms collapse), then strip every rune that is not a
// letter or digit, then lowercase.
func Normalize(s string) string {
	folded := norm.NFKC.String(s)

	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// Key returns the first n normalized characters of the fragment. A
// non-positive n uses DefaultLength. Fragments shorter than n normalize to
// their full length.
func Key(fragment string, n int) string {
	if n <= 0 {
		n = DefaultLength
	}

	normalized := Normalize(fragment)
	runes := []rune(normalized)
	if len(runes) <= n {
		return normalized
	}
	return string(runes[:n])
}

// Find reports the rune offset, in Normalize(text) space, where the
// fragment's anchor first occurs, or -1 when it does not. Callers that
// need byte offsets in the original text must map back themselves; the
// contract is defined over the normalized space.
func Find(text, fragment string, n int) int {
	key := Key(fragment, n)
	if key == "" {
		return -1
	}

	haystack := Normalize(text)
	byteIndex := strings.Index(haystack, key)
	if byteIndex == -1 {
		return -1
	}

	// ASCII-only haystacks have byte offset == rune offset; count runes
	// otherwise.
	return len([]rune(haystack[:byteIndex]))
}

// Match reports whether the fragment's anchor occurs anywhere in the text
func Match(text, fragment string, n int) bool {
	return Find(text, fragment, n) >= 0
}
