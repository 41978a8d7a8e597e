// Package normalize canonicalizes raw document text for tokenization.
//
// Rules are an explicit, fixed set of rune predicates rather than patterns:
// Unicode-aware lowercasing, curly quote and dash canonicalization,
// mode-dependent punctuation stripping and whitespace collapsing. Every
// stripped rune acts as a word separator so glued punctuation never fuses
// neighbouring words.
package normalize

import (
	"strings"
	"unicode"
)

// Normalizer is a stateless value type; the zero value is ready to use and
// safe for concurrent callers.
type Normalizer struct{}

// New returns a Normalizer.
func New() Normalizer { return Normalizer{} }

// Normalize lowercases text, canonicalizes quotes and dashes, strips
// punctuation and collapses whitespace runs to single spaces.
//
// With preserveSentences set, the sentence terminators . ! ? as well as
// apostrophes and hyphens survive so a sentence splitter can run downstream.
// Without it, terminators and hyphens are stripped too and apostrophes are
// kept only inside a word (between two word runes), so contractions like
// "don't" stay intact while quoting apostrophes disappear.
func (Normalizer) Normalize(text string, preserveSentences bool) string {
	runes := []rune(strings.ToLower(text))
	for i, r := range runes {
		runes[i] = canonical(r)
	}

	var b strings.Builder
	b.Grow(len(runes))
	pendingSpace := false
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case keep(runes, i, preserveSentences):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		default:
			// stripped punctuation still separates words
			pendingSpace = true
		}
	}
	return b.String()
}

// canonical maps typographic variants onto their plain ASCII forms.
func canonical(r rune) rune {
	switch r {
	case '“', '”': // “ ”
		return '"'
	case '‘', '’': // ‘ ’
		return '\''
	case '—', '–': // — –
		return '-'
	}
	return r
}

// keep reports whether the rune at index i survives punctuation stripping.
func keep(runes []rune, i int, preserveSentences bool) bool {
	r := runes[i]
	if isWordRune(r) {
		return true
	}
	if preserveSentences {
		switch r {
		case '.', '!', '?', '\'', '-':
			return true
		}
		return false
	}
	// Only in-word apostrophes survive in word mode.
	if r == '\'' {
		return i > 0 && isWordRune(runes[i-1]) &&
			i+1 < len(runes) && isWordRune(runes[i+1])
	}
	return false
}

// isWordRune matches letters, digits and underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
