package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"textprep/internal/normalize"
	"textprep/internal/tokenize"
)

// LeadSummarizer produces a trivial extractive summary: the opening
// sentences of the normalized document.
type LeadSummarizer struct {
	norm normalize.Normalizer
}

// NewLeadSummarizer creates a first-sentences summarizer.
func NewLeadSummarizer() *LeadSummarizer {
	return &LeadSummarizer{norm: normalize.New()}
}

// Summarize normalizes the text, keeps the first maxSentences sentences,
// uppercases the first letter of the first one and ensures the result ends
// with terminal punctuation. A document with no sentences (or a
// non-positive maxSentences) yields an empty string.
//
// Only the very first letter is capitalized; the rest stays lowercased by
// the upstream normalization.
func (s *LeadSummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		return "", nil
	}
	normalized := s.norm.Normalize(text, true)
	sentences := tokenize.Sentences(normalized)
	if len(sentences) == 0 {
		return "", nil
	}
	if maxSentences < len(sentences) {
		sentences = sentences[:maxSentences]
	}

	first := []rune(sentences[0])
	first[0] = unicode.ToUpper(first[0])
	sentences[0] = string(first)

	summary := strings.Join(sentences, ". ")
	if last, _ := utf8.DecodeLastRuneInString(summary); !strings.ContainsRune(".!?", last) {
		summary += "."
	}
	return summary, nil
}
