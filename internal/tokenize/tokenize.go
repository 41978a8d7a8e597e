// Package tokenize splits normalized text into sentences, words or
// characters using fixed rule-based boundaries. Malformed or empty input
// degrades to an empty sequence, never an error.
package tokenize

import (
	"strings"
	"unicode"
)

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Sentences splits text on runs of sentence terminators, trimming each
// fragment and discarding empty ones.
func Sentences(text string) []string {
	fragments := strings.FieldsFunc(text, isTerminator)
	sentences := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			sentences = append(sentences, f)
		}
	}
	return sentences
}

// Words removes sentence terminators and splits on whitespace runs.
func Words(text string) []string {
	stripped := strings.Map(func(r rune) rune {
		if isTerminator(r) {
			return -1
		}
		return r
	}, text)
	return strings.Fields(stripped)
}

// Chars splits text into single-character tokens. With includeSpace set,
// whitespace runs collapse to one space first and spaces are emitted as
// tokens of their own; otherwise spaces are skipped.
func Chars(text string, includeSpace bool) []string {
	chars := make([]string, 0, len(text))
	if includeSpace {
		text = collapseWhitespace(text)
		for _, r := range text {
			chars = append(chars, string(r))
		}
		return chars
	}
	for _, r := range text {
		if r != ' ' {
			chars = append(chars, string(r))
		}
	}
	return chars
}

// SentenceLengths returns the word count of each sentence.
func SentenceLengths(sentences []string) []int {
	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = len(Words(s))
	}
	return lengths
}

// collapseWhitespace reduces every whitespace run to a single space without
// trimming the ends.
func collapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	inRun := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte(' ')
			inRun = false
		}
		b.WriteRune(r)
	}
	if inRun {
		b.WriteByte(' ')
	}
	return b.String()
}
