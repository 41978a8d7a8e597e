// Package stats computes descriptive statistics over a document.
package stats

import (
	"math"
	"sort"

	"textprep/internal/domain"
	"textprep/internal/normalize"
	"textprep/internal/tokenize"
)

// topWords is the length cap of the most-common-words ranking.
const topWords = 10

// Engine aggregates token counts, averages and a word frequency ranking.
type Engine struct {
	norm normalize.Normalizer
}

// NewEngine creates a statistics engine.
func NewEngine(norm normalize.Normalizer) *Engine {
	return &Engine{norm: norm}
}

// Compute normalizes text twice, once for word and character statistics and
// once preserving sentence terminators, and aggregates the results. Empty
// input yields an all-zero record.
func (e *Engine) Compute(text string) domain.Statistics {
	wordText := e.norm.Normalize(text, false)
	words := tokenize.Words(wordText)
	chars := tokenize.Chars(wordText, false)

	sentenceText := e.norm.Normalize(text, true)
	sentences := tokenize.Sentences(sentenceText)

	totalWordLength := 0
	for _, w := range words {
		totalWordLength += len([]rune(w))
	}
	totalSentenceWords := 0
	for _, n := range tokenize.SentenceLengths(sentences) {
		totalSentenceWords += n
	}

	avgWord, avgSentence := 0.0, 0.0
	if len(words) > 0 {
		avgWord = float64(totalWordLength) / float64(len(words))
	}
	if len(sentences) > 0 {
		avgSentence = float64(totalSentenceWords) / float64(len(sentences))
	}

	return domain.Statistics{
		TotalCharacters:   len(chars),
		TotalWords:        len(words),
		TotalSentences:    len(sentences),
		AvgWordLength:     round2(avgWord),
		AvgSentenceLength: round2(avgSentence),
		MostCommonWords:   mostCommon(words, topWords),
	}
}

// mostCommon ranks words by descending count; equal counts keep the order
// in which the words first appeared.
func mostCommon(words []string, limit int) []domain.WordCount {
	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for i, w := range words {
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if limit > len(order) {
		limit = len(order)
	}
	ranked := make([]domain.WordCount, 0, limit)
	for _, w := range order[:limit] {
		ranked = append(ranked, domain.WordCount{Word: w, Count: counts[w]})
	}
	return ranked
}

// round2 rounds half away from zero to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
