package summarizer

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"textprep/internal/normalize"
	"textprep/internal/tokenize"
)

// FrequencySummarizer ranks sentences by word frequency (stopwords
// filtered) and keeps the highest scoring ones in document order. It is an
// alternative to the default lead summarizer for documents whose opening
// sentences are uninformative.
type FrequencySummarizer struct {
	norm      normalize.Normalizer
	stopwords map[string]struct{}
}

// NewFrequencySummarizer creates a frequency-based sentence ranker.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{
		norm:      normalize.New(),
		stopwords: defaultStopwords(),
	}
}

// Summarize scores each sentence by the normalized frequency of its
// non-stopword tokens, divided by the square root of the sentence length to
// avoid favouring long sentences, then joins the top maxSentences in their
// original order. The first letter is capitalized and terminal punctuation
// appended, matching the lead summarizer's output shape.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		return "", nil
	}
	normalized := s.norm.Normalize(text, true)
	sentences := tokenize.Sentences(normalized)
	if len(sentences) == 0 {
		return "", nil
	}

	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range tokenize.Words(sent) {
			if _, ok := s.stopwords[tok]; ok {
				continue
			}
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}

	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(sentences))
	for i, sent := range sentences {
		words := tokenize.Words(sent)
		score := 0.0
		for _, tok := range words {
			score += freq[tok]
		}
		if len(words) > 0 {
			score /= math.Sqrt(float64(len(words)))
		}
		scores[i] = pair{i, score}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if maxSentences > len(scores) {
		maxSentences = len(scores)
	}
	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	picked := make([]string, 0, len(selected))
	for _, idx := range selected {
		picked = append(picked, sentences[idx])
	}
	first := []rune(picked[0])
	first[0] = unicode.ToUpper(first[0])
	picked[0] = string(first)

	summary := strings.Join(picked, ". ")
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary, nil
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
