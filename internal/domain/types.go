package domain

import (
	"context"

	"textprep/internal/ngram"
)

// WordCount is one entry of a word frequency ranking.
// It serializes as a ["word", count] pair to match the API's wire shape.
type WordCount struct {
	Word  string
	Count int
}

// Statistics is the aggregate descriptive record for one document.
type Statistics struct {
	TotalCharacters   int         `json:"total_characters"`
	TotalWords        int         `json:"total_words"`
	TotalSentences    int         `json:"total_sentences"`
	AvgWordLength     float64     `json:"avg_word_length"`
	AvgSentenceLength float64     `json:"avg_sentence_length"`
	MostCommonWords   []WordCount `json:"most_common_words"`
}

// Result is the outcome of the full URL pipeline: boilerplate removed,
// text normalized, statistics computed and a short extractive summary.
type Result struct {
	CleanedText string     `json:"cleaned_text"`
	Statistics  Statistics `json:"statistics"`
	Summary     string     `json:"summary"`
}

// Fetcher retrieves the raw text of a remote document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Cleaner excises archival boilerplate from a raw document.
type Cleaner interface {
	Clean(raw string) string
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Preprocessor defines the operations exposed by the application core.
type Preprocessor interface {
	ProcessURL(ctx context.Context, url string) (*Result, error)
	Analyze(text string) (Statistics, error)
	Ngrams(text string, n int, smoothing float64) (ngram.Table, ngram.ProbTable, error)
}
