// Package service composes the text preprocessing pipeline.
package service

import (
	"context"

	"textprep/internal/domain"
	"textprep/internal/ngram"
	"textprep/internal/normalize"
	"textprep/internal/stats"
	"textprep/internal/tokenize"
)

// PreprocessService wires fetcher, cleaner, normalizer, statistics engine
// and summarizer into the document pipeline. Every call operates on its own
// local data; the service is safe for concurrent use.
type PreprocessService struct {
	fetcher          domain.Fetcher
	cleaner          domain.Cleaner
	summarizer       domain.Summarizer
	norm             normalize.Normalizer
	stats            *stats.Engine
	summarySentences int
}

// NewPreprocessService assembles the pipeline. summarySentences is the
// number of sentences kept in the extractive summary.
func NewPreprocessService(fetcher domain.Fetcher, cleaner domain.Cleaner, summarizer domain.Summarizer, summarySentences int) *PreprocessService {
	norm := normalize.New()
	return &PreprocessService{
		fetcher:          fetcher,
		cleaner:          cleaner,
		summarizer:       summarizer,
		norm:             norm,
		stats:            stats.NewEngine(norm),
		summarySentences: summarySentences,
	}
}

// ProcessURL fetches the document, excises archival boilerplate, normalizes
// the text and returns it with statistics and a summary. A document that
// normalizes down to nothing returns domain.ErrEmptyDocument so the caller
// can report an actionable message instead of computing statistics on
// empty input.
func (s *PreprocessService) ProcessURL(ctx context.Context, url string) (*domain.Result, error) {
	raw, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	cleaned := s.cleaner.Clean(raw)
	normalized := s.norm.Normalize(cleaned, true)
	if normalized == "" {
		return nil, domain.ErrEmptyDocument
	}

	summary, err := s.summarizer.Summarize(normalized, s.summarySentences)
	if err != nil {
		return nil, err
	}
	return &domain.Result{
		CleanedText: normalized,
		Statistics:  s.stats.Compute(normalized),
		Summary:     summary,
	}, nil
}

// Analyze normalizes arbitrary raw text and computes its statistics. No
// archive cleaning is applied; empty input yields an all-zero record.
func (s *PreprocessService) Analyze(text string) (domain.Statistics, error) {
	normalized := s.norm.Normalize(text, true)
	return s.stats.Compute(normalized), nil
}

// Ngrams normalizes text, tokenizes it into words and returns the n-gram
// count table together with its (optionally smoothed) probability table.
func (s *PreprocessService) Ngrams(text string, n int, smoothing float64) (ngram.Table, ngram.ProbTable, error) {
	words := tokenize.Words(s.norm.Normalize(text, false))
	counts := ngram.Count(words, n)
	return counts, ngram.Probabilities(counts, smoothing), nil
}
