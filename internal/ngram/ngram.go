// Package ngram builds n-gram frequency tables over token sequences and
// converts counts to probabilities with optional additive smoothing.
package ngram

import "strings"

// keyDelimiter joins the tokens of a multi-token key. It is not expected to
// occur inside a token.
const keyDelimiter = "||"

// Key identifies an n-gram. A unigram key is the token itself; longer
// n-grams join their tokens with the delimiter at construction, so keys
// stay comparable and usable as map keys while the single/multi
// serialization rule lives in one place.
type Key string

// KeyOf builds the key for an ordered token tuple.
func KeyOf(tokens ...string) Key {
	return Key(strings.Join(tokens, keyDelimiter))
}

// Tokens splits the key back into its ordered token tuple.
func (k Key) Tokens() []string {
	return strings.Split(string(k), keyDelimiter)
}

// Multi reports whether the key spans more than one token.
func (k Key) Multi() bool {
	return strings.Contains(string(k), keyDelimiter)
}

// Table maps n-gram keys to occurrence counts.
type Table map[Key]int

// ProbTable maps n-gram keys to probabilities in [0,1].
type ProbTable map[Key]float64

// Count tallies every contiguous window of n tokens (stride 1). The counts
// over all windows sum to len(tokens)-n+1; for n=1 that is the token count.
// Fewer than n tokens, or n < 1, yields an empty table.
func Count(tokens []string, n int) Table {
	table := Table{}
	if n < 1 || len(tokens) < n {
		return table
	}
	for i := 0; i+n <= len(tokens); i++ {
		table[KeyOf(tokens[i:i+n]...)]++
	}
	return table
}

// Probabilities converts counts into probabilities using add-s smoothing
// over the observed keys: each count gains the smoothing constant and the
// denominator is the count total plus smoothing times the number of
// distinct keys. No mass is reserved for unseen keys. An empty table yields
// an empty table rather than a zero division.
func Probabilities(counts Table, smoothing float64) ProbTable {
	probs := ProbTable{}
	if len(counts) == 0 {
		return probs
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	denominator := float64(total) + smoothing*float64(len(counts))
	if denominator == 0 {
		return probs
	}
	for k, c := range counts {
		probs[k] = (float64(c) + smoothing) / denominator
	}
	return probs
}
