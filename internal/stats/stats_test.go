package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textprep/internal/domain"
	"textprep/internal/normalize"
)

func newEngine() *Engine { return NewEngine(normalize.New()) }

func TestComputeScenario(t *testing.T) {
	st := newEngine().Compute("cats run fast. dogs run fast.")

	assert.Equal(t, 22, st.TotalCharacters)
	assert.Equal(t, 6, st.TotalWords)
	assert.Equal(t, 2, st.TotalSentences)
	assert.InDelta(t, 3.67, st.AvgWordLength, 1e-9)
	assert.InDelta(t, 3.0, st.AvgSentenceLength, 1e-9)
	assert.Equal(t, domain.WordCount{Word: "run", Count: 2}, st.MostCommonWords[0])
	assert.Equal(t, domain.WordCount{Word: "fast", Count: 2}, st.MostCommonWords[1])
}

func TestComputeEmpty(t *testing.T) {
	st := newEngine().Compute("")

	assert.Zero(t, st.TotalCharacters)
	assert.Zero(t, st.TotalWords)
	assert.Zero(t, st.TotalSentences)
	assert.Zero(t, st.AvgWordLength)
	assert.Zero(t, st.AvgSentenceLength)
	assert.Empty(t, st.MostCommonWords)
}

func TestComputeNormalizesPunctuation(t *testing.T) {
	st := newEngine().Compute("Hello, WORLD! Hello again.")

	// "hello world hello again" for word statistics
	assert.Equal(t, 4, st.TotalWords)
	assert.Equal(t, 2, st.TotalSentences)
	assert.Equal(t, domain.WordCount{Word: "hello", Count: 2}, st.MostCommonWords[0])
}

func TestMostCommonTieBreak(t *testing.T) {
	// Equal counts keep first-encountered order: b before c.
	ranked := mostCommon([]string{"a", "b", "a", "c", "b", "a"}, 10)

	assert.Equal(t, []domain.WordCount{
		{Word: "a", Count: 3},
		{Word: "b", Count: 2},
		{Word: "c", Count: 1},
	}, ranked)
}

func TestMostCommonLimit(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	ranked := mostCommon(words, 10)
	assert.Len(t, ranked, 10)
	// All counts are 1, so the ranking is first-seen order truncated.
	assert.Equal(t, "a", ranked[0].Word)
	assert.Equal(t, "j", ranked[9].Word)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.67, round2(11.0/3.0))
	assert.Equal(t, 2.5, round2(2.5))
	assert.Equal(t, 0.13, round2(0.125)) // half rounds away from zero
}
