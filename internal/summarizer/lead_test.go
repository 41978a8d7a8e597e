package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadSummarize(t *testing.T) {
	s := NewLeadSummarizer()
	tests := []struct {
		name      string
		input     string
		sentences int
		want      string
	}{
		{
			name:      "first two sentences",
			input:     "the cat sat. it was happy! the dog barked.",
			sentences: 2,
			want:      "The cat sat. it was happy.",
		},
		{
			name:      "fewer sentences than requested",
			input:     "only one sentence here.",
			sentences: 5,
			want:      "Only one sentence here.",
		},
		{
			name:      "unterminated input gains a period",
			input:     "no terminator at all",
			sentences: 3,
			want:      "No terminator at all.",
		},
		{
			name:      "normalizes before splitting",
			input:     "The CAT sat, on the mat. Then it LEFT!",
			sentences: 2,
			want:      "The cat sat on the mat. then it left.",
		},
		{
			name:      "empty input",
			input:     "",
			sentences: 3,
			want:      "",
		},
		{
			name:      "zero sentences requested",
			input:     "something here.",
			sentences: 0,
			want:      "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Summarize(tt.input, tt.sentences)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrequencySummarize(t *testing.T) {
	s := NewFrequencySummarizer()

	t.Run("keeps document order of selected sentences", func(t *testing.T) {
		input := "whales swim deep. cats nap all day. whales sing whale songs. whales migrate far."
		got, err := s.Summarize(input, 2)
		require.NoError(t, err)
		// The two whale-heavy sentences outrank the cat one and keep
		// their original order.
		assert.Contains(t, got, "whales")
		assert.NotContains(t, got, "cats")
		assert.True(t, got[0] >= 'A' && got[0] <= 'Z', "summary starts capitalized: %q", got)
		assert.Equal(t, byte('.'), got[len(got)-1])
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := s.Summarize("", 3)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("single sentence", func(t *testing.T) {
		got, err := s.Summarize("just the one sentence.", 3)
		require.NoError(t, err)
		assert.Equal(t, "Just the one sentence.", got)
	})
}
