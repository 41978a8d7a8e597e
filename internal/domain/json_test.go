package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCountJSON(t *testing.T) {
	data, err := json.Marshal([]WordCount{{Word: "the", Count: 12}, {Word: "café", Count: 3}})
	require.NoError(t, err)
	assert.Equal(t, `[["the",12],["café",3]]`, string(data))

	var back []WordCount
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []WordCount{{Word: "the", Count: 12}, {Word: "café", Count: 3}}, back)
}

func TestWordCountUnmarshalRejectsWrongShape(t *testing.T) {
	var wc WordCount
	assert.Error(t, json.Unmarshal([]byte(`{"word":"x","count":1}`), &wc))
	assert.Error(t, json.Unmarshal([]byte(`[1,"x"]`), &wc))
}
