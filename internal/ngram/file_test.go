package ngram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountTableRoundTrip(t *testing.T) {
	tokens := []string{"the", "cat", "sat", "on", "the", "mat", "the", "cat"}
	for n := 1; n <= 3; n++ {
		table := Count(tokens, n)
		path := filepath.Join(t.TempDir(), "counts.txt")

		require.NoError(t, Save(path, table))
		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, table, loaded, "n=%d", n)
	}
}

func TestProbabilityTableRoundTrip(t *testing.T) {
	counts := Count([]string{"a", "b", "a", "c", "b", "a"}, 2)
	probs := Probabilities(counts, 0.5)
	path := filepath.Join(t.TempDir(), "probs.txt")

	require.NoError(t, SaveProbabilities(path, probs))
	loaded, err := LoadProbabilities(path)
	require.NoError(t, err)

	require.Len(t, loaded, len(probs))
	for k, want := range probs {
		assert.InDelta(t, want, loaded[k], 1e-15, "key %s", k)
	}
}

func TestSaveWritesSortedEntries(t *testing.T) {
	table := Table{KeyOf("zebra"): 1, KeyOf("ant"): 2, KeyOf("ant", "zebra"): 1}
	path := filepath.Join(t.TempDir(), "counts.txt")
	require.NoError(t, Save(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ant: 2\nant||zebra: 1\nzebra: 1\n", string(data))
}

func TestSaveNonASCIIKeysLiteral(t *testing.T) {
	table := Table{KeyOf("über", "café"): 3}
	path := filepath.Join(t.TempDir(), "counts.txt")
	require.NoError(t, Save(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "über||café: 3\n", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, table, loaded)
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("no separator here\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "badcount.txt")
	require.NoError(t, os.WriteFile(path, []byte("key: notanumber\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, table)
}
