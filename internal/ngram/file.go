package ngram

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Tables persist as UTF-8 text, one "key: value" line per entry with keys
// in lexicographic order so output is deterministic. Multi-token keys keep
// their delimiter form; non-ASCII tokens are written literally.

// Save writes a count table to path.
func Save(path string, table Table) error {
	var b strings.Builder
	for _, k := range sortedKeys(table) {
		fmt.Fprintf(&b, "%s: %d\n", k, table[k])
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("saving ngram table: %w", err)
	}
	return nil
}

// Load reads a count table from path.
func Load(path string) (Table, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	table := Table{}
	for _, line := range lines {
		key, value, err := splitEntry(line)
		if err != nil {
			return nil, err
		}
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("parsing ngram count %q: %w", line, err)
		}
		table[key] = count
	}
	return table, nil
}

// SaveProbabilities writes a probability table to path. Values use the
// shortest decimal form that round-trips the float exactly.
func SaveProbabilities(path string, table ProbTable) error {
	var b strings.Builder
	keys := make([]Key, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, strconv.FormatFloat(table[k], 'g', -1, 64))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("saving probability table: %w", err)
	}
	return nil
}

// LoadProbabilities reads a probability table from path.
func LoadProbabilities(path string) (ProbTable, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	table := ProbTable{}
	for _, line := range lines {
		key, value, err := splitEntry(line)
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing probability %q: %w", line, err)
		}
		table[key] = p
	}
	return table, nil
}

func sortedKeys(table Table) []Key {
	keys := make([]Key, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading ngram table: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// splitEntry splits one "key: value" line. The separator search runs from
// the right so tokens containing ": " cannot shift the boundary.
func splitEntry(line string) (Key, string, error) {
	idx := strings.LastIndex(line, ": ")
	if idx < 0 {
		return "", "", fmt.Errorf("malformed ngram table line %q", line)
	}
	return Key(line[:idx]), line[idx+2:], nil
}
