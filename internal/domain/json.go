package domain

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the entry as a two-element ["word", count] array.
func (w WordCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{w.Word, w.Count})
}

// UnmarshalJSON accepts the ["word", count] array form.
func (w *WordCount) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &w.Word); err != nil {
		return fmt.Errorf("word count pair: %w", err)
	}
	if err := json.Unmarshal(pair[1], &w.Count); err != nil {
		return fmt.Errorf("word count pair: %w", err)
	}
	return nil
}
