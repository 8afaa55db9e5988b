package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// CharCount is one entry of a FrequencyMap.
type CharCount struct {
	Char  rune
	Count int
}

// FrequencyMap maps characters to occurrence counts, keeping the order in
// which each character first appeared. It encodes to a JSON object whose
// keys follow that order.
type FrequencyMap []CharCount

// Get returns the count for c.
func (m FrequencyMap) Get(c rune) (int, bool) {
	for _, e := range m {
		if e.Char == c {
			return e.Count, true
		}
	}
	return 0, false
}

// Keys returns the characters as strings in first-occurrence order.
func (m FrequencyMap) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = string(e.Char)
	}
	return keys
}

// Total returns the sum of all counts.
func (m FrequencyMap) Total() int {
	total := 0
	for _, e := range m {
		total += e.Count
	}
	return total
}

// MarshalJSON encodes the map as an ordered JSON object.
func (m FrequencyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Char))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", e.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving its key order.
// Every key must be exactly one character.
func (m *FrequencyMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading frequency map: %w", err)
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("frequency map must be a JSON object, got %v", tok)
	}

	result := FrequencyMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading frequency map key: %w", err)
		}
		key, _ := keyTok.(string)
		r, size := utf8.DecodeRuneInString(key)
		if key == "" || size != len(key) {
			return fmt.Errorf("frequency map key %q is not a single character", key)
		}

		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("reading count for %q: %w", key, err)
		}
		result = append(result, CharCount{Char: r, Count: count})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("closing frequency map: %w", err)
	}

	*m = result
	return nil
}
