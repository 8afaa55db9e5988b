package domain

import "time"

// TimestampLayout is the textual form of StringRecord.CreatedAt.
const TimestampLayout = "2006-01-02T15:04:05Z"

// StringRecord is an analysed string as it is persisted.
// Records are inserted or deleted wholesale, never patched.
type StringRecord struct {
	// ID is the hex SHA-256 of Value and the primary key.
	ID string `json:"id"`

	// Value is the original string, byte for byte.
	Value string `json:"value"`

	// Properties are derived from Value at analysis time.
	Properties StringProperties `json:"properties"`

	// CreatedAt is the UTC analysis time in TimestampLayout.
	CreatedAt string `json:"created_at"`
}

// StringProperties holds the derived properties of a string.
type StringProperties struct {
	// Length is the number of characters (runes) in the value.
	Length int `json:"length"`

	// IsPalindrome reports whether the normalised value reads the same reversed.
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueCharacters is the number of distinct characters in the raw value.
	UniqueCharacters int `json:"unique_characters"`

	// WordCount is the number of segments after splitting on a single space.
	WordCount int `json:"word_count"`

	// SHA256Hash duplicates StringRecord.ID.
	SHA256Hash string `json:"sha256_hash"`

	// CharacterFrequencyMap counts each character in first-occurrence order.
	CharacterFrequencyMap FrequencyMap `json:"character_frequency_map"`
}

// CreatedTime parses CreatedAt. It returns the zero time if the field is malformed.
func (r *StringRecord) CreatedTime() time.Time {
	t, err := time.Parse(TimestampLayout, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
