package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// Analyzer derives StringRecords from raw values.
// Analysis is total: every string, including the empty string, produces a record.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an analyzer that stamps records with the current time.
func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// WithClock replaces the time source used for CreatedAt.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Analyze computes the properties of value.
func (a *Analyzer) Analyze(value string) domain.StringRecord {
	hash := ContentHash(value)

	return domain.StringRecord{
		ID:    hash,
		Value: value,
		Properties: domain.StringProperties{
			Length:                utf8.RuneCountInString(value),
			IsPalindrome:          IsPalindrome(value),
			UniqueCharacters:      CountUniqueCharacters(value),
			WordCount:             CountWords(value),
			SHA256Hash:            hash,
			CharacterFrequencyMap: CharacterFrequency(value),
		},
		CreatedAt: FormatTimestamp(a.now()),
	}
}

// ContentHash returns the lowercase hex SHA-256 of the raw bytes of value.
func ContentHash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// IsPalindrome reports whether value reads the same in both directions once
// lower-cased and stripped of everything but ASCII letters and digits.
// A value with nothing left after stripping is a palindrome.
func IsPalindrome(value string) bool {
	normalized := normalize(value)
	for i, j := 0, len(normalized)-1; i < j; i, j = i+1, j-1 {
		if normalized[i] != normalized[j] {
			return false
		}
	}
	return true
}

// normalize keeps only [a-z0-9] after lower-casing.
func normalize(value string) []byte {
	lower := strings.ToLower(value)
	out := make([]byte, 0, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			out = append(out, c)
		}
	}
	return out
}

// CountUniqueCharacters returns the number of distinct characters in value.
// Case variants and punctuation are distinct.
func CountUniqueCharacters(value string) int {
	seen := make(map[rune]struct{})
	for _, r := range value {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// CountWords splits value on the literal space character and counts the
// segments. Empty segments from leading, trailing or repeated spaces count,
// so "" has one word and "a  b" has three.
func CountWords(value string) int {
	return len(strings.Split(value, " "))
}

// CharacterFrequency counts each character of value in first-occurrence order.
func CharacterFrequency(value string) domain.FrequencyMap {
	freq := domain.FrequencyMap{}
	index := make(map[rune]int)
	for _, r := range value {
		if i, ok := index[r]; ok {
			freq[i].Count++
			continue
		}
		index[r] = len(freq)
		freq = append(freq, domain.CharCount{Char: r, Count: 1})
	}
	return freq
}

// FormatTimestamp renders t in UTC at second resolution.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(domain.TimestampLayout)
}
