package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// ImplausibleSingleWordLength is the minimum length above which a
// single-word filter is treated as contradictory.
const ImplausibleSingleWordLength = 50

// BuildFilter validates structured filter parameters and turns the present
// ones into a conjunctive predicate. No parameters yields the match-all
// predicate.
func BuildFilter(params domain.QueryParams) (domain.Predicate, error) {
	if err := validateParams(params); err != nil {
		return domain.Predicate{}, err
	}

	pred := domain.MatchAll()

	if params.IsPalindrome != "" {
		pred = pred.And(domain.Condition{
			Field: domain.FieldIsPalindrome,
			Op:    domain.OpEq,
			Value: params.IsPalindrome == "true",
		})
	}
	if params.MinLength != "" {
		n, _ := parseNumber(params.MinLength)
		pred = pred.And(domain.Condition{Field: domain.FieldLength, Op: domain.OpGte, Value: n})
	}
	if params.MaxLength != "" {
		n, _ := parseNumber(params.MaxLength)
		pred = pred.And(domain.Condition{Field: domain.FieldLength, Op: domain.OpLte, Value: n})
	}
	if params.WordCount != "" {
		n, _ := parseNumber(params.WordCount)
		pred = pred.And(domain.Condition{Field: domain.FieldWordCount, Op: domain.OpEq, Value: n})
	}
	if params.ContainsCharacter != "" {
		pred = pred.And(domain.Condition{
			Field: domain.FieldValue,
			Op:    domain.OpContains,
			Value: params.ContainsCharacter,
		})
	}

	return pred, nil
}

func validateParams(params domain.QueryParams) error {
	if params.IsPalindrome != "" && params.IsPalindrome != "true" && params.IsPalindrome != "false" {
		return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidParameter, domain.ParamIsPalindrome)
	}

	numeric := []struct {
		name  string
		value string
	}{
		{domain.ParamMinLength, params.MinLength},
		{domain.ParamMaxLength, params.MaxLength},
		{domain.ParamWordCount, params.WordCount},
	}
	for _, p := range numeric {
		if p.value == "" {
			continue
		}
		if _, err := parseNumber(p.value); err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidParameter, p.name)
		}
	}

	if params.ContainsCharacter != "" && utf8.RuneCountInString(params.ContainsCharacter) != 1 {
		return fmt.Errorf("%w: %s must be a single character", domain.ErrInvalidParameter, domain.ParamContainsCharacter)
	}

	return nil
}

// parseNumber accepts any finite decimal, surrounding whitespace allowed.
func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return n, nil
}

// phraseRule maps one recognised phrase to its conditions.
type phraseRule struct {
	phrase     string
	conditions []domain.Condition
}

// phraseTable is the closed set of natural-language queries.
// Adding a phrase means adding a row here; DetectConflicts guards new rows.
var phraseTable = []phraseRule{
	{
		phrase: "all single word palindromic strings",
		conditions: []domain.Condition{
			{Field: domain.FieldWordCount, Op: domain.OpEq, Value: 1.0},
			{Field: domain.FieldIsPalindrome, Op: domain.OpEq, Value: true},
		},
	},
	{
		phrase: "strings longer than 10 characters",
		conditions: []domain.Condition{
			{Field: domain.FieldLength, Op: domain.OpGte, Value: 11.0},
		},
	},
	{
		phrase: "palindromic strings that contain the first vowel",
		conditions: []domain.Condition{
			{Field: domain.FieldValue, Op: domain.OpContains, Value: "a"},
			{Field: domain.FieldIsPalindrome, Op: domain.OpEq, Value: true},
		},
	},
	{
		phrase: "strings containing the letter z",
		conditions: []domain.Condition{
			{Field: domain.FieldValue, Op: domain.OpContains, Value: "z"},
		},
	},
}

// RecognisedPhrases lists the phrases InterpretPhrase accepts.
func RecognisedPhrases() []string {
	phrases := make([]string, len(phraseTable))
	for i, rule := range phraseTable {
		phrases[i] = rule.phrase
	}
	return phrases
}

// InterpretPhrase translates a recognised phrase into a predicate.
// Matching is exact and case-sensitive.
func InterpretPhrase(phrase string) (domain.Predicate, *domain.InterpretedQuery, error) {
	for _, rule := range phraseTable {
		if rule.phrase != phrase {
			continue
		}

		pred := domain.MatchAll().And(rule.conditions...)
		if err := DetectConflicts(pred); err != nil {
			return domain.Predicate{}, nil, err
		}

		return pred, &domain.InterpretedQuery{
			Original:      phrase,
			ParsedFilters: pred.Echo(),
		}, nil
	}

	return domain.Predicate{}, nil, fmt.Errorf("%w: %q", domain.ErrUnparsablePhrase, phrase)
}

// DetectConflicts reports domain.ErrConflictingFilter when the predicate
// can never match: two different equality values on one field, a lower
// bound above an upper bound or an equality value outside its bounds, or
// a single word longer than ImplausibleSingleWordLength.
func DetectConflicts(pred domain.Predicate) error {
	equals := make(map[domain.Field]any)
	lower := make(map[domain.Field]float64)
	upper := make(map[domain.Field]float64)

	for _, c := range pred.Conditions {
		switch c.Op {
		case domain.OpEq:
			if prev, ok := equals[c.Field]; ok && prev != c.Value {
				return fmt.Errorf("%w: %s", domain.ErrConflictingFilter, c.Field)
			}
			equals[c.Field] = c.Value
		case domain.OpGte:
			if n, ok := c.Value.(float64); ok {
				if prev, seen := lower[c.Field]; !seen || n > prev {
					lower[c.Field] = n
				}
			}
		case domain.OpLte:
			if n, ok := c.Value.(float64); ok {
				if prev, seen := upper[c.Field]; !seen || n < prev {
					upper[c.Field] = n
				}
			}
		case domain.OpContains:
		}
	}

	for field, lo := range lower {
		if hi, ok := upper[field]; ok && lo > hi {
			return fmt.Errorf("%w: %s range is empty", domain.ErrConflictingFilter, field)
		}
	}
	for field, v := range equals {
		n, ok := v.(float64)
		if !ok {
			continue
		}
		if lo, seen := lower[field]; seen && n < lo {
			return fmt.Errorf("%w: %s below its minimum", domain.ErrConflictingFilter, field)
		}
		if hi, seen := upper[field]; seen && n > hi {
			return fmt.Errorf("%w: %s above its maximum", domain.ErrConflictingFilter, field)
		}
	}

	if equals[domain.FieldWordCount] == 1.0 && lower[domain.FieldLength] > ImplausibleSingleWordLength {
		return fmt.Errorf("%w: single word longer than %d characters",
			domain.ErrConflictingFilter, ImplausibleSingleWordLength)
	}

	return nil
}
