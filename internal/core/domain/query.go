package domain

// Query parameter names as they appear on the wire.
const (
	ParamIsPalindrome      = "is_palindrome"
	ParamMinLength         = "min_length"
	ParamMaxLength         = "max_length"
	ParamWordCount         = "word_count"
	ParamContainsCharacter = "contains_character"
)

// QueryParams carries the raw structured filter parameters.
// An empty field is treated as absent.
type QueryParams struct {
	IsPalindrome      string
	MinLength         string
	MaxLength         string
	WordCount         string
	ContainsCharacter string
}

// IsEmpty returns true if no parameter is present.
func (q QueryParams) IsEmpty() bool {
	return len(q.Applied()) == 0
}

// Applied returns the present parameters keyed by wire name.
func (q QueryParams) Applied() map[string]string {
	applied := make(map[string]string)
	for name, v := range map[string]string{
		ParamIsPalindrome:      q.IsPalindrome,
		ParamMinLength:         q.MinLength,
		ParamMaxLength:         q.MaxLength,
		ParamWordCount:         q.WordCount,
		ParamContainsCharacter: q.ContainsCharacter,
	} {
		if v != "" {
			applied[name] = v
		}
	}
	return applied
}

// FilterResult is the outcome of a structured filter.
type FilterResult struct {
	Data           []StringRecord    `json:"data"`
	Count          int               `json:"count"`
	FiltersApplied map[string]string `json:"filters_applied"`
}

// InterpretedQuery echoes how a natural-language phrase was understood.
type InterpretedQuery struct {
	Original      string     `json:"original"`
	ParsedFilters FilterEcho `json:"parsed_filters"`
}

// QueryResult is the outcome of a natural-language query.
type QueryResult struct {
	Data             []StringRecord   `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}
