package browser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// Kind identifies what a query line asks for.
type Kind int

const (
	// KindList lists records matching structured filters.
	KindList Kind = iota
	// KindPhrase interprets a natural-language phrase.
	KindPhrase
	// KindAdd analyses and stores a new string.
	KindAdd
)

var knownParams = map[string]bool{
	domain.ParamIsPalindrome:      true,
	domain.ParamMinLength:         true,
	domain.ParamMaxLength:         true,
	domain.ParamWordCount:         true,
	domain.ParamContainsCharacter: true,
}

// Request is a parsed query line.
type Request struct {
	Kind   Kind
	Params domain.QueryParams
	Phrase string
	Value  string
}

// ParseInput interprets the query line. An empty line lists everything,
// a leading "+" adds the rest of the line verbatim, a line containing "="
// is read as URL query parameters, and anything else is a phrase.
func ParseInput(line string) (Request, error) {
	if strings.HasPrefix(line, "+") {
		return Request{Kind: KindAdd, Value: line[1:]}, nil
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Request{Kind: KindList}, nil
	}
	if !strings.Contains(trimmed, "=") {
		return Request{Kind: KindPhrase, Phrase: trimmed}, nil
	}

	values, err := url.ParseQuery(strings.TrimPrefix(trimmed, "?"))
	if err != nil {
		return Request{}, fmt.Errorf("parsing filters: %w", err)
	}
	params := domain.QueryParams{
		IsPalindrome:      values.Get(domain.ParamIsPalindrome),
		MinLength:         values.Get(domain.ParamMinLength),
		MaxLength:         values.Get(domain.ParamMaxLength),
		WordCount:         values.Get(domain.ParamWordCount),
		ContainsCharacter: values.Get(domain.ParamContainsCharacter),
	}
	for name := range values {
		if !knownParams[name] {
			return Request{}, fmt.Errorf("unknown filter %q", name)
		}
	}
	return Request{Kind: KindList, Params: params}, nil
}
