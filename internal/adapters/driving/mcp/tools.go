package mcp

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// ValueInput is the input schema for tools keyed by a string value.
type ValueInput struct {
	Value string `json:"value" jsonschema:"the exact string value"`
}

// FilterInput is the input schema for the filter_strings tool.
// Every field is optional; values use the same textual form as the HTTP query string.
type FilterInput struct {
	IsPalindrome      string `json:"is_palindrome,omitempty" jsonschema:"true or false"`
	MinLength         string `json:"min_length,omitempty" jsonschema:"minimum length in characters"`
	MaxLength         string `json:"max_length,omitempty" jsonschema:"maximum length in characters"`
	WordCount         string `json:"word_count,omitempty" jsonschema:"exact number of space-separated words"`
	ContainsCharacter string `json:"contains_character,omitempty" jsonschema:"a single character the value must contain"`
}

// QueryInput is the input schema for the query_strings tool.
type QueryInput struct {
	Query string `json:"query" jsonschema:"one of the recognised natural-language phrases"`
}

// RecordOutput is one analysed string.
type RecordOutput struct {
	ID                    string              `json:"id"`
	Value                 string              `json:"value"`
	Length                int                 `json:"length"`
	IsPalindrome          bool                `json:"is_palindrome"`
	UniqueCharacters      int                 `json:"unique_characters"`
	WordCount             int                 `json:"word_count"`
	SHA256Hash            string              `json:"sha256_hash"`
	CharacterFrequencyMap domain.FrequencyMap `json:"character_frequency_map"`
	CreatedAt             string              `json:"created_at"`
}

// ListOutput is the output schema for the filter and query tools.
type ListOutput struct {
	Data           []RecordOutput    `json:"data"`
	Count          int               `json:"count"`
	FiltersApplied map[string]string `json:"filters_applied,omitempty"`
	ParsedFilters  domain.FilterEcho `json:"parsed_filters,omitempty"`
}

// DeleteOutput is the output schema for the delete_string tool.
type DeleteOutput struct {
	Deleted string `json:"deleted"`
}

// encodedTypes holds schemas for domain types that encode to JSON objects
// through a custom marshaller.
var encodedTypes = map[reflect.Type]*jsonschema.Schema{
	reflect.TypeFor[domain.FrequencyMap](): {
		Type:                 "object",
		AdditionalProperties: &jsonschema.Schema{Type: "integer"},
	},
	reflect.TypeFor[domain.FilterEcho](): {Type: "object"},
}

// outputSchema infers the output schema of T using encodedTypes.
func outputSchema[T any]() *jsonschema.Schema {
	schema, err := jsonschema.For[T](&jsonschema.ForOptions{TypeSchemas: encodedTypes})
	if err != nil {
		panic(fmt.Sprintf("mcp: inferring output schema: %v", err))
	}
	return schema
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "analyze_string",
		Description:  "Analyse a string and store its properties",
		OutputSchema: outputSchema[RecordOutput](),
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "get_string",
		Description:  "Look up the stored analysis of an exact string",
		OutputSchema: outputSchema[RecordOutput](),
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "filter_strings",
		Description:  "List stored strings matching all of the given filters",
		OutputSchema: outputSchema[ListOutput](),
	}, s.handleFilter)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "query_strings",
		Description:  "List stored strings matching a recognised natural-language phrase",
		OutputSchema: outputSchema[ListOutput](),
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_string",
		Description: "Delete the stored analysis of an exact string",
	}, s.handleDelete)
}

// handleAnalyze handles the analyze_string tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValueInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	record, err := s.ports.Strings.Create(ctx, input.Value)
	if err != nil {
		return nil, RecordOutput{}, err
	}
	return nil, toRecordOutput(record), nil
}

// handleGet handles the get_string tool invocation.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValueInput,
) (*mcp.CallToolResult, RecordOutput, error) {
	record, err := s.ports.Strings.Get(ctx, input.Value)
	if err != nil {
		return nil, RecordOutput{}, err
	}
	return nil, toRecordOutput(record), nil
}

// handleFilter handles the filter_strings tool invocation.
func (s *Server) handleFilter(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterInput,
) (*mcp.CallToolResult, ListOutput, error) {
	result, err := s.ports.Strings.List(ctx, domain.QueryParams{
		IsPalindrome:      input.IsPalindrome,
		MinLength:         input.MinLength,
		MaxLength:         input.MaxLength,
		WordCount:         input.WordCount,
		ContainsCharacter: input.ContainsCharacter,
	})
	if err != nil {
		return nil, ListOutput{}, err
	}

	return nil, ListOutput{
		Data:           toRecordOutputs(result.Data),
		Count:          result.Count,
		FiltersApplied: result.FiltersApplied,
	}, nil
}

// handleQuery handles the query_strings tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, ListOutput, error) {
	result, err := s.ports.Strings.Query(ctx, input.Query)
	if err != nil {
		return nil, ListOutput{}, err
	}

	return nil, ListOutput{
		Data:          toRecordOutputs(result.Data),
		Count:         result.Count,
		ParsedFilters: result.InterpretedQuery.ParsedFilters,
	}, nil
}

// handleDelete handles the delete_string tool invocation.
func (s *Server) handleDelete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValueInput,
) (*mcp.CallToolResult, DeleteOutput, error) {
	if err := s.ports.Strings.Delete(ctx, input.Value); err != nil {
		return nil, DeleteOutput{}, err
	}
	return nil, DeleteOutput{Deleted: input.Value}, nil
}

func toRecordOutput(r *domain.StringRecord) RecordOutput {
	return RecordOutput{
		ID:                    r.ID,
		Value:                 r.Value,
		Length:                r.Properties.Length,
		IsPalindrome:          r.Properties.IsPalindrome,
		UniqueCharacters:      r.Properties.UniqueCharacters,
		WordCount:             r.Properties.WordCount,
		SHA256Hash:            r.Properties.SHA256Hash,
		CharacterFrequencyMap: slices.Clone(r.Properties.CharacterFrequencyMap),
		CreatedAt:             r.CreatedAt,
	}
}

func toRecordOutputs(records []domain.StringRecord) []RecordOutput {
	out := make([]RecordOutput, len(records))
	for i := range records {
		out[i] = toRecordOutput(&records[i])
	}
	return out
}
