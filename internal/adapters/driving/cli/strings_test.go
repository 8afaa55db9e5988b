package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

func TestAnalyzeCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "analyze")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAnalyzeCmd_PrintsProperties(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "analyze", "race car")

	require.NoError(t, err)
	assert.Contains(t, out, `"race car"`)
	assert.Contains(t, out, "length:            8")
	assert.Contains(t, out, "word_count:        2")
	assert.Contains(t, out, "is_palindrome:     true")
	assert.Contains(t, out, "'r':2")
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "analyze", "--json", "abc")
	require.NoError(t, err)

	var rec struct {
		ID         string `json:"id"`
		Value      string `json:"value"`
		Properties struct {
			Length int `json:"length"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "abc", rec.Value)
	assert.Equal(t, 3, rec.Properties.Length)
	assert.Len(t, rec.ID, 64)
}

func TestAnalyzeCmd_Duplicate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seed(t, "abc")

	_, err := execute(t, "analyze", "abc")

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestGetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seed(t, "level")

	out, err := execute(t, "get", "level")

	require.NoError(t, err)
	assert.Contains(t, out, `"level"`)
}

func TestGetCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "get", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCmd_Filters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seed(t, "a", "abba", "hello world", "racecar")

	out, err := execute(t, "list", "--is-palindrome", "true", "--min-length", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "filters: is_palindrome=true, min_length=2")
	assert.Contains(t, out, `"abba"`)
	assert.Contains(t, out, `"racecar"`)
	assert.NotContains(t, out, `"a"`)
	assert.NotContains(t, out, "hello world")
	assert.Contains(t, out, "2 string(s)")
}

func TestListCmd_NoFilters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seed(t, "x", "y")

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "filters: none")
	assert.Contains(t, out, "2 string(s)")
}

func TestListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No strings found.")
}

func TestListCmd_InvalidParameter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "list", "--min-length", "abc")

	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestListCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seed(t, "ab")

	out, err := execute(t, "list", "--json", "--word-count", "1")
	require.NoError(t, err)

	var res struct {
		Count          int               `json:"count"`
		FiltersApplied map[string]string `json:"filters_applied"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, map[string]string{"word_count": "1"}, res.FiltersApplied)
}

func TestQueryCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seed(t, "wow", "noon", "two words")

	out, err := execute(t, "query", "all single word palindromic strings")

	require.NoError(t, err)
	assert.Contains(t, out, "interpreted as:")
	assert.Contains(t, out, `"wow"`)
	assert.Contains(t, out, `"noon"`)
	assert.NotContains(t, out, "two words")
}

func TestQueryCmd_Unparsable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "query", "strings that sing")

	assert.ErrorIs(t, err, domain.ErrUnparsablePhrase)
}

func TestDeleteCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seed(t, "gone")

	out, err := execute(t, "delete", "gone")

	require.NoError(t, err)
	assert.Contains(t, out, `Deleted "gone"`)

	_, err = execute(t, "get", "gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "delete", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStringCommands_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	stringService = nil

	for _, args := range [][]string{
		{"analyze", "x"},
		{"get", "x"},
		{"list"},
		{"query", "x"},
		{"delete", "x"},
		{"serve"},
	} {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, errNoStringService, args[0])
	}
}

func TestFormatFrequencies(t *testing.T) {
	assert.Equal(t, "(none)", formatFrequencies(nil))
	assert.Equal(t, "'a':2 'b':1", formatFrequencies(domain.FrequencyMap{
		{Char: 'a', Count: 2},
		{Char: 'b', Count: 1},
	}))
}

func TestFormatFilters(t *testing.T) {
	assert.Equal(t, "none", formatFilters(map[string]string{}))
	assert.Equal(t, "max_length=5, min_length=1", formatFilters(map[string]string{
		"min_length": "1",
		"max_length": "5",
	}))
}
