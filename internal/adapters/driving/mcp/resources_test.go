package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
		ok       bool
	}{
		{"plain value", "strindex://strings/racecar", "racecar", true},
		{"escaped value", "strindex://strings/hello%20world", "hello world", true},
		{"escaped slash", "strindex://strings/a%2Fb", "a/b", true},
		{"invalid prefix", "file://strings/racecar", "", false},
		{"missing value", "strindex://strings/", "", false},
		{"bad escape", "strindex://strings/%zz", "", false},
		{"empty URI", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := extractValue(tt.uri)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestServer_handleStringsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists all strings", func(t *testing.T) {
		svc := &mockStringService{filter: &domain.FilterResult{
			Data:  []domain.StringRecord{*testRecord("a"), *testRecord("aa")},
			Count: 2,
		}}
		server := newTestServer(t, svc)

		result, err := server.handleStringsResource(ctx, makeReadResourceRequest("strindex://strings"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Equal(t, domain.QueryParams{}, svc.lastParams)

		var records []RecordOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &records))
		assert.Len(t, records, 2)
		assert.Equal(t, "aa", records[1].Value)
	})

	t.Run("service error", func(t *testing.T) {
		server := newTestServer(t, &mockStringService{err: errors.New("db down")})

		_, err := server.handleStringsResource(ctx, makeReadResourceRequest("strindex://strings"))

		assert.Error(t, err)
	})
}

func TestServer_handleStringResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns record", func(t *testing.T) {
		svc := &mockStringService{record: testRecord("a b")}
		server := newTestServer(t, svc)

		result, err := server.handleStringResource(ctx, makeReadResourceRequest("strindex://strings/a%20b"))

		require.NoError(t, err)
		assert.Equal(t, "a b", svc.lastValue)
		assert.Contains(t, result.Contents[0].Text, `"value": "a b"`)
	})

	t.Run("not found", func(t *testing.T) {
		server := newTestServer(t, &mockStringService{err: domain.ErrNotFound})

		_, err := server.handleStringResource(ctx, makeReadResourceRequest("strindex://strings/zz"))

		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		server := newTestServer(t, &mockStringService{})

		_, err := server.handleStringResource(ctx, makeReadResourceRequest("strindex://other"))

		assert.Error(t, err)
	})
}
