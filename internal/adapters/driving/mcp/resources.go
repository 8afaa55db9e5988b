package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for strindex resources.
	uriScheme = "strindex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "strings",
		Name:        "strings",
		Description: "All stored strings with their analysed properties",
		MIMEType:    "application/json",
	}, s.handleStringsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "strings/{value}",
		Name:        "string",
		Description: "Analysed properties of one stored string (value is URL-escaped)",
		MIMEType:    "application/json",
	}, s.handleStringResource)
}

// handleStringsResource returns every stored record.
func (s *Server) handleStringsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	result, err := s.ports.Strings.List(ctx, domain.QueryParams{})
	if err != nil {
		return nil, fmt.Errorf("listing strings: %w", err)
	}

	return jsonResource(req.Params.URI, toRecordOutputs(result.Data))
}

// handleStringResource returns a single record.
func (s *Server) handleStringResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	value, ok := extractValue(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Strings.Get(ctx, value)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting string: %w", err)
	}

	return jsonResource(req.Params.URI, toRecordOutput(record))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractValue extracts and unescapes the value from strindex://strings/{value}.
func extractValue(uri string) (string, bool) {
	const prefix = uriScheme + "strings/"

	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}

	value, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}
