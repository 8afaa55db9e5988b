package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/custodia-labs/strindex/internal/core/domain"
)

// maxBodyBytes caps the size of a create request.
const maxBodyBytes = 1 << 20

// createRequest is the body of POST /strings.
type createRequest struct {
	Value json.RawMessage `json:"value"`
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// handleCreate analyses and stores the posted value.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	value, err := decodeValue(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := s.ports.Strings.Create(r.Context(), value)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// decodeValue extracts the "value" field. A missing, null or empty value
// is invalid input; any other non-string is the wrong type.
func decodeValue(body io.Reader) (string, error) {
	var req createRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	raw := bytes.TrimSpace(req.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("%w: missing value", domain.ErrInvalidInput)
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", domain.ErrInvalidValueType
	}
	if value == "" {
		return "", fmt.Errorf("%w: empty value", domain.ErrInvalidInput)
	}
	return value, nil
}

// handleList filters records by structured query parameters.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := domain.QueryParams{
		IsPalindrome:      q.Get(domain.ParamIsPalindrome),
		MinLength:         q.Get(domain.ParamMinLength),
		MaxLength:         q.Get(domain.ParamMaxLength),
		WordCount:         q.Get(domain.ParamWordCount),
		ContainsCharacter: q.Get(domain.ParamContainsCharacter),
	}

	result, err := s.ports.Strings.List(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleQuery filters records by a natural-language phrase.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	result, err := s.ports.Strings.Query(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleGet returns the record for the path value.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := s.ports.Strings.Get(r.Context(), r.PathValue("value"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// handleDelete removes the record for the path value.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.ports.Strings.Delete(r.Context(), r.PathValue("value")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports liveness and the number of stored records.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.ports.Strings.Count(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Count: count})
}
