package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrMissingToken     = errors.New("no session token")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedFormat = errors.New("unexpected response format")
)

// RequestError is returned for any non-2xx response. Message holds the
// server's error string when the body was JSON, otherwise the raw text.
// Fields carries server-side per-field validation messages when present.
type RequestError struct {
	Status  int
	Message string
	Fields  map[string]string
	Body    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// ValidationError aggregates client-side field errors. A draft with a
// non-empty field set is never sent to the server.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldErrors extracts the per-field message map from a client validation
// error or a server request error, so both surface in the same display slots.
func FieldErrors(err error) (map[string]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 0 {
		return ve.Fields, true
	}
	var re *RequestError
	if errors.As(err, &re) && len(re.Fields) > 0 {
		return re.Fields, true
	}
	return nil, false
}
