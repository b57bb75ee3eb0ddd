// ABOUTME: Error taxonomy for backend responses
// ABOUTME: Normalizes the three error body shapes into one tagged APIError
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrUnauthenticated is returned when a request got a 401 and the one-shot
// token refresh also failed. Callers should send the user back to login.
var ErrUnauthenticated = errors.New("session expired: run `calldeck auth login`")

// APIError is a non-2xx backend response. The backend reports errors in
// three shapes: a flat {"detail": "..."} object, a map of field name to a
// list of error strings, or raw text. All three normalize into this one
// struct.
type APIError struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *APIError) Error() string {
	switch {
	case len(e.Fields) > 0:
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], ", ")))
		}
		return strings.Join(parts, "; ")
	case e.Detail != "":
		return e.Detail
	default:
		return fmt.Sprintf("HTTP %d", e.Status)
	}
}

// Unauthorized reports whether the response was a 401.
func (e *APIError) Unauthorized() bool { return e.Status == http.StatusUnauthorized }

// Forbidden reports whether the response was a 403.
func (e *APIError) Forbidden() bool { return e.Status == http.StatusForbidden }

// TransportError is a network-level failure, distinguished from a server
// error so the UI can suggest checking the backend instead of blaming the
// request.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: check if the server is running (%v)", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError is a required-field failure caught before any network
// call is issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// newAPIError builds an APIError from a non-2xx response body, trying the
// structured shapes first and falling back to raw text.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if len(body) == 0 {
		return apiErr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	if detail, ok := raw["detail"]; ok {
		var s string
		if err := json.Unmarshal(detail, &s); err == nil {
			apiErr.Detail = s
			return apiErr
		}
	}

	fields := make(map[string][]string)
	for name, msg := range raw {
		var list []string
		if err := json.Unmarshal(msg, &list); err == nil && len(list) > 0 {
			fields[name] = list
			continue
		}
		var single string
		if err := json.Unmarshal(msg, &single); err == nil && single != "" {
			fields[name] = []string{single}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
		return apiErr
	}

	apiErr.Detail = strings.TrimSpace(string(body))
	return apiErr
}
