package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the backend. Message carries the
// backend's human-readable explanation verbatim; Fields carries
// per-input validation messages when the backend supplies them.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

// FieldErrors returns the validation messages joined per field, in no
// particular order. Empty when the failure was not a validation error.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Fields))
	for field, msgs := range e.Fields {
		out[field] = strings.Join(msgs, "; ")
	}
	return out
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsValidation reports whether err is a 422 validation failure.
func IsValidation(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity
}

// errorBody matches the backend's error envelope. Both "message" and
// "error" are seen in the wild depending on the endpoint.
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

// decodeError builds an *APIError from a non-2xx response.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		// Not JSON; keep the status-only error
		return apiErr
	}

	apiErr.Message = body.Message
	if apiErr.Message == "" {
		apiErr.Message = body.Error
	}
	apiErr.Fields = body.Errors
	return apiErr
}
