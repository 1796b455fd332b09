package curseforge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was constructed without an API key
	ErrMissingAPIKey = errors.New("curseforge API key is required")
	// ErrBadRequest indicates malformed request parameters or body
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound indicates the requested resource is absent or private
	ErrNotFound = errors.New("resource not found")
	// ErrInternalServerError indicates a server-side failure
	ErrInternalServerError = errors.New("internal server error")
	// ErrServiceUnavailable indicates the API is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ErrorKind discriminates the closed set of mapped API failures.
// Callers can switch on Kind, or use errors.Is against the matching
// sentinel since APIError unwraps to it.
type ErrorKind string

const (
	// ErrorKindBadRequest maps HTTP 400
	ErrorKindBadRequest ErrorKind = "bad_request"
	// ErrorKindNotFound maps HTTP 404
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindInternalServerError maps HTTP 5xx other than 503
	ErrorKindInternalServerError ErrorKind = "internal_server_error"
	// ErrorKindServiceUnavailable maps HTTP 503; transient, caller may retry
	ErrorKindServiceUnavailable ErrorKind = "service_unavailable"
)

// APIError represents a CurseForge API error for a status the client maps.
// Statuses outside the mapping table and plain network failures are never
// converted to an APIError; they propagate as the underlying error.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("curseforge API error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel error for the kind so errors.Is works.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case ErrorKindBadRequest:
		return ErrBadRequest
	case ErrorKindNotFound:
		return ErrNotFound
	case ErrorKindInternalServerError:
		return ErrInternalServerError
	case ErrorKindServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return nil
	}
}

// IsNotFound checks if the error indicates a missing or private resource
func (e *APIError) IsNotFound() bool {
	return e.Kind == ErrorKindNotFound
}

// IsTransient checks if the error is worth retrying by the caller
func (e *APIError) IsTransient() bool {
	return e.Kind == ErrorKindServiceUnavailable
}

// kindForStatus returns the mapped kind and its default message for a
// non-2xx status, or "" for statuses the table leaves unmapped.
func kindForStatus(status int) (ErrorKind, string) {
	switch {
	case status == 503:
		return ErrorKindServiceUnavailable, "the CurseForge API is temporarily unavailable"
	case status >= 500:
		return ErrorKindInternalServerError, "the CurseForge API encountered an internal error"
	case status == 404:
		return ErrorKindNotFound, "the requested resource was not found"
	case status == 400:
		return ErrorKindBadRequest, "the request was malformed"
	default:
		return "", ""
	}
}

// errorBody is the problem-details shape the API returns on some failures.
type errorBody struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// statusError builds the typed error for a non-2xx status. The default
// per-kind message is overridden when the server body carries one.
func statusError(status int, body []byte) error {
	kind, message := kindForStatus(status)
	if kind == "" {
		return fmt.Errorf("unexpected status code %d: %s", status, string(body))
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Detail != "" {
			message = eb.Detail
		} else if eb.Title != "" {
			message = eb.Title
		}
	}

	return &APIError{
		Kind:       kind,
		StatusCode: status,
		Message:    message,
		Body:       string(body),
	}
}
