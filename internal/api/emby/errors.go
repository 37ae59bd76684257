package emby

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a request outcome. The distinction matters for
// logging policy: not-found and client-rejected outcomes are silent by
// design (probing optional endpoints would otherwise spam the log), while
// server and transport faults are diagnosed.
type ErrorKind int

const (
	// ErrNotFound is an upstream 404. Treated as absence, never logged.
	ErrNotFound ErrorKind = iota
	// ErrClientRejected is any other 4xx. Treated as absence, never logged.
	ErrClientRejected
	// ErrServerFault is a 5xx. Logged, then surfaced as absence.
	ErrServerFault
	// ErrTransportFault is a network-level failure (timeout, refused
	// connection, DNS). Logged, then surfaced as absence.
	ErrTransportFault
	// ErrParse is a malformed response body. Logged, then surfaced as
	// absence.
	ErrParse
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "not_found"
	case ErrClientRejected:
		return "client_rejected"
	case ErrServerFault:
		return "server_fault"
	case ErrTransportFault:
		return "transport_fault"
	case ErrParse:
		return "parse_fault"
	default:
		return "unknown"
	}
}

// APIError is the typed outcome of a failed upstream request.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	URL        string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("emby %s (%s): %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("emby %s (%s): status %d", e.Kind, e.URL, e.StatusCode)
}

// Unwrap returns the underlying error.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an upstream 404 outcome.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrNotFound
}
