package api

import (
	"fmt"
	"net/http"
)

// StatusError indicates the server answered with a non-2xx status. Message
// is the body's "error" field, empty when the body carried none.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.Code)
}

// NotFound reports whether the server answered 404.
func (e *StatusError) NotFound() bool { return e.Code == http.StatusNotFound }

// TransportError indicates the request never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
