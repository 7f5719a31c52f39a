package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrTransport         = errors.New("request could not complete")
	ErrMalformedResponse = errors.New("malformed server response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ServerError is a non-2xx answer from the server.
type ServerError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Reason is the "error" field of a JSON error body. Empty when the body
	// carries none.
	Reason string
	// Body is the trimmed raw response body.
	Body string

	kind error
}

func (e *ServerError) Error() string {
	detail := e.Reason
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		return fmt.Sprintf("%v (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (http %d): %s", e.kind, e.StatusCode, detail)
}

func (e *ServerError) Unwrap() error {
	return e.kind
}
