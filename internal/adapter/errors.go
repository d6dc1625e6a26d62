package adapter

import "errors"

// Errors for hub responses that carry no transport error code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrStreamClosed is returned when sending after the stream ended.
	ErrStreamClosed = errors.New("hub stream closed")
)
