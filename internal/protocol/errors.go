package protocol

import "errors"

var (
	// ErrEmptyMessage is returned by [Decode] for an empty string.
	ErrEmptyMessage = errors.New("empty message")

	// ErrMissingDelimiter is returned by [Decode] when the second character
	// is not the ':' delimiter.
	ErrMissingDelimiter = errors.New("missing command delimiter")

	// ErrMalformedPayload is returned by [Decode] when a known command carries
	// a payload that does not parse.
	ErrMalformedPayload = errors.New("malformed command payload")
)
