package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidProfileConfigs indicates a missing profile directory,
	// nickname or color pair.
	ErrInvalidProfileConfigs = errors.New("invalid profile configuration")
	// ErrInvalidStorageConfigs indicates an empty registry DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidTransportConfigs indicates a missing hub address, session id
	// or service name.
	ErrInvalidTransportConfigs = errors.New("invalid transport configuration")
	// ErrInvalidActivityConfigs indicates an unknown mode or a negative
	// interval.
	ErrInvalidActivityConfigs = errors.New("invalid activity configuration")
	// ErrInvalidServerConfigs indicates a missing hub listen address or
	// request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
