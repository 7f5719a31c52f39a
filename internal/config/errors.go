package config

import "errors"

// Validation errors returned while building the client and server configs.
var (
	// ErrInvalidAdapterConfigs indicates a missing server address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidExportConfigs indicates a missing download directory or an
	// export file name that is empty or contains a path separator.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidServerConfigs indicates a development server address without
	// a port or a non-positive shutdown timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
