package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend settings
	// (for example, a malformed address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero renewal interval or page size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAuthConfigs indicates a name without password or vice versa.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
