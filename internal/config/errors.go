package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRunnerConfigs indicates invalid sweep settings
	// (for example, an empty config directory or zero retry attempts).
	ErrInvalidRunnerConfigs = errors.New("invalid runner configuration")
	// ErrInvalidDispatchConfigs indicates invalid dispatcher settings
	// (for example, a non-positive request timeout).
	ErrInvalidDispatchConfigs = errors.New("invalid dispatch configuration")
)
