package config

import "errors"

// Validation errors returned when required configuration values are missing
// or invalid after all sources have been merged.
var (
	// ErrNoTokenSignKey indicates that no session token signing key was
	// provided by any configuration source.
	ErrNoTokenSignKey = errors.New("no token sign key configured")
	// ErrNoDatabaseDSN indicates that no database DSN was provided by any
	// configuration source.
	ErrNoDatabaseDSN = errors.New("no database DSN configured")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a missing server base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
