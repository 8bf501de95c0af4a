package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingDatabaseURL indicates that no database connection string
	// was supplied via DATABASE_URL, flags, or a JSON config file.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

	// ErrInvalidPoolBounds indicates nonsensical connection pool sizing
	// (for example, max conns below 1 or min conns above max conns).
	ErrInvalidPoolBounds = errors.New("invalid connection pool bounds")

	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a port outside the valid TCP range).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
