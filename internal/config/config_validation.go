// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The process must not serve traffic without a database, so an empty DSN is
// rejected here rather than discovered later on the first query.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseURL
	}

	if cfg.Storage.DB.MaxConns < 1 {
		return fmt.Errorf("%w: max conns must be at least 1, got %d", ErrInvalidPoolBounds, cfg.Storage.DB.MaxConns)
	}

	if cfg.Storage.DB.MinConns < 0 || cfg.Storage.DB.MinConns > cfg.Storage.DB.MaxConns {
		return fmt.Errorf("%w: min conns %d outside [0, %d]", ErrInvalidPoolBounds, cfg.Storage.DB.MinConns, cfg.Storage.DB.MaxConns)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	return nil
}
