// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

// Package validators provides request payload validation applied before any
// repository call.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//
// Validators are pure functions of the inbound payload: they check presence
// of required fields and basic value constraints, and short-circuit with a
// client error before the database is touched. Validation precedes and is
// independent of persistence.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
