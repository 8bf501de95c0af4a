package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUserFieldsRequired carries the exact client-facing message for
	// an incomplete user payload.
	ErrUserFieldsRequired = errors.New("Username, email, and password are required")

	// ErrProductFieldsRequired carries the exact client-facing message for
	// an incomplete product payload.
	ErrProductFieldsRequired = errors.New("Product name, description, and price are required")

	// ErrNegativePrice rejects products priced below zero.
	ErrNegativePrice = errors.New("Price must not be negative")

	// ErrInvalidAmount rejects non-positive payment amounts.
	ErrInvalidAmount = errors.New("Amount must be a positive integer")
)
