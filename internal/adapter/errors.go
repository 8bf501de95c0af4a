package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSecretKey = errors.New("payment provider secret key is not configured")
	ErrPaymentDeclined  = errors.New("payment request was declined by the provider")
	ErrProviderFailure  = errors.New("payment provider request failed")
)

// ProviderError is returned when the provider answered but rejected the
// request. Message holds the provider's own description and is safe to show
// to the storefront; callers classify the error with errors.Is against
// [ErrPaymentDeclined] or [ErrProviderFailure], which Unwrap reports.
type ProviderError struct {
	Kind    error
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: http %d: %s", e.Kind.Error(), e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Kind }
