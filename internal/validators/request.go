package validators

import (
	"context"

	"github.com/mlevkova/bijoux-shop/models"
)

// RequestValidator implements the Validator interface for every inbound API
// payload: CreateUserRequest, CreateProductRequest, and
// CreatePaymentIntentRequest.
//
// Validation is purely structural — required fields present and non-empty,
// numeric fields in range — so it can run before any repository call.
// Uniqueness of usernames and emails is a database constraint concern, not a
// validator concern.
type RequestValidator struct{}

// NewRequestValidator constructs a [RequestValidator] ready for use.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// Validate dispatches on the payload type. Unknown types are rejected with
// [ErrUnsupportedType] so a new endpoint cannot silently skip validation.
func (v *RequestValidator) Validate(_ context.Context, value any, _ ...string) error {
	switch payload := value.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUser(payload)
	case *models.CreateUserRequest:
		return v.validateCreateUser(*payload)
	case models.CreateProductRequest:
		return v.validateCreateProduct(payload)
	case *models.CreateProductRequest:
		return v.validateCreateProduct(*payload)
	case models.CreatePaymentIntentRequest:
		return v.validateCreatePaymentIntent(payload)
	case *models.CreatePaymentIntentRequest:
		return v.validateCreatePaymentIntent(*payload)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCreateUser(req models.CreateUserRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return ErrUserFieldsRequired
	}

	return nil
}

func (v *RequestValidator) validateCreateProduct(req models.CreateProductRequest) error {
	// a zero price is treated as missing, matching the original service's
	// falsy-value check
	if req.ProductName == "" || req.Description == "" || req.Price == 0 {
		return ErrProductFieldsRequired
	}

	if req.Price < 0 {
		return ErrNegativePrice
	}

	return nil
}

func (v *RequestValidator) validateCreatePaymentIntent(req models.CreatePaymentIntentRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}

	return nil
}
