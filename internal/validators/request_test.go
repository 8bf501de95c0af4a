// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlevkova/bijoux-shop/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCreateUser() models.CreateUserRequest {
	return models.CreateUserRequest{
		Username: "amelie",
		Email:    "amelie@example.com",
		Password: "topsecret",
	}
}

func validCreateProduct() models.CreateProductRequest {
	return models.CreateProductRequest{
		ProductName: "Silver Ring",
		Description: "A ring made of silver",
		Price:       19.99,
	}
}

// ---------------------------------------------------------------------------
// TestNewRequestValidator
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("CreateUserRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateUser()))
	})

	t.Run("CreateUserRequest pointer", func(t *testing.T) {
		r := validCreateUser()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("CreateProductRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateProduct()))
	})

	t.Run("CreateProductRequest pointer", func(t *testing.T) {
		r := validCreateProduct()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("CreatePaymentIntentRequest value", func(t *testing.T) {
		r := models.CreatePaymentIntentRequest{Amount: 1999, Email: "amelie@example.com"}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("CreatePaymentIntentRequest pointer", func(t *testing.T) {
		r := models.CreatePaymentIntentRequest{Amount: 1999}
		require.NoError(t, v.Validate(ctx, &r))
	})
}

// ---------------------------------------------------------------------------
// TestValidateCreateUser
// ---------------------------------------------------------------------------

func TestValidateCreateUser(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateUser()))
	})

	t.Run("missing username", func(t *testing.T) {
		r := validCreateUser()
		r.Username = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrUserFieldsRequired)
	})

	t.Run("missing email", func(t *testing.T) {
		r := validCreateUser()
		r.Email = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrUserFieldsRequired)
	})

	t.Run("missing password", func(t *testing.T) {
		r := validCreateUser()
		r.Password = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrUserFieldsRequired)
	})

	t.Run("all missing", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.CreateUserRequest{}), ErrUserFieldsRequired)
	})
}

// ---------------------------------------------------------------------------
// TestValidateCreateProduct
// ---------------------------------------------------------------------------

func TestValidateCreateProduct(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validCreateProduct()))
	})

	t.Run("optional fields may be nil", func(t *testing.T) {
		r := validCreateProduct()
		r.CategoryID = nil
		r.ImageURL = nil
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("missing name", func(t *testing.T) {
		r := validCreateProduct()
		r.ProductName = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrProductFieldsRequired)
	})

	t.Run("missing description", func(t *testing.T) {
		r := validCreateProduct()
		r.Description = ""
		require.ErrorIs(t, v.Validate(ctx, r), ErrProductFieldsRequired)
	})

	t.Run("zero price counts as missing", func(t *testing.T) {
		r := validCreateProduct()
		r.Price = 0
		require.ErrorIs(t, v.Validate(ctx, r), ErrProductFieldsRequired)
	})

	t.Run("negative price", func(t *testing.T) {
		r := validCreateProduct()
		r.Price = -0.01
		require.ErrorIs(t, v.Validate(ctx, r), ErrNegativePrice)
	})
}

// ---------------------------------------------------------------------------
// TestValidateCreatePaymentIntent
// ---------------------------------------------------------------------------

func TestValidateCreatePaymentIntent(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		r := models.CreatePaymentIntentRequest{Amount: 500, Email: "a@b.c"}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("email is optional", func(t *testing.T) {
		r := models.CreatePaymentIntentRequest{Amount: 500}
		require.NoError(t, v.Validate(ctx, r))
	})

	t.Run("zero amount", func(t *testing.T) {
		r := models.CreatePaymentIntentRequest{Amount: 0}
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		r := models.CreatePaymentIntentRequest{Amount: -100}
		require.ErrorIs(t, v.Validate(ctx, r), ErrInvalidAmount)
	})
}
