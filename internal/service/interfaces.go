// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maria Levkova

package service

import (
	"context"

	"github.com/mlevkova/bijoux-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UserService owns account creation and lookups. Passwords are hashed
// before they ever reach the repository; plain-text passwords never leave
// this layer.
type UserService interface {
	// CreateUser validates the payload, hashes the password, and persists
	// the account. Returns the stored user with its generated UserID.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// ProductService owns the catalog write and read paths, including the
// coupling between an uploaded image file and its product row.
type ProductService interface {
	// CreateProduct validates the payload, stores the optional image
	// upload, and inserts the product row. If the insert fails after the
	// image was written, the file is removed so no orphan remains on disk.
	CreateProduct(ctx context.Context, req models.CreateProductRequest, image *models.ImageUpload) (models.Product, error)

	GetProductByID(ctx context.Context, productID int64) (models.Product, error)
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)

	// ResolveImage maps a stored image filename to an absolute path inside
	// the upload directory for serving.
	ResolveImage(filename string) (string, error)
}

// CategoryService exposes the read-only category reference data.
type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

// PaymentService brokers payment-intent creation with the configured
// payment provider.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (models.PaymentIntent, error)
}
