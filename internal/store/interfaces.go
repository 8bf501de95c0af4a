package store

import (
	"context"
	"io"

	"github.com/mlevkova/bijoux-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// ErrorClassificator separates transient database faults from permanent ones
// so that error logs can flag which failures might have succeeded on retry.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository is the data-access contract for the "users" table.
//
// Creation relies on the table's UNIQUE constraints on username and email:
// a single INSERT is issued and a unique-constraint violation is translated
// into [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists] depending on
// the violated constraint. There is no check-then-insert round trip, so two
// concurrent requests for the same username cannot both succeed.
type UserRepository interface {
	// CreateUser inserts a new user and returns the generated identifier.
	CreateUser(ctx context.Context, user models.User) (int64, error)

	// FindUserByUsername returns the user with the given username, or
	// ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetAllUsers returns every user row, or ErrNoUsersFound for an empty
	// table.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// ProductRepository is the data-access contract for the "products" table.
type ProductRepository interface {
	// CreateProduct inserts a new product and returns the generated
	// identifier. A dangling category reference yields ErrCategoryNotFound.
	CreateProduct(ctx context.Context, product models.Product) (int64, error)

	// GetProductByID returns a single product, or ErrProductNotFound.
	GetProductByID(ctx context.Context, productID int64) (models.Product, error)

	// GetAllProducts returns every product row, or ErrNoProductsFound for
	// an empty table.
	GetAllProducts(ctx context.Context) ([]models.Product, error)

	// GetProductsByCategory returns products filtered by category, or
	// ErrNoProductsFound when none match.
	GetProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
}

// CategoryRepository is the data-access contract for the read-only
// "categories" reference table.
type CategoryRepository interface {
	// GetAllCategories returns every category row, or ErrNoCategoriesFound
	// for an empty table.
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

// ImageFileStorage persists uploaded product images on the local filesystem
// and resolves stored filenames back to serveable paths.
type ImageFileStorage interface {
	// SaveImage validates the supplied filename against the extension
	// allow-list, sanitizes it, writes the content into the upload
	// directory under a collision-free name, and returns the relative
	// URL recorded on the product row (e.g. "/uploads/ring.png").
	SaveImage(ctx context.Context, filename string, content io.Reader) (string, error)

	// Remove deletes a previously stored image given its relative URL.
	// Used to undo the file write when the subsequent row insert fails.
	Remove(ctx context.Context, imageURL string) error

	// Resolve maps a bare stored filename to an absolute path inside the
	// upload directory, rejecting traversal outside it. Returns
	// ErrImageNotFound when no such file exists.
	Resolve(filename string) (string, error)
}
