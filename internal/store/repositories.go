package store

import (
	"github.com/mlevkova/bijoux-shop/internal/logger"
)

// Repositories bundles every data-access component handed to the service
// layer.
type Repositories struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	CategoryRepository CategoryRepository
}

// NewRepositories constructs all entity repositories over the shared
// connection pool.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
	}
}
