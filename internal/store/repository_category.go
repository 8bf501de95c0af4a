package store

import (
	"context"
	"fmt"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository]. Categories are seeded by the schema migrations and
// read-only from the application's point of view.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database pool and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllCategories returns every row of the "categories" table, or
// [ErrNoCategoriesFound] when the seed has never run.
func (r *categoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetAllCategories").Msg("error acquiring connection")
		return nil, err
	}
	defer r.db.Release(conn)

	queryCtx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := conn.QueryContext(queryCtx, getAllCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetAllCategories").Msg("error querying categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.CategoryID, &category.CategoryName); err != nil {
			log.Err(err).Str("func", "*categoryRepository.GetAllCategories").Msg("error scanning category rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(categories) == 0 {
		return nil, ErrNoCategoriesFound
	}

	return categories, nil
}
