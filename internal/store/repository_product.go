package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgerrcode"
	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Product queries are built with squirrel because their
// shape varies (optional category filter); see sql_queries.go.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database pool and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new product record and returns the server-assigned
// identifier.
//
// Price is formatted as a fixed two-decimal string before it reaches the
// driver so the DECIMAL(10,2) column stores exactly what the caller sent.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrCategoryNotFound] (dangling
//     category reference).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProduct(
		product.ProductName,
		product.Description,
		strconv.FormatFloat(product.Price, 'f', 2, 64),
		product.CategoryID,
		product.ImageURL,
	)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error building insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error acquiring connection")
		return 0, err
	}
	defer r.db.Release(conn)

	queryCtx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()

	var productID int64
	if err := conn.QueryRowContext(queryCtx, query, args...).Scan(&productID); err != nil {
		retryable := r.db.errorClassificator.Classify(err) == Retryable
		log.Err(err).
			Str("func", "*productRepository.CreateProduct").
			Bool("retryable", retryable).
			Msg("error inserting product")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return 0, ErrCategoryNotFound
		}

		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return productID, nil
}

// GetProductByID retrieves a single product row.
//
// Error handling:
//   - sql.ErrNoRows → [ErrProductNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *productRepository) GetProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductByID(productID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProductByID").Msg("error building select query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProductByID").Msg("error acquiring connection")
		return models.Product{}, err
	}
	defer r.db.Release(conn)

	queryCtx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()

	product, err := scanProduct(conn.QueryRowContext(queryCtx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.GetProductByID").Msg("error scanning product row")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// GetAllProducts returns every row of the "products" table, or
// [ErrNoProductsFound] for an empty table.
func (r *productRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return r.listProducts(ctx, nil)
}

// GetProductsByCategory returns products whose category matches categoryID,
// or [ErrNoProductsFound] when none do.
func (r *productRepository) GetProductsByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return r.listProducts(ctx, &categoryID)
}

// listProducts runs the listing query with an optional category filter.
func (r *productRepository) listProducts(ctx context.Context, categoryID *int64) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProducts(categoryID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.listProducts").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.listProducts").Msg("error acquiring connection")
		return nil, err
	}
	defer r.db.Release(conn)

	queryCtx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := conn.QueryContext(queryCtx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.listProducts").Msg("error querying products")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Err(err).Str("func", "*productRepository.listProducts").Msg("error scanning product rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(products) == 0 {
		return nil, ErrNoProductsFound
	}

	return products, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct maps one result row onto a [models.Product]. The price column
// arrives as its exact decimal text and is converted to float64 only for
// presentation, so "19.99" reads back as 19.99.
func scanProduct(row rowScanner) (models.Product, error) {
	var product models.Product
	var price string

	if err := row.Scan(
		&product.ProductID,
		&product.ProductName,
		&product.Description,
		&price,
		&product.CategoryID,
		&product.ImageURL,
	); err != nil {
		return models.Product{}, err
	}

	parsed, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: parsing price %q: %w", ErrScanningRow, price, err)
	}
	product.Price = parsed

	return product, nil
}
