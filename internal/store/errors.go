package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an INSERT into "users"
	// violates the username uniqueness constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an INSERT into "users"
	// violates the email uniqueness constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a single-user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when a single-product lookup matches
	// no row.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound is returned when a product references a category
	// that does not exist (foreign key violation on insert).
	ErrCategoryNotFound = errors.New("category not found")

	// ErrNoUsersFound is returned by the full user listing when the table
	// is empty. The API deliberately surfaces this as 404 rather than an
	// empty array, matching the original service's contract.
	ErrNoUsersFound = errors.New("no users found")

	// ErrNoProductsFound is returned by product listings (full or filtered
	// by category) that match no rows.
	ErrNoProductsFound = errors.New("no products found")

	// ErrNoCategoriesFound is returned by the category listing when the
	// table is empty, i.e. the seed has never run.
	ErrNoCategoriesFound = errors.New("no categories found")
)

// Pool and low-level database operation errors. These are returned (or
// wrapped) by repository methods when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrPoolExhausted is returned by [DB.Acquire] when every pooled
	// connection is checked out and none frees up within the configured
	// acquire timeout.
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrAcquiringConnection is returned when obtaining a connection from
	// the pool fails for a reason other than exhaustion (e.g. the database
	// is unreachable).
	ErrAcquiringConnection = errors.New("error acquiring connection from pool")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Image file storage errors.
var (
	// ErrInvalidImageFormat is returned when an uploaded file's extension
	// is not on the png/jpg/jpeg/gif allow-list.
	ErrInvalidImageFormat = errors.New("invalid image format")

	// ErrEmptyImageFilename is returned when the uploaded file carries no
	// usable name after sanitization strips path components and unsafe
	// characters.
	ErrEmptyImageFilename = errors.New("empty image filename")

	// ErrImageNotFound is returned when a stored image requested for
	// serving does not exist in the upload directory.
	ErrImageNotFound = errors.New("image not found")
)
