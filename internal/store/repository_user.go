package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/models"
)

// Constraint names assigned by PostgreSQL to the uniqueness constraints on
// the "users" table. They let a single unique_violation be attributed to the
// colliding column.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database pool and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the server-assigned
// identifier.
//
// Uniqueness of username and email is enforced by the table's UNIQUE
// constraints in a single INSERT round trip; no prior existence check is
// made, so concurrent requests for the same username race on the constraint,
// not on application logic.
//
// Error handling:
//   - unique_violation (23505) on the username constraint → [ErrUsernameAlreadyExists].
//   - unique_violation (23505) on the email constraint → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (int64, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error acquiring connection")
		return 0, err
	}
	defer r.db.Release(conn)

	queryCtx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()

	var userID int64
	err = conn.QueryRowContext(queryCtx, createUser, user.Username, user.Email, user.Password, user.IsAdmin).Scan(&userID)
	if err != nil {
		retryable := r.db.errorClassificator.Classify(err) == Retryable
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", retryable).
			Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case usersEmailConstraint:
				return 0, ErrEmailAlreadyExists
			default:
				// username constraint, or an unnamed unique index
				return 0, ErrUsernameAlreadyExists
			}
		}

		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return userID, nil
}

// FindUserByUsername retrieves the user record whose username matches the
// provided value.
//
// Error handling:
//   - sql.ErrNoRows → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error acquiring connection")
		return models.User{}, err
	}
	defer r.db.Release(conn)

	queryCtx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()

	var foundUser models.User
	row := conn.QueryRowContext(queryCtx, findUserByUsername, username)
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.Password, &foundUser.IsAdmin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// GetAllUsers returns every row of the "users" table.
//
// An empty table yields [ErrNoUsersFound] rather than an empty slice — the
// API contract treats a vacant listing as a not-found condition.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error acquiring connection")
		return nil, err
	}
	defer r.db.Release(conn)

	queryCtx, cancel := r.db.WithQueryTimeout(ctx)
	defer cancel()

	rows, err := conn.QueryContext(queryCtx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.Email, &user.Password, &user.IsAdmin); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning user rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(users) == 0 {
		return nil, ErrNoUsersFound
	}

	return users, nil
}
