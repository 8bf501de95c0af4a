package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mlevkova/bijoux-shop/internal/logger"
	"github.com/mlevkova/bijoux-shop/migrations"
)

// DB wraps the bounded connection pool shared by all repositories.
//
// The embedded [sql.DB] is the pool itself: it keeps between MinConns and
// MaxConns live connections to the configured PostgreSQL endpoint and is
// created exactly once at process start. Repositories never talk to the
// embedded handle directly for statement execution; they check an exclusive
// connection out via [DB.Acquire] and hand it back via [DB.Release] on every
// exit path, so that a leaked handle is always a bug in exactly one place.
type DB struct {
	*sql.DB

	// acquireTimeout bounds the wait for a free connection; once it
	// elapses, Acquire fails with ErrPoolExhausted instead of blocking
	// forever.
	acquireTimeout time.Duration

	// queryTimeout bounds every statement executed through WithQueryTimeout.
	queryTimeout time.Duration

	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Acquire checks an exclusive connection out of the pool.
//
// The returned [sql.Conn] is owned by the caller until [DB.Release] is
// invoked; it must not be used afterwards. When all MaxConns connections are
// checked out, Acquire blocks until a slot frees or the acquire timeout
// elapses, in which case it returns [ErrPoolExhausted].
func (db *DB) Acquire(ctx context.Context) (*sql.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, db.acquireTimeout)
	defer cancel()

	conn, err := db.DB.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			db.logger.Err(err).Str("func", "*DB.Acquire").Msg("pool exhausted: no free connection within acquire timeout")
			return nil, ErrPoolExhausted
		}
		return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}

	return conn, nil
}

// Release returns a previously acquired connection to the pool. A nil conn
// is a no-op so that callers can defer Release unconditionally.
func (db *DB) Release(conn *sql.Conn) {
	if conn == nil {
		return
	}

	if err := conn.Close(); err != nil {
		db.logger.Err(err).Str("func", "*DB.Release").Msg("error returning connection to pool")
	}
}

// WithQueryTimeout derives a context bounding a single statement's execution.
// The returned cancel func must always be called.
func (db *DB) WithQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}

// Migrate applies all embedded schema migrations, creating the users,
// products, and categories tables in dependency order and seeding the fixed
// category list. A migration failure must abort startup.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
