package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // register the "pgx" database/sql driver
	"github.com/mlevkova/bijoux-shop/internal/config"
	"github.com/mlevkova/bijoux-shop/internal/logger"
)

// NewConnectPostgres opens the process-wide connection pool against the
// configured PostgreSQL endpoint and verifies it with a ping.
//
// Pool sizing follows cfg: MaxConns caps concurrently open connections and
// MinConns keeps that many idle connections warm. The pool has process
// lifetime; it is never torn down mid-process.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup pool bounds
	conn.SetMaxOpenConns(cfg.MaxConns)
	conn.SetMaxIdleConns(cfg.MinConns)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().
		Str("func", "NewConnectPostgres").
		Int("max_conns", cfg.MaxConns).
		Int("min_conns", cfg.MinConns).
		Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		acquireTimeout:     cfg.AcquireTimeout,
		queryTimeout:       cfg.QueryTimeout,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// postgresError returns the PostgreSQL error code carried by err, or ""
// when err does not originate from the pgx driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// postgresConstraint returns the violated constraint name carried by err,
// or "" when err does not originate from the pgx driver. Used to tell a
// username collision from an email collision on the same table.
func postgresConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
