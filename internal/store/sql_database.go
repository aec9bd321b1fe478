// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Raphalinho91/user-accounts/internal/config"
	"github.com/Raphalinho91/user-accounts/internal/logger"
	"github.com/Raphalinho91/user-accounts/migrations"
)

// DB is an open database handle together with the dialect-specific pieces
// the repositories need: a squirrel statement builder with the right
// placeholder format and an error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// pingAttempts and pingBackoff bound the startup connectivity check.
const (
	pingAttempts = 3
	pingBackoff  = 500 * time.Millisecond
)

// NewConnectDB opens the database selected by cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// newDB wraps conn for the given driver.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// ping checks connectivity, retrying errors the classifier marks retryable.
func (db *DB) ping(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) != Retryable || attempt == pingAttempts {
			break
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database ping failed, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pingBackoff * time.Duration(attempt)):
		}
	}

	return err
}
