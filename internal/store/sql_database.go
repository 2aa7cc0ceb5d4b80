// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/migrations"
)

// Dialect names accepted by goose and used to pick placeholder formats.
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// maxPutAttempts bounds how many times a retryable write is attempted.
const maxPutAttempts = 2

// DB is a SQL-backed [KeyValueStore] over the records table.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	now                func() time.Time
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == dialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
		now:                time.Now,
	}
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetRecordQuery(db.builder, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrRecordNotFound
	case err != nil:
		db.logger.Err(err).Str("func", "*DB.Get").Str("key", key).Msg("error reading record")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := buildPutRecordQuery(db.builder, key, value, db.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		retryable := db.classify(err) == Retryable
		db.logger.Err(err).
			Str("func", "*DB.Put").
			Str("key", key).
			Int("attempt", attempt).
			Bool("retryable", retryable).
			Msg("error writing record")

		if !retryable || attempt >= maxPutAttempts {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
}

func (db *DB) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteRecordQuery(db.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		db.logger.Err(err).Str("func", "*DB.Delete").Str("key", key).Msg("error deleting record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
