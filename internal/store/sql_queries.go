// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	recordsTable = "records"

	colRecordKey   = "record_key"
	colRecordValue = "record_value"
	colUpdatedAt   = "updated_at"

	upsertRecordSuffix = "ON CONFLICT (record_key) DO UPDATE SET " +
		"record_value = excluded.record_value, updated_at = excluded.updated_at"
)

func buildGetRecordQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.
		Select(colRecordValue).
		From(recordsTable).
		Where(sq.Eq{colRecordKey: key}).
		ToSql()
}

// buildPutRecordQuery builds an upsert; both PostgreSQL and SQLite accept the
// ON CONFLICT ... excluded form.
func buildPutRecordQuery(b sq.StatementBuilderType, key string, value []byte, at time.Time) (string, []any, error) {
	return b.
		Insert(recordsTable).
		Columns(colRecordKey, colRecordValue, colUpdatedAt).
		Values(key, string(value), at).
		Suffix(upsertRecordSuffix).
		ToSql()
}

func buildDeleteRecordQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.
		Delete(recordsTable).
		Where(sq.Eq{colRecordKey: key}).
		ToSql()
}
