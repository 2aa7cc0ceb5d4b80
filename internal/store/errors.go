// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned by [KeyValueStore.Get] when no value is
	// stored under the requested key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDecodingRecord is returned when a stored record is not valid JSON
	// for its expected shape.
	ErrDecodingRecord = errors.New("error decoding record")

	// ErrEncodingRecord is returned when a record cannot be serialized.
	ErrEncodingRecord = errors.New("error encoding record")

	// ErrUnsupportedDSN is returned when a DSN selects no known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL backends when a statement fails before any record logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a record value fails.
	ErrScanningRow = errors.New("failed to scan record row")
)
