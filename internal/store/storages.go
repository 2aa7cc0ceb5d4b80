// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
)

// Backend identifies the [KeyValueStore] implementation chosen for a DSN.
type Backend int

const (
	BackendMemory Backend = iota
	BackendJSONFile
	BackendPostgres
	BackendSQLite
)

func (b Backend) String() string {
	switch b {
	case BackendMemory:
		return "memory"
	case BackendJSONFile:
		return "json"
	case BackendPostgres:
		return "postgres"
	default:
		return "sqlite"
	}
}

// BackendFor picks the backend for dsn:
//   - "", "memory", ":memory:"          → [BackendMemory];
//   - "file://..." or a "*.json" path    → [BackendJSONFile];
//   - "postgres://", "postgresql://"    → [BackendPostgres];
//   - anything else                      → [BackendSQLite].
func BackendFor(dsn string) Backend {
	d := strings.TrimSpace(dsn)
	lower := strings.ToLower(d)

	switch {
	case d == "" || lower == "memory" || lower == ":memory:":
		return BackendMemory
	case strings.HasPrefix(lower, "file://") || strings.HasSuffix(lower, ".json"):
		return BackendJSONFile
	case strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// ClientStorages groups the client-side store into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Records is the typed repository for the messenger records.
	Records RecordRepository

	kv KeyValueStore
}

// NewClientStorages opens the backend selected by cfg.DSN, runs schema
// migrations for SQL backends and wires a [RecordRepository] over it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	backend := BackendFor(cfg.DSN)
	log.Info().Str("backend", backend.String()).Msg("creating new storages...")

	kv, err := openKeyValueStore(ctx, backend, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	return NewClientStoragesWith(kv, cfg.Namespace, log), nil
}

// NewClientStoragesWith wires storages over an already opened store.
func NewClientStoragesWith(kv KeyValueStore, namespace string, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Records: NewRecordRepository(kv, namespace, log),
		kv:      kv,
	}
}

// Close releases the underlying store.
func (s *ClientStorages) Close() error {
	return s.kv.Close()
}

func openKeyValueStore(ctx context.Context, backend Backend, dsn string, log *logger.Logger) (KeyValueStore, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil

	case BackendJSONFile:
		return NewJSONFileStore(strings.TrimPrefix(strings.TrimSpace(dsn), "file://"), log)

	case BackendPostgres:
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return migrated(db)

	case BackendSQLite:
		db, err := NewConnectSQLite(ctx, dsn, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return migrated(db)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

func migrated(db *DB) (KeyValueStore, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
