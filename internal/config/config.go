// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-messenger application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as demo seeding and the
	// client log file.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local record store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the timings of background and deferred work.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SeedDemoUsers enables creation of the demo accounts when the user
	// list is empty at startup. A pointer so an explicit "false" survives
	// the merge.
	// Env: APP_SEED_DEMO_USERS
	SeedDemoUsers *bool `env:"SEED_DEMO_USERS"`

	// LogFile is the file the terminal client appends its logs to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the record store.
type Storage struct {
	// DB holds the store connection settings.
	DB DB `envPrefix:"DB_"`

	// Namespace is prepended to every record key (e.g. "messenger_users").
	// Env: STORAGE_NAMESPACE
	Namespace string `env:"NAMESPACE"`
}

// DB holds the DSN of the record store backend.
type DB struct {
	// DSN selects and configures the backend:
	//   - "memory" or ":memory:": in-process map;
	//   - "*.json" or "file://...": a single JSON document on disk;
	//   - "postgres://...": PostgreSQL;
	//   - any other value: SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds the timings of the realtime tick and deferred callbacks.
type Workers struct {
	// PollInterval is the period of the presence and new-message tick.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// ReadReceiptDelay is how long after a send the simulated peer
	// acknowledges outgoing messages.
	// Env: WORKERS_READ_RECEIPT_DELAY
	ReadReceiptDelay time.Duration `env:"READ_RECEIPT_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
