// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-d store DSN (memory, *.json, postgres://..., sqlite file)
//	-namespace record key prefix
//	-poll-interval realtime tick period (e.g. "3s")
//	-read-receipt-delay simulated read acknowledgment delay (e.g. "1s")
//	-seed seed demo users when the store is empty
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("messenger", flag.ContinueOnError)

	var dsn string
	var namespace string
	var pollInterval time.Duration
	var readReceiptDelay time.Duration
	var seed optionalBool
	var logFile string
	var jsonConfigPath string

	fs.StringVar(&dsn, "d", "", "Store DSN")
	fs.StringVar(&namespace, "namespace", "", "Record key prefix")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Realtime tick period (e.g., 3s)")
	fs.DurationVar(&readReceiptDelay, "read-receipt-delay", 0, "Read receipt delay (e.g., 1s)")
	fs.Var(&seed, "seed", "Seed demo users when the store is empty")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SeedDemoUsers: seed.value,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB:        DB{DSN: dsn},
			Namespace: namespace,
		},
		Workers: Workers{
			PollInterval:     pollInterval,
			ReadReceiptDelay: readReceiptDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// optionalBool is a boolean flag that remembers whether it was set, so an
// absent flag does not override other sources.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return fmt.Sprintf("%t", *b.value)
}

func (b *optionalBool) Set(s string) error {
	var v bool
	switch s {
	case "true", "1", "yes":
		v = true
	case "false", "0", "no":
		v = false
	default:
		return fmt.Errorf("invalid boolean value %q", s)
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets "-seed" be passed without a value.
func (b *optionalBool) IsBoolFlag() bool {
	return true
}
