// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to fields left empty by every source.
const (
	DefaultDSN              = "messenger.db"
	DefaultNamespace        = "messenger_"
	DefaultPollInterval     = 3 * time.Second
	DefaultReadReceiptDelay = time.Second
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// SeedDemoUsers creates the demo accounts on an empty store.
	SeedDemoUsers bool
	// LogFile is where the client logger writes.
	LogFile string
}

// ClientStorage holds record store settings.
type ClientStorage struct {
	// DSN selects the store backend.
	DSN string
	// Namespace prefixes every record key.
	Namespace string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the realtime job ticks.
	PollInterval time.Duration
	// ReadReceiptDelay defines how long after a send outgoing messages are
	// acknowledged.
	ReadReceiptDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration of args and the environment.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SeedDemoUsers: true,
			LogFile:       cfg.App.LogFile,
		},
		Storage: ClientStorage{
			DSN:       cfg.Storage.DB.DSN,
			Namespace: cfg.Storage.Namespace,
		},
		Workers: ClientWorkers{
			PollInterval:     cfg.Workers.PollInterval,
			ReadReceiptDelay: cfg.Workers.ReadReceiptDelay,
		},
	}

	if cfg.App.SeedDemoUsers != nil {
		clientCfg.App.SeedDemoUsers = *cfg.App.SeedDemoUsers
	}
	if clientCfg.Storage.DSN == "" {
		clientCfg.Storage.DSN = DefaultDSN
	}
	if clientCfg.Storage.Namespace == "" {
		clientCfg.Storage.Namespace = DefaultNamespace
	}
	if clientCfg.Workers.PollInterval == 0 {
		clientCfg.Workers.PollInterval = DefaultPollInterval
	}
	if clientCfg.Workers.ReadReceiptDelay == 0 {
		clientCfg.Workers.ReadReceiptDelay = DefaultReadReceiptDelay
	}

	return clientCfg
}
