// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the raw merged configuration. Defaults are applied later
// by [GetClientConfig], so zero values are accepted here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.PollInterval < 0 || cfg.Workers.ReadReceiptDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.ReadReceiptDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
