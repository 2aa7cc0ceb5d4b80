// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when configuration groups are invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid store settings
	// (for example, an empty DSN after defaults were applied).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker timings
	// (for example, a negative poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
