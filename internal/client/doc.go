// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive messenger application runtime.
//
// It wires terminal UI flows, client services and the background realtime
// worker into a single process lifecycle.
package client
