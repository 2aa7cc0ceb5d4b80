// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchStatus tells a disabled search apart from an empty one.
type SearchStatus string

const (
	// SearchFound means at least one visible user matched.
	SearchFound SearchStatus = "found"
	// SearchNotFound means the search ran and matched nobody.
	SearchNotFound SearchStatus = "not_found"
	// SearchDisabled means the requester's own discoverability is
	// [Nobody], so the search never ran.
	SearchDisabled SearchStatus = "disabled"
)

// SearchResult is the outcome of a directory search.
type SearchResult struct {
	Status SearchStatus `json:"status"`
	Users  []UserCard   `json:"users"`
}
