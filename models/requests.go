// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Registration carries the user-entered fields of the sign-up form.
type Registration struct {
	Nickname string
	Username string
	Password string
}

// MessageDraft is the text typed into the composer before sending.
type MessageDraft struct {
	Text string
}

// ProfileUpdate carries profile edits. Empty fields keep current values.
type ProfileUpdate struct {
	Nickname string
	Avatar   string
}

// PasswordChange carries a password change request.
type PasswordChange struct {
	Current string
	Next    string
}
