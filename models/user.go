// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultAvatar is the icon tag assigned to every newly registered user.
const DefaultAvatar = "user"

// User is a messenger account known to the local client.
//
// Users are created at registration, mutated on profile edits and presence
// changes and never deleted. The password is kept in clear form: the
// messenger is a local demo without an authentication boundary.
type User struct {
	// ID is the unique opaque identifier of the user.
	ID string `json:"id"`

	// Nickname is the display name shown in chat lists and transcripts.
	Nickname string `json:"nickname"`

	// Username is the unique, lowercase login handle.
	Username string `json:"username"`

	// Password is compared verbatim on login.
	Password string `json:"password"`

	// Avatar is an icon tag (e.g. "user", "cat").
	Avatar string `json:"avatar"`

	// RegisteredAt is the moment the account was created.
	RegisteredAt time.Time `json:"registeredAt"`

	// IsOnline is the presence flag of the user.
	IsOnline bool `json:"isOnline"`

	// Settings holds optional per-user privacy overrides. Nil means
	// every rule falls back to [Everyone].
	Settings *UserSettings `json:"settings,omitempty"`
}

// UserSettings are the privacy preferences other users are judged against.
type UserSettings struct {
	Discoverability Visibility `json:"discoverability,omitempty"`
	MessagePrivacy  Visibility `json:"messagePrivacy,omitempty"`
}

// Discoverability returns the effective discoverability of the user.
func (u User) Discoverability() Visibility {
	if u.Settings == nil {
		return Everyone
	}
	return u.Settings.Discoverability.OrDefault()
}

// MessagePrivacy returns the effective message privacy of the user.
func (u User) MessagePrivacy() Visibility {
	if u.Settings == nil {
		return Everyone
	}
	return u.Settings.MessagePrivacy.OrDefault()
}

// AvatarOrDefault returns the avatar tag, falling back to [DefaultAvatar].
func (u User) AvatarOrDefault() string {
	if u.Avatar == "" {
		return DefaultAvatar
	}
	return u.Avatar
}

// Card returns the public view of the user used by search results and
// chat list entries.
func (u User) Card() UserCard {
	return UserCard{
		ID:       u.ID,
		Nickname: u.Nickname,
		Username: u.Username,
		Avatar:   u.AvatarOrDefault(),
		Online:   u.IsOnline,
	}
}

// UserCard is the password-free snapshot of a user.
type UserCard struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Online   bool   `json:"online"`
}

// ContactCard is the detailed peer view shown in the contact info panel.
type ContactCard struct {
	UserCard
	RegisteredAt time.Time `json:"registeredAt"`
}

// Avatars lists the icon tags a user may pick for their profile.
var Avatars = []string{
	DefaultAvatar,
	"user-tie",
	"user-astronaut",
	"user-ninja",
	"cat",
	"dog",
	"robot",
	"ghost",
}
