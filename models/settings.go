// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Visibility is the audience a privacy rule admits.
type Visibility string

const (
	// Everyone admits every user of the client.
	Everyone Visibility = "everyone"
	// Contacts admits only users that already share a chat.
	Contacts Visibility = "contacts"
	// Nobody admits no one.
	Nobody Visibility = "nobody"
)

// OrDefault maps the empty visibility to [Everyone].
func (v Visibility) OrDefault() Visibility {
	if v == "" {
		return Everyone
	}
	return v
}

// Valid reports whether v is one of the known visibilities.
func (v Visibility) Valid() bool {
	switch v {
	case Everyone, Contacts, Nobody:
		return true
	}
	return false
}

// Theme is the color scheme of the presentation layer.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// Text size bounds accepted by the appearance settings.
const (
	MinTextSize     = 12
	MaxTextSize     = 24
	DefaultTextSize = 16
)

// Settings are the client-wide preferences of the active session.
type Settings struct {
	Theme           Theme      `json:"theme"`
	TextSize        int        `json:"textSize"`
	CompactMode     bool       `json:"compactMode"`
	Discoverability Visibility `json:"discoverability"`
	MessagePrivacy  Visibility `json:"messagePrivacy"`
	ReadReceipts    bool       `json:"readReceipts"`
	OnlineStatus    bool       `json:"onlineStatus"`
}

// DefaultSettings returns the settings used when none were persisted.
func DefaultSettings() Settings {
	return Settings{
		Theme:           ThemeLight,
		TextSize:        DefaultTextSize,
		CompactMode:     false,
		Discoverability: Everyone,
		MessagePrivacy:  Everyone,
		ReadReceipts:    true,
		OnlineStatus:    true,
	}
}
