// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-messenger/models"
)

// IdentityService registers users, authenticates them and keeps the session.
type IdentityService interface {
	// Register creates a user and makes it the session. The returned hint is
	// non-empty when the password is weak; it never blocks registration.
	Register(ctx context.Context, nickname, username, password string) (models.User, string, error)

	// Login matches username case-insensitively and password exactly.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout marks the session user offline and clears the session. It is a
	// no-op without a session.
	Logout(ctx context.Context) error

	// RestoreSession adopts the persisted session without checking
	// credentials. ok is false when there is no stored session.
	RestoreSession(ctx context.Context) (user models.User, ok bool, err error)

	// CurrentUser returns the session user.
	CurrentUser() (models.User, bool)

	// SeedDemoUsers creates the demo accounts when no user exists yet and
	// reports how many were created.
	SeedDemoUsers(ctx context.Context) (int, error)
}

// DirectoryService finds users subject to their discoverability.
type DirectoryService interface {
	// Search matches term against username and nickname on behalf of
	// requesterID.
	Search(ctx context.Context, requesterID, term string) (models.SearchResult, error)

	// AreContacts reports whether a chat exists between a and b.
	AreContacts(a, b string) bool

	// ContactInfo returns the public card of a user.
	ContactInfo(userID string) (models.ContactCard, error)
}

// ConversationService manages chats and their messages.
type ConversationService interface {
	// StartChat finds or creates the chat between requesterID and targetID.
	StartChat(ctx context.Context, requesterID, targetID string) (models.ActiveChat, error)

	// OpenChat makes an existing chat of the session user active.
	OpenChat(ctx context.Context, chatID string) (models.ActiveChat, error)

	// ActiveChat returns the chat currently open in the client.
	ActiveChat() (models.ActiveChat, bool)

	// CloseChat clears the active chat.
	CloseChat()

	// SendMessage appends a message from senderID to chatID and schedules the
	// simulated read receipt. A missing chat makes it a no-op.
	SendMessage(ctx context.Context, chatID, senderID, text string) (models.Message, error)

	// ListMessages returns the transcript of chatID in ascending time order.
	ListMessages(chatID string) []models.Message

	// MarkIncomingRead marks the most recent message of chatID as read when
	// it came from someone other than userID.
	MarkIncomingRead(ctx context.Context, chatID, userID string) (bool, error)
}

// ChatListService projects the chat list of a user.
type ChatListService interface {
	ProjectChatList(userID string) []models.ChatSummary
	ChatCount(userID string) int
}

// PresenceService runs the periodic realtime work.
type PresenceService interface {
	// PresenceTick randomly toggles the presence of every other user.
	PresenceTick(ctx context.Context) error

	// PollActiveChat checks the active chat for a new incoming message.
	PollActiveChat(ctx context.Context) error
}

// SettingsService manages client settings and the session user's profile.
type SettingsService interface {
	Settings() models.Settings
	SaveAppearance(ctx context.Context, theme models.Theme, textSize int, compact bool) error
	SavePrivacy(ctx context.Context, discoverability, messagePrivacy models.Visibility, readReceipts, onlineStatus bool) error

	// DefaultPrivacy returns the current settings with the privacy group
	// reset to defaults. Nothing is persisted.
	DefaultPrivacy() models.Settings

	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)

	// ChangePassword returns a strength hint for the new password.
	ChangePassword(ctx context.Context, change models.PasswordChange) (string, error)
}

// RealtimeJob ticks the [PresenceService] in the background.
type RealtimeJob interface {
	// Start stops any running job and starts a new one ticking every
	// interval until ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the job and waits for it to exit.
	Stop()
}
