// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// messenger service and terminal UI.
//
// All Msg* constants are human-readable strings surfaced to the user as
// transient notifications. Keeping them in one place ensures consistent
// wording between the core's error mapping and the presentation layer.
package app

const (
	// MsgFillAllFields is shown when a required form field is empty.
	MsgFillAllFields = "please fill in all fields"

	// MsgUsernameTaken is shown when registration picks a username that is
	// already in use (case-insensitively).
	MsgUsernameTaken = "a user with this username already exists"

	// MsgRegistered is shown after a successful registration.
	MsgRegistered = "registration successful, welcome to Messenger"

	// MsgWelcomeFormat greets a user after login; the verb takes the nickname.
	MsgWelcomeFormat = "welcome, %s!"

	// MsgInvalidCredentials is shown when no user matches the supplied
	// username and password.
	MsgInvalidCredentials = "invalid username or password"

	// MsgLoggedOut is shown after logout.
	MsgLoggedOut = "you have logged out"

	// MsgContactsOnly is shown when the recipient accepts messages only from
	// contacts.
	MsgContactsOnly = "this user only accepts messages from contacts"

	// MsgSelfChat is shown when a user tries to open a chat with themself.
	MsgSelfChat = "you cannot start a chat with yourself"

	// MsgEmptyMessage is shown when the composer holds only whitespace.
	MsgEmptyMessage = "message is empty"

	// MsgEnterSearchTerm is shown when the search field is blank.
	MsgEnterSearchTerm = "enter a name or username to search"

	// MsgSearchDisabled explains why a search returned nothing while the
	// user's own discoverability is "nobody".
	MsgSearchDisabled = "search is disabled because your profile is hidden from everyone"

	// MsgNoUsersFound is shown when a search ran but matched nobody.
	MsgNoUsersFound = "no users found"

	// MsgNotFound is shown when a chat or user vanished.
	MsgNotFound = "not found"

	// MsgNotParticipant is shown when sending into a chat the user is not
	// part of.
	MsgNotParticipant = "you are not a member of this chat"

	// MsgNoSession is shown when an operation needs a logged-in user.
	MsgNoSession = "please log in first"

	// MsgNicknameUpdated is shown after a nickname change.
	MsgNicknameUpdated = "nickname updated"

	// MsgAvatarUpdated is shown after an avatar change.
	MsgAvatarUpdated = "avatar updated"

	// MsgPasswordChanged is shown after a successful password change.
	MsgPasswordChanged = "password changed"

	// MsgWrongCurrentPassword is shown when the current password does not
	// match.
	MsgWrongCurrentPassword = "current password is incorrect"

	// MsgAppearanceSaved is shown after appearance settings are stored.
	MsgAppearanceSaved = "appearance settings saved"

	// MsgPrivacySaved is shown after privacy settings are stored.
	MsgPrivacySaved = "privacy settings saved"

	// MsgInvalidSettings is shown when a settings value is out of range.
	MsgInvalidSettings = "invalid settings value"

	// MsgUsernameCopied is shown after a contact's @username was copied to
	// the clipboard.
	MsgUsernameCopied = "username copied to clipboard"

	// MsgUserBlockedFormat is the demo "block" action; the verb takes the
	// nickname.
	MsgUserBlockedFormat = "user %s blocked"

	// MsgCallingFormat is the demo "call" action; the verb takes the
	// nickname.
	MsgCallingFormat = "calling %s..."

	// MsgStorageFailed is shown when a change could not be written to the
	// store. The change stays in memory.
	MsgStorageFailed = "could not save changes"

	// MsgUnexpectedError is shown for any error without a dedicated message.
	MsgUnexpectedError = "something went wrong"
)
