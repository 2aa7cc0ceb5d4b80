// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the messenger services matches exactly
// one of them with [errors.Is], except [ErrNoSession] and [ErrPersistence].
var (
	ErrValidation    = errors.New("validation error")
	ErrDuplicateUser = errors.New("duplicate user")
	ErrAuth          = errors.New("authentication error")
	ErrPrivacy       = errors.New("blocked by privacy settings")
	ErrNotFound      = errors.New("not found")

	// ErrNoSession is returned by operations that need a logged-in user.
	ErrNoSession = errors.New("no active session")

	// ErrPersistence wraps a failed store write. The in-memory change has
	// been applied already.
	ErrPersistence = errors.New("error persisting state")
)

var (
	ErrEmptyField         = fmt.Errorf("%w: required field is empty", ErrValidation)
	ErrEmptyMessage       = fmt.Errorf("%w: message is empty", ErrValidation)
	ErrEmptySearchTerm    = fmt.Errorf("%w: search term is empty", ErrValidation)
	ErrSelfChat           = fmt.Errorf("%w: cannot start a chat with yourself", ErrValidation)
	ErrInvalidSettings    = fmt.Errorf("%w: invalid settings", ErrValidation)
	ErrInvalidProfile     = fmt.Errorf("%w: invalid profile", ErrValidation)
	ErrNotChatParticipant = fmt.Errorf("%w: sender is not a chat participant", ErrValidation)

	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrDuplicateUser)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrAuth)
	ErrWrongPassword      = fmt.Errorf("%w: current password is incorrect", ErrAuth)

	ErrContactsOnly     = fmt.Errorf("%w: recipient accepts messages from contacts only", ErrPrivacy)

	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
	ErrChatNotFound = fmt.Errorf("%w: chat", ErrNotFound)
)
