// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNickname        = errors.New("nickname is required")
	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyMessageText     = errors.New("message text is required")
	ErrInvalidTheme         = errors.New("invalid theme")
	ErrInvalidTextSize      = errors.New("text size out of range")
	ErrInvalidVisibility    = errors.New("invalid visibility")
	ErrInvalidAvatar        = errors.New("unknown avatar")
	ErrEmptyCurrentPassword = errors.New("current password is required")
)
