// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/stretchr/testify/assert"
)

func TestNotificationFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.Notification
	}{
		{name: "nil", err: nil, want: models.Notification{}},
		{name: "empty field", err: fmt.Errorf("%w: nickname", ErrEmptyField), want: models.Failure(app.MsgFillAllFields)},
		{name: "empty message", err: ErrEmptyMessage, want: models.Failure(app.MsgEmptyMessage)},
		{name: "empty search", err: ErrEmptySearchTerm, want: models.Failure(app.MsgEnterSearchTerm)},
		{name: "self chat", err: ErrSelfChat, want: models.Failure(app.MsgSelfChat)},
		{name: "settings", err: ErrInvalidSettings, want: models.Failure(app.MsgInvalidSettings)},
		{name: "username taken", err: ErrUsernameTaken, want: models.Failure(app.MsgUsernameTaken)},
		{name: "credentials", err: ErrInvalidCredentials, want: models.Failure(app.MsgInvalidCredentials)},
		{name: "wrong password", err: ErrWrongPassword, want: models.Failure(app.MsgWrongCurrentPassword)},
		{name: "contacts only", err: ErrContactsOnly, want: models.Failure(app.MsgContactsOnly)},
		{name: "user not found", err: ErrUserNotFound, want: models.Failure(app.MsgNotFound)},
		{name: "chat not found", err: ErrChatNotFound, want: models.Failure(app.MsgNotFound)},
		{name: "no session", err: ErrNoSession, want: models.Failure(app.MsgNoSession)},
		{name: "persistence", err: fmt.Errorf("%w: users: %w", ErrPersistence, errDiskFull), want: models.Failure(app.MsgStorageFailed)},
		{name: "unknown", err: errors.New("boom"), want: models.Failure(app.MsgUnexpectedError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NotificationFor(tt.err)
			assert.Equal(t, tt.want, got)
			if tt.err != nil {
				assert.Equal(t, models.SeverityError, got.Severity)
			}
		})
	}
}
