// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/models"
)

// NotificationFor maps an error returned by the services to the failure
// notification shown to the user. A nil error yields the zero Notification.
func NotificationFor(err error) models.Notification {
	switch {
	case err == nil:
		return models.Notification{}
	case errors.Is(err, ErrEmptyField):
		return models.Failure(app.MsgFillAllFields)
	case errors.Is(err, ErrEmptyMessage):
		return models.Failure(app.MsgEmptyMessage)
	case errors.Is(err, ErrEmptySearchTerm):
		return models.Failure(app.MsgEnterSearchTerm)
	case errors.Is(err, ErrSelfChat):
		return models.Failure(app.MsgSelfChat)
	case errors.Is(err, ErrInvalidSettings), errors.Is(err, ErrInvalidProfile):
		return models.Failure(app.MsgInvalidSettings)
	case errors.Is(err, ErrNotChatParticipant):
		return models.Failure(app.MsgNotParticipant)
	case errors.Is(err, ErrUsernameTaken):
		return models.Failure(app.MsgUsernameTaken)
	case errors.Is(err, ErrWrongPassword):
		return models.Failure(app.MsgWrongCurrentPassword)
	case errors.Is(err, ErrInvalidCredentials):
		return models.Failure(app.MsgInvalidCredentials)
	case errors.Is(err, ErrContactsOnly):
		return models.Failure(app.MsgContactsOnly)
	case errors.Is(err, ErrNotFound):
		return models.Failure(app.MsgNotFound)
	case errors.Is(err, ErrNoSession):
		return models.Failure(app.MsgNoSession)
	case errors.Is(err, ErrPersistence):
		return models.Failure(app.MsgStorageFailed)
	default:
		return models.Failure(app.MsgUnexpectedError)
	}
}
