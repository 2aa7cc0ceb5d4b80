// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-messenger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the durable byte-level store behind every record.
// Get returns [ErrRecordNotFound] for an absent key; Delete of an absent key
// is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// RecordRepository reads and writes the named messenger records as JSON.
// A missing record loads as its default (empty list, default settings,
// no session) and never as an error.
type RecordRepository interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error

	LoadChats(ctx context.Context) ([]models.Chat, error)
	SaveChats(ctx context.Context, chats []models.Chat) error

	LoadMessages(ctx context.Context) ([]models.Message, error)
	SaveMessages(ctx context.Context, messages []models.Message) error

	LoadSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error

	LoadSession(ctx context.Context) (*models.User, error)
	SaveSession(ctx context.Context, user models.User) error
	ClearSession(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
