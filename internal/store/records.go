// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/models"
)

// Record names as they appear in the store, before the namespace prefix.
const (
	RecordUsers       = "users"
	RecordMessages    = "messages"
	RecordChats       = "chats"
	RecordSettings    = "settings"
	RecordCurrentUser = "currentUser"
)

// recordRepository is the JSON-over-[KeyValueStore] implementation of
// [RecordRepository]. Every key is prefixed with namespace.
type recordRepository struct {
	kv        KeyValueStore
	namespace string
	logger    *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] over kv.
func NewRecordRepository(kv KeyValueStore, namespace string, log *logger.Logger) RecordRepository {
	log.Debug().Str("namespace", namespace).Msg("creating record repository")
	return &recordRepository{
		kv:        kv,
		namespace: namespace,
		logger:    log,
	}
}

func (r *recordRepository) key(name string) string {
	return r.namespace + name
}

// load decodes the record stored under name into dst. found is false when
// the record is absent, in which case dst is untouched.
func (r *recordRepository) load(ctx context.Context, name string, dst any) (found bool, err error) {
	raw, err := r.kv.Get(ctx, r.key(name))
	if errors.Is(err, ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*recordRepository.load").Str("record", name).Msg("error reading record")
		return false, fmt.Errorf("error reading %s: %w", name, err)
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		r.logger.Err(err).Str("func", "*recordRepository.load").Str("record", name).Msg("error decoding record")
		return false, fmt.Errorf("%w %s: %w", ErrDecodingRecord, name, err)
	}

	return true, nil
}

func (r *recordRepository) save(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrEncodingRecord, name, err)
	}

	if err = r.kv.Put(ctx, r.key(name), raw); err != nil {
		r.logger.Err(err).Str("func", "*recordRepository.save").Str("record", name).Msg("error writing record")
		return fmt.Errorf("error writing %s: %w", name, err)
	}

	return nil
}

func (r *recordRepository) LoadUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if _, err := r.load(ctx, RecordUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	return users, nil
}

func (r *recordRepository) SaveUsers(ctx context.Context, users []models.User) error {
	return r.save(ctx, RecordUsers, nonNil(users))
}

func (r *recordRepository) LoadChats(ctx context.Context) ([]models.Chat, error) {
	chats := make([]models.Chat, 0)
	if _, err := r.load(ctx, RecordChats, &chats); err != nil {
		return nil, err
	}
	if chats == nil {
		chats = make([]models.Chat, 0)
	}
	return chats, nil
}

func (r *recordRepository) SaveChats(ctx context.Context, chats []models.Chat) error {
	return r.save(ctx, RecordChats, nonNil(chats))
}

func (r *recordRepository) LoadMessages(ctx context.Context) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	if _, err := r.load(ctx, RecordMessages, &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = make([]models.Message, 0)
	}
	return messages, nil
}

func (r *recordRepository) SaveMessages(ctx context.Context, messages []models.Message) error {
	return r.save(ctx, RecordMessages, nonNil(messages))
}

// LoadSettings decodes over the defaults, so fields missing from an older
// record keep their default values.
func (r *recordRepository) LoadSettings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()
	if _, err := r.load(ctx, RecordSettings, &settings); err != nil {
		return models.DefaultSettings(), err
	}
	return settings, nil
}

func (r *recordRepository) SaveSettings(ctx context.Context, settings models.Settings) error {
	return r.save(ctx, RecordSettings, settings)
}

func (r *recordRepository) LoadSession(ctx context.Context) (*models.User, error) {
	var user *models.User
	found, err := r.load(ctx, RecordCurrentUser, &user)
	if err != nil || !found {
		return nil, err
	}
	return user, nil
}

func (r *recordRepository) SaveSession(ctx context.Context, user models.User) error {
	return r.save(ctx, RecordCurrentUser, user)
}

func (r *recordRepository) ClearSession(ctx context.Context) error {
	if err := r.kv.Delete(ctx, r.key(RecordCurrentUser)); err != nil {
		r.logger.Err(err).Str("func", "*recordRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("error clearing %s: %w", RecordCurrentUser, err)
	}
	return nil
}

// nonNil makes nil slices encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
