// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-messenger/internal/validators"
	"github.com/MKhiriev/go-messenger/models"
)

type settingsService struct {
	state *messengerState
}

func newSettingsService(state *messengerState) SettingsService {
	return &settingsService{state: state}
}

func (s *settingsService) Settings() models.Settings {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return s.state.settings
}

func (s *settingsService) SaveAppearance(ctx context.Context, theme models.Theme, textSize int, compact bool) error {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	next := st.settings
	next.Theme = theme
	next.TextSize = textSize
	next.CompactMode = compact

	if err := st.validator.Validate(ctx, next, validators.FieldTheme, validators.FieldTextSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	st.settings = next
	if err := st.persistSettings(ctx); err != nil {
		st.opLogger(ctx, "*settingsService.SaveAppearance").Err(err).Msg("error persisting settings")
		return err
	}
	return nil
}

// SavePrivacy stores the privacy group and mirrors discoverability and
// message privacy into the session user's record, where other users'
// searches and chat attempts read them.
func (s *settingsService) SavePrivacy(ctx context.Context, discoverability, messagePrivacy models.Visibility, readReceipts, onlineStatus bool) error {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*settingsService.SavePrivacy")

	next := st.settings
	next.Discoverability = discoverability.OrDefault()
	next.MessagePrivacy = messagePrivacy.OrDefault()
	next.ReadReceipts = readReceipts
	next.OnlineStatus = onlineStatus

	if err := st.validator.Validate(ctx, next, validators.FieldDiscoverability, validators.FieldMessagePrivacy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	st.settings = next
	errs := []error{st.persistSettings(ctx)}

	if st.session != nil {
		if i := st.userIndex(st.session.ID); i >= 0 {
			st.users[i].Settings = &models.UserSettings{
				Discoverability: next.Discoverability,
				MessagePrivacy:  next.MessagePrivacy,
			}
			errs = append(errs, st.persistUsers(ctx), st.refreshSession(ctx))
		}
	}

	if err := errors.Join(errs...); err != nil {
		log.Err(err).Msg("error persisting privacy settings")
		return err
	}
	log.Info().
		Str("discoverability", string(next.Discoverability)).
		Str("message_privacy", string(next.MessagePrivacy)).
		Msg("privacy settings saved")
	return nil
}

func (s *settingsService) DefaultPrivacy() models.Settings {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	defaults := models.DefaultSettings()
	out := s.state.settings
	out.Discoverability = defaults.Discoverability
	out.MessagePrivacy = defaults.MessagePrivacy
	out.ReadReceipts = defaults.ReadReceipts
	out.OnlineStatus = defaults.OnlineStatus
	return out
}

// UpdateProfile applies the non-blank fields of update to the session user.
func (s *settingsService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.session == nil {
		return models.User{}, ErrNoSession
	}

	update.Nickname = strings.TrimSpace(update.Nickname)
	if err := st.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	i := st.userIndex(st.session.ID)
	if i < 0 {
		return models.User{}, ErrUserNotFound
	}

	u := &st.users[i]
	changed := false
	if update.Nickname != "" && update.Nickname != u.Nickname {
		u.Nickname = update.Nickname
		changed = true
	}
	if update.Avatar != "" && update.Avatar != u.Avatar {
		u.Avatar = update.Avatar
		changed = true
	}
	if !changed {
		return *u, nil
	}

	if err := errors.Join(st.persistUsers(ctx), st.refreshSession(ctx)); err != nil {
		st.opLogger(ctx, "*settingsService.UpdateProfile").Err(err).Msg("error persisting profile")
		return *u, err
	}
	return *u, nil
}

func (s *settingsService) ChangePassword(ctx context.Context, change models.PasswordChange) (string, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*settingsService.ChangePassword")

	if st.session == nil {
		return "", ErrNoSession
	}

	i := st.userIndex(st.session.ID)
	if i < 0 {
		return "", ErrUserNotFound
	}
	if st.users[i].Password != change.Current {
		log.Warn().Msg("wrong current password")
		return "", ErrWrongPassword
	}
	if err := st.validator.Validate(ctx, change); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEmptyField, err)
	}

	st.users[i].Password = change.Next
	hint := validators.PasswordHint(change.Next)

	if err := errors.Join(st.persistUsers(ctx), st.refreshSession(ctx)); err != nil {
		log.Err(err).Msg("error persisting password")
		return hint, err
	}
	log.Info().Msg("password changed")
	return hint, nil
}
