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

type identityService struct {
	state *messengerState
}

func newIdentityService(state *messengerState) IdentityService {
	return &identityService{state: state}
}

func (s *identityService) Register(ctx context.Context, nickname, username, password string) (models.User, string, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*identityService.Register")

	reg := models.Registration{
		Nickname: strings.TrimSpace(nickname),
		Username: strings.ToLower(strings.TrimSpace(username)),
		Password: password,
	}
	if err := st.validator.Validate(ctx, reg); err != nil {
		return models.User{}, "", fmt.Errorf("%w: %w", ErrEmptyField, err)
	}

	if st.userIndexByUsername(reg.Username) >= 0 {
		log.Info().Str("username", reg.Username).Msg("registration rejected: username taken")
		return models.User{}, "", ErrUsernameTaken
	}

	user := models.User{
		ID:           st.ids.Generate(),
		Nickname:     reg.Nickname,
		Username:     reg.Username,
		Password:     reg.Password,
		Avatar:       models.DefaultAvatar,
		RegisteredAt: st.now(),
		IsOnline:     true,
	}
	st.users = append(st.users, user)
	log.Info().Str("username", user.Username).Str("user_id", user.ID).Msg("user registered")

	hint := validators.PasswordHint(password)

	// the session is established in memory even when a write fails
	if err := errors.Join(st.persistUsers(ctx), st.establishSession(ctx, user)); err != nil {
		log.Err(err).Msg("error persisting registration")
		return user, hint, err
	}

	return user, hint, nil
}

func (s *identityService) Login(ctx context.Context, username, password string) (models.User, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*identityService.Login")

	i := st.userIndexByUsername(strings.TrimSpace(username))
	if i < 0 || st.users[i].Password != password {
		log.Info().Str("username", username).Msg("login rejected")
		return models.User{}, ErrInvalidCredentials
	}

	st.users[i].IsOnline = true
	user := st.users[i]
	log.Info().Str("user_id", user.ID).Msg("user logged in")

	if err := errors.Join(st.persistUsers(ctx), st.establishSession(ctx, user)); err != nil {
		log.Err(err).Msg("error persisting login")
		return user, err
	}

	return user, nil
}

func (s *identityService) Logout(ctx context.Context) error {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*identityService.Logout")

	if st.session == nil {
		return nil
	}

	var usersErr error
	if i := st.userIndex(st.session.ID); i >= 0 {
		st.users[i].IsOnline = false
		usersErr = st.persistUsers(ctx)
	}
	log.Info().Str("user_id", st.session.ID).Msg("user logged out")

	if err := errors.Join(usersErr, st.clearSession(ctx)); err != nil {
		log.Err(err).Msg("error persisting logout")
		return err
	}
	return nil
}

func (s *identityService) RestoreSession(ctx context.Context) (models.User, bool, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	user, ok := st.sessionUser()
	if !ok {
		return models.User{}, false, nil
	}
	snapshot := user
	st.session = &snapshot

	st.opLogger(ctx, "*identityService.RestoreSession").Debug().Str("user_id", user.ID).Msg("session restored")
	return user, true, nil
}

func (s *identityService) CurrentUser() (models.User, bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return s.state.sessionUser()
}

// demoUsers are created on an empty store. Their passwords are "123".
var demoUsers = []struct {
	nickname string
	username string
	avatar   string
	online   bool
}{
	{nickname: "Anna", username: "anna", avatar: models.DefaultAvatar, online: true},
	{nickname: "Oleg", username: "oleg", avatar: "user-tie", online: false},
	{nickname: "Maria", username: "maria", avatar: "cat", online: true},
}

// DemoPassword is the password of every seeded demo user.
const DemoPassword = "123"

func (s *identityService) SeedDemoUsers(ctx context.Context) (int, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.users) > 0 {
		return 0, nil
	}

	now := st.now()
	for _, d := range demoUsers {
		st.users = append(st.users, models.User{
			ID:           st.ids.Generate(),
			Nickname:     d.nickname,
			Username:     d.username,
			Password:     DemoPassword,
			Avatar:       d.avatar,
			RegisteredAt: now,
			IsOnline:     d.online,
		})
	}
	st.opLogger(ctx, "*identityService.SeedDemoUsers").Info().Int("count", len(demoUsers)).Msg("demo users seeded")

	return len(demoUsers), st.persistUsers(ctx)
}
