// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-messenger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserAndSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, _, err := env.svc.Identity.Register(ctx, "  Anna K ", "  AnnaK ", "pw")
	require.NoError(t, err)

	assert.Equal(t, "Anna K", user.Nickname)
	assert.Equal(t, "annak", user.Username, "логин хранится в нижнем регистре")
	assert.Equal(t, models.DefaultAvatar, user.Avatar)
	assert.True(t, user.IsOnline)
	assert.Equal(t, baseTime, user.RegisteredAt)

	current, ok := env.svc.Identity.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)

	stored, err := env.repo.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	session, err := env.repo.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.ID)
}

func TestRegister_DuplicateUsernameAnyCase(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "Anna", "anna")

	for _, username := range []string{"anna", "ANNA", " Anna "} {
		_, _, err := env.svc.Identity.Register(ctx, "Other", username, "pw")
		require.ErrorIs(t, err, ErrUsernameTaken, username)
		assert.ErrorIs(t, err, ErrDuplicateUser)
	}

	stored, err := env.repo.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "дубликат не должен создавать пользователя")
}

func TestRegister_EmptyFields(t *testing.T) {
	tests := []struct {
		name     string
		nickname string
		username string
		password string
	}{
		{name: "empty nickname", nickname: "", username: "anna", password: "pw"},
		{name: "blank nickname", nickname: "   ", username: "anna", password: "pw"},
		{name: "blank username", nickname: "Anna", username: "  ", password: "pw"},
		{name: "empty password", nickname: "Anna", username: "anna", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, _, err := env.svc.Identity.Register(context.Background(), tt.nickname, tt.username, tt.password)
			require.ErrorIs(t, err, ErrEmptyField)
			assert.ErrorIs(t, err, ErrValidation)

			_, ok := env.svc.Identity.CurrentUser()
			assert.False(t, ok)
		})
	}
}

func TestRegister_WeakPasswordHint(t *testing.T) {
	env := newTestEnv(t)

	_, hint, err := env.svc.Identity.Register(context.Background(), "Anna", "anna", "123")
	require.NoError(t, err, "слабый пароль не блокирует регистрацию")
	assert.NotEmpty(t, hint)

	_, hint, err = env.svc.Identity.Register(context.Background(), "Oleg", "oleg", "correct-Horse-battery-st4ple")
	require.NoError(t, err)
	assert.Empty(t, hint)
}

func TestLogin_SeededUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	n, err := env.svc.Identity.SeedDemoUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	user, err := env.svc.Identity.Login(ctx, "anna", DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Username)
	assert.True(t, user.IsOnline)

	current, ok := env.svc.Identity.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLogin_UsernameIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.svc.Identity.SeedDemoUsers(ctx)
	require.NoError(t, err)

	// Олег засеян офлайн, логин переводит его в онлайн
	user, err := env.svc.Identity.Login(ctx, "OLEG", DemoPassword)
	require.NoError(t, err)
	assert.True(t, user.IsOnline)
}

func TestLogin_WrongPassword_LeavesStateUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.svc.Identity.SeedDemoUsers(ctx)
	require.NoError(t, err)

	before, err := env.repo.LoadUsers(ctx)
	require.NoError(t, err)

	_, err = env.svc.Identity.Login(ctx, "oleg", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrAuth)

	_, err = env.svc.Identity.Login(ctx, "nobody-here", DemoPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	after, err := env.repo.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	_, ok := env.svc.Identity.CurrentUser()
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna")

	require.NoError(t, env.svc.Identity.Logout(ctx))

	_, ok := env.svc.Identity.CurrentUser()
	assert.False(t, ok)

	card, err := env.svc.Directory.ContactInfo(anna.ID)
	require.NoError(t, err)
	assert.False(t, card.Online, "после выхода пользователь офлайн")

	session, err := env.repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	// повторный выход без сессии: no-op
	assert.NoError(t, env.svc.Identity.Logout(ctx))
}

func TestLogout_ClearsActiveChat(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	env.startChat(t, oleg, anna)

	_, ok := env.svc.Conversation.ActiveChat()
	require.True(t, ok)

	require.NoError(t, env.svc.Identity.Logout(context.Background()))

	_, ok = env.svc.Conversation.ActiveChat()
	assert.False(t, ok)
}

func TestRestoreSession_AcrossRestart(t *testing.T) {
	repo := newTestRepo()
	first := newTestEnvOnRepo(t, repo)
	anna := first.register(t, "Anna", "anna")

	second := newTestEnvOnRepo(t, repo)
	user, ok, err := second.svc.Identity.RestoreSession(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, anna.ID, user.ID)

	current, ok := second.svc.Identity.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, anna.ID, current.ID)
}

func TestRestoreSession_NoSession(t *testing.T) {
	env := newTestEnv(t)

	_, ok, err := env.svc.Identity.RestoreSession(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSeedDemoUsers_OnlyOnEmptyStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	n, err := env.svc.Identity.SeedDemoUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = env.svc.Identity.SeedDemoUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "повторный сид ничего не создаёт")

	users, err := env.repo.LoadUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "anna", users[0].Username)
	assert.Equal(t, "oleg", users[1].Username)
	assert.False(t, users[1].IsOnline)
	assert.Equal(t, "maria", users[2].Username)
	assert.Equal(t, "cat", users[2].Avatar)
}

func TestSeedDemoUsers_SkippedWhenUsersExist(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Anna", "anna")

	n, err := env.svc.Identity.SeedDemoUsers(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
