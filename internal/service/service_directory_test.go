// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-messenger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardIDs(cards []models.UserCard) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestSearch_MatchesUsernameAndNickname(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	maria := env.register(t, "Maria", "mary_k")
	env.clock.Advance(time.Minute)
	oleg := env.register(t, "Oleg Marin", "oleg")
	env.clock.Advance(time.Minute)
	anna := env.register(t, "Anna", "anna")

	res, err := env.svc.Directory.Search(ctx, anna.ID, "  MAR ")
	require.NoError(t, err)
	assert.Equal(t, models.SearchFound, res.Status)
	assert.Equal(t, []string{maria.ID, oleg.ID}, cardIDs(res.Users), "порядок: по времени регистрации")
}

func TestSearch_ExcludesRequester(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")

	res, err := env.svc.Directory.Search(context.Background(), anna.ID, "anna")
	require.NoError(t, err)
	assert.Equal(t, models.SearchNotFound, res.Status)
	assert.Empty(t, res.Users)
}

func TestSearch_DisabledIsDistinctFromNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "Oleg", "oleg")
	anna := env.register(t, "Anna", "anna")

	res, err := env.svc.Directory.Search(ctx, anna.ID, "zzz")
	require.NoError(t, err)
	assert.Equal(t, models.SearchNotFound, res.Status)

	require.NoError(t, env.svc.Settings.SavePrivacy(ctx, models.Nobody, models.Everyone, true, true))

	for _, term := range []string{"oleg", "zzz", ""} {
		res, err = env.svc.Directory.Search(ctx, anna.ID, term)
		require.NoError(t, err, term)
		assert.Equal(t, models.SearchDisabled, res.Status, term)
		assert.Empty(t, res.Users)
	}
}

func TestSearch_EmptyTerm(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")

	_, err := env.svc.Directory.Search(context.Background(), anna.ID, "   ")
	require.ErrorIs(t, err, ErrEmptySearchTerm)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSearch_NoRequester(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Directory.Search(context.Background(), "", "anna")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSearch_Discoverability(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	oleg := env.register(t, "Oleg", "oleg")
	require.NoError(t, env.svc.Settings.SavePrivacy(ctx, models.Contacts, models.Everyone, true, true))
	maria := env.register(t, "Maria", "maria")
	require.NoError(t, env.svc.Settings.SavePrivacy(ctx, models.Nobody, models.Everyone, true, true))

	anna := env.register(t, "Anna", "anna")
	// настройки клиента общие: возвращаем видимость для Анны
	require.NoError(t, env.svc.Settings.SavePrivacy(ctx, models.Everyone, models.Everyone, true, true))

	res, err := env.svc.Directory.Search(ctx, anna.ID, "oleg")
	require.NoError(t, err)
	assert.Equal(t, models.SearchNotFound, res.Status, "contacts: скрыт, пока нет чата")

	res, err = env.svc.Directory.Search(ctx, anna.ID, "maria")
	require.NoError(t, err)
	assert.NotContains(t, cardIDs(res.Users), maria.ID, "nobody: скрыт всегда")

	env.startChat(t, anna, oleg)
	assert.True(t, env.svc.Directory.AreContacts(anna.ID, oleg.ID))
	assert.True(t, env.svc.Directory.AreContacts(oleg.ID, anna.ID))

	res, err = env.svc.Directory.Search(ctx, anna.ID, "oleg")
	require.NoError(t, err)
	assert.Equal(t, []string{oleg.ID}, cardIDs(res.Users))

	res, err = env.svc.Directory.Search(ctx, anna.ID, "maria")
	require.NoError(t, err)
	assert.Equal(t, models.SearchNotFound, res.Status)
}

func TestSearch_ResultHasNoPassword(t *testing.T) {
	env := newTestEnv(t)
	oleg := env.register(t, "Oleg", "oleg")
	anna := env.register(t, "Anna", "anna")

	res, err := env.svc.Directory.Search(context.Background(), anna.ID, "oleg")
	require.NoError(t, err)
	require.Len(t, res.Users, 1)
	assert.Equal(t, oleg.Card(), res.Users[0])
}

func TestContactInfo(t *testing.T) {
	env := newTestEnv(t)
	oleg := env.register(t, "Oleg", "oleg")

	card, err := env.svc.Directory.ContactInfo(oleg.ID)
	require.NoError(t, err)
	assert.Equal(t, "oleg", card.Username)
	assert.Equal(t, baseTime, card.RegisteredAt)

	_, err = env.svc.Directory.ContactInfo("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}
