// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceTick_DeterministicWithSeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	maria := env.register(t, "Maria", "maria")

	// тот же сид, что и у сервиса: повторяем розыгрыш для Анны и Олега
	rng := rand.New(rand.NewPCG(testSeed1, testSeed2))
	expected := map[string]bool{}
	for _, id := range []string{anna.ID, oleg.ID} {
		expected[id] = !(rng.Float64() > presenceFlipThreshold)
	}

	require.NoError(t, env.svc.Presence.PresenceTick(ctx))

	for id, online := range expected {
		card, err := env.svc.Directory.ContactInfo(id)
		require.NoError(t, err)
		assert.Equal(t, online, card.Online, id)
	}

	self, err := env.svc.Directory.ContactInfo(maria.ID)
	require.NoError(t, err)
	assert.True(t, self.Online, "пользователь сессии не переключается")

	stored, err := env.repo.LoadUsers(ctx)
	require.NoError(t, err)
	for _, u := range stored {
		if want, ok := expected[u.ID]; ok {
			assert.Equal(t, want, u.IsOnline)
		}
	}
}

func TestPresenceTick_RefreshesActiveChatPeer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	env.startChat(t, oleg, anna)

	for i := 0; i < 20; i++ {
		require.NoError(t, env.svc.Presence.PresenceTick(ctx))

		card, err := env.svc.Directory.ContactInfo(anna.ID)
		require.NoError(t, err)
		active, ok := env.svc.Conversation.ActiveChat()
		require.True(t, ok)
		assert.Equal(t, card.Online, active.PeerOnline)
	}
}

func TestPresenceTick_NoSessionIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna")
	require.NoError(t, env.svc.Identity.Logout(ctx))

	for i := 0; i < 10; i++ {
		require.NoError(t, env.svc.Presence.PresenceTick(ctx))
	}

	card, err := env.svc.Directory.ContactInfo(anna.ID)
	require.NoError(t, err)
	assert.False(t, card.Online)
}

func TestPollActiveChat_MarksIncoming(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	chatID := env.startChat(t, oleg, anna)

	env.send(t, chatID, anna, "first")
	env.clock.Advance(time.Second)
	env.send(t, chatID, anna, "second")

	require.NoError(t, env.svc.Presence.PollActiveChat(ctx))

	list := env.svc.Conversation.ListMessages(chatID)
	require.Len(t, list, 2)
	assert.False(t, list[0].Read)
	assert.True(t, list[1].Read)
}

func TestPollActiveChat_WithoutActiveChat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	chatID := env.startChat(t, oleg, anna)
	env.send(t, chatID, anna, "hi")
	env.svc.Conversation.CloseChat()

	require.NoError(t, env.svc.Presence.PollActiveChat(ctx))

	list := env.svc.Conversation.ListMessages(chatID)
	require.Len(t, list, 1)
	assert.False(t, list[0].Read)
}
