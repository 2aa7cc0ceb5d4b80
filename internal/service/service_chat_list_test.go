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

func TestProjectChatList_LastMessageAndUnread(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	chatID := env.startChat(t, anna, oleg)

	env.send(t, chatID, anna, "hi")
	env.clock.Advance(time.Minute)
	env.send(t, chatID, oleg, "yo")

	annaView := env.svc.ChatList.ProjectChatList(anna.ID)
	require.Len(t, annaView, 1)
	assert.Equal(t, "yo", annaView[0].LastMessageLabel, "без префикса: написал Олег")
	assert.Equal(t, 1, annaView[0].UnreadCount)
	assert.Equal(t, oleg.ID, annaView[0].Peer.ID)
	assert.Equal(t, "12:01", annaView[0].TimeLabel)

	olegView := env.svc.ChatList.ProjectChatList(oleg.ID)
	require.Len(t, olegView, 1)
	assert.Equal(t, OwnMessagePrefix+"yo", olegView[0].LastMessageLabel)
	assert.Equal(t, 1, olegView[0].UnreadCount)
}

func TestProjectChatList_UnreadNeverCountsOwnMessages(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	maria := env.register(t, "Maria", "maria")
	withOleg := env.startChat(t, anna, oleg)
	withMaria := env.startChat(t, maria, anna)

	for i := 0; i < 3; i++ {
		env.send(t, withOleg, anna, "from anna")
	}
	env.send(t, withOleg, oleg, "from oleg")
	env.send(t, withMaria, maria, "from maria")
	env.send(t, withMaria, maria, "from maria again")

	for _, viewer := range []models.User{anna, oleg, maria} {
		for _, summary := range env.svc.ChatList.ProjectChatList(viewer.ID) {
			want := 0
			for _, m := range env.svc.Conversation.ListMessages(summary.ChatID) {
				if !m.Read && m.SenderID != viewer.ID {
					want++
				}
			}
			assert.Equal(t, want, summary.UnreadCount, "%s / %s", viewer.Username, summary.ChatID)
		}
	}

	env.sched.Fire()
	for _, summary := range env.svc.ChatList.ProjectChatList(anna.ID) {
		assert.Zero(t, summary.UnreadCount)
	}
}

func TestProjectChatList_EmptyChat(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	env.startChat(t, anna, oleg)

	view := env.svc.ChatList.ProjectChatList(anna.ID)
	require.Len(t, view, 1)
	assert.Equal(t, NoMessagesLabel, view[0].LastMessageLabel)
	assert.Empty(t, view[0].TimeLabel)
	assert.Zero(t, view[0].UnreadCount)
}

func TestProjectChatList_Ordering(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	maria := env.register(t, "Maria", "maria")

	withOleg := env.startChat(t, anna, oleg)
	env.clock.Advance(time.Minute)
	withMaria := env.startChat(t, anna, maria)

	view := env.svc.ChatList.ProjectChatList(anna.ID)
	require.Len(t, view, 2)
	assert.Equal(t, withMaria, view[0].ChatID, "без сообщений сортировка по времени создания")

	env.clock.Advance(time.Minute)
	env.send(t, withOleg, oleg, "ping")

	view = env.svc.ChatList.ProjectChatList(anna.ID)
	require.Len(t, view, 2)
	assert.Equal(t, withOleg, view[0].ChatID)
	assert.Equal(t, withMaria, view[1].ChatID)
	assert.Equal(t, 2, env.svc.ChatList.ChatCount(anna.ID))
	assert.Equal(t, 1, env.svc.ChatList.ChatCount(oleg.ID))
}

func TestProjectChatList_ActiveFlag(t *testing.T) {
	env := newTestEnv(t)
	anna := env.register(t, "Anna", "anna")
	oleg := env.register(t, "Oleg", "oleg")
	chatID := env.startChat(t, oleg, anna)

	view := env.svc.ChatList.ProjectChatList(oleg.ID)
	require.Len(t, view, 1)
	assert.Equal(t, chatID, view[0].ChatID)
	assert.True(t, view[0].Active)
}

func TestProjectChatList_SkipsUnknownPeer(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	require.NoError(t, repo.SaveUsers(ctx, []models.User{{ID: "anna", Nickname: "Anna", Username: "anna"}}))
	require.NoError(t, repo.SaveChats(ctx, []models.Chat{
		{ID: "c1", User1ID: "anna", User2ID: "ghost", CreatedAt: baseTime},
	}))

	env := newTestEnvOnRepo(t, repo)

	assert.Empty(t, env.svc.ChatList.ProjectChatList("anna"))
	assert.Equal(t, 1, env.svc.ChatList.ChatCount("anna"))
}

func TestTimeLabel(t *testing.T) {
	now := baseTime

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "now", t: now, want: "12:00"},
		{name: "earlier today", t: now.Add(-3 * time.Hour), want: "09:00"},
		{name: "one full day", t: now.Add(-24 * time.Hour), want: YesterdayLabel},
		{name: "three days", t: now.Add(-3 * 24 * time.Hour), want: "Sat"},
		{name: "six days", t: now.Add(-6 * 24 * time.Hour), want: "Wed"},
		{name: "ten days", t: now.Add(-10 * 24 * time.Hour), want: "28.02"},
		{name: "future", t: now.Add(time.Hour), want: "13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeLabel(tt.t, now))
		})
	}
}
