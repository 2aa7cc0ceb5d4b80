// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-messenger/models"
)

const (
	// OwnMessagePrefix marks a last message sent by the viewer.
	OwnMessagePrefix = "You: "
	// NoMessagesLabel is shown for chats without messages.
	NoMessagesLabel = "No messages yet"
	// YesterdayLabel is the time label of a message one day old.
	YesterdayLabel = "Yesterday"
)

type chatListService struct {
	state *messengerState
}

func newChatListService(state *messengerState) ChatListService {
	return &chatListService{state: state}
}

// ProjectChatList returns the chats of userID, most recently active first.
// Chats whose peer is unknown are skipped.
func (s *chatListService) ProjectChatList(userID string) []models.ChatSummary {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	summaries := make([]models.ChatSummary, 0)
	for _, chat := range st.chats {
		if !chat.HasParticipant(userID) {
			continue
		}
		peer, ok := st.userByID(chat.PeerOf(userID))
		if !ok {
			continue
		}

		summary := models.ChatSummary{
			ChatID:           chat.ID,
			Peer:             peer.Card(),
			LastMessageLabel: NoMessagesLabel,
			SortTime:         chat.ActivityTime(),
			Active:           st.active != nil && st.active.ChatID == chat.ID,
		}

		var last *models.Message
		for i := range st.messages {
			m := &st.messages[i]
			if m.ChatID != chat.ID {
				continue
			}
			last = m
			if !m.Read && m.SenderID != userID {
				summary.UnreadCount++
			}
		}
		if last != nil {
			summary.LastMessageLabel = last.Text
			if last.SenderID == userID {
				summary.LastMessageLabel = OwnMessagePrefix + last.Text
			}
		}
		if chat.LastMessageTime != nil {
			summary.TimeLabel = TimeLabel(*chat.LastMessageTime, now)
		}

		summaries = append(summaries, summary)
	}

	slices.SortStableFunc(summaries, func(a, b models.ChatSummary) int {
		return b.SortTime.Compare(a.SortTime)
	})
	return summaries
}

func (s *chatListService) ChatCount(userID string) int {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	n := 0
	for _, chat := range s.state.chats {
		if chat.HasParticipant(userID) {
			n++
		}
	}
	return n
}

// TimeLabel buckets t by whole days elapsed until now: the clock time on
// day zero, [YesterdayLabel] on day one, the short weekday up to a week and
// day.month after that.
func TimeLabel(t, now time.Time) string {
	days := int(now.Sub(t) / (24 * time.Hour))
	switch {
	case days <= 0:
		return t.Format("15:04")
	case days == 1:
		return YesterdayLabel
	case days < 7:
		return t.Format("Mon")
	default:
		return t.Format("02.01")
	}
}
