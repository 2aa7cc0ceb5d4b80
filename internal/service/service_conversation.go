// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-messenger/models"
)

type conversationService struct {
	state *messengerState
}

func newConversationService(state *messengerState) ConversationService {
	return &conversationService{state: state}
}

// StartChat applies the target's message privacy before looking for a chat.
// Under "contacts" a first chat can never be created, because being contacts
// means a chat already exists. Only "contacts" restricts StartChat.
func (s *conversationService) StartChat(ctx context.Context, requesterID, targetID string) (models.ActiveChat, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*conversationService.StartChat")

	if requesterID == "" {
		return models.ActiveChat{}, ErrNoSession
	}
	if requesterID == targetID {
		return models.ActiveChat{}, ErrSelfChat
	}

	target, ok := st.userByID(targetID)
	if !ok {
		log.Warn().Str("target_id", targetID).Msg("chat target not found")
		return models.ActiveChat{}, ErrUserNotFound
	}

	if target.MessagePrivacy() == models.Contacts && !st.areContacts(requesterID, targetID) {
		return models.ActiveChat{}, ErrContactsOnly
	}

	var persistErr error
	i := st.chatBetween(requesterID, targetID)
	if i < 0 {
		st.chats = append(st.chats, models.Chat{
			ID:        st.ids.Generate(),
			User1ID:   requesterID,
			User2ID:   targetID,
			CreatedAt: st.now(),
		})
		i = len(st.chats) - 1
		log.Info().Str("chat_id", st.chats[i].ID).Msg("chat created")
		persistErr = st.persistChats(ctx)
	}

	active := models.NewActiveChat(st.chats[i].ID, target)
	if st.isSessionUser(requesterID) {
		st.active = &active
	}

	if persistErr != nil {
		log.Err(persistErr).Msg("error persisting chats")
	}
	return active, persistErr
}

func (s *conversationService) OpenChat(ctx context.Context, chatID string) (models.ActiveChat, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.session == nil {
		return models.ActiveChat{}, ErrNoSession
	}

	i := st.chatIndex(chatID)
	if i < 0 || !st.chats[i].HasParticipant(st.session.ID) {
		return models.ActiveChat{}, ErrChatNotFound
	}

	peer, ok := st.userByID(st.chats[i].PeerOf(st.session.ID))
	if !ok {
		st.opLogger(ctx, "*conversationService.OpenChat").Warn().Str("chat_id", chatID).Msg("chat peer not found")
		return models.ActiveChat{}, ErrUserNotFound
	}

	active := models.NewActiveChat(chatID, peer)
	st.active = &active
	return active, nil
}

func (s *conversationService) ActiveChat() (models.ActiveChat, bool) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.active == nil {
		return models.ActiveChat{}, false
	}
	return *s.state.active, true
}

func (s *conversationService) CloseChat() {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.active = nil
}

func (s *conversationService) SendMessage(ctx context.Context, chatID, senderID, text string) (models.Message, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*conversationService.SendMessage")

	draft := models.MessageDraft{Text: strings.TrimSpace(text)}
	if err := st.validator.Validate(ctx, draft); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrEmptyMessage, err)
	}

	i := st.chatIndex(chatID)
	if i < 0 {
		log.Warn().Str("chat_id", chatID).Msg("send to a missing chat ignored")
		return models.Message{}, nil
	}
	if !st.chats[i].HasParticipant(senderID) {
		return models.Message{}, ErrNotChatParticipant
	}

	sender, ok := st.userByID(senderID)
	if !ok {
		if !st.isSessionUser(senderID) {
			return models.Message{}, ErrUserNotFound
		}
		sender = *st.session
	}

	sentAt := st.now()
	msg := models.Message{
		ID:         st.ids.Generate(),
		ChatID:     chatID,
		SenderID:   senderID,
		SenderName: sender.Nickname,
		Text:       draft.Text,
		Timestamp:  sentAt,
		Read:       false,
	}
	st.messages = append(st.messages, msg)

	last := msg.Text
	st.chats[i].LastMessage = &last
	st.chats[i].LastMessageTime = &sentAt

	st.scheduler.AfterFunc(st.readReceiptDelay, func() {
		s.deliverReadReceipt(chatID, senderID)
	})

	if err := errors.Join(st.persistMessages(ctx), st.persistChats(ctx)); err != nil {
		log.Err(err).Msg("error persisting message")
		return msg, err
	}
	return msg, nil
}

// deliverReadReceipt stands in for the peer reading the chat: every unread
// message of senderID in chatID becomes read. It runs detached from any
// caller, so a vanished chat or sender is ignored.
func (s *conversationService) deliverReadReceipt(chatID, senderID string) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	changed := 0
	for i := range st.messages {
		m := &st.messages[i]
		if m.ChatID == chatID && m.SenderID == senderID && !m.Read {
			m.Read = true
			changed++
		}
	}
	if changed == 0 {
		return
	}

	if err := st.persistMessages(context.Background()); err != nil {
		st.log.Err(err).Str("func", "*conversationService.deliverReadReceipt").Msg("error persisting read receipt")
		return
	}
	st.log.Debug().Str("chat_id", chatID).Int("read", changed).Msg("read receipt delivered")
}

func (s *conversationService) ListMessages(chatID string) []models.Message {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return s.state.chatMessages(chatID)
}

// chatMessages returns the messages of chatID by ascending timestamp, ties
// in insertion order.
func (s *messengerState) chatMessages(chatID string) []models.Message {
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Message) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out
}

// MarkIncomingRead inspects only the latest message, so an unread burst is
// consumed one message per call.
func (s *conversationService) MarkIncomingRead(ctx context.Context, chatID, userID string) (bool, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.markIncomingRead(ctx, chatID, userID)
}

func (s *messengerState) markIncomingRead(ctx context.Context, chatID, userID string) (bool, error) {
	latest := -1
	for i := range s.messages {
		m := s.messages[i]
		if m.ChatID != chatID {
			continue
		}
		if latest < 0 || !m.Timestamp.Before(s.messages[latest].Timestamp) {
			latest = i
		}
	}
	if latest < 0 {
		return false, nil
	}

	m := &s.messages[latest]
	if m.SenderID == userID || m.Read {
		return false, nil
	}
	m.Read = true

	if err := s.persistMessages(ctx); err != nil {
		s.opLogger(ctx, "markIncomingRead").Err(err).Msg("error persisting messages")
		return true, err
	}
	return true, nil
}
