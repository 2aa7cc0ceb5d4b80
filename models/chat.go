// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Chat is a one-to-one conversation between two users. The pair
// {User1ID, User2ID} is unordered and unique across all chats.
type Chat struct {
	ID      string `json:"id"`
	User1ID string `json:"user1Id"`
	User2ID string `json:"user2Id"`

	CreatedAt time.Time `json:"createdAt"`

	// LastMessage is the text of the most recently sent message, nil until
	// the first send.
	LastMessage *string `json:"lastMessage"`

	// LastMessageTime is the send time of LastMessage.
	LastMessageTime *time.Time `json:"lastMessageTime"`
}

// HasParticipant reports whether userID is one of the two chat members.
func (c Chat) HasParticipant(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// Connects reports whether the chat joins a and b, in either order.
func (c Chat) Connects(a, b string) bool {
	return (c.User1ID == a && c.User2ID == b) || (c.User1ID == b && c.User2ID == a)
}

// PeerOf returns the other participant of the chat.
func (c Chat) PeerOf(userID string) string {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}

// ActivityTime is the moment the chat list is ordered by: the last message
// time, or the creation time for chats without messages.
func (c Chat) ActivityTime() time.Time {
	if c.LastMessageTime != nil {
		return *c.LastMessageTime
	}
	return c.CreatedAt
}

// ActiveChat is the conversation currently open in the client together
// with a cached snapshot of the peer.
type ActiveChat struct {
	ChatID       string `json:"chatId"`
	PeerID       string `json:"peerId"`
	PeerNickname string `json:"peerNickname"`
	PeerUsername string `json:"peerUsername"`
	PeerAvatar   string `json:"peerAvatar"`
	PeerOnline   bool   `json:"peerOnline"`
}

// NewActiveChat builds the active chat view of chatID with peer.
func NewActiveChat(chatID string, peer User) ActiveChat {
	return ActiveChat{
		ChatID:       chatID,
		PeerID:       peer.ID,
		PeerNickname: peer.Nickname,
		PeerUsername: peer.Username,
		PeerAvatar:   peer.AvatarOrDefault(),
		PeerOnline:   peer.IsOnline,
	}
}

// ChatSummary is one projected row of the chat list.
type ChatSummary struct {
	ChatID           string
	Peer             UserCard
	LastMessageLabel string
	TimeLabel        string
	UnreadCount      int
	Active           bool
	SortTime         time.Time
}
