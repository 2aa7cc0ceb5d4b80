// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message is a single chat message. Only Read ever changes after creation.
type Message struct {
	ID     string `json:"id"`
	ChatID string `json:"chatId"`

	SenderID string `json:"senderId"`
	// SenderName is the sender's nickname at send time.
	SenderName string `json:"senderName"`

	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
