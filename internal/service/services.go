// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
)

// ClientServices bundles the messenger services. All of them share one
// in-memory state loaded from the store at construction.
type ClientServices struct {
	Identity     IdentityService
	Directory    DirectoryService
	Conversation ConversationService
	ChatList     ChatListService
	Presence     PresenceService
	Settings     SettingsService
	RealtimeJob  RealtimeJob
}

// NewClientServices loads the persisted state through opts.Repo and wires
// every service on top of it.
func NewClientServices(ctx context.Context, opts Options) (*ClientServices, error) {
	if opts.Repo == nil {
		return nil, errors.New("service: record repository is required")
	}

	state, err := newMessengerState(ctx, opts)
	if err != nil {
		return nil, err
	}

	presence := newPresenceService(state)
	return &ClientServices{
		Identity:     newIdentityService(state),
		Directory:    newDirectoryService(state),
		Conversation: newConversationService(state),
		ChatList:     newChatListService(state),
		Presence:     presence,
		Settings:     newSettingsService(state),
		RealtimeJob:  NewRealtimeJob(presence, state.log.WithComponent("realtime")),
	}, nil
}
