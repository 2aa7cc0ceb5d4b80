// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
)

// presenceFlipThreshold is exceeded by roughly three draws in ten.
const presenceFlipThreshold = 0.7

type presenceService struct {
	state *messengerState
}

func newPresenceService(state *messengerState) PresenceService {
	return &presenceService{state: state}
}

// PresenceTick simulates other users going on and offline. It does nothing
// without a session.
func (s *presenceService) PresenceTick(ctx context.Context) error {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.session == nil {
		return nil
	}

	flipped := 0
	for i := range st.users {
		u := &st.users[i]
		if u.ID == st.session.ID {
			continue
		}
		if st.rng.Float64() > presenceFlipThreshold {
			u.IsOnline = !u.IsOnline
			flipped++
		}
	}

	if st.active != nil {
		if peer, ok := st.userByID(st.active.PeerID); ok {
			st.active.PeerOnline = peer.IsOnline
		}
	}

	if err := st.persistUsers(ctx); err != nil {
		st.opLogger(ctx, "*presenceService.PresenceTick").Err(err).Msg("error persisting presence")
		return err
	}
	st.log.Debug().Int("flipped", flipped).Msg("presence tick")
	return nil
}

// PollActiveChat marks a freshly arrived message of the open chat as read.
func (s *presenceService) PollActiveChat(ctx context.Context) error {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.session == nil || st.active == nil {
		return nil
	}
	_, err := st.markIncomingRead(ctx, st.active.ChatID, st.session.ID)
	return err
}
