// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/go-messenger/models"
)

type directoryService struct {
	state *messengerState
}

func newDirectoryService(state *messengerState) DirectoryService {
	return &directoryService{state: state}
}

// Search returns [models.SearchDisabled] whenever the requester is hidden
// from everyone, before the term is even looked at. Matches are ordered by
// registration time; users registered at the same instant keep their
// collection order.
func (s *directoryService) Search(ctx context.Context, requesterID, term string) (models.SearchResult, error) {
	st := s.state
	st.mu.Lock()
	defer st.mu.Unlock()
	log := st.opLogger(ctx, "*directoryService.Search")

	if requesterID == "" {
		return models.SearchResult{}, ErrNoSession
	}

	if st.discoverabilityOf(requesterID) == models.Nobody {
		log.Debug().Msg("search disabled by requester discoverability")
		return models.SearchResult{Status: models.SearchDisabled, Users: []models.UserCard{}}, nil
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return models.SearchResult{}, ErrEmptySearchTerm
	}

	candidates := slices.Clone(st.users)
	slices.SortStableFunc(candidates, func(a, b models.User) int {
		return a.RegisteredAt.Compare(b.RegisteredAt)
	})

	found := make([]models.UserCard, 0)
	for _, u := range candidates {
		if u.ID == requesterID || !matches(u, needle) {
			continue
		}
		if !st.visibleTo(u, requesterID) {
			continue
		}
		found = append(found, u.Card())
	}

	log.Debug().Str("term", needle).Int("found", len(found)).Msg("search finished")
	if len(found) == 0 {
		return models.SearchResult{Status: models.SearchNotFound, Users: found}, nil
	}
	return models.SearchResult{Status: models.SearchFound, Users: found}, nil
}

func matches(u models.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.Username), needle) ||
		strings.Contains(strings.ToLower(u.Nickname), needle)
}

// visibleTo applies the candidate's discoverability to requesterID.
func (s *messengerState) visibleTo(candidate models.User, requesterID string) bool {
	switch candidate.Discoverability() {
	case models.Everyone:
		return true
	case models.Contacts:
		return s.areContacts(requesterID, candidate.ID)
	default:
		return false
	}
}

func (s *directoryService) AreContacts(a, b string) bool {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return s.state.areContacts(a, b)
}

func (s *directoryService) ContactInfo(userID string) (models.ContactCard, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	u, ok := s.state.userByID(userID)
	if !ok {
		return models.ContactCard{}, ErrUserNotFound
	}
	return models.ContactCard{UserCard: u.Card(), RegisteredAt: u.RegisteredAt}, nil
}
