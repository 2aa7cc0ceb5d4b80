// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/store"
	"github.com/MKhiriev/go-messenger/internal/utils"
	"github.com/MKhiriev/go-messenger/internal/validators"
	"github.com/MKhiriev/go-messenger/models"
)

// DefaultReadReceiptDelay is used when [Options.ReadReceiptDelay] is zero.
const DefaultReadReceiptDelay = time.Second

// IDGenerator issues identifiers for users, chats and messages.
type IDGenerator interface {
	Generate() string
}

// Options configures [NewClientServices]. Only Repo is required.
type Options struct {
	Repo      store.RecordRepository
	Validator validators.Validator
	Clock     utils.Clock
	Scheduler utils.Scheduler
	IDs       IDGenerator
	Rand      *rand.Rand
	Logger    *logger.Logger

	// ReadReceiptDelay is how long after a send the peer "reads" it.
	ReadReceiptDelay time.Duration
}

// messengerState is the single application context shared by all services.
// Every exported service method takes mu for its whole run, so operations,
// scheduled callbacks and realtime ticks never interleave. Helpers with a
// lowercase name expect mu to be held.
type messengerState struct {
	mu sync.Mutex

	repo      store.RecordRepository
	validator validators.Validator
	clock     utils.Clock
	scheduler utils.Scheduler
	ids       IDGenerator
	rng       *rand.Rand
	log       *logger.Logger

	readReceiptDelay time.Duration

	users    []models.User
	chats    []models.Chat
	messages []models.Message
	settings models.Settings
	session  *models.User
	active   *models.ActiveChat
}

func newMessengerState(ctx context.Context, opts Options) (*messengerState, error) {
	s := &messengerState{
		repo:             opts.Repo,
		validator:        opts.Validator,
		clock:            opts.Clock,
		scheduler:        opts.Scheduler,
		ids:              opts.IDs,
		rng:              opts.Rand,
		log:              opts.Logger,
		readReceiptDelay: opts.ReadReceiptDelay,
	}
	if s.validator == nil {
		s.validator = validators.NewMessengerValidator()
	}
	if s.clock == nil {
		s.clock = utils.SystemClock{}
	}
	if s.scheduler == nil {
		s.scheduler = utils.TimerScheduler{}
	}
	if s.ids == nil {
		s.ids = utils.NewUUIDGenerator()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.readReceiptDelay <= 0 {
		s.readReceiptDelay = DefaultReadReceiptDelay
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads every record from the store. Absent records are defaults.
func (s *messengerState) load(ctx context.Context) error {
	var err error
	if s.users, err = s.repo.LoadUsers(ctx); err != nil {
		return fmt.Errorf("error loading users: %w", err)
	}
	if s.chats, err = s.repo.LoadChats(ctx); err != nil {
		return fmt.Errorf("error loading chats: %w", err)
	}
	if s.messages, err = s.repo.LoadMessages(ctx); err != nil {
		return fmt.Errorf("error loading messages: %w", err)
	}
	if s.settings, err = s.repo.LoadSettings(ctx); err != nil {
		return fmt.Errorf("error loading settings: %w", err)
	}
	if s.session, err = s.repo.LoadSession(ctx); err != nil {
		return fmt.Errorf("error loading session: %w", err)
	}

	s.log.Debug().
		Int("users", len(s.users)).
		Int("chats", len(s.chats)).
		Int("messages", len(s.messages)).
		Bool("session", s.session != nil).
		Msg("messenger state loaded")
	return nil
}

func (s *messengerState) now() time.Time {
	return s.clock.Now()
}

func (s *messengerState) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *messengerState) userByID(id string) (models.User, bool) {
	if i := s.userIndex(id); i >= 0 {
		return s.users[i], true
	}
	return models.User{}, false
}

func (s *messengerState) userIndexByUsername(username string) int {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Username, username) {
			return i
		}
	}
	return -1
}

func (s *messengerState) chatIndex(id string) int {
	for i := range s.chats {
		if s.chats[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *messengerState) chatBetween(a, b string) int {
	for i := range s.chats {
		if s.chats[i].Connects(a, b) {
			return i
		}
	}
	return -1
}

// areContacts is the only notion of "contact": a chat exists for the pair.
func (s *messengerState) areContacts(a, b string) bool {
	return s.chatBetween(a, b) >= 0
}

// sessionUser returns the live record of the session user, falling back to
// the stored snapshot when the user is gone from the list.
func (s *messengerState) sessionUser() (models.User, bool) {
	if s.session == nil {
		return models.User{}, false
	}
	if u, ok := s.userByID(s.session.ID); ok {
		return u, true
	}
	return *s.session, true
}

func (s *messengerState) isSessionUser(id string) bool {
	return s.session != nil && s.session.ID == id
}

// discoverabilityOf returns the policy applied to userID as a searcher. The
// session user is governed by the client settings; others by their own
// overrides.
func (s *messengerState) discoverabilityOf(userID string) models.Visibility {
	if s.isSessionUser(userID) {
		return s.settings.Discoverability.OrDefault()
	}
	if u, ok := s.userByID(userID); ok {
		return u.Discoverability()
	}
	return models.Everyone
}

func (s *messengerState) persistUsers(ctx context.Context) error {
	if err := s.repo.SaveUsers(ctx, s.users); err != nil {
		return fmt.Errorf("%w: users: %w", ErrPersistence, err)
	}
	return nil
}

func (s *messengerState) persistChats(ctx context.Context) error {
	if err := s.repo.SaveChats(ctx, s.chats); err != nil {
		return fmt.Errorf("%w: chats: %w", ErrPersistence, err)
	}
	return nil
}

func (s *messengerState) persistMessages(ctx context.Context) error {
	if err := s.repo.SaveMessages(ctx, s.messages); err != nil {
		return fmt.Errorf("%w: messages: %w", ErrPersistence, err)
	}
	return nil
}

func (s *messengerState) persistSettings(ctx context.Context) error {
	if err := s.repo.SaveSettings(ctx, s.settings); err != nil {
		return fmt.Errorf("%w: settings: %w", ErrPersistence, err)
	}
	return nil
}

// establishSession makes user the session and persists the snapshot.
func (s *messengerState) establishSession(ctx context.Context, user models.User) error {
	snapshot := user
	s.session = &snapshot
	if err := s.repo.SaveSession(ctx, snapshot); err != nil {
		return fmt.Errorf("%w: session: %w", ErrPersistence, err)
	}
	return nil
}

// refreshSession rewrites the snapshot after the session user's record
// changed.
func (s *messengerState) refreshSession(ctx context.Context) error {
	if s.session == nil {
		return nil
	}
	u, ok := s.userByID(s.session.ID)
	if !ok {
		return nil
	}
	return s.establishSession(ctx, u)
}

func (s *messengerState) clearSession(ctx context.Context) error {
	s.session = nil
	s.active = nil
	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("%w: session: %w", ErrPersistence, err)
	}
	return nil
}

// opLogger returns the context logger tagged with the operation name and, if
// present, the acting user.
func (s *messengerState) opLogger(ctx context.Context, op string) *logger.Logger {
	l := s.log.With().Str("func", op)
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		l = l.Str("user_id", userID)
	}
	return &logger.Logger{Logger: l.Logger()}
}
