// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/store"
	"github.com/MKhiriev/go-messenger/internal/utils"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/stretchr/testify/require"
)

// baseTime: вторник, 10 марта 2026, полдень UTC.
var baseTime = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

const (
	testSeed1 uint64 = 42
	testSeed2 uint64 = 7
)

// seqIDs выдаёт предсказуемые идентификаторы id-1, id-2, ...
type seqIDs struct {
	n int
}

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type testEnv struct {
	svc   *ClientServices
	repo  store.RecordRepository
	clock *utils.FixedClock
	sched *utils.ManualScheduler
}

func newTestRepo() store.RecordRepository {
	return store.NewRecordRepository(store.NewMemoryStore(), "messenger_", logger.Nop())
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvOnRepo(t, newTestRepo())
}

func newTestEnvOnRepo(t *testing.T, repo store.RecordRepository) *testEnv {
	t.Helper()

	env := &testEnv{
		repo:  repo,
		clock: &utils.FixedClock{T: baseTime},
		sched: &utils.ManualScheduler{},
	}
	svc, err := NewClientServices(context.Background(), Options{
		Repo:      repo,
		Clock:     env.clock,
		Scheduler: env.sched,
		IDs:       &seqIDs{},
		Rand:      rand.New(rand.NewPCG(testSeed1, testSeed2)),
		Logger:    logger.Nop(),
	})
	require.NoError(t, err)
	env.svc = svc
	return env
}

// register создаёт пользователя; сессия переходит к нему.
func (e *testEnv) register(t *testing.T, nickname, username string) models.User {
	t.Helper()
	u, _, err := e.svc.Identity.Register(context.Background(), nickname, username, "s3cret-Passw0rd!")
	require.NoError(t, err)
	return u
}

func (e *testEnv) startChat(t *testing.T, a, b models.User) string {
	t.Helper()
	active, err := e.svc.Conversation.StartChat(context.Background(), a.ID, b.ID)
	require.NoError(t, err)
	return active.ChatID
}

func (e *testEnv) send(t *testing.T, chatID string, sender models.User, text string) models.Message {
	t.Helper()
	m, err := e.svc.Conversation.SendMessage(context.Background(), chatID, sender.ID, text)
	require.NoError(t, err)
	return m
}
