// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyPresence считает вызовы и запоминает их порядок.
type spyPresence struct {
	polls atomic.Int64
	ticks atomic.Int64
	err   error

	mu    sync.Mutex
	order []string
}

func (s *spyPresence) PresenceTick(_ context.Context) error {
	s.ticks.Add(1)
	s.record("presence")
	return s.err
}

func (s *spyPresence) PollActiveChat(_ context.Context) error {
	s.polls.Add(1)
	s.record("poll")
	return s.err
}

func (s *spyPresence) record(step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = append(s.order, step)
}

func TestNewRealtimeJob_ReturnsInterface(t *testing.T) {
	job := NewRealtimeJob(&spyPresence{}, nil)
	require.NotNil(t, job)

	var _ RealtimeJob = job
}

func TestRealtimeJob_Start_Ticks(t *testing.T) {
	spy := &spyPresence{}
	job := NewRealtimeJob(spy, nil)

	// Интервал 10ms: за 55ms должно быть ~5 тиков
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.ticks.Load(), int64(3))
	assert.Equal(t, spy.polls.Load(), spy.ticks.Load(), "каждый тик делает и poll, и presence")
}

func TestRealtimeJob_PollRunsBeforePresence(t *testing.T) {
	spy := &spyPresence{}
	job := NewRealtimeJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	spy.mu.Lock()
	defer spy.mu.Unlock()
	require.NotEmpty(t, spy.order)
	for i := 0; i+1 < len(spy.order); i += 2 {
		assert.Equal(t, "poll", spy.order[i])
		assert.Equal(t, "presence", spy.order[i+1])
	}
}

func TestRealtimeJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyPresence{}
	job := NewRealtimeJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := spy.ticks.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, afterStop, spy.ticks.Load(), "после Stop новых тиков быть не должно")
}

func TestRealtimeJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRealtimeJob(&spyPresence{}, nil)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRealtimeJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRealtimeJob(&spyPresence{}, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRealtimeJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyPresence{}
	job := NewRealtimeJob(spy, nil)

	// interval <= 0 → дефолт 3 секунды, за 20ms тиков нет
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.ticks.Load())
}

func TestRealtimeJob_Restart_KeepsTicking(t *testing.T) {
	spy := &spyPresence{}
	job := NewRealtimeJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	before := spy.ticks.Load()
	assert.Greater(t, before, int64(0))

	// Start повторно на том же job: внутри вызовет Stop()
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.ticks.Load(), before)
}

func TestRealtimeJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewRealtimeJob(&spyPresence{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestRealtimeJob_Errors_DoNotStopJob(t *testing.T) {
	spy := &spyPresence{err: assert.AnError}
	job := NewRealtimeJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.ticks.Load(), int64(3))
}
