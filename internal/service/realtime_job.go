// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-messenger/internal/logger"
)

// DefaultRealtimeInterval is used when Start gets a non-positive interval.
const DefaultRealtimeInterval = 3 * time.Second

type realtimeJob struct {
	presence PresenceService
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRealtimeJob creates a job that polls the active chat and ticks presence
// on a ticker. The job is idle until Start is called.
func NewRealtimeJob(presence PresenceService, log *logger.Logger) RealtimeJob {
	if log == nil {
		log = logger.Nop()
	}
	return &realtimeJob{presence: presence, logger: log}
}

// Start implements RealtimeJob. Every tick first polls the active chat and
// then toggles presence; errors are logged and the job keeps running.
func (j *realtimeJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRealtimeInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *realtimeJob) tick(ctx context.Context) {
	if err := j.presence.PollActiveChat(ctx); err != nil {
		j.logger.Err(err).Str("func", "*realtimeJob.tick").Msg("error polling active chat")
	}
	if err := j.presence.PresenceTick(ctx); err != nil {
		j.logger.Err(err).Str("func", "*realtimeJob.tick").Msg("error ticking presence")
	}
}

// Stop implements RealtimeJob. Safe to call when the job is not running.
func (j *realtimeJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
