// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// Clock abstracts the wall clock so time-dependent rules can be tested with
// a fixed instant.
type Clock interface {
	Now() time.Time
}

// Scheduler runs deferred callbacks. Scheduled work is fire-and-forget:
// there is no cancellation.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// SystemClock is the [Clock] backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimerScheduler is the [Scheduler] backed by time.AfterFunc. Callbacks run
// on their own goroutine, so they must synchronize with the caller.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// FixedClock is a [Clock] that always reports the same instant until moved.
type FixedClock struct {
	T time.Time
}

func (c *FixedClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// ManualScheduler queues callbacks until Fire is called. It lets tests
// decide exactly when deferred work runs.
type ManualScheduler struct {
	pending []scheduled
}

type scheduled struct {
	delay time.Duration
	f     func()
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	s.pending = append(s.pending, scheduled{delay: d, f: f})
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Delays returns the delays of the queued callbacks in scheduling order.
func (s *ManualScheduler) Delays() []time.Duration {
	out := make([]time.Duration, 0, len(s.pending))
	for _, p := range s.pending {
		out = append(out, p.delay)
	}
	return out
}

// Fire runs and dequeues every queued callback in scheduling order.
func (s *ManualScheduler) Fire() {
	pending := s.pending
	s.pending = nil
	for _, p := range pending {
		p.f()
	}
}
