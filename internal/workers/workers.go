// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the messenger client.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewRealtimeWorker(services.RealtimeJob, cfg.PollInterval, log),
	}}
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// realtimeWorker drives the presence and new-message polling job.
type realtimeWorker struct {
	job      service.RealtimeJob
	interval time.Duration
	logger   *logger.Logger
}

func NewRealtimeWorker(job service.RealtimeJob, interval time.Duration, log *logger.Logger) Worker {
	return &realtimeWorker{job: job, interval: interval, logger: log}
}

func (w *realtimeWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("starting realtime worker")
	w.job.Start(ctx, w.interval)
}

func (w *realtimeWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Msg("realtime worker stopped")
}
