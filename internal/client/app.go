// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/config"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/internal/tui"
	"github.com/MKhiriev/go-messenger/internal/workers"
	"github.com/MKhiriev/go-messenger/models"
)

// App is the messenger process: one session at a time, with the auth flow
// shown again after every logout.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wires the application. Demo users are seeded on an empty store
// when cfg enables it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || services == nil || ui == nil {
		return nil, errors.New("client app: config, services and ui are required")
	}
	if log == nil {
		log = logger.Nop()
	}

	if cfg.App.SeedDemoUsers {
		n, err := services.Identity.SeedDemoUsers(ctx)
		if err != nil {
			// the seeded users stay in memory
			log.Warn().Err(err).Msg("error persisting demo users")
		}
		if n > 0 {
			log.Info().Int("count", n).Msg("demo users seeded")
		}
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(services, cfg.Workers, log),
		logger:   log,
	}, nil
}

// Run blocks until the user quits. [tui.ErrUserQuit] is not an error.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run(ctx)
	defer a.workers.Stop()

	user, greeting, err := a.startSession(ctx, false)
	for err == nil {
		var logout bool
		logout, err = a.ui.MainLoop(ctx, user, greeting)
		if err != nil || !logout {
			break
		}
		a.logger.Info().Str("user_id", user.ID).Msg("user logged out")
		user, greeting, err = a.startSession(ctx, true)
	}

	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

// startSession restores the persisted session when there is one and runs
// the auth flow otherwise.
func (a *App) startSession(ctx context.Context, loggedOut bool) (models.User, models.Notification, error) {
	if !loggedOut {
		user, ok, err := a.services.Identity.RestoreSession(ctx)
		if err != nil {
			return models.User{}, models.Notification{}, fmt.Errorf("restore session: %w", err)
		}
		if ok {
			a.logger.Info().Str("user_id", user.ID).Msg("session restored")
			return user, models.Notification{}, nil
		}
	}

	return a.ui.AuthFlow(ctx, loggedOut)
}
