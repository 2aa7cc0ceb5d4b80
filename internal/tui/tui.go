// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/internal/utils"
	"github.com/MKhiriev/go-messenger/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: log}
}

// AuthFlow runs the menu, login and register pages until a user is
// authenticated. The returned notification greets that user. loggedOut
// shows the logout notice on the menu.
func (t *TUI) AuthFlow(ctx context.Context, loggedOut bool) (models.User, models.Notification, error) {
	menu := NewMenuModel()
	if loggedOut {
		menu.Update(LoggedOutNotice{})
	}

	pages := map[string]tea.Model{
		pageMenu:     menu,
		pageLogin:    NewLoginModel(ctx, t.services.Identity),
		pageRegister: NewRegisterModel(ctx, t.services.Identity),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, models.Notification{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, models.Notification{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, models.Notification{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.user.ID).Msg("user authenticated")
	return result.user, result.greeting, nil
}

// MainLoop runs the messenger screens for user. logout reports whether the
// user logged out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, user models.User, greeting models.Notification) (logout bool, err error) {
	ctx = utils.WithUserID(ctx, user.ID)
	model := newMainLoopModel(ctx, t.services, user, greeting)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
