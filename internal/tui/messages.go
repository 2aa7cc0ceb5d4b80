// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/models"
)

// NavigateTo asks [RootModel] to switch pages. A non-nil Payload is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult is produced by the login and register pages.
type AuthResult struct {
	User       models.User
	Registered bool
	// Hint is the weak password advice of a registration.
	Hint string
	Err  error
}

// Authenticated reports whether a session exists after the call. A failed
// store write still leaves the user logged in.
func (r AuthResult) Authenticated() bool {
	if r.Err == nil {
		return true
	}
	return errors.Is(r.Err, service.ErrPersistence) && r.User.ID != ""
}

// Greeting is the first notification shown after authentication.
func (r AuthResult) Greeting() models.Notification {
	if r.Err != nil {
		return service.NotificationFor(r.Err)
	}
	if r.Registered {
		msg := app.MsgRegistered
		if r.Hint != "" {
			msg += " (" + r.Hint + ")"
		}
		return models.Success(msg)
	}
	return models.Success(fmt.Sprintf(app.MsgWelcomeFormat, r.User.Nickname))
}

// ErrorText returns the user-facing text of a failed result.
func (r AuthResult) ErrorText() string {
	return service.NotificationFor(r.Err).Message
}

// refreshTickMsg re-reads the core state so background presence and read
// receipts become visible.
type refreshTickMsg struct{}

// opDoneMsg carries the outcome of a service call made from a command.
type opDoneMsg struct {
	note models.Notification
	err  error
}

type chatOpenedMsg struct {
	active models.ActiveChat
	err    error
}

type searchDoneMsg struct {
	term   string
	result models.SearchResult
	err    error
}

type loggedOutMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
