// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-messenger/models"
)

const (
	FieldNickname        = "nickname"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldText            = "text"
	FieldTheme           = "theme"
	FieldTextSize        = "text_size"
	FieldDiscoverability = "discoverability"
	FieldMessagePrivacy  = "message_privacy"
	FieldAvatar          = "avatar"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)

// MessengerValidator validates user input of the messenger forms.
type MessengerValidator struct {
}

func NewMessengerValidator() Validator {
	return &MessengerValidator{}
}

// Validate checks obj. When fields are given only those fields are checked;
// a field name the type does not know yields [ErrUnknownField].
func (v *MessengerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	case models.MessageDraft:
		return v.validateMessageDraft(ctx, value, fields...)
	case *models.MessageDraft:
		return v.validateMessageDraft(ctx, *value, fields...)

	case models.Settings:
		return v.validateSettings(ctx, value, fields...)
	case *models.Settings:
		return v.validateSettings(ctx, *value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(ctx, *value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(ctx, value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// fieldCheck binds a field name to its rule.
type fieldCheck struct {
	name  string
	check func() error
}

// runChecks runs every check (or only the requested fields) and joins the
// failures.
func runChecks(checks []fieldCheck, fields ...string) error {
	if len(fields) == 0 {
		var errs []error
		for _, c := range checks {
			if err := c.check(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	var errs []error
	for _, field := range fields {
		idx := slices.IndexFunc(checks, func(c fieldCheck) bool { return c.name == field })
		if idx < 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
			continue
		}
		if err := checks[idx].check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *MessengerValidator) validateRegistration(_ context.Context, r models.Registration, fields ...string) error {
	return runChecks([]fieldCheck{
		{FieldNickname, func() error {
			if blank(r.Nickname) {
				return ErrEmptyNickname
			}
			return nil
		}},
		{FieldUsername, func() error {
			if blank(r.Username) {
				return ErrEmptyUsername
			}
			return nil
		}},
		{FieldPassword, func() error {
			if r.Password == "" {
				return ErrEmptyPassword
			}
			return nil
		}},
	}, fields...)
}

func (v *MessengerValidator) validateMessageDraft(_ context.Context, d models.MessageDraft, fields ...string) error {
	return runChecks([]fieldCheck{
		{FieldText, func() error {
			if blank(d.Text) {
				return ErrEmptyMessageText
			}
			return nil
		}},
	}, fields...)
}

func (v *MessengerValidator) validateSettings(_ context.Context, s models.Settings, fields ...string) error {
	return runChecks([]fieldCheck{
		{FieldTheme, func() error {
			if !s.Theme.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidTheme, s.Theme)
			}
			return nil
		}},
		{FieldTextSize, func() error {
			if s.TextSize < models.MinTextSize || s.TextSize > models.MaxTextSize {
				return fmt.Errorf("%w: %d", ErrInvalidTextSize, s.TextSize)
			}
			return nil
		}},
		{FieldDiscoverability, func() error {
			if !s.Discoverability.Valid() {
				return fmt.Errorf("%w: discoverability %q", ErrInvalidVisibility, s.Discoverability)
			}
			return nil
		}},
		{FieldMessagePrivacy, func() error {
			if !s.MessagePrivacy.Valid() {
				return fmt.Errorf("%w: message privacy %q", ErrInvalidVisibility, s.MessagePrivacy)
			}
			return nil
		}},
	}, fields...)
}

// validateProfileUpdate accepts blank values, which keep the current ones.
func (v *MessengerValidator) validateProfileUpdate(_ context.Context, p models.ProfileUpdate, fields ...string) error {
	return runChecks([]fieldCheck{
		{FieldNickname, func() error { return nil }},
		{FieldAvatar, func() error {
			if p.Avatar != "" && !slices.Contains(models.Avatars, p.Avatar) {
				return fmt.Errorf("%w: %q", ErrInvalidAvatar, p.Avatar)
			}
			return nil
		}},
	}, fields...)
}

func (v *MessengerValidator) validatePasswordChange(_ context.Context, p models.PasswordChange, fields ...string) error {
	return runChecks([]fieldCheck{
		{FieldCurrentPassword, func() error {
			if p.Current == "" {
				return ErrEmptyCurrentPassword
			}
			return nil
		}},
		{FieldNewPassword, func() error {
			if p.Next == "" {
				return ErrEmptyPassword
			}
			return nil
		}},
	}, fields...)
}
