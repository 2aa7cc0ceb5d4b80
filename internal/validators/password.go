// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// PasswordMinEntropyBits is the entropy below which a password is reported
// as weak. Weak passwords are still accepted.
const PasswordMinEntropyBits = 30

// PasswordHint returns a short advice when password is weak and "" otherwise.
func PasswordHint(password string) string {
	if password == "" {
		return ""
	}
	if err := passwordvalidator.Validate(password, PasswordMinEntropyBits); err != nil {
		return err.Error()
	}
	return ""
}
