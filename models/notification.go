// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Severity classifies a notification for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is a transient message surfaced to the user.
type Notification struct {
	Message  string
	Severity Severity
}

// Success builds a success notification.
func Success(msg string) Notification {
	return Notification{Message: msg, Severity: SeveritySuccess}
}

// Info builds an informational notification.
func Info(msg string) Notification {
	return Notification{Message: msg, Severity: SeverityInfo}
}

// Failure builds an error notification.
func Failure(msg string) Notification {
	return Notification{Message: msg, Severity: SeverityError}
}
