// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-messenger/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	unreadStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	ownBubbleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	peerBubbleStyle = lipgloss.NewStyle()
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// avatarGlyphs renders avatar tags in a terminal.
var avatarGlyphs = map[string]string{
	models.DefaultAvatar: "👤",
	"user-tie":           "👔",
	"user-astronaut":     "🧑‍🚀",
	"user-ninja":         "🥷",
	"cat":                "🐱",
	"dog":                "🐶",
	"robot":              "🤖",
	"ghost":              "👻",
}

func avatarGlyph(tag string) string {
	if g, ok := avatarGlyphs[tag]; ok {
		return g
	}
	return avatarGlyphs[models.DefaultAvatar]
}

func noteStyle(s models.Severity) lipgloss.Style {
	switch s {
	case models.SeverityError:
		return errorStyle
	case models.SeveritySuccess:
		return successStyle
	default:
		return infoStyle
	}
}
