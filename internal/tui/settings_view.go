// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsSection int

const (
	sectionProfile settingsSection = iota
	sectionAppearance
	sectionPrivacy
)

func (s settingsSection) title() string {
	switch s {
	case sectionProfile:
		return "Profile"
	case sectionAppearance:
		return "Appearance"
	default:
		return "Privacy"
	}
}

type settingsRowKind int

const (
	rowInput settingsRowKind = iota
	rowChoice
	rowToggle
)

// Row order of the settings form.
const (
	rowNickname = iota
	rowAvatar
	rowCurrentPassword
	rowNewPassword
	rowTheme
	rowTextSize
	rowCompact
	rowDiscoverability
	rowMessagePrivacy
	rowReadReceipts
	rowOnlineStatus
)

type settingsRow struct {
	label   string
	section settingsSection
	kind    settingsRowKind

	input   textinput.Model
	options []string
	choice  int
	on      bool
}

func (r settingsRow) value() string {
	switch r.kind {
	case rowInput:
		return r.input.Value()
	case rowChoice:
		return r.options[r.choice]
	default:
		return strconv.FormatBool(r.on)
	}
}

type settingsModel struct {
	rows  []settingsRow
	focus int
}

var visibilityOptions = []string{string(models.Everyone), string(models.Contacts), string(models.Nobody)}

func newSettingsModel(user models.User, s models.Settings) settingsModel {
	textSizes := make([]string, 0, models.MaxTextSize-models.MinTextSize+1)
	for size := models.MinTextSize; size <= models.MaxTextSize; size++ {
		textSizes = append(textSizes, strconv.Itoa(size))
	}

	nickname := newSettingsInput("nickname", false)
	nickname.SetValue(user.Nickname)

	m := settingsModel{rows: []settingsRow{
		rowNickname:        {label: "Nickname", section: sectionProfile, kind: rowInput, input: nickname},
		rowAvatar:          choiceRow("Avatar", sectionProfile, models.Avatars, user.AvatarOrDefault()),
		rowCurrentPassword: {label: "Current password", section: sectionProfile, kind: rowInput, input: newSettingsInput("current password", true)},
		rowNewPassword:     {label: "New password", section: sectionProfile, kind: rowInput, input: newSettingsInput("new password", true)},
		rowTheme: choiceRow("Theme", sectionAppearance,
			[]string{string(models.ThemeLight), string(models.ThemeDark), string(models.ThemeAuto)}, string(s.Theme)),
		rowTextSize:        choiceRow("Text size", sectionAppearance, textSizes, strconv.Itoa(s.TextSize)),
		rowCompact:         {label: "Compact mode", section: sectionAppearance, kind: rowToggle, on: s.CompactMode},
		rowDiscoverability: choiceRow("Who can find me", sectionPrivacy, visibilityOptions, string(s.Discoverability.OrDefault())),
		rowMessagePrivacy:  choiceRow("Who can message me", sectionPrivacy, visibilityOptions, string(s.MessagePrivacy.OrDefault())),
		rowReadReceipts:    {label: "Read receipts", section: sectionPrivacy, kind: rowToggle, on: s.ReadReceipts},
		rowOnlineStatus:    {label: "Show online status", section: sectionPrivacy, kind: rowToggle, on: s.OnlineStatus},
	}}
	m.rows[rowNickname].input.Focus()
	return m
}

func newSettingsInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 64
	in.Width = 30
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func choiceRow(label string, section settingsSection, options []string, current string) settingsRow {
	choice := slices.Index(options, current)
	if choice < 0 {
		choice = 0
	}
	return settingsRow{label: label, section: section, kind: rowChoice, options: options, choice: choice}
}

func (s *settingsModel) move(delta int) {
	if s.rows[s.focus].kind == rowInput {
		s.rows[s.focus].input.Blur()
	}
	s.focus = (s.focus + delta + len(s.rows)) % len(s.rows)
	if s.rows[s.focus].kind == rowInput {
		s.rows[s.focus].input.Focus()
	}
}

func (s *settingsModel) cycle(delta int) {
	r := &s.rows[s.focus]
	r.choice = (r.choice + delta + len(r.options)) % len(r.options)
}

func (s *settingsModel) updateFocused(msg tea.Msg) tea.Cmd {
	if len(s.rows) == 0 || s.rows[s.focus].kind != rowInput {
		return nil
	}
	var cmd tea.Cmd
	s.rows[s.focus].input, cmd = s.rows[s.focus].input.Update(msg)
	return cmd
}

// applyPrivacy shows p in the privacy rows without saving it.
func (s *settingsModel) applyPrivacy(p models.Settings) {
	s.rows[rowDiscoverability].choice = max(slices.Index(visibilityOptions, string(p.Discoverability)), 0)
	s.rows[rowMessagePrivacy].choice = max(slices.Index(visibilityOptions, string(p.MessagePrivacy)), 0)
	s.rows[rowReadReceipts].on = p.ReadReceipts
	s.rows[rowOnlineStatus].on = p.OnlineStatus
}

func (s settingsModel) View() string {
	var b strings.Builder
	section := settingsSection(-1)
	for i, r := range s.rows {
		if r.section != section {
			section = r.section
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(titleStyle.Render(section.title()))
			b.WriteString("\n")
		}

		cursor := "  "
		if i == s.focus {
			cursor = "> "
		}

		var value string
		switch r.kind {
		case rowInput:
			value = "[" + r.input.View() + "]"
		case rowChoice:
			value = "‹ " + r.options[r.choice] + " ›"
			if i == rowAvatar {
				value = "‹ " + avatarGlyph(r.options[r.choice]) + " " + r.options[r.choice] + " ›"
			}
		case rowToggle:
			value = "[ ]"
			if r.on {
				value = "[x]"
			}
		}

		b.WriteString(fmt.Sprintf("%s%-20s │ %s\n", cursor, r.label, value))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.settings.rows[m.settings.focus]

	switch {
	case key.Matches(msg, keys.esc):
		m.pane = paneChats
		return m, nil
	case key.Matches(msg, keys.up), key.Matches(msg, keys.backtab):
		m.settings.move(-1)
		return m, nil
	case key.Matches(msg, keys.down), key.Matches(msg, keys.tab):
		m.settings.move(1)
		return m, nil
	case key.Matches(msg, keys.reset):
		m.settings.applyPrivacy(m.services.Settings.DefaultPrivacy())
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.cmdSaveSettings(row.section)
	case row.kind == rowChoice && key.Matches(msg, keys.left):
		m.settings.cycle(-1)
		return m, nil
	case row.kind == rowChoice && key.Matches(msg, keys.right):
		m.settings.cycle(1)
		return m, nil
	case row.kind == rowToggle && key.Matches(msg, keys.toggle):
		m.settings.rows[m.settings.focus].on = !row.on
		return m, nil
	}

	return m, m.settings.updateFocused(msg)
}

// cmdSaveSettings saves the section of the form the cursor is in.
func (m *mainLoopModel) cmdSaveSettings(section settingsSection) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings
	rows := slices.Clone(m.settings.rows)
	user := m.user

	if section == sectionProfile {
		// passwords are single-use input
		m.settings.rows[rowCurrentPassword].input.SetValue("")
		m.settings.rows[rowNewPassword].input.SetValue("")
	}

	switch section {
	case sectionProfile:
		return func() tea.Msg {
			var notes []string
			nickname := strings.TrimSpace(rows[rowNickname].value())
			avatar := rows[rowAvatar].value()

			updated, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Nickname: nickname, Avatar: avatar})
			if err != nil {
				return opDoneMsg{err: err}
			}
			if updated.Nickname != user.Nickname {
				notes = append(notes, app.MsgNicknameUpdated)
			}
			if updated.Avatar != user.Avatar {
				notes = append(notes, app.MsgAvatarUpdated)
			}

			current, next := rows[rowCurrentPassword].value(), rows[rowNewPassword].value()
			if current != "" && next != "" {
				hint, err := svc.ChangePassword(ctx, models.PasswordChange{Current: current, Next: next})
				if err != nil {
					return opDoneMsg{err: err}
				}
				msg := app.MsgPasswordChanged
				if hint != "" {
					msg += " (" + hint + ")"
				}
				notes = append(notes, msg)
			}

			if len(notes) == 0 {
				return opDoneMsg{}
			}
			return opDoneMsg{note: models.Success(strings.Join(notes, "; "))}
		}
	case sectionAppearance:
		return func() tea.Msg {
			size, _ := strconv.Atoi(rows[rowTextSize].value())
			err := svc.SaveAppearance(ctx, models.Theme(rows[rowTheme].value()), size, rows[rowCompact].on)
			if err != nil {
				return opDoneMsg{err: err}
			}
			return opDoneMsg{note: models.Success(app.MsgAppearanceSaved)}
		}
	default:
		return func() tea.Msg {
			err := svc.SavePrivacy(ctx,
				models.Visibility(rows[rowDiscoverability].value()),
				models.Visibility(rows[rowMessagePrivacy].value()),
				rows[rowReadReceipts].on,
				rows[rowOnlineStatus].on,
			)
			if err != nil {
				return opDoneMsg{err: err}
			}
			return opDoneMsg{note: models.Success(app.MsgPrivacySaved)}
		}
	}
}
