// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneChats pane = iota
	paneConversation
	paneSearch
	paneSettings
	paneContact
)

const (
	refreshInterval = time.Second
	statusTTL       = 3 * time.Second

	// transcriptTail is how many of the latest messages the conversation
	// pane shows.
	transcriptTail = 20
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	pane    pane
	chats   []models.ChatSummary
	chatIdx int

	active     models.ActiveChat
	hasActive  bool
	transcript []models.Message
	composer   textinput.Model

	searchInput  textinput.Model
	searchTerm   string
	searchResult models.SearchResult
	searchIdx    int

	settings settingsModel
	contact  models.ContactCard

	note    models.Notification
	noteSeq int
	logout  bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User, greeting models.Notification) mainLoopModel {
	composer := textinput.New()
	composer.Placeholder = "Type a message..."
	composer.CharLimit = 1000
	composer.Width = 60

	searchInput := textinput.New()
	searchInput.Placeholder = "name or @username"
	searchInput.CharLimit = 64
	searchInput.Width = 40

	m := mainLoopModel{
		ctx:         ctx,
		services:    services,
		user:        user,
		composer:    composer,
		searchInput: searchInput,
		note:        greeting,
	}
	m.reload()
	if m.hasActive {
		m.pane = paneConversation
		m.composer.Focus()
	}
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	cmds := []tea.Cmd{cmdRefreshTick()}
	if m.note.Message != "" {
		cmds = append(cmds, cmdClearStatus(m.noteSeq))
	}
	return tea.Batch(cmds...)
}

// reload re-reads everything the screens project from the core.
func (m *mainLoopModel) reload() {
	if u, ok := m.services.Identity.CurrentUser(); ok {
		m.user = u
	}

	m.chats = m.services.ChatList.ProjectChatList(m.user.ID)
	if m.chatIdx >= len(m.chats) {
		m.chatIdx = len(m.chats) - 1
	}
	if m.chatIdx < 0 {
		m.chatIdx = 0
	}

	m.active, m.hasActive = m.services.Conversation.ActiveChat()
	if m.hasActive {
		m.transcript = m.services.Conversation.ListMessages(m.active.ChatID)
	} else {
		m.transcript = nil
		if m.pane == paneConversation || m.pane == paneContact {
			m.pane = paneChats
		}
	}
}

func (m *mainLoopModel) setNote(n models.Notification) tea.Cmd {
	m.noteSeq++
	m.note = n
	return cmdClearStatus(m.noteSeq)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshTickMsg:
		m.reload()
		return m, cmdRefreshTick()
	case clearStatusMsg:
		if msg.seq == m.noteSeq {
			m.note = models.Notification{}
		}
		return m, nil
	case opDoneMsg:
		m.reload()
		if msg.err != nil {
			cmd := m.setNote(service.NotificationFor(msg.err))
			return m, cmd
		}
		if msg.note.Message != "" {
			cmd := m.setNote(msg.note)
			return m, cmd
		}
		return m, nil
	case chatOpenedMsg:
		if msg.err != nil {
			cmd := m.setNote(service.NotificationFor(msg.err))
			return m, cmd
		}
		m.pane = paneConversation
		m.searchInput.Blur()
		m.composer.Focus()
		m.reload()
		return m, textinput.Blink
	case searchDoneMsg:
		return m.applySearch(msg)
	case loggedOutMsg:
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInput(msg)
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.pane {
	case paneChats:
		return m.updateChats(keyMsg)
	case paneConversation:
		return m.updateConversation(keyMsg)
	case paneSearch:
		return m.updateSearch(keyMsg)
	case paneSettings:
		return m.updateSettings(keyMsg)
	case paneContact:
		return m.updateContact(keyMsg)
	}
	return m, nil
}

// forwardToInput passes non-key messages such as cursor blinks to the
// focused input.
func (m mainLoopModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.pane {
	case paneConversation:
		m.composer, cmd = m.composer.Update(msg)
	case paneSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case paneSettings:
		cmd = m.settings.updateFocused(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateChats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.chatIdx > 0 {
			m.chatIdx--
		}
	case key.Matches(msg, keys.down):
		if m.chatIdx < len(m.chats)-1 {
			m.chatIdx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.chats) == 0 {
			return m, nil
		}
		return m, m.cmdOpenChat(m.chats[m.chatIdx].ChatID)
	case key.Matches(msg, keys.newChat):
		m.pane = paneSearch
		m.searchInput.SetValue("")
		m.searchTerm = ""
		m.searchResult = models.SearchResult{}
		m.searchIdx = 0
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.settings):
		m.pane = paneSettings
		m.settings = newSettingsModel(m.user, m.services.Settings.Settings())
		return m, textinput.Blink
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) updateConversation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.services.Conversation.CloseChat()
		m.composer.Blur()
		m.pane = paneChats
		m.reload()
		return m, nil
	case key.Matches(msg, keys.contact):
		card, err := m.services.Directory.ContactInfo(m.active.PeerID)
		if err != nil {
			cmd := m.setNote(service.NotificationFor(err))
			return m, cmd
		}
		m.contact = card
		m.composer.Blur()
		m.pane = paneContact
		return m, nil
	case key.Matches(msg, keys.enter):
		text := m.composer.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.composer.SetValue("")
		return m, m.cmdSend(m.active.ChatID, text)
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.searchInput.Blur()
		m.pane = paneChats
		return m, nil
	case key.Matches(msg, keys.up):
		if m.searchIdx > 0 {
			m.searchIdx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.searchIdx < len(m.searchResult.Users)-1 {
			m.searchIdx++
		}
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.cmdSearch(m.searchInput.Value())
	case key.Matches(msg, keys.tab):
		if m.searchIdx >= len(m.searchResult.Users) {
			return m, nil
		}
		return m, m.cmdStartChat(m.searchResult.Users[m.searchIdx].ID)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) applySearch(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.searchTerm = msg.term
	m.searchIdx = 0
	if msg.err != nil {
		m.searchResult = models.SearchResult{}
		cmd := m.setNote(service.NotificationFor(msg.err))
		return m, cmd
	}

	m.searchResult = msg.result
	switch msg.result.Status {
	case models.SearchDisabled:
		cmd := m.setNote(models.Info(app.MsgSearchDisabled))
		return m, cmd
	case models.SearchNotFound:
		cmd := m.setNote(models.Info(app.MsgNoUsersFound))
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) updateContact(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.pane = paneConversation
		m.composer.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.copyUser):
		return m, cmdCopyToClipboard("@" + m.contact.Username)
	case key.Matches(msg, keys.block):
		cmd := m.setNote(models.Info(fmt.Sprintf(app.MsgUserBlockedFormat, m.contact.Nickname)))
		return m, cmd
	case key.Matches(msg, keys.call):
		cmd := m.setNote(models.Info(fmt.Sprintf(app.MsgCallingFormat, m.contact.Nickname)))
		return m, cmd
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  @%s  │  chats: %d\n",
		avatarGlyph(m.user.Avatar), m.user.Nickname, m.user.Username,
		m.services.ChatList.ChatCount(m.user.ID)))
	if note := renderNotification(m.note); note != "" {
		b.WriteString(note)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var title, body, help string
	switch m.pane {
	case paneChats:
		title, body, help = "CHATS", m.viewChats(), "enter: open │ n: new chat │ s: settings │ x: log out │ q: quit"
	case paneConversation:
		title, body, help = "CHAT", m.viewConversation(), "enter: send │ ctrl+o: contact info │ esc: back"
	case paneSearch:
		title, body, help = "FIND USERS", m.viewSearch(), "enter: search │ ↑/↓: select │ tab: start chat │ esc: back"
	case paneSettings:
		title, body, help = "SETTINGS", m.settings.View(), "↑/↓: field │ ←/→: choose │ space: toggle │ enter: save section │ ctrl+r: default privacy │ esc: back"
	case paneContact:
		title, body, help = "CONTACT", m.viewContact(), "c: copy username │ p: call │ b: block │ esc: back"
	}
	b.WriteString(renderPage(title, body, help))

	return appStyle.Render(b.String())
}

func (m mainLoopModel) viewChats() string {
	if len(m.chats) == 0 {
		return "You have no chats yet. Press n to find someone to talk to."
	}

	var b strings.Builder
	for i, c := range m.chats {
		cursor := "  "
		if i == m.chatIdx {
			cursor = "> "
		}
		marker := " "
		if c.Active {
			marker = "*"
		}

		line := fmt.Sprintf("%s%s%s %-16s %-7s %-30s",
			cursor, marker, avatarGlyph(c.Peer.Avatar),
			fitText(c.Peer.Nickname, 16), c.TimeLabel, fitText(c.LastMessageLabel, 30))
		if i == m.chatIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if c.UnreadCount > 0 {
			b.WriteString(" ")
			b.WriteString(unreadStyle.Render(fmt.Sprintf("(%d)", c.UnreadCount)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewConversation() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  @%s  %s\n", avatarGlyph(m.active.PeerAvatar),
		m.active.PeerNickname, m.active.PeerUsername, onlineLabel(m.active.PeerOnline)))
	b.WriteString(uiDivider)
	b.WriteString("\n")

	messages := m.transcript
	if len(messages) > transcriptTail {
		messages = messages[len(messages)-transcriptTail:]
	}
	if len(messages) == 0 {
		b.WriteString(helpStyle.Render("No messages yet. Say hi!"))
		b.WriteString("\n")
	}
	for _, msg := range messages {
		b.WriteString(renderMessage(msg, m.user.ID))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.composer.View())
	return b.String()
}

func renderMessage(msg models.Message, viewerID string) string {
	stamp := msg.Timestamp.Local().Format("15:04")
	if msg.SenderID != viewerID {
		return peerBubbleStyle.Render(fmt.Sprintf("[%s] %s: %s", stamp, msg.SenderName, msg.Text))
	}
	ticks := "✓"
	if msg.Read {
		ticks = "✓✓"
	}
	return ownBubbleStyle.Render(fmt.Sprintf("[%s] you: %s %s", stamp, msg.Text, ticks))
}

func (m mainLoopModel) viewSearch() string {
	var b strings.Builder
	b.WriteString("Search │ [")
	b.WriteString(m.searchInput.View())
	b.WriteString("]\n\n")

	for i, u := range m.searchResult.Users {
		cursor := "  "
		if i == m.searchIdx {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s %-16s @%-16s %s", cursor, avatarGlyph(u.Avatar),
			fitText(u.Nickname, 16), fitText(u.Username, 16), onlineLabel(u.Online))
		if i == m.searchIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewContact() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", avatarGlyph(m.contact.Avatar), m.contact.Nickname))
	b.WriteString("Username   │ @" + m.contact.Username + "\n")
	b.WriteString("Status     │ " + onlineLabel(m.contact.Online) + "\n")
	b.WriteString("Registered │ " + m.contact.RegisteredAt.Local().Format("02.01.2006"))
	return b.String()
}

func (m mainLoopModel) cmdOpenChat(chatID string) tea.Cmd {
	ctx := m.ctx
	conversation := m.services.Conversation
	return func() tea.Msg {
		active, err := conversation.OpenChat(ctx, chatID)
		return chatOpenedMsg{active: active, err: err}
	}
}

func (m mainLoopModel) cmdStartChat(targetID string) tea.Cmd {
	ctx := m.ctx
	conversation := m.services.Conversation
	userID := m.user.ID
	return func() tea.Msg {
		active, err := conversation.StartChat(ctx, userID, targetID)
		return chatOpenedMsg{active: active, err: err}
	}
}

func (m mainLoopModel) cmdSend(chatID, text string) tea.Cmd {
	ctx := m.ctx
	conversation := m.services.Conversation
	userID := m.user.ID
	return func() tea.Msg {
		_, err := conversation.SendMessage(ctx, chatID, userID, text)
		return opDoneMsg{err: err}
	}
}

func (m mainLoopModel) cmdSearch(term string) tea.Cmd {
	ctx := m.ctx
	directory := m.services.Directory
	userID := m.user.ID
	return func() tea.Msg {
		result, err := directory.Search(ctx, userID, term)
		return searchDoneMsg{term: term, result: result, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	identity := m.services.Identity
	return func() tea.Msg {
		return loggedOutMsg{err: identity.Logout(ctx)}
	}
}

func cmdRefreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func cmdClearStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return opDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return opDoneMsg{note: models.Success(app.MsgUsernameCopied)}
	}
}
