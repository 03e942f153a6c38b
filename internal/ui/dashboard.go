/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file implements the dashboard: the online-user list, the inbox, the
active conversation thread and the composer, plus the send and history flows
that tie them to the HTTP API and the realtime channel.
*/
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hushchat/internal/app/api"
	"hushchat/internal/app/chat"
	"hushchat/internal/app/socket"
	"hushchat/internal/app/user"
	"hushchat/internal/pkg/errs"
	"hushchat/internal/pkg/logx"
	"hushchat/internal/pkg/randx"
)

// focusArea identifies which dashboard panel receives keystrokes.
type focusArea int

const (
	focusInbox focusArea = iota
	focusOnline
	focusThread
	focusComposer
)

// DashboardPage is the main screen: who is online, which conversations
// exist, and the currently open thread.
type DashboardPage struct {
	deps *Deps

	width  int
	height int
	focus  focusArea

	online       []user.User
	onlineCursor int

	inbox       []chat.InboxEntry
	inboxCursor int

	// current counterpart; nil until a conversation is opened.
	curr *user.User

	thread       chat.Thread
	threadCursor int

	// histGen invalidates in-flight history fetches when the user switches
	// conversations before a response lands.
	histGen int

	// unlocks tracks hidden-message reveal progress, keyed by each
	// message's position from the oldest end so prepends do not shift it.
	unlocks map[int]*unlockState

	// openUnlock is the stable key of the message whose passphrase prompt
	// is open, -1 otherwise.
	openUnlock int
	passInput  textinput.Model

	composer  textarea.Model
	conType   chat.ContentType
	imagePath textinput.Model

	// pending is the validated image awaiting confirmation; non-nil while
	// the embed overlay is open.
	pending   *chat.ImageFile
	embedText textarea.Model

	toasts toastStack
}

// Messages produced by the dashboard's commands.
type (
	inboxLoadedMsg struct {
		entries []chat.InboxEntry
		err     error
	}

	historyLoadedMsg struct {
		gen  int
		msgs []chat.Message
		err  error
	}

	counterpartLoadedMsg struct {
		counterpart user.User
		err         error
	}

	chatSavedMsg struct {
		saved chat.Message
		err   error
	}

	hiddenRevealedMsg struct {
		key    int
		secret string
		err    error
	}
)

func NewDashboardPage(deps *Deps) DashboardPage {
	composer := textarea.New()
	composer.Placeholder = "Type a message..."
	composer.SetHeight(3)
	composer.ShowLineNumbers = false
	composer.Focus()

	imagePath := textinput.New()
	imagePath.Placeholder = "path to .png / .jpg / .jpeg / .gif"
	imagePath.CharLimit = 512

	embedText := textarea.New()
	embedText.Placeholder = "Hidden message (optional)"
	embedText.SetHeight(3)
	embedText.ShowLineNumbers = false

	passInput := textinput.New()
	passInput.Placeholder = "passphrase"
	passInput.EchoMode = textinput.EchoPassword
	passInput.EchoCharacter = '*'

	return DashboardPage{
		deps:       deps,
		focus:      focusComposer,
		conType:    chat.ContentTypeText,
		unlocks:    make(map[int]*unlockState),
		openUnlock: -1,
		composer:   composer,
		imagePath:  imagePath,
		embedText:  embedText,
		passInput:  passInput,
	}
}

func (m DashboardPage) Init() tea.Cmd {
	if !m.deps.Session.LoggedIn() {
		return gotoLogin
	}

	if err := m.deps.Socket.RequestOnlineUsers(m.deps.Session.Current().UserID); err != nil {
		logx.Warn("online users request failed", "error", err.Error())
	}

	return tea.Batch(m.fetchInbox(), textarea.Blink)
}

func (m DashboardPage) fetchInbox() tea.Cmd {
	return func() tea.Msg {
		raw, err := m.deps.API.GetInbox(context.Background())
		if err != nil {
			return inboxLoadedMsg{err: err}
		}
		return inboxLoadedMsg{entries: chat.BuildInbox(raw)}
	}
}

func (m DashboardPage) fetchHistory(userID string, gen int) tea.Cmd {
	return func() tea.Msg {
		msgs, err := m.deps.API.GetChats(context.Background(), userID)
		return historyLoadedMsg{gen: gen, msgs: msgs, err: err}
	}
}

func (m DashboardPage) fetchCounterpart(userID string) tea.Cmd {
	return func() tea.Msg {
		counterpart, err := m.deps.API.GetUser(context.Background(), userID)
		return counterpartLoadedMsg{counterpart: counterpart, err: err}
	}
}

// openConversation makes counterpart the active thread and kicks off a
// history fetch. Any fetch still in flight for the previous conversation
// is invalidated by the generation bump.
func (m DashboardPage) openConversation(counterpart user.User) (DashboardPage, tea.Cmd) {
	m.curr = &counterpart
	m.histGen++
	m.thread.Replace(nil)
	m.threadCursor = 0
	m.unlocks = make(map[int]*unlockState)
	m.openUnlock = -1
	m.composer.Reset()
	m.imagePath.Reset()
	m.embedText.Reset()
	m.pending = nil
	m.conType = chat.ContentTypeText

	return m, m.fetchHistory(counterpart.UserID, m.histGen)
}

// unlockKey converts a newest-first thread index into a key that stays
// stable as newer messages are prepended.
func (m DashboardPage) unlockKey(index int) int {
	return m.thread.Len() - 1 - index
}

func (m DashboardPage) unlockFor(index int) *unlockState {
	key := m.unlockKey(index)
	if st, ok := m.unlocks[key]; ok {
		return st
	}
	st := &unlockState{}
	m.unlocks[key] = st
	return st
}

func (m DashboardPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case socketEventMsg:
		return m.handleSocketEvent(socket.Event(msg))

	case inboxLoadedMsg:
		if msg.err != nil {
			logx.Warn("inbox fetch failed", "error", msg.err.Error())
			return m, nil
		}
		m.inbox = msg.entries
		if m.inboxCursor >= len(m.inbox) {
			m.inboxCursor = 0
		}
		// Opening the most recent conversation by default mirrors how a
		// returning user expects to land.
		if m.curr == nil && len(m.inbox) > 0 {
			return m, m.fetchCounterpart(m.inbox[0].UserID)
		}
		return m, nil

	case historyLoadedMsg:
		if msg.gen != m.histGen {
			logx.Info("discarding stale history response", "gen", msg.gen)
			return m, nil
		}
		if msg.err != nil {
			logx.Warn("history fetch failed", "error", msg.err.Error())
			return m, nil
		}
		m.thread.Replace(msg.msgs)
		m.threadCursor = 0
		return m, nil

	case counterpartLoadedMsg:
		if msg.err != nil {
			logx.Warn("counterpart fetch failed", "error", msg.err.Error())
			return m, nil
		}
		return m.openConversation(msg.counterpart)

	case chatSavedMsg:
		return m.handleChatSaved(msg)

	case hiddenRevealedMsg:
		if st, ok := m.unlocks[msg.key]; ok {
			if msg.err != nil {
				logx.Warn("hidden message reveal failed", "error", msg.err.Error())
				// The prompt stays open so the user can retry.
				cmd := m.toasts.pushError(msg.err)
				return m, cmd
			}
			st.phase = unlockRevealed
			st.secret = msg.secret
			if m.openUnlock == msg.key {
				m.openUnlock = -1
				m.passInput.Reset()
			}
		}
		return m, nil

	case toastClearMsg:
		m.toasts.handleClear(msg)
		return m, nil
	}

	return m.routeToInputs(msg)
}

func (m DashboardPage) handleSocketEvent(event socket.Event) (tea.Model, tea.Cmd) {
	switch event.Type {
	case socket.TypeOnlineUsers:
		m.online = event.OnlineUsers
		if m.onlineCursor >= len(m.online) {
			m.onlineCursor = 0
		}
		return m, nil

	case socket.TypeReceiveMsg:
		// Only messages belonging to the open conversation join the
		// thread; everything else just refreshes the inbox.
		if m.curr != nil && (event.Message.From == m.curr.UserID || event.Message.To == m.curr.UserID) {
			m.thread.Prepend(event.Message)
			return m, m.fetchInbox()
		}
		logx.Info("message for another conversation", "from", event.Message.From)
		return m, m.fetchInbox()

	case socket.TypeErr:
		logx.Warn("server reported channel error", "error", event.Err)
		cmd := m.toasts.push(toastError, event.Err)
		return m, cmd
	}

	return m, nil
}

func (m DashboardPage) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays capture the keyboard while open.
	if m.pending != nil {
		return m.handleEmbedOverlayKey(msg)
	}
	if m.openUnlock >= 0 {
		return m.handleUnlockOverlayKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+l":
		return m.logout()

	case "ctrl+o":
		if err := m.deps.Socket.RequestOnlineUsers(m.deps.Session.Current().UserID); err != nil {
			logx.Warn("online users request failed", "error", err.Error())
		}
		return m, m.fetchInbox()

	case "tab":
		m.focus = (m.focus + 1) % 4
		return m.applyFocus(), nil

	case "shift+tab":
		m.focus = (m.focus + 3) % 4
		return m.applyFocus(), nil

	case "ctrl+t":
		if m.conType == chat.ContentTypeText {
			m.conType = chat.ContentTypeImage
		} else {
			m.conType = chat.ContentTypeText
		}
		m.focus = focusComposer
		return m.applyFocus(), nil

	case "ctrl+s":
		return m.send()
	}

	switch m.focus {
	case focusInbox:
		return m.handleInboxKey(msg)
	case focusOnline:
		return m.handleOnlineKey(msg)
	case focusThread:
		return m.handleThreadKey(msg)
	}

	return m.routeToInputs(msg)
}

func (m DashboardPage) handleInboxKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.inboxCursor > 0 {
			m.inboxCursor--
		}
	case "down", "j":
		if m.inboxCursor < len(m.inbox)-1 {
			m.inboxCursor++
		}
	case "enter":
		if m.inboxCursor < len(m.inbox) {
			return m, m.fetchCounterpart(m.inbox[m.inboxCursor].UserID)
		}
	}
	return m, nil
}

func (m DashboardPage) handleOnlineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.onlineCursor > 0 {
			m.onlineCursor--
		}
	case "down", "j":
		if m.onlineCursor < len(m.online)-1 {
			m.onlineCursor++
		}
	case "enter":
		if m.onlineCursor < len(m.online) {
			return m.openConversation(m.online[m.onlineCursor])
		}
	}
	return m, nil
}

func (m DashboardPage) handleThreadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.threadCursor < m.thread.Len()-1 {
			m.threadCursor++
		}
	case "down", "j":
		if m.threadCursor > 0 {
			m.threadCursor--
		}
	case "enter":
		msgs := m.thread.Messages()
		if m.threadCursor >= len(msgs) {
			return m, nil
		}
		selected := msgs[m.threadCursor]
		if selected.ContentType != chat.ContentTypeImage || !selected.IsEncrypted {
			return m, nil
		}
		st := m.unlockFor(m.threadCursor)
		if st.phase == unlockLocked {
			st.phase = unlockAwaiting
			m.openUnlock = m.unlockKey(m.threadCursor)
			m.passInput.Reset()
			m.passInput.Focus()
		}
	}
	return m, nil
}

func (m DashboardPage) handleEmbedOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Abandoning the preview discards the selected file entirely.
		m.pending = nil
		m.embedText.Reset()
		m.imagePath.Reset()
		return m, nil

	case "ctrl+s":
		return m.sendImage()
	}

	var cmd tea.Cmd
	m.embedText, cmd = m.embedText.Update(msg)
	return m, cmd
}

func (m DashboardPage) handleUnlockOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if st, ok := m.unlocks[m.openUnlock]; ok && st.phase == unlockAwaiting {
			st.phase = unlockLocked
		}
		m.openUnlock = -1
		m.passInput.Reset()
		return m, nil

	case "enter":
		return m.reveal()
	}

	var cmd tea.Cmd
	m.passInput, cmd = m.passInput.Update(msg)
	return m, cmd
}

// reveal asks the backend to decode the hidden message of the selected image
// using the entered passphrase.
func (m DashboardPage) reveal() (tea.Model, tea.Cmd) {
	msgs := m.thread.Messages()
	index := len(msgs) - 1 - m.openUnlock
	if index < 0 || index >= len(msgs) {
		m.openUnlock = -1
		return m, nil
	}

	selected := msgs[index]
	filename, ok := chat.StaticFilename(selected.Content)
	if !ok {
		logx.Warn("image url has no stored filename", "url", selected.Content)
		cmd := m.toasts.push(toastError, "This image cannot be decoded.")
		return m, cmd
	}

	passphrase := m.passInput.Value()
	key := m.openUnlock

	return m, func() tea.Msg {
		secret, err := m.deps.API.Decode(context.Background(), filename, passphrase)
		return hiddenRevealedMsg{key: key, secret: secret, err: err}
	}
}

// send persists the draft for the active conversation. Text drafts go out
// directly; image drafts first pass validation and open the embed overlay.
func (m DashboardPage) send() (tea.Model, tea.Cmd) {
	if m.curr == nil {
		cmd := m.toasts.push(toastWarning, errs.NewError(errs.ErrNoRecipient).Message)
		return m, cmd
	}

	if m.conType == chat.ContentTypeImage {
		path := strings.TrimSpace(m.imagePath.Value())
		if path == "" {
			return m, nil
		}
		img, customErr := chat.ValidateImageFile(path)
		if customErr != nil {
			cmd := m.toasts.push(toastError, customErr.Message)
			return m, cmd
		}
		m.pending = &img
		m.embedText.Reset()
		m.embedText.Focus()
		return m, textarea.Blink
	}

	content := strings.TrimSpace(m.composer.Value())
	if content == "" {
		return m, nil
	}

	draft := api.TextDraft{
		Content:     content,
		To:          m.curr.UserID,
		ContentType: chat.ContentTypeText,
	}

	return m, func() tea.Msg {
		saved, err := m.deps.API.SaveChat(context.Background(), draft)
		return chatSavedMsg{saved: saved, err: err}
	}
}

// sendImage persists the previewed image together with its optional hidden
// message.
func (m DashboardPage) sendImage() (tea.Model, tea.Cmd) {
	if m.curr == nil || m.pending == nil {
		return m, nil
	}

	draft := api.ImageDraft{
		FilePath:  m.pending.Path,
		To:        m.curr.UserID,
		EmbedData: strings.TrimSpace(m.embedText.Value()),
	}

	return m, func() tea.Msg {
		saved, err := m.deps.API.SaveImageChat(context.Background(), draft)
		return chatSavedMsg{saved: saved, err: err}
	}
}

// handleChatSaved finishes a send: notify the recipient over the realtime
// channel, show the message optimistically, and clear the composer.
func (m DashboardPage) handleChatSaved(msg chatSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logx.Warn("message save failed", "error", msg.err.Error())
		cmd := m.toasts.pushError(msg.err)
		return m, cmd
	}

	if m.curr == nil {
		return m, nil
	}

	if err := m.deps.Socket.SendMessage(m.curr.UserID, msg.saved); err != nil {
		logx.Warn("realtime notify failed", "error", err.Error())
	}

	local := msg.saved
	if local.ID == "" {
		local.ID = randx.TempMessageID()
	}
	local.From = m.deps.Session.Current().UserID
	local.To = m.curr.UserID
	m.thread.Prepend(local)
	m.threadCursor = 0

	m.composer.Reset()
	m.imagePath.Reset()
	m.embedText.Reset()
	m.pending = nil

	logx.Info("message sent", "to", m.curr.UserID, "id", local.ID)

	return m, m.fetchInbox()
}

func (m DashboardPage) logout() (tea.Model, tea.Cmd) {
	if err := m.deps.Tokens.Clear(); err != nil {
		logx.Warn("could not clear stored token", "error", err.Error())
	}
	m.deps.Session.Clear()
	m.deps.API.ClearToken()
	logx.Info("logged out")
	return m, gotoLogin
}

func (m DashboardPage) applyFocus() DashboardPage {
	m.composer.Blur()
	m.imagePath.Blur()
	if m.focus == focusComposer {
		if m.conType == chat.ContentTypeImage {
			m.imagePath.Focus()
		} else {
			m.composer.Focus()
		}
	}
	return m
}

func (m DashboardPage) routeToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus != focusComposer {
		return m, nil
	}

	var cmd tea.Cmd
	if m.conType == chat.ContentTypeImage {
		m.imagePath, cmd = m.imagePath.Update(msg)
	} else {
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

func (m DashboardPage) View() string {
	if m.pending != nil {
		return m.viewEmbedOverlay()
	}

	left := m.viewSidebar()
	right := m.viewConversation()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	var b strings.Builder
	b.WriteString(titleStyle.Render("HushChat"))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render(m.deps.Session.Current().UserID))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.toasts.view())
	b.WriteString(hintStyle.Render("tab: switch panel | ctrl+s: send | ctrl+t: text/image | ctrl+o: refresh | ctrl+l: log out | ctrl+c: quit"))

	return b.String()
}

func (m DashboardPage) viewSidebar() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Online"))
	if m.focus == focusOnline {
		b.WriteString(" " + cursorStyle.Render("*"))
	}
	b.WriteString("\n")
	if len(m.online) == 0 {
		b.WriteString(hintStyle.Render("nobody else is online"))
		b.WriteString("\n")
	}
	selfID := m.deps.Session.Current().UserID
	for i, u := range m.online {
		line := onlineDotStyle.Render("*") + " " + u.UserID
		if u.UserID == selfID {
			line += hintStyle.Render(" (you)")
		}
		if m.focus == focusOnline && i == m.onlineCursor {
			line = selectedEntryStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(paneTitleStyle.Render("Inbox"))
	if m.focus == focusInbox {
		b.WriteString(" " + cursorStyle.Render("*"))
	}
	b.WriteString("\n")
	if len(m.inbox) == 0 {
		b.WriteString(hintStyle.Render("no conversations yet"))
		b.WriteString("\n")
	}
	for i, entry := range m.inbox {
		line := fmt.Sprintf("%s: %s", entry.UserID, chat.PreviewText(entry.LastMessage))
		if m.focus == focusInbox && i == m.inboxCursor {
			line = selectedEntryStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("  " + entry.Timestamp))
		b.WriteString("\n")
	}

	return b.String()
}

func (m DashboardPage) viewConversation() string {
	var b strings.Builder

	if m.curr == nil {
		b.WriteString(hintStyle.Render("Select a user to start chatting."))
		b.WriteString("\n")
		return b.String()
	}

	header := m.curr.UserID
	if m.curr.Name != "" {
		header = fmt.Sprintf("%s (%s)", m.curr.Name, m.curr.UserID)
	}
	b.WriteString(paneTitleStyle.Render(header))
	if m.focus == focusThread {
		b.WriteString(" " + cursorStyle.Render("*"))
	}
	b.WriteString("\n\n")

	width := m.width - 40
	if width < 40 {
		width = 60
	}

	selfID := m.deps.Session.Current().UserID
	msgs := m.thread.Messages()
	// Thread storage is newest first; render oldest at the top.
	for i := len(msgs) - 1; i >= 0; i-- {
		selected := m.focus == focusThread && i == m.threadCursor
		b.WriteString(renderMessage(msgs[i], selfID, m.unlockFor(i), selected, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.openUnlock >= 0 {
		b.WriteString(secretHintStyle.Render("Enter the passphrase to reveal the hidden message:"))
		b.WriteString("\n")
		b.WriteString(m.passInput.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter: reveal | esc: cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if m.conType == chat.ContentTypeImage {
		b.WriteString(paneTitleStyle.Render("Image"))
		b.WriteString("\n")
		b.WriteString(m.imagePath.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.composer.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (m DashboardPage) viewEmbedOverlay() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Send image"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("File: %s (%s, %d bytes)\n\n", m.pending.Path, m.pending.MIMEType, m.pending.Size))
	b.WriteString(secretHintStyle.Render("Optionally hide a secret message inside the image:"))
	b.WriteString("\n")
	b.WriteString(m.embedText.View())
	b.WriteString("\n\n")
	b.WriteString(m.toasts.view())
	b.WriteString(hintStyle.Render("ctrl+s: send | esc: discard"))

	return b.String()
}
