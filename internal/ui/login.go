/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file implements the sign-in page and the shared post-authentication flow.
*/
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hushchat/internal/app/api"
	"hushchat/internal/pkg/errs"
	"hushchat/internal/pkg/logx"
)

// minUserIDLen mirrors the account creation rule on the server.
const minUserIDLen = 6

// LoginPage collects credentials and exchanges them for a session.
type LoginPage struct {
	deps *Deps

	userID   textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	toasts     toastStack
}

// loginResultMsg carries the outcome of a credential exchange.
type loginResultMsg struct {
	result api.AuthResult
	err    error
}

func NewLoginPage(deps *Deps) LoginPage {
	userID := textinput.New()
	userID.Placeholder = "userId"
	userID.CharLimit = 64
	userID.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return LoginPage{deps: deps, userID: userID, password: password}
}

func (m LoginPage) Init() tea.Cmd {
	// Someone who already holds a session has no business here.
	if m.deps.Session.LoggedIn() {
		return gotoDashboard
	}
	return textinput.Blink
}

// validate returns the human-readable rule violations for the current draft,
// in the order the fields appear on screen.
func (m LoginPage) validate() []string {
	var violations []string

	userID := strings.TrimSpace(m.userID.Value())
	if userID == "" {
		violations = append(violations, errs.NewError(errs.ErrUserIDMissing).Message)
	} else if len(userID) < minUserIDLen {
		violations = append(violations, errs.NewError(errs.ErrUserIDTooShort).Message)
	}

	return violations
}

func (m LoginPage) submit() (LoginPage, tea.Cmd) {
	violations := m.validate()
	if len(violations) > 0 {
		var cmds []tea.Cmd
		for _, violation := range violations {
			cmds = append(cmds, m.toasts.push(toastWarning, violation))
		}
		return m, tea.Batch(cmds...)
	}

	input := api.LoginInput{
		UserID:   strings.TrimSpace(m.userID.Value()),
		Password: m.password.Value(),
	}

	m.submitting = true
	return m, func() tea.Msg {
		result, err := m.deps.API.Login(context.Background(), input)
		return loginResultMsg{result: result, err: err}
	}
}

func (m LoginPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+r":
			return m, gotoSignup

		case "tab", "shift+tab", "up", "down":
			// Two fields, so every direction is a toggle.
			m.focus = (m.focus + 1) % 2
			return m.applyFocus(), nil

		case "ctrl+p":
			if m.password.EchoMode == textinput.EchoPassword {
				m.password.EchoMode = textinput.EchoNormal
			} else {
				m.password.EchoMode = textinput.EchoPassword
			}
			return m, nil

		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			logx.Warn("login failed", "error", msg.err.Error())
			cmd := m.toasts.pushError(msg.err)
			return m, cmd
		}
		return m, finishAuth(m.deps, msg.result)

	case toastClearMsg:
		m.toasts.handleClear(msg)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.userID, cmd = m.userID.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m LoginPage) applyFocus() LoginPage {
	m.userID.Blur()
	m.password.Blur()
	if m.focus == 0 {
		m.userID.Focus()
	} else {
		m.password.Focus()
	}
	return m
}

func (m LoginPage) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HushChat / Sign in"))
	b.WriteString("\n\n")
	b.WriteString(m.userID.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")
	if m.submitting {
		b.WriteString(hintStyle.Render("Signing in..."))
		b.WriteString("\n")
	}
	b.WriteString(m.toasts.view())
	b.WriteString(hintStyle.Render("enter: sign in | ctrl+p: show password | ctrl+r: create account | ctrl+c: quit"))

	return b.String()
}

// finishAuth installs a fresh session and hands control to the dashboard.
// Shared by the login and signup flows, and mirrored by the startup restore.
func finishAuth(deps *Deps, result api.AuthResult) tea.Cmd {
	deps.Session.Set(result.User)
	deps.API.SetToken(result.Token)
	if err := deps.Tokens.Save(result.Token); err != nil {
		logx.Warn("could not persist token", "error", err.Error())
	}

	if err := deps.Socket.AnnouncePresence(result.User.UserID); err != nil {
		logx.Warn("presence announce failed", "error", err.Error())
	}

	logx.Info("authenticated", "userId", result.User.UserID)
	return gotoDashboard
}
