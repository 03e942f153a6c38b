/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file defines App, the root model. It owns page navigation, the one-shot
session restore performed at startup, and the pump that feeds realtime events
to the active page.
*/
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"hushchat/internal/app/api"
	"hushchat/internal/app/session"
	"hushchat/internal/pkg/logx"
)

// App hosts the current page and runs the startup restore flow. While a
// stored token is being validated no page is mounted and a bare loading
// line renders instead.
type App struct {
	deps      *Deps
	page      tea.Model
	restoring bool
	token     string
}

// sessionRestoredMsg carries the outcome of validating a stored token.
type sessionRestoredMsg struct {
	result api.AuthResult
	err    error
}

// NewApp builds the shell. A stored access token puts the shell into the
// restoring state; otherwise the login page mounts immediately.
func NewApp(deps *Deps) App {
	app := App{deps: deps}

	token, err := deps.Tokens.Load()
	if err != nil {
		logx.Warn("could not read stored token", "error", err.Error())
	}

	if token != "" {
		app.restoring = true
		app.token = token
	} else {
		app.page = NewLoginPage(deps)
	}

	return app
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForSocketEvent(a.deps.Socket.Events())}

	if a.restoring {
		cmds = append(cmds, restoreSession(a.deps, a.token))
	} else {
		cmds = append(cmds, a.page.Init())
	}

	return tea.Batch(cmds...)
}

// restoreSession validates a stored token against the profile endpoint.
// It runs exactly once per program start.
func restoreSession(deps *Deps, token string) tea.Cmd {
	return func() tea.Msg {
		deps.API.SetToken(token)
		result, err := deps.API.Self(context.Background())
		return sessionRestoredMsg{result: result, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionRestoredMsg:
		return a.finishRestore(msg)

	case gotoLoginMsg:
		a.page = NewLoginPage(a.deps)
		return a, a.page.Init()

	case gotoSignupMsg:
		a.page = NewSignupPage(a.deps)
		return a, a.page.Init()

	case gotoDashboardMsg:
		a.page = NewDashboardPage(a.deps)
		return a, a.page.Init()

	case socketClosedMsg:
		logx.Warn("realtime connection lost")
		return a, nil

	case socketEventMsg:
		var cmd tea.Cmd
		if a.page != nil {
			a.page, cmd = a.page.Update(msg)
		}
		// Re-arm the pump so the next event is delivered too.
		return a, tea.Batch(cmd, waitForSocketEvent(a.deps.Socket.Events()))
	}

	if a.page == nil {
		return a, nil
	}

	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// finishRestore mounts the dashboard when the stored token is still good
// and falls back to a clean login screen when it is not.
func (a App) finishRestore(msg sessionRestoredMsg) (tea.Model, tea.Cmd) {
	a.restoring = false

	if msg.err != nil {
		logx.Warn("session restore failed", "error", msg.err.Error())
		if err := a.deps.Tokens.Clear(); err != nil {
			logx.Warn("could not clear stored token", "error", err.Error())
		}
		a.deps.API.ClearToken()

		a.page = NewLoginPage(a.deps)
		return a, a.page.Init()
	}

	a.deps.Session.Set(msg.result.User)
	a.deps.API.SetToken(msg.result.Token)
	if err := a.deps.Tokens.Save(msg.result.Token); err != nil {
		logx.Warn("could not persist rotated token", "error", err.Error())
	}

	if expiry, ok := session.PeekExpiry(msg.result.Token); ok {
		logx.Info("session restored", "userId", msg.result.User.UserID, "tokenExpiry", expiry.String())
	} else {
		logx.Info("session restored", "userId", msg.result.User.UserID)
	}

	if err := a.deps.Socket.AnnouncePresence(msg.result.User.UserID); err != nil {
		logx.Warn("presence announce failed", "error", err.Error())
	}

	a.page = NewDashboardPage(a.deps)
	return a, a.page.Init()
}

func (a App) View() string {
	if a.restoring {
		return "Loading..."
	}
	if a.page == nil {
		return ""
	}
	return a.page.View()
}
