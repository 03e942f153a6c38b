/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file defines the dependencies shared by every screen, the navigation
messages pages use to hand control to one another, and the bridge that turns
realtime channel events into Bubble Tea messages.
*/
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"hushchat/internal/app/api"
	"hushchat/internal/app/chat"
	"hushchat/internal/app/session"
	"hushchat/internal/app/socket"
	"hushchat/internal/configs"
)

// Realtime is the slice of the realtime channel the screens consume.
// *socket.Client satisfies it; tests substitute a recording fake.
type Realtime interface {
	AnnouncePresence(userID string) error
	RequestOnlineUsers(userID string) error
	SendMessage(to string, doc chat.Message) error
	Events() <-chan socket.Event
}

// Deps bundles the long-lived collaborators handed down to every screen.
type Deps struct {
	Config  *configs.AppConfig
	API     *api.Client
	Session *session.Store
	Tokens  session.TokenKeeper
	Socket  Realtime
}

// Navigation messages. A page returns one of these as a command result to
// hand control to another page; the shell performs the swap.
type (
	gotoLoginMsg     struct{}
	gotoSignupMsg    struct{}
	gotoDashboardMsg struct{}
)

func gotoLogin() tea.Msg     { return gotoLoginMsg{} }
func gotoSignup() tea.Msg    { return gotoSignupMsg{} }
func gotoDashboard() tea.Msg { return gotoDashboardMsg{} }

// socketEventMsg wraps one decoded inbound realtime event.
type socketEventMsg socket.Event

// socketClosedMsg reports that the realtime connection was lost.
type socketClosedMsg struct{}

// waitForSocketEvent blocks on the event stream and delivers the next event
// as a message. The shell re-arms it after every delivery.
func waitForSocketEvent(events <-chan socket.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return socketClosedMsg{}
		}
		return socketEventMsg(event)
	}
}
