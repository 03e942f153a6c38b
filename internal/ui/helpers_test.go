package ui

import (
	"path/filepath"
	"testing"
	"time"

	"hushchat/internal/app/api"
	"hushchat/internal/app/chat"
	"hushchat/internal/app/session"
	"hushchat/internal/app/socket"
	"hushchat/internal/configs"
)

// fakeRealtime records every outbound emission so tests can assert exactly
// what the pages push over the channel.
type fakeRealtime struct {
	announced []string
	requested []string
	sentTo    []string
	sentDocs  []chat.Message
	events    chan socket.Event
}

func newFakeRealtime() *fakeRealtime {
	return &fakeRealtime{events: make(chan socket.Event, 8)}
}

func (f *fakeRealtime) AnnouncePresence(userID string) error {
	f.announced = append(f.announced, userID)
	return nil
}

func (f *fakeRealtime) RequestOnlineUsers(userID string) error {
	f.requested = append(f.requested, userID)
	return nil
}

func (f *fakeRealtime) SendMessage(to string, doc chat.Message) error {
	f.sentTo = append(f.sentTo, to)
	f.sentDocs = append(f.sentDocs, doc)
	return nil
}

func (f *fakeRealtime) Events() <-chan socket.Event {
	return f.events
}

func newTestDeps(t *testing.T) (*Deps, *fakeRealtime) {
	t.Helper()

	realtime := newFakeRealtime()
	deps := &Deps{
		Config:  &configs.AppConfig{Environment: "development"},
		API:     api.NewClient("http://127.0.0.1:0", time.Second),
		Session: session.NewStore(),
		Tokens:  session.NewTokenKeeper(filepath.Join(t.TempDir(), "token")),
		Socket:  realtime,
	}
	return deps, realtime
}
