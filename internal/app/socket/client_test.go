package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hushchat/internal/app/chat"
	"hushchat/internal/app/user"
	"hushchat/internal/pkg/errs"
)

// wsTestServer upgrades one connection and hands it to fn.
func wsTestServer(t *testing.T, fn func(conn *websocket.Conn)) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		fn(conn)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(data, &envelope))

	return envelope
}

func TestAnnouncePresenceEmitsAddUser(t *testing.T) {
	received := make(chan Envelope, 1)

	url := wsTestServer(t, func(conn *websocket.Conn) {
		received <- readEnvelope(t, conn)
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.AnnouncePresence("alice123"))

	envelope := <-received
	assert.Equal(t, TypeAddUser, envelope.Type)

	var userID string
	require.NoError(t, json.Unmarshal(envelope.Payload, &userID))
	assert.Equal(t, "alice123", userID)
}

func TestSendMessageCarriesRecipientAndDocument(t *testing.T) {
	received := make(chan Envelope, 1)

	url := wsTestServer(t, func(conn *websocket.Conn) {
		received <- readEnvelope(t, conn)
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	doc := chat.Message{Content: "hello", To: "bob123", From: "alice123", ContentType: chat.ContentTypeText}
	require.NoError(t, client.SendMessage("bob123", doc))

	envelope := <-received
	assert.Equal(t, TypeSendMsg, envelope.Type)

	var payload struct {
		To      string       `json:"to"`
		ChatDoc chat.Message `json:"chatDoc"`
	}
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, "bob123", payload.To)
	assert.Equal(t, "hello", payload.ChatDoc.Content)
}

func TestInboundEventsAreDecodedAndDelivered(t *testing.T) {
	url := wsTestServer(t, func(conn *websocket.Conn) {
		online, _ := json.Marshal([]user.User{{UserID: "bob123", Name: "Bob"}})
		data, _ := json.Marshal(Envelope{Type: TypeOnlineUsers, Payload: online})
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))

		pushed, _ := json.Marshal(chat.Message{Content: "hi", From: "bob123", To: "alice123", ContentType: chat.ContentTypeText})
		data, _ = json.Marshal(Envelope{Type: TypeReceiveMsg, Payload: pushed})
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	event := <-client.Events()
	require.Equal(t, TypeOnlineUsers, event.Type)
	require.Len(t, event.OnlineUsers, 1)
	assert.Equal(t, "bob123", event.OnlineUsers[0].UserID)

	event = <-client.Events()
	require.Equal(t, TypeReceiveMsg, event.Type)
	assert.Equal(t, "hi", event.Message.Content)
}

func TestEventsChannelClosesWhenServerDrops(t *testing.T) {
	url := wsTestServer(t, func(conn *websocket.Conn) {
		conn.Close()
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	select {
	case _, ok := <-client.Events():
		assert.False(t, ok, "events channel should be closed after connection loss")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for events channel to close")
	}
}

func TestRequestOnlineUsersIsThrottled(t *testing.T) {
	counted := make(chan struct{}, 32)

	url := wsTestServer(t, func(conn *websocket.Conn) {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			counted <- struct{}{}
		}
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	// Hammer well past the burst; excess requests are dropped, not queued.
	for i := 0; i < 20; i++ {
		require.NoError(t, client.RequestOnlineUsers("alice123"))
	}

	deadline := time.After(2 * time.Second)
	got := 0
loop:
	for {
		select {
		case <-counted:
			got++
		case <-deadline:
			break loop
		}
	}

	assert.LessOrEqual(t, got, refreshBurst+1)
	assert.Greater(t, got, 0)
}

func TestDisconnectedClientFailsFast(t *testing.T) {
	client := Disconnected()
	defer client.Close()

	err := client.AnnouncePresence("alice123")
	require.Error(t, err)

	customErr, ok := err.(*errs.CustomError)
	require.True(t, ok)
	assert.Equal(t, errs.ErrSocketClosed, customErr.Code)
}
