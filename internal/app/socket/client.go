/*
Package socket implements the client side of the realtime messaging channel.

This file defines the Client struct, representing the single long-lived WebSocket
connection to the messaging server. It manages the connection's lifecycle, the
message communication loops (read and write pumps), and delivery of decoded
inbound events to the UI. Reconnection and delivery guarantees are owned by the
server side of the channel; the client does not retry.
*/
package socket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"hushchat/internal/app/chat"
	"hushchat/internal/pkg/errs"
	"hushchat/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed to wait for a Pong message from the server.
	pongWait = 60 * time.Second

	// frequency at which the client sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a message pushed by the server.
	maxMessageSize = 64 * 1024

	// sendQueueSize is the capacity of the outbound message queue.
	sendQueueSize = 64

	// eventQueueSize is the capacity of the inbound event queue consumed by the UI.
	eventQueueSize = 64
)

// Online-user refresh throttle: a held-down refresh key must not flood the
// server with GET_ONLINE_USERS requests.
const (
	refreshRate  = rate.Limit(0.5)
	refreshBurst = 3
)

// Client is the realtime channel connection. A single instance exists per
// process, created at startup independently of authentication state.
type Client struct {
	conn *websocket.Conn

	// send queues marshaled envelopes waiting to be written to the connection.
	send chan []byte

	// events delivers decoded inbound events to the UI. Closed when the
	// connection is lost.
	events chan Event

	// refresh throttles RequestOnlineUsers.
	refresh *rate.Limiter

	// connected is false for the placeholder client used when the initial
	// dial failed; emits then fail fast instead of queueing into nowhere.
	connected bool

	// structured logger with channel context.
	logger zerolog.Logger
}

// Dial opens the realtime channel and starts its pumps.
func Dial(ctx context.Context, wsURL string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		conn:      conn,
		send:      make(chan []byte, sendQueueSize),
		events:    make(chan Event, eventQueueSize),
		refresh:   rate.NewLimiter(refreshRate, refreshBurst),
		connected: true,
		logger:    logx.Logger().With().Str("component", "socket").Logger(),
	}

	go c.readPump()
	go c.writePump()

	c.logger.Info().Str("url", wsURL).Msg("Realtime channel connected")

	return c, nil
}

// Disconnected returns a placeholder client whose emits fail with
// ErrSocketClosed and whose event channel never delivers. It lets the rest of
// the application run (and degrade gracefully) when the initial dial failed.
func Disconnected() *Client {
	return &Client{
		events:  make(chan Event),
		refresh: rate.NewLimiter(refreshRate, refreshBurst),
		logger:  logx.Logger().With().Str("component", "socket").Logger(),
	}
}

// Events returns the inbound event stream. The channel is closed when the
// connection is lost.
func (c *Client) Events() <-chan Event {
	return c.events
}

// AnnouncePresence tells the server this connection represents userID.
// Idempotent; safe to call once per login.
func (c *Client) AnnouncePresence(userID string) error {
	return c.emit(TypeAddUser, userID)
}

// RequestOnlineUsers asks the server for the current online set, which will
// arrive as a TypeOnlineUsers event. Requests beyond the refresh throttle are
// dropped silently.
func (c *Client) RequestOnlineUsers(userID string) error {
	if !c.refresh.Allow() {
		c.logger.Debug().Msg("Online-users refresh throttled")
		return nil
	}

	return c.emit(TypeGetOnlineUsers, userID)
}

// SendMessage notifies the recipient of a freshly saved message document.
// Best effort: the caller renders its optimistic copy regardless of this
// emit's outcome.
func (c *Client) SendMessage(to string, doc chat.Message) error {
	return c.emit(TypeSendMsg, sendMsgPayload{To: to, ChatDoc: doc})
}

// Close shuts the connection down. Safe to call on a Disconnected client.
func (c *Client) Close() {
	if !c.connected {
		return
	}

	close(c.send)
}

// emit marshals an envelope and queues it for the write pump.
func (c *Client) emit(eventType EventType, payload any) error {
	if !c.connected {
		return errs.NewError(errs.ErrSocketClosed)
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error().Err(err).Str("event_type", string(eventType)).Msg("Error marshaling payload")
		return errs.NewError(errs.ErrUnknown, err)
	}

	envelopeBytes, err := json.Marshal(Envelope{Type: eventType, Payload: payloadBytes})
	if err != nil {
		c.logger.Error().Err(err).Str("event_type", string(eventType)).Msg("Error marshaling envelope")
		return errs.NewError(errs.ErrUnknown, err)
	}

	select {
	case c.send <- envelopeBytes:
		return nil
	default:
		c.logger.Warn().Int("queue_len", len(c.send)).Msg("Send queue full, dropping emit")
		return errs.NewError(errs.ErrSendQueueFull)
	}
}

// readPump handles reading envelopes from the WebSocket connection.
// It handles heartbeats (Pong), event decoding, and closes the event stream
// when the connection drops.
func (c *Client) readPump() {
	defer func() {
		close(c.events)

		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Connection close error")
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading envelope (server close/going away)")
			}
			return
		}

		c.processInbound(messageBytes)
	}
}

// processInbound decodes a raw inbound envelope and queues the resulting event.
func (c *Client) processInbound(messageBytes []byte) {
	var envelope Envelope
	if err := json.Unmarshal(messageBytes, &envelope); err != nil {
		c.logger.Warn().Err(err).Bytes("message_bytes", messageBytes).Msg("Server sent invalid JSON")
		return
	}

	event := Event{Type: envelope.Type}

	switch envelope.Type {
	case TypeOnlineUsers:
		if err := json.Unmarshal(envelope.Payload, &event.OnlineUsers); err != nil {
			c.logger.Warn().Err(err).Msg("Server sent invalid ONLINE_USERS payload")
			return
		}

	case TypeReceiveMsg:
		if err := json.Unmarshal(envelope.Payload, &event.Message); err != nil {
			c.logger.Warn().Err(err).Msg("Server sent invalid RECEIVE_MSG payload")
			return
		}

	case TypeErr:
		if err := json.Unmarshal(envelope.Payload, &event.Err); err != nil {
			event.Err = string(envelope.Payload)
		}

	default:
		c.logger.Warn().Str("event_type", string(envelope.Type)).Msg("Server sent unsupported event type")
		return
	}

	select {
	case c.events <- event:
	default:
		c.logger.Warn().Int("queue_len", len(c.events)).Msg("Event queue full, dropping event")
	}
}

// writePump handles writing queued envelopes to the WebSocket connection and
// maintains the heartbeat.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Connection close error in write pump")
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !c.writeQueuedMessage(message, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePingMessage() {
				return
			}
		}
	}
}

// writeQueuedMessage writes one queued envelope to the connection.
// Returns true if the write pump loop should continue, false if it should terminate.
func (c *Client) writeQueuedMessage(message []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Error().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		c.logger.Error().Err(err).Msg("Error writing envelope")
		return false
	}

	return true
}

// writePingMessage sends a periodic WebSocket Ping message to maintain the
// connection heartbeat. Returns false if the write pump should terminate.
func (c *Client) writePingMessage() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Error().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}
