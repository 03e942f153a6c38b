/*
Package socket implements the client side of the realtime messaging channel.

This file defines the wire envelope and the event types exchanged with the
messaging server.
*/
package socket

import (
	"encoding/json"

	"hushchat/internal/app/chat"
	"hushchat/internal/app/user"
)

// EventType identifies a realtime channel event.
type EventType string

// Outbound event types.
const (
	TypeAddUser        EventType = "ADD_USER"
	TypeGetOnlineUsers EventType = "GET_ONLINE_USERS"
	TypeSendMsg        EventType = "SEND_MSG"
)

// Inbound event types.
const (
	TypeOnlineUsers EventType = "ONLINE_USERS"
	TypeReceiveMsg  EventType = "RECEIVE_MSG"
	TypeErr         EventType = "ERR"
)

// Envelope is the JSON wire format for every channel message.
type Envelope struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// sendMsgPayload is the outbound payload notifying a recipient of a saved message.
type sendMsgPayload struct {
	To      string       `json:"to"`
	ChatDoc chat.Message `json:"chatDoc"`
}

// Event is a decoded inbound channel event delivered to the UI.
type Event struct {
	// Type identifies which of the fields below is populated.
	Type EventType

	// OnlineUsers is the full current online set (TypeOnlineUsers).
	// It replaces any previously delivered set wholesale.
	OnlineUsers []user.User

	// Message is a single pushed message (TypeReceiveMsg).
	Message chat.Message

	// Err is the server-reported error text (TypeErr).
	Err string
}
