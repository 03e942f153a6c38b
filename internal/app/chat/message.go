/*
Package chat contains the client-side domain model for direct-message conversations.

This file defines the Message record and its content types, plus small helpers for
recognizing image URLs and extracting the stored filename used by the hidden-message
decode endpoint.
*/
package chat

import (
	"regexp"
	"strings"
)

// ContentType identifies what kind of payload a message carries.
type ContentType string

// Content types recognized by the backend.
const (
	ContentTypeText  ContentType = "TEXT"
	ContentTypeImage ContentType = "IMAGE"
	ContentTypeAudio ContentType = "AUDIO"
	ContentTypeVideo ContentType = "VIDEO"
	ContentTypeDoc   ContentType = "DOC"
)

// Message is a single direct message. It is immutable once received.
// Field names mirror the backend API JSON.
type Message struct {
	// ID is the backend document id, or a client-generated placeholder for
	// a message shown optimistically before the server echoes it back.
	ID string `json:"_id,omitempty"`

	// Content is the message text, or the served URL for image content.
	Content string `json:"content"`

	// ContentType identifies the payload kind.
	ContentType ContentType `json:"contentType"`

	// To is the recipient's userId.
	To string `json:"to"`

	// From is the sender's userId.
	From string `json:"from"`

	// IsEncrypted marks an image that carries a steganographically hidden message.
	IsEncrypted bool `json:"isEncrypted,omitempty"`

	// SecretMsgDefault optionally pre-fills the revealed hidden message.
	SecretMsgDefault string `json:"secretMsgDefault,omitempty"`
}

var imageURLPattern = regexp.MustCompile(`\.(jpeg|jpg|gif|png)$`)

// IsImageURL reports whether s ends in a known image file extension.
func IsImageURL(s string) bool {
	return imageURLPattern.MatchString(s)
}

// staticPathMarker separates the served URL prefix from the stored filename.
const staticPathMarker = "/static/"

// StaticFilename extracts the stored filename from a served image URL.
// The decode endpoint identifies images by this filename, not by full URL.
func StaticFilename(url string) (string, bool) {
	_, after, found := strings.Cut(url, staticPathMarker)
	if !found || after == "" {
		return "", false
	}

	return after, true
}
