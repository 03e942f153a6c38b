/*
Package chat contains the client-side domain model for direct-message conversations.

This file handles the inbox: the per-counterpart summary of the most recent message,
fetched wholesale from the backend as a map and converted into an ordered list for display.
*/
package chat

import (
	"sort"
	"strconv"
	"time"
)

// lastMessagePreviewLimit caps how many characters of the last message the
// inbox list shows before truncating.
const lastMessagePreviewLimit = 15

// InboxSummary is the per-counterpart value in the backend's inbox mapping.
type InboxSummary struct {
	// LastMessage is the content of the most recent message exchanged.
	LastMessage string `json:"lastMessage"`

	// Timestamp is the raw server timestamp of that message.
	Timestamp string `json:"timestamp"`
}

// InboxEntry is one row of the displayed inbox list.
type InboxEntry struct {
	// UserID is the counterpart's userId.
	UserID string

	// LastMessage is the raw content of the most recent message.
	LastMessage string

	// Timestamp is the display-formatted time of that message.
	Timestamp string

	// at is the parsed instant, kept for ordering.
	at time.Time
}

// BuildInbox converts the server's counterpart-id keyed mapping into an
// ordered list of entries, most recent conversation first. Map iteration
// order is not stable in Go, so the list is ordered by message time (ties
// broken by userId) to keep the display deterministic.
func BuildInbox(raw map[string]InboxSummary) []InboxEntry {
	entries := make([]InboxEntry, 0, len(raw))

	for userID, summary := range raw {
		at, _ := parseServerTime(summary.Timestamp)

		entries = append(entries, InboxEntry{
			UserID:      userID,
			LastMessage: summary.LastMessage,
			Timestamp:   FormatInboxTime(summary.Timestamp),
			at:          at,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].at.Equal(entries[j].at) {
			return entries[i].at.After(entries[j].at)
		}
		return entries[i].UserID < entries[j].UserID
	})

	return entries
}

// FormatInboxTime renders a raw server timestamp as a locale-style
// date+time display string. Unparseable input is shown as-is.
func FormatInboxTime(raw string) string {
	at, ok := parseServerTime(raw)
	if !ok {
		return raw
	}

	return at.Local().Format("Mon Jan 2 2006 3:04:05 PM")
}

// PreviewText renders the inbox preview of a last message: image URLs show
// as "Image", long texts are truncated with an ellipsis.
func PreviewText(lastMessage string) string {
	if IsImageURL(lastMessage) {
		return "Image"
	}

	if len(lastMessage) > lastMessagePreviewLimit {
		return lastMessage[:lastMessagePreviewLimit] + "..."
	}

	return lastMessage
}

// parseServerTime accepts the timestamp formats the backend emits: RFC 3339
// strings or Unix epoch milliseconds.
func parseServerTime(raw string) (time.Time, bool) {
	if at, err := time.Parse(time.RFC3339, raw); err == nil {
		return at, true
	}

	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(millis), true
	}

	return time.Time{}, false
}
