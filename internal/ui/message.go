/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file renders a single thread message, including the reveal flow for
images that carry a steganographically hidden message.
*/
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"hushchat/internal/app/chat"
)

// unlockPhase is the reveal progress of one hidden-message image.
type unlockPhase int

const (
	// unlockLocked: the hidden message exists but nothing was attempted yet.
	unlockLocked unlockPhase = iota

	// unlockAwaiting: the passphrase prompt is or was open; a failed
	// attempt stays here so the user can retry.
	unlockAwaiting

	// unlockRevealed: the backend decoded the hidden message.
	unlockRevealed
)

// unlockState is the per-message reveal record. It lives for as long as the
// conversation stays open and resets on every conversation switch.
type unlockState struct {
	phase  unlockPhase
	secret string
}

// renderMessage renders one message line. Messages sent by selfID align to
// the right edge; image messages render as a labeled block with their reveal
// status underneath when a hidden message is present.
func renderMessage(msg chat.Message, selfID string, st *unlockState, selected bool, width int) string {
	mine := msg.From == selfID

	var body string
	if msg.ContentType == chat.ContentTypeImage {
		body = imageBubbleStyle.Render("[image] " + msg.Content)
		if msg.IsEncrypted {
			body += "\n" + renderSecretLine(msg, st)
		}
	} else if mine {
		body = mineBubbleStyle.Render(msg.Content)
	} else {
		body = theirsBubbleStyle.Render(msg.Content)
	}

	if selected {
		body = cursorStyle.Render(">") + " " + body
	}

	if mine {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, body)
	}
	return body
}

func renderSecretLine(msg chat.Message, st *unlockState) string {
	if st == nil {
		st = &unlockState{}
	}

	switch st.phase {
	case unlockRevealed:
		secret := st.secret
		if secret == "" {
			secret = msg.SecretMsgDefault
		}
		return secretTextStyle.Render("Hidden message: " + secret)

	case unlockAwaiting:
		return secretHintStyle.Render("Hidden message locked. Enter the passphrase to reveal it.")

	default:
		return secretHintStyle.Render("This image holds a hidden message. Press enter to unlock.")
	}
}
