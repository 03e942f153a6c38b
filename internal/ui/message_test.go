package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"hushchat/internal/app/chat"
)

func TestRenderMessageAlignsOwnMessagesRight(t *testing.T) {
	msg := chat.Message{Content: "hi", ContentType: chat.ContentTypeText, From: "frodo1", To: "bob234"}

	mine := renderMessage(msg, "frodo1", &unlockState{}, false, 40)
	theirs := renderMessage(msg, "bob234", &unlockState{}, false, 40)

	assert.Equal(t, 40, lipgloss.Width(mine))
	assert.Less(t, lipgloss.Width(theirs), 40)
	assert.Contains(t, mine, "hi")
	assert.Contains(t, theirs, "hi")
}

func TestRenderMessageLabelsImages(t *testing.T) {
	msg := chat.Message{
		Content:     "http://localhost/static/abc.png",
		ContentType: chat.ContentTypeImage,
		From:        "bob234",
	}

	out := renderMessage(msg, "frodo1", &unlockState{}, false, 80)

	assert.Contains(t, out, "[image]")
	assert.Contains(t, out, "abc.png")
	assert.NotContains(t, out, "hidden message", "plain images carry no unlock hint")
}

func TestRenderSecretLinePhases(t *testing.T) {
	msg := chat.Message{
		Content:     "http://localhost/static/abc.png",
		ContentType: chat.ContentTypeImage,
		IsEncrypted: true,
		From:        "bob234",
	}

	locked := renderMessage(msg, "frodo1", &unlockState{}, false, 80)
	assert.Contains(t, locked, "Press enter to unlock")

	awaiting := renderMessage(msg, "frodo1", &unlockState{phase: unlockAwaiting}, false, 80)
	assert.Contains(t, awaiting, "passphrase")

	revealed := renderMessage(msg, "frodo1", &unlockState{phase: unlockRevealed, secret: "meet at dawn"}, false, 80)
	assert.Contains(t, revealed, "meet at dawn")
}

func TestRenderSecretLineFallsBackToDefault(t *testing.T) {
	msg := chat.Message{
		Content:          "http://localhost/static/abc.png",
		ContentType:      chat.ContentTypeImage,
		IsEncrypted:      true,
		SecretMsgDefault: "nothing hidden here",
		From:             "bob234",
	}

	out := renderMessage(msg, "frodo1", &unlockState{phase: unlockRevealed}, false, 80)
	assert.Contains(t, out, "nothing hidden here")
}

func TestRenderMessageNilStateIsLocked(t *testing.T) {
	msg := chat.Message{
		Content:     "http://localhost/static/abc.png",
		ContentType: chat.ContentTypeImage,
		IsEncrypted: true,
		From:        "bob234",
	}

	out := renderMessage(msg, "frodo1", nil, false, 80)
	assert.True(t, strings.Contains(out, "Press enter to unlock"))
}
