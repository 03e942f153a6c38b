/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file implements the transient status-line notifications the pages use
for validation warnings and operation feedback.
*/
package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hushchat/internal/pkg/errs"
)

// toastDuration is how long status-line notifications stay visible.
const toastDuration = 4 * time.Second

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastWarning
	toastError
)

// toast is one transient status-line notification, the terminal stand-in for
// the browser client's toast popups.
type toast struct {
	kind toastKind
	text string
}

// toastClearMsg expires a generation of toasts.
type toastClearMsg struct{ gen int }

// toastStack accumulates the currently visible notifications. Every push
// restarts the expiry clock for the whole stack.
type toastStack struct {
	items []toast
	gen   int
}

func (s *toastStack) push(kind toastKind, text string) tea.Cmd {
	s.items = append(s.items, toast{kind: kind, text: text})
	s.gen++

	gen := s.gen
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{gen: gen}
	})
}

// pushError surfaces an error, using the friendly message when it is one of ours.
func (s *toastStack) pushError(err error) tea.Cmd {
	var customErr *errs.CustomError
	if errors.As(err, &customErr) {
		return s.push(toastError, customErr.Message)
	}

	return s.push(toastError, err.Error())
}

func (s *toastStack) handleClear(msg toastClearMsg) {
	if msg.gen == s.gen {
		s.items = nil
	}
}

func (s *toastStack) view() string {
	if len(s.items) == 0 {
		return ""
	}

	var out string
	for _, item := range s.items {
		switch item.kind {
		case toastSuccess:
			out += toastSuccessStyle.Render(item.text) + "\n"
		case toastWarning:
			out += toastWarningStyle.Render(item.text) + "\n"
		case toastError:
			out += toastErrorStyle.Render(item.text) + "\n"
		default:
			out += toastInfoStyle.Render(item.text) + "\n"
		}
	}

	return out
}
