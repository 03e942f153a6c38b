/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file collects the lipgloss styles shared by the pages.
*/
package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF"))

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AAAAAA"))

	onlineDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	selectedEntryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(lipgloss.Color("#CBD5E1"))

	mineBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#86EFAC")).
			Padding(0, 1)

	theirsBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(lipgloss.Color("#FFFFFF")).
				Padding(0, 1)

	imageBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#334155")).
				Padding(0, 1)

	secretHintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#60A5FA"))

	secretTextStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FACC15"))

	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#93C5FD"))

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#22C55E"))

	toastWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FBBF24"))

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))
)
