/*
Package ui contains the terminal screens of the client, built on Bubble Tea.

This file implements the account creation page and its field validation.
*/
package ui

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hushchat/internal/app/api"
	"hushchat/internal/pkg/errs"
	"hushchat/internal/pkg/logx"
)

// phoneDigits is the required length of a phone number.
const phoneDigits = 10

// emailPattern matches the address shapes the server accepts at registration.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// SignupPage collects a registration draft and creates the account.
type SignupPage struct {
	deps *Deps

	inputs []textinput.Model
	focus  int

	submitting bool
	toasts     toastStack
}

// Field positions within SignupPage.inputs.
const (
	signupEmail = iota
	signupName
	signupUserID
	signupPhone
	signupPassword
	signupFieldCount
)

// signupResultMsg carries the outcome of account creation.
type signupResultMsg struct {
	result api.AuthResult
	err    error
}

func NewSignupPage(deps *Deps) SignupPage {
	placeholders := [signupFieldCount]string{"email", "name", "userId", "phone", "password"}

	inputs := make([]textinput.Model, signupFieldCount)
	for i := range inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 128
		inputs[i] = input
	}
	inputs[signupPassword].EchoMode = textinput.EchoPassword
	inputs[signupPassword].EchoCharacter = '*'
	inputs[signupEmail].Focus()

	return SignupPage{deps: deps, inputs: inputs}
}

func (m SignupPage) Init() tea.Cmd {
	if m.deps.Session.LoggedIn() {
		return gotoDashboard
	}
	return textinput.Blink
}

func (m SignupPage) value(field int) string {
	return strings.TrimSpace(m.inputs[field].Value())
}

// validate returns every rule the current draft breaks, one message per
// violation, in the order the server reports them.
func (m SignupPage) validate() []string {
	var violations []string

	if email := m.value(signupEmail); email == "" {
		violations = append(violations, errs.NewError(errs.ErrEmailMissing).Message)
	} else if !emailPattern.MatchString(email) {
		violations = append(violations, errs.NewError(errs.ErrEmailInvalid).Message)
	}

	if m.value(signupName) == "" {
		violations = append(violations, errs.NewError(errs.ErrNameMissing).Message)
	}

	if userID := m.value(signupUserID); userID == "" {
		violations = append(violations, errs.NewError(errs.ErrUserIDMissing).Message)
	} else if len(userID) < minUserIDLen {
		violations = append(violations, errs.NewError(errs.ErrUserIDTooShort).Message)
	}

	if phone := m.value(signupPhone); phone == "" {
		violations = append(violations, errs.NewError(errs.ErrPhoneMissing).Message)
	} else if len(phone) != phoneDigits {
		violations = append(violations, errs.NewError(errs.ErrPhoneInvalid).Message)
	}

	return violations
}

func (m SignupPage) submit() (SignupPage, tea.Cmd) {
	violations := m.validate()
	if len(violations) > 0 {
		var cmds []tea.Cmd
		for _, violation := range violations {
			cmds = append(cmds, m.toasts.push(toastWarning, violation))
		}
		return m, tea.Batch(cmds...)
	}

	input := api.RegisterInput{
		UserID:   m.value(signupUserID),
		Name:     m.value(signupName),
		Email:    m.value(signupEmail),
		Phone:    m.value(signupPhone),
		Password: m.inputs[signupPassword].Value(),
	}

	m.submitting = true
	return m, func() tea.Msg {
		result, err := m.deps.API.Register(context.Background(), input)
		return signupResultMsg{result: result, err: err}
	}
}

func (m SignupPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+r":
			return m, gotoLogin

		case "tab", "down":
			m.focus = (m.focus + 1) % signupFieldCount
			return m.applyFocus(), nil

		case "shift+tab", "up":
			m.focus = (m.focus + signupFieldCount - 1) % signupFieldCount
			return m.applyFocus(), nil

		case "enter":
			if m.submitting {
				return m, nil
			}
			return m.submit()
		}

	case signupResultMsg:
		m.submitting = false
		if msg.err != nil {
			logx.Warn("registration failed", "error", msg.err.Error())
			cmd := m.toasts.pushError(msg.err)
			return m, cmd
		}
		return m, finishAuth(m.deps, msg.result)

	case toastClearMsg:
		m.toasts.handleClear(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m SignupPage) applyFocus() SignupPage {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

func (m SignupPage) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HushChat / Create account"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.submitting {
		b.WriteString(hintStyle.Render("Creating account..."))
		b.WriteString("\n")
	}
	b.WriteString(m.toasts.view())
	b.WriteString(hintStyle.Render("enter: create account | ctrl+r: back to sign in | ctrl+c: quit"))

	return b.String()
}
