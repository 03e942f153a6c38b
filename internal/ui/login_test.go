package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hushchat/internal/app/api"
	"hushchat/internal/app/user"
	"hushchat/internal/pkg/errs"
)

func TestLoginValidateRequiresUserID(t *testing.T) {
	deps, _ := newTestDeps(t)
	page := NewLoginPage(deps)

	violations := page.validate()

	require.Len(t, violations, 1)
	assert.Equal(t, "You must provide an userId.", violations[0])
}

func TestLoginValidateRejectsShortUserID(t *testing.T) {
	deps, _ := newTestDeps(t)
	page := NewLoginPage(deps)
	page.userID.SetValue("bob")

	violations := page.validate()

	require.Len(t, violations, 1)
	assert.Equal(t, "UserId must be more than 6 characters.", violations[0])
}

func TestLoginValidateAcceptsSixCharacterUserID(t *testing.T) {
	deps, _ := newTestDeps(t)
	page := NewLoginPage(deps)
	page.userID.SetValue("frodo1")

	assert.Empty(t, page.validate())
}

func TestLoginSuccessInstallsSessionAndNavigates(t *testing.T) {
	deps, realtime := newTestDeps(t)
	page := NewLoginPage(deps)

	result := api.AuthResult{
		User:  user.User{UserID: "frodo1", Name: "Frodo"},
		Token: "token-abc",
	}

	_, cmd := page.Update(loginResultMsg{result: result})
	require.NotNil(t, cmd)

	assert.True(t, deps.Session.LoggedIn())
	assert.Equal(t, "frodo1", deps.Session.Current().UserID)
	assert.Equal(t, []string{"frodo1"}, realtime.announced)

	stored, err := deps.Tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-abc", stored)

	assert.IsType(t, gotoDashboardMsg{}, cmd())
}

func TestLoginFailureShowsToastAndStaysPut(t *testing.T) {
	deps, realtime := newTestDeps(t)
	page := NewLoginPage(deps)

	updated, cmd := page.Update(loginResultMsg{err: errs.NewError(errs.ErrUnauthorized)})
	require.NotNil(t, cmd)

	loginPage, ok := updated.(LoginPage)
	require.True(t, ok)
	require.Len(t, loginPage.toasts.items, 1)
	assert.Equal(t, "Please sign in to continue.", loginPage.toasts.items[0].text)

	assert.False(t, deps.Session.LoggedIn())
	assert.Empty(t, realtime.announced)
}

func TestLoginRedirectsWhenSessionExists(t *testing.T) {
	deps, _ := newTestDeps(t)
	deps.Session.Set(user.User{UserID: "frodo1"})

	page := NewLoginPage(deps)
	cmd := page.Init()

	require.NotNil(t, cmd)
	assert.IsType(t, gotoDashboardMsg{}, cmd())
}
