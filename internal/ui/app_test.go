package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hushchat/internal/app/api"
	"hushchat/internal/app/user"
)

func TestNewAppWithoutStoredTokenMountsLogin(t *testing.T) {
	deps, _ := newTestDeps(t)

	app := NewApp(deps)

	assert.False(t, app.restoring)
	assert.IsType(t, LoginPage{}, app.page)
	assert.NotEqual(t, "Loading...", app.View())
}

func TestNewAppWithStoredTokenEntersRestore(t *testing.T) {
	deps, _ := newTestDeps(t)
	require.NoError(t, deps.Tokens.Save("token-abc"))

	app := NewApp(deps)

	assert.True(t, app.restoring)
	assert.Nil(t, app.page)
	assert.Equal(t, "Loading...", app.View())
}

func TestFailedRestoreFallsBackToLogin(t *testing.T) {
	deps, _ := newTestDeps(t)
	require.NoError(t, deps.Tokens.Save("token-abc"))

	app := NewApp(deps)
	updated, _ := app.Update(sessionRestoredMsg{err: errors.New("401")})
	app = updated.(App)

	assert.False(t, app.restoring)
	assert.IsType(t, LoginPage{}, app.page)

	stored, err := deps.Tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored, "a rejected token must not survive for the next start")
}

func TestSuccessfulRestoreMountsDashboard(t *testing.T) {
	deps, realtime := newTestDeps(t)
	require.NoError(t, deps.Tokens.Save("token-old"))

	app := NewApp(deps)
	result := api.AuthResult{User: user.User{UserID: "frodo1"}, Token: "token-new"}
	updated, _ := app.Update(sessionRestoredMsg{result: result})
	app = updated.(App)

	assert.False(t, app.restoring)
	assert.IsType(t, DashboardPage{}, app.page)
	assert.True(t, deps.Session.LoggedIn())
	assert.Equal(t, []string{"frodo1"}, realtime.announced)

	stored, err := deps.Tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-new", stored, "the rotated token replaces the stored one")
}
