package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hushchat/internal/app/user"
)

func TestSetMergesPartialRecords(t *testing.T) {
	s := NewStore()

	s.Set(user.User{UserID: "x"})
	s.Set(user.User{Name: "A"})

	got := s.Current()
	assert.Equal(t, "x", got.UserID)
	assert.Equal(t, "A", got.Name)
}

func TestSetLaterFieldsWin(t *testing.T) {
	s := NewStore()

	s.Set(user.User{UserID: "alice123", Name: "Alice", Email: "a@example.com"})
	s.Set(user.User{Name: "Alice B."})

	got := s.Current()
	assert.Equal(t, "alice123", got.UserID)
	assert.Equal(t, "Alice B.", got.Name)
	assert.Equal(t, "a@example.com", got.Email)
}

func TestClearResetsToInitialRecord(t *testing.T) {
	s := NewStore()

	s.Set(user.User{UserID: "x", Name: "A", EmailVerified: true})
	s.Clear()

	assert.Equal(t, user.User{}, s.Current())
	assert.False(t, s.LoggedIn())
}

func TestLoggedInTracksUserID(t *testing.T) {
	s := NewStore()
	assert.False(t, s.LoggedIn())

	s.Set(user.User{Name: "nameless"})
	assert.False(t, s.LoggedIn())

	s.Set(user.User{UserID: "bob123"})
	assert.True(t, s.LoggedIn())
}
