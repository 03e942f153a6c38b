/*
Package session holds the authenticated user's state for the lifetime of the process.

This file defines the Store, the single source of truth every screen consults to
decide whether someone is logged in. Exactly one current user exists per process;
there is no multi-user cache.
*/
package session

import (
	"sync"

	"hushchat/internal/app/user"
)

// Store holds the current user record. It is safe for concurrent use: the UI
// loop and the realtime channel goroutine both read it.
type Store struct {
	mu      sync.RWMutex
	current user.User
}

// NewStore returns a Store with the all-empty initial record.
func NewStore() *Store {
	return &Store{}
}

// Set shallow-merges the given partial record into the current one. String
// fields overwrite only when non-empty (later calls win); the verification
// flags are taken as supplied, since the backend only ever sends them as part
// of a whole profile. No validation is performed here.
func (s *Store) Set(partial user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if partial.UserID != "" {
		s.current.UserID = partial.UserID
	}
	if partial.Name != "" {
		s.current.Name = partial.Name
	}
	if partial.Email != "" {
		s.current.Email = partial.Email
	}
	if partial.Phone != "" {
		s.current.Phone = partial.Phone
	}
	if partial.Bio != "" {
		s.current.Bio = partial.Bio
	}
	if partial.UserType != "" {
		s.current.UserType = partial.UserType
	}
	if partial.Avatar != "" {
		s.current.Avatar = partial.Avatar
	}
	if partial.EmailVerified {
		s.current.EmailVerified = true
	}
	if partial.PhoneVerified {
		s.current.PhoneVerified = true
	}
}

// Clear resets the store to the all-empty initial record.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user.User{}
}

// Current returns a copy of the current user record.
func (s *Store) Current() user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// LoggedIn reports whether a user is currently authenticated.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.UserID != ""
}
