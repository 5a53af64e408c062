package usecase

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"simbu-console/internal/core/domain"
	"simbu-console/internal/core/port"
)

// Session is the single source of truth for who is logged in. In-memory
// state changes happen under one lock so no reader observes a half-applied
// update; the durable copy lives in a port.CredentialStore.
type Session struct {
	mu     sync.Mutex
	store  port.CredentialStore
	logger *slog.Logger

	user          *domain.User
	token         string
	authenticated bool
}

// NewSession returns a logged-out session over the given store.
func NewSession(store port.CredentialStore, logger *slog.Logger) *Session {
	return &Session{store: store, logger: logger}
}

// Initialize rehydrates the session from durable storage. It is meant to
// run once at startup. Missing keys or an unparseable user snapshot leave
// the session logged out; the failure is local and never surfaced as an
// error, and storage is not cleared.
func (s *Session) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.store.Get(port.KeyToken)
	if err != nil {
		s.resetLocked()
		return
	}
	raw, err := s.store.Get(port.KeyUser)
	if err != nil {
		s.resetLocked()
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		if s.logger != nil {
			s.logger.Debug("stored user snapshot unreadable, starting logged out")
		}
		s.resetLocked()
		return
	}

	s.user = &user
	s.token = token
	s.authenticated = true
}

// SetAuth persists the user snapshot and token and marks the session
// authenticated.
func (s *Session) SetAuth(user domain.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(port.KeyToken, token); err != nil {
		return err
	}
	if err := s.store.Set(port.KeyUser, string(raw)); err != nil {
		return err
	}

	s.user = &user
	s.token = token
	s.authenticated = true
	return nil
}

// SetUser refreshes only the profile snapshot, e.g. after a profile edit.
func (s *Session) SetUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(port.KeyUser, string(raw)); err != nil {
		return err
	}
	s.user = &user
	return nil
}

// Logout clears durable storage and in-memory state. Idempotent; a missing
// key is not an error.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{port.KeyToken, port.KeyUser} {
		if err := s.store.Delete(key); err != nil && !errors.Is(err, port.ErrKeyNotFound) {
			if s.logger != nil {
				s.logger.Warn("clear credential failed", slog.String("key", key), slog.Any("error", err))
			}
		}
	}
	s.resetLocked()
}

// Token returns the current bearer token, empty when logged out. Suitable
// as the gateway client's token provider.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current profile snapshot, nil when logged out.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a login is active.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Session) resetLocked() {
	s.user = nil
	s.token = ""
	s.authenticated = false
}
