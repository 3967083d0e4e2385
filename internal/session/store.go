// Package session implements the server-side session store. The client holds
// only the opaque token; the payload stays in-process, so sessions do not
// survive a restart.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_id"

// User is the session payload: the subset of a user record that is safe to
// hand back to the authenticated client. The store accepts nothing else, so
// the password hash is stripped by construction.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type entry struct {
	user      User
	expiresAt time.Time
}

// Store keeps sessions keyed by token.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]entry
}

// NewStore creates a store whose sessions expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]entry),
	}
}

// Create registers a session for user and returns its token: 32 bytes of
// crypto/rand, hex-encoded, so tokens are unguessable.
func (s *Store) Create(user User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[token] = entry{user: user, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return token, nil
}

// Get resolves a token to its payload. Expired sessions are dropped lazily.
func (s *Store) Get(token string) (User, bool) {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return User{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.Destroy(token)
		return User{}, false
	}
	return e.user, true
}

// Destroy removes a session. Destroying an absent token is not an error.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
