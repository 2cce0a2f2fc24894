package middleware

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenStore issues and verifies ephemeral admin tokens. Tokens expire
// after the configured TTL; expired entries are swept on every call.
type TokenStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	tokens map[string]time.Time
}

// NewTokenStore builds a token store with the given lifetime.
func NewTokenStore(ttl time.Duration, now func() time.Time) *TokenStore {
	if now == nil {
		now = time.Now
	}
	return &TokenStore{
		ttl:    ttl,
		now:    now,
		tokens: make(map[string]time.Time),
	}
}

// Issue mints a fresh token and returns it with its expiry time.
func (s *TokenStore) Issue() (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	token := uuid.NewString()
	expiresAt := s.now().Add(s.ttl)
	s.tokens[token] = expiresAt
	return token, expiresAt
}

// Verify reports whether the token exists and has not expired.
func (s *TokenStore) Verify(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	_, ok := s.tokens[token]
	return ok
}

// sweep removes expired tokens. Caller holds the mutex.
func (s *TokenStore) sweep() {
	now := s.now()
	for token, expiresAt := range s.tokens {
		if !now.Before(expiresAt) {
			delete(s.tokens, token)
		}
	}
}

// CheckCredentials compares the supplied admin credentials in constant time.
func CheckCredentials(user, password, wantUser, wantPassword string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPassword)) == 1
	return userOK && passOK
}
