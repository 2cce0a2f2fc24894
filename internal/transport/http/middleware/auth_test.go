package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenStoreIssueAndVerify(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	s := NewTokenStore(time.Hour, clock.now)

	token, expiresAt := s.Issue()
	require.NotEmpty(t, token)
	require.Equal(t, clock.t.Add(time.Hour), expiresAt)
	require.True(t, s.Verify(token))
	require.False(t, s.Verify("not-a-token"))
}

func TestTokenStoreExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	s := NewTokenStore(time.Hour, clock.now)

	token, _ := s.Issue()
	clock.advance(time.Hour)
	require.False(t, s.Verify(token))

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Empty(t, s.tokens)
}

func TestTokenStoreTokensAreDistinct(t *testing.T) {
	s := NewTokenStore(time.Hour, nil)
	a, _ := s.Issue()
	b, _ := s.Issue()
	require.NotEqual(t, a, b)
}

func TestCheckCredentials(t *testing.T) {
	require.True(t, CheckCredentials("admin", "secret", "admin", "secret"))
	require.False(t, CheckCredentials("admin", "wrong", "admin", "secret"))
	require.False(t, CheckCredentials("other", "secret", "admin", "secret"))
	require.False(t, CheckCredentials("", "", "admin", "secret"))
}
