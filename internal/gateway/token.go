package gateway

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// TokenTTL is how long an issued connection token stays claimable.
const TokenTTL = 30 * time.Second

type pendingToken struct {
	address string // empty for guest sessions
	issued  time.Time
}

// TokenStore issues single-use connection tokens. Tokens expire after
// TokenTTL and are consumed on claim.
type TokenStore struct {
	mu      sync.Mutex
	pending map[string]pendingToken
	now     func() time.Time
}

// NewTokenStore builds an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		pending: make(map[string]pendingToken),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Issue creates a token bound to the given address, or a guest token when
// the address is empty. Expired tokens are swept opportunistically.
func (s *TokenStore) Issue(address string) (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, pending := range s.pending {
		if now.Sub(pending.issued) > TokenTTL {
			delete(s.pending, key)
		}
	}
	s.pending[token] = pendingToken{address: address, issued: now}
	return token, nil
}

// Claim consumes a token and returns the address it was bound to. A token
// that was never issued, already claimed or expired reports ok=false.
func (s *TokenStore) Claim(token string) (address string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, found := s.pending[token]
	if !found {
		return "", false
	}
	delete(s.pending, token)
	if s.now().Sub(pending.issued) > TokenTTL {
		return "", false
	}
	return pending.address, true
}
