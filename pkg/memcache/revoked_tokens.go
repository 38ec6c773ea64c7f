package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out bearer tokens until their
// natural expiry so the auth middleware can reject them.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type entry struct {
	expiresAt time.Time
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]entry),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{expiresAt: time.Now().Add(ttl)}

	// opportunistic cleanup; the map only grows with logouts
	if len(s.data) > 10000 {
		now := time.Now()
		for t, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, t)
			}
		}
	}
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, token)
		s.mu.Unlock()
		return false
	}
	return true
}
