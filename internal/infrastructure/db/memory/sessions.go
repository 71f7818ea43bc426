// Package memory provides process-local session stores used when no Redis is
// configured: sessions survive within the process and vanish on restart, and
// no operation ever fails.
package memory

import (
	"context"
	"sync"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// TokenStore is an in-memory ports.TokenStore.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]string)}
}

func (s *TokenStore) Set(_ context.Context, sid, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sid] = token
	return nil
}

func (s *TokenStore) Get(_ context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[sid], nil
}

func (s *TokenStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	return nil
}

// IdentityStore is an in-memory ports.IdentityStore.
type IdentityStore struct {
	mu         sync.RWMutex
	identities map[string]domain.Identity
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{identities: make(map[string]domain.Identity)}
}

func (s *IdentityStore) Set(_ context.Context, sid string, identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[sid] = identity
	return nil
}

func (s *IdentityStore) Get(_ context.Context, sid string) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.identities[sid]
	if !ok {
		return nil, nil
	}
	return &identity, nil
}

func (s *IdentityStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.identities, sid)
	return nil
}
