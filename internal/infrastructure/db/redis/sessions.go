package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/OscarMG4/space-booking-app/internal/core/domain"
)

// TokenStore persists session tokens in Redis.
// Key format: session:token:<sid>
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore creates a TokenStore whose entries expire after ttl.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

func (s *TokenStore) Set(ctx context.Context, sid, token string) error {
	return s.client.Set(ctx, tokenKey(sid), token, s.ttl).Err()
}

// Get returns the stored token, or "" when the session has none.
func (s *TokenStore) Get(ctx context.Context, sid string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(sid)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token get: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, tokenKey(sid)).Err()
}

func tokenKey(sid string) string {
	return "session:token:" + sid
}

// IdentityStore caches resolved identities in Redis as JSON.
// Key format: session:identity:<sid>
type IdentityStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdentityStore creates an IdentityStore whose entries expire after ttl.
func NewIdentityStore(client *redis.Client, ttl time.Duration) *IdentityStore {
	return &IdentityStore{client: client, ttl: ttl}
}

func (s *IdentityStore) Set(ctx context.Context, sid string, identity domain.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("identity encode: %w", err)
	}
	return s.client.Set(ctx, identityKey(sid), payload, s.ttl).Err()
}

// Get returns the cached identity, or nil when the session has none.
func (s *IdentityStore) Get(ctx context.Context, sid string) (*domain.Identity, error) {
	payload, err := s.client.Get(ctx, identityKey(sid)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("identity get: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, fmt.Errorf("identity decode: %w", err)
	}
	return &identity, nil
}

func (s *IdentityStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, identityKey(sid)).Err()
}

func identityKey(sid string) string {
	return "session:identity:" + sid
}
