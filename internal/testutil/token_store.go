package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"hospital-management/internal/infrastructure/cache"

	"github.com/google/uuid"
)

// TokenStore keeps issued tokens in a map keyed like the redis store.
type TokenStore struct {
	mu     sync.Mutex
	Tokens map[string]time.Duration
}

func NewTokenStore() *TokenStore {
	return &TokenStore{Tokens: map[string]time.Duration{}}
}

func (s *TokenStore) Save(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tokens[cache.TokenKey(kind, userID, tokenID)] = ttl
	return nil
}

func (s *TokenStore) Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.Tokens[cache.TokenKey(kind, userID, tokenID)]
	return ok, nil
}

func (s *TokenStore) Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Tokens, cache.TokenKey(kind, userID, tokenID))
	return nil
}

func (s *TokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.Tokens {
		if strings.Contains(key, "_token:"+userID.String()+":") {
			delete(s.Tokens, key)
		}
	}
	return nil
}
