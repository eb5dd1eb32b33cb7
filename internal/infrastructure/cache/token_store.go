package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the set of issued, non-revoked tokens. A token is valid
// only while its key exists.
type TokenStore interface {
	Save(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

// TokenKey is the redis key of a token: <kind>_token:<user id>:<token id>.
func TokenKey(kind string, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", kind, userID.String(), tokenID)
}

// UserTokenPattern matches every token of every kind issued to userID.
func UserTokenPattern(userID uuid.UUID) string {
	return fmt.Sprintf("*_token:%s:*", userID.String())
}

func (s *redisTokenStore) Save(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, TokenKey(kind, userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, TokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, TokenKey(kind, userID, tokenID)).Err()
}

// RevokeAll deletes every access and refresh token issued to userID.
func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	iter := s.client.Scan(ctx, 0, UserTokenPattern(userID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
