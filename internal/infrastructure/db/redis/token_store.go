package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vidhive/accounts-api/internal/core/domain"
	"github.com/vidhive/accounts-api/internal/core/ports"
)

const tokenKeyPrefix = "refresh_token:"

// TokenStore keeps refresh-token records in Redis. Expiry is enforced twice:
// the record carries its own ExpiresAt and the key gets a matching TTL, so
// stale records vanish even if nobody ever presents them again.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

type tokenRecord struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Save persists a refresh-token record under its id with a TTL derived from
// its expiry.
func (s *TokenStore) Save(ctx context.Context, token ports.RefreshToken) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refresh token already expired")
	}

	data, err := json.Marshal(tokenRecord{
		UserID:    token.UserID,
		Username:  token.Username,
		ExpiresAt: token.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal refresh token: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Find returns the record behind a refresh token id, or domain.ErrInvalidToken
// when Redis holds nothing under it (never issued, expired, or rotated away).
func (s *TokenStore) Find(ctx context.Context, id string) (*ports.RefreshToken, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	var rec tokenRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal refresh token: %w", err)
	}

	return &ports.RefreshToken{
		ID:        id,
		UserID:    rec.UserID,
		Username:  rec.Username,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

// Delete drops a refresh-token record. Deleting an absent id is not an error.
func (s *TokenStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) key(id string) string {
	return tokenKeyPrefix + id
}
