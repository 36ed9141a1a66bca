package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

// SessionStore tracks revoked token ids so logout takes effect before the
// JWT expires on its own.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps a redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Revoke marks a token id as invalid until its natural expiry.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s == nil || s.client == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token id has been revoked. Redis being down
// fails open: the signed JWT remains the primary credential.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) bool {
	if s == nil || s.client == nil || tokenID == "" {
		return false
	}
	val, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return val > 0
}
