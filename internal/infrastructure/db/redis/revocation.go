package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList tracks per-user token revocation instants in Redis.
// Key format: revoked:<user_id> → unix seconds of the revocation.
// Entries expire after the token TTL: by then every token issued before the
// revocation has expired on its own.
type RevocationList struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
// ttl should match the bearer-token lifetime.
func NewRevocationList(client *redis.Client, ttl time.Duration) *RevocationList {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RevocationList{client: client, ttl: ttl}
}

// Revoke marks every token issued to userID up to now as invalid.
func (l *RevocationList) Revoke(ctx context.Context, userID string) error {
	now := time.Now().UTC().Unix()
	if err := l.client.Set(ctx, l.key(userID), strconv.FormatInt(now, 10), l.ttl).Err(); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token issued at issuedAt for userID has been
// revoked.
func (l *RevocationList) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	val, err := l.client.Get(ctx, l.key(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	revokedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return !issuedAt.After(time.Unix(revokedAt, 0).UTC()), nil
}

func (l *RevocationList) key(userID string) string {
	return "revoked:" + userID
}
