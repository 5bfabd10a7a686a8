package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DenyList records revoked token ids until their natural expiry.
type DenyList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const denyListPrefix = "auth:denylist:"

type redisDenyList struct {
	client *redis.Client
}

// NewRedisDenyList returns a Redis-backed deny-list. Entries carry a TTL equal
// to the remaining token lifetime, so the list never outgrows live tokens.
func NewRedisDenyList(client *redis.Client) DenyList {
	return &redisDenyList{client: client}
}

func (d *redisDenyList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denyListPrefix+tokenID, "1", ttl).Err()
}

func (d *redisDenyList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denyListPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
