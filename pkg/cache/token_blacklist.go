package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "social-feed:"

// TokenBlacklist 已注销 token 的 jti 集合
type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisBlacklist Redis 实现，key 在 token 过期时自动失效
type RedisBlacklist struct {
	client *redis.Client
	prefix string
}

func NewRedisBlacklist(client *redis.Client, mode string) *RedisBlacklist {
	prefix := keyPrefix
	if mode == "test" {
		prefix = "test:" + prefix
	}
	return &RedisBlacklist{client: client, prefix: prefix + "revoked:"}
}

func (b *RedisBlacklist) getKey(tokenID string) string {
	return b.prefix + tokenID
}

// Revoke 已过期的 token 无需记录
func (b *RedisBlacklist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, b.getKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, b.getKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
