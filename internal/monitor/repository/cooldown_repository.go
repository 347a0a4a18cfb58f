package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cooldownKeyPrefix = "cooldown:"
	lockKeyPrefix     = "lock:"
)

// CooldownRepository keeps notification cooldowns in redis so they are shared by every process.
type CooldownRepository interface {
	IsCooling(ctx context.Context, key string) (bool, error)
	StartCooldown(ctx context.Context, key string, ttl time.Duration) error
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

type redisCooldownRepository struct {
	redis *redis.Client
	now   func() time.Time
}

func (r *redisCooldownRepository) IsCooling(ctx context.Context, key string) (bool, error) {
	n, err := r.redis.Exists(ctx, cooldownKeyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("CooldownRepository.IsCooling: %w", err)
	}
	return n > 0, nil
}

// StartCooldown stores the expiry timestamp and lets redis drop the key when it passes.
func (r *redisCooldownRepository) StartCooldown(ctx context.Context, key string, ttl time.Duration) error {
	expiry := r.now().Add(ttl).UTC().Format(time.RFC3339)
	if err := r.redis.Set(ctx, cooldownKeyPrefix+key, expiry, ttl).Err(); err != nil {
		return fmt.Errorf("CooldownRepository.StartCooldown: %w", err)
	}
	return nil
}

func (r *redisCooldownRepository) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.redis.SetNX(ctx, lockKeyPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("CooldownRepository.Lock: %w", err)
	}
	return ok, nil
}

func (r *redisCooldownRepository) Unlock(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, lockKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("CooldownRepository.Unlock: %w", err)
	}
	return nil
}

func NewRedisCooldownRepository(redis *redis.Client, now func() time.Time) CooldownRepository {
	if now == nil {
		now = time.Now
	}
	return &redisCooldownRepository{
		redis: redis,
		now:   now,
	}
}
