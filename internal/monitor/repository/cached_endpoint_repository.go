package repository

import (
	"BPJS_Monitoring_Service/internal/monitor/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const activeEndpointsCacheKey = "endpoints:active"

type cachedEndpointConfigRepository struct {
	redis    *redis.Client
	repo     EndpointConfigRepository
	cacheTTL time.Duration
}

func (c *cachedEndpointConfigRepository) CreateEndpoint(ctx context.Context, cfg model.EndpointConfig) (model.EndpointConfig, error) {
	if err := c.invalidate(ctx); err != nil {
		return model.EndpointConfig{}, fmt.Errorf("cachedEndpointConfigRepository.CreateEndpoint: %w", err)
	}
	return c.repo.CreateEndpoint(ctx, cfg)
}

func (c *cachedEndpointConfigRepository) UpsertEndpoints(ctx context.Context, cfgs []model.EndpointConfig) (int64, error) {
	if err := c.invalidate(ctx); err != nil {
		return 0, fmt.Errorf("cachedEndpointConfigRepository.UpsertEndpoints: %w", err)
	}
	return c.repo.UpsertEndpoints(ctx, cfgs)
}

func (c *cachedEndpointConfigRepository) GetEndpointByName(ctx context.Context, name string) (model.EndpointConfig, error) {
	return c.repo.GetEndpointByName(ctx, name)
}

func (c *cachedEndpointConfigRepository) GetEndpoints(ctx context.Context, group string, activeOnly bool, limit int, offset int) ([]model.EndpointConfig, error) {
	return c.repo.GetEndpoints(ctx, group, activeOnly, limit, offset)
}

func (c *cachedEndpointConfigRepository) GetActiveEndpoints(ctx context.Context) ([]model.EndpointConfig, error) {
	data, err := c.redis.Get(ctx, activeEndpointsCacheKey).Bytes()
	if err == nil {
		var cfgs []model.EndpointConfig
		if e := json.Unmarshal(data, &cfgs); e == nil {
			return cfgs, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("cachedEndpointConfigRepository.GetActiveEndpoints: %w", err)
	}

	cfgs, err := c.repo.GetActiveEndpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("cachedEndpointConfigRepository.GetActiveEndpoints: %w", err)
	}
	b, err := json.Marshal(cfgs)
	if err != nil {
		return nil, fmt.Errorf("cachedEndpointConfigRepository.GetActiveEndpoints: %w", err)
	}
	if err = c.redis.Set(ctx, activeEndpointsCacheKey, b, c.cacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("cachedEndpointConfigRepository.GetActiveEndpoints: %w", err)
	}
	return cfgs, nil
}

func (c *cachedEndpointConfigRepository) UpdateEndpoint(ctx context.Context, name string, fields map[string]interface{}) (model.EndpointConfig, error) {
	if err := c.invalidate(ctx); err != nil {
		return model.EndpointConfig{}, fmt.Errorf("cachedEndpointConfigRepository.UpdateEndpoint: %w", err)
	}
	return c.repo.UpdateEndpoint(ctx, name, fields)
}

func (c *cachedEndpointConfigRepository) DeleteEndpointByName(ctx context.Context, name string) error {
	if err := c.invalidate(ctx); err != nil {
		return fmt.Errorf("cachedEndpointConfigRepository.DeleteEndpointByName: %w", err)
	}
	return c.repo.DeleteEndpointByName(ctx, name)
}

func (c *cachedEndpointConfigRepository) invalidate(ctx context.Context) error {
	return c.redis.Del(ctx, activeEndpointsCacheKey).Err()
}

func NewCachedEndpointConfigRepository(redis *redis.Client, repo EndpointConfigRepository, cacheTTL time.Duration) EndpointConfigRepository {
	return &cachedEndpointConfigRepository{
		redis:    redis,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
