package services

import (
	"context"
	"errors"
	"time"

	"autorent/pkg/cache"

	"github.com/redis/go-redis/v9"
)

// CacheService is the caching surface the repositories and services depend
// on. Backed by Redis in production, by a no-op or map in tests.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	DeletePattern(ctx context.Context, pattern string) error
}

type redisCacheService struct {
	redis *cache.RedisCache
}

func NewCacheService(redisCache *cache.RedisCache) CacheService {
	return &redisCacheService{redis: redisCache}
}

func (s *redisCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	err := s.redis.Get(ctx, key, dest)
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	return err
}

func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.redis.Set(ctx, key, value, expiration)
}

func (s *redisCacheService) Delete(ctx context.Context, keys ...string) error {
	return s.redis.Delete(ctx, keys...)
}

func (s *redisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	return s.redis.Exists(ctx, key)
}

func (s *redisCacheService) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return s.redis.SetNX(ctx, key, value, expiration)
}

func (s *redisCacheService) DeletePattern(ctx context.Context, pattern string) error {
	return s.redis.DeletePattern(ctx, pattern)
}

// NoopCacheService satisfies CacheService without a backing store. Used when
// Redis is disabled and in tests.
type NoopCacheService struct{}

func (NoopCacheService) Get(ctx context.Context, key string, dest interface{}) error {
	return ErrCacheMiss
}

func (NoopCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (NoopCacheService) Delete(ctx context.Context, keys ...string) error { return nil }

func (NoopCacheService) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func (NoopCacheService) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return true, nil
}

func (NoopCacheService) DeletePattern(ctx context.Context, pattern string) error { return nil }
