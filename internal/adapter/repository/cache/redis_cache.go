package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/config"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisClient(cfg *config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Address, err)
	}
	logger.Info("Successfully connected to Redis", zap.String("address", cfg.Address))
	return rdb, nil
}

func NewRedisCache(client *redis.Client, logger *zap.Logger) usecase.Cache {
	return &redisCache{client: client, logger: logger}
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrCacheMiss
		}
		r.logger.Error("Redis Get operation failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("redisCache.Get for key '%s': %w", key, err)
	}
	return val, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Redis Set operation failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redisCache.Set for key '%s': %w", key, err)
	}
	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis Del operation failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redisCache.Delete for key '%s': %w", key, err)
	}
	return nil
}
