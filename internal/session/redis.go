package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/imogenclam/visualmath/internal/config"
	"github.com/imogenclam/visualmath/internal/model"
)

// NewRedisClient creates and validates a Redis client connection.
func NewRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Msg("Redis connected")

	return rdb, nil
}

// RedisStore persists cached profiles in Redis with a TTL so abandoned
// sessions age out on their own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) GetUser(ctx context.Context, token string) (model.UserProfile, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.SessionUserKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return model.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("get cached user: %w", err)
	}

	var user model.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// A corrupt cache entry is indistinguishable from no entry.
		return model.UserProfile{}, ErrNotFound
	}
	return user, nil
}

func (s *RedisStore) SetUser(ctx context.Context, token string, user model.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.rdb.Set(ctx, config.CacheKey.SessionUserKey(token), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, config.CacheKey.SessionUserKey(token)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
