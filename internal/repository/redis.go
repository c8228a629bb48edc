package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/omayconaguiar/url-shortner/internal/config"
	"github.com/omayconaguiar/url-shortner/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefix for cached links, keyed by slug
	LinkKeyPrefix = "link:"
	// LinkCacheTTL bounds staleness of cached entries; mutations also
	// invalidate eagerly, the TTL is a backstop.
	LinkCacheTTL = 24 * time.Hour
)

// RedisRepository caches slug lookups for the redirect path
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveLink caches a link under its slug
func (r *RedisRepository) SaveLink(ctx context.Context, link *model.ShortLink, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.linkKey(link.Slug), data, ttl).Err()
}

// GetLink retrieves a cached link by slug; a miss surfaces as redis.Nil
func (r *RedisRepository) GetLink(ctx context.Context, slug string) (*model.ShortLink, error) {
	data, err := r.client.Get(ctx, r.linkKey(slug)).Bytes()
	if err != nil {
		return nil, err
	}
	var link model.ShortLink
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// InvalidateLink drops cache entries for the given slugs
func (r *RedisRepository) InvalidateLink(ctx context.Context, slugs ...string) error {
	if len(slugs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		keys = append(keys, r.linkKey(slug))
	}
	return r.client.Del(ctx, keys...).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) linkKey(slug string) string {
	return LinkKeyPrefix + slug
}
