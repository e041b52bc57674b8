// Package cache mirrors the feed snapshot into Redis so a fresh process can
// warm up before its data file exists, and so sync runs survive restarts.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lohum/schemetrack/internal/config"
	"github.com/lohum/schemetrack/internal/domain/scheme"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/pkg/errors"
)

const snapshotKey = "feed:snapshot"

// Cache stores feed snapshots under a key prefix with a TTL.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger logging.Logger
}

// New connects a Cache from config. The connection is verified lazily; call
// Ping to verify eagerly.
func New(cfg config.CacheConfig, logger logging.Logger) *Cache {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
		logger: logger.Named("cache"),
	}
}

// Ping verifies the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "redis ping")
	}
	return nil
}

// SetSnapshot stores the feed under the snapshot key.
func (c *Cache) SetSnapshot(ctx context.Context, feed *scheme.Feed) error {
	raw, err := json.Marshal(feed)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "encode feed snapshot")
	}
	if err := c.client.Set(ctx, c.key(snapshotKey), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, errors.CodeUnavailable, "store feed snapshot")
	}
	return nil
}

// GetSnapshot fetches the cached feed. A missing key maps to CodeNotFound.
func (c *Cache) GetSnapshot(ctx context.Context) (*scheme.Feed, error) {
	raw, err := c.client.Get(ctx, c.key(snapshotKey)).Bytes()
	if err == redis.Nil {
		return nil, errors.New(errors.CodeNotFound, "no cached feed snapshot")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnavailable, "fetch feed snapshot")
	}
	var feed scheme.Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "decode feed snapshot")
	}
	return &feed, nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) key(suffix string) string {
	return c.prefix + suffix
}
