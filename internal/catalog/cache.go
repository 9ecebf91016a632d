// internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// CachedSource is a Redis read-through cache in front of another Source.
// Cache errors never fail a read; they fall through to the wrapped source.
type CachedSource struct {
	next   Source
	client *redis.Client
	key    string
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedSource(next Source, client *redis.Client, keyPrefix string, ttl time.Duration, log logger.Logger) *CachedSource {
	return &CachedSource{
		next:   next,
		client: client,
		key:    keyPrefix + "catalog:" + next.Name(),
		ttl:    ttl,
		logger: log,
	}
}

func (c *CachedSource) Name() string { return c.next.Name() + "+redis" }

func (c *CachedSource) Vendors(ctx context.Context) ([]models.Vendor, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var vendors []models.Vendor
		if err := json.Unmarshal(data, &vendors); err == nil {
			return vendors, nil
		}
		c.logger.Warn("discarding undecodable catalog cache entry", map[string]interface{}{"key": c.key})
	case err != redis.Nil:
		c.logger.Warn("catalog cache read failed", map[string]interface{}{"key": c.key, "error": err.Error()})
	}

	vendors, err := c.next.Vendors(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(vendors); err == nil {
		if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("catalog cache write failed", map[string]interface{}{"key": c.key, "error": err.Error()})
		}
	}
	return vendors, nil
}

// Invalidate drops the cached list.
func (c *CachedSource) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
