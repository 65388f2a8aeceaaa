package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/api/metrics"
	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

const (
	regionsKey      = "directory:regions"
	guideListPrefix = "directory:"

	defaultCacheTTL = 5 * time.Minute
)

// DirectoryCache implements ports.DirectoryCache on Redis. Values are
// JSON-encoded with a TTL; any storage error degrades to a cache miss so
// discovery pages keep working without Redis.
type DirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewDirectoryCache creates a DirectoryCache wrapping the given client.
func NewDirectoryCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *DirectoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &DirectoryCache{client: client, ttl: ttl, log: log}
}

func (c *DirectoryCache) GetGuideList(ctx context.Context, key string) (*ports.GuideList, bool) {
	var list ports.GuideList
	if !c.get(ctx, guideListPrefix+key, &list) {
		return nil, false
	}
	return &list, true
}

func (c *DirectoryCache) SetGuideList(ctx context.Context, key string, list *ports.GuideList) error {
	return c.set(ctx, guideListPrefix+key, list)
}

func (c *DirectoryCache) GetRegions(ctx context.Context) ([]domain.Region, bool) {
	var regions []domain.Region
	if !c.get(ctx, regionsKey, &regions) {
		return nil, false
	}
	return regions, true
}

func (c *DirectoryCache) SetRegions(ctx context.Context, regions []domain.Region) error {
	return c.set(ctx, regionsKey, regions)
}

func (c *DirectoryCache) get(ctx context.Context, key string, out any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, treating as miss")
		metrics.DirectoryCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.DirectoryCacheTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *DirectoryCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}
