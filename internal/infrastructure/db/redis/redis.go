package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/infrastructure/config"
)

const pingTimeout = 5 * time.Second

// Connect opens the client backing the guide-directory cache and verifies
// the server answers before the gateway starts serving. The cache itself
// tolerates a Redis outage at runtime; a dead Redis at boot is a
// deployment problem worth failing fast on.
func Connect(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Debug().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("redis reachable")
	return client, nil
}
