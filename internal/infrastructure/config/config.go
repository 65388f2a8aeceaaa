package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionTTL bounds the lifetime of the gateway session cookie.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Backend BackendConfig
	Redis   RedisConfig
	Images  ImageConfig
}

// BackendConfig points the gateway at the remote marketplace API.
type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:4000/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`

	// CacheTTL is how long guide directory entries stay fresh.
	CacheTTL time.Duration `env:"CACHE_TTL, default=5m"`
	// RefreshInterval drives the background directory refresher.
	// Zero disables it.
	RefreshInterval time.Duration `env:"CACHE_REFRESH_INTERVAL, default=0"`
}

// ImageConfig holds the object-storage host allowlist for image URLs
// rendered by the web UI.
type ImageConfig struct {
	AllowedHosts []string `env:"IMAGE_ALLOWED_HOSTS, default=images.trailconnect.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
