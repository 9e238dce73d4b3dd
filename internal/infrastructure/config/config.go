package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,        default=8080"`
	Env       string        `env:"ENV,         default=development"`
	LogLevel  string        `env:"LOG_LEVEL,   default=info"`
	JWTSecret string        `env:"JWT_SECRET,  required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,   default=24h"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	BcryptCost  int `env:"BCRYPT_COST,  default=10"`
	TickWorkers int `env:"TICK_WORKERS, default=8"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=timerkit"`
}

type RedisConfig struct {
	Addr         string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password     string `env:"REDIS_PASSWORD"`
	DB           int    `env:"REDIS_DB,       default=0"`
	AlertChannel string `env:"ALERT_CHANNEL,  default=timerkit:alerts"`
	// Dedup turns on tick id deduplication for POST /v1/timers/ticks.
	Dedup bool `env:"TICK_DEDUP, default=true"`
}

// Development reports whether the service runs with developer conveniences
// such as pretty console logs.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.TickWorkers <= 0 {
		return nil, fmt.Errorf("config: TICK_WORKERS must be positive, got %d", cfg.TickWorkers)
	}
	return &cfg, nil
}
