package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full, immutable service configuration. Loaded once in main
// and passed down to constructors; nothing mutates it afterwards.
type Config struct {
	Port            string `env:"PORT,              default=8080"`
	Env             string `env:"ENV,               default=development"`
	LogLevel        string `env:"LOG_LEVEL,         default=info"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=60"`
	AuthPolicy      string `env:"AUTH_POLICY,       default=owner_scoped"`
	AuditWorkers    int    `env:"AUDIT_WORKERS,     default=4"`

	Mongo MongoConfig
	Redis RedisConfig
	Login LoginConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=todo_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LoginConfig struct {
	MaxFailures   int `env:"LOGIN_MAX_FAILURES,           default=5"`
	WindowMinutes int `env:"LOGIN_FAILURE_WINDOW_MINUTES, default=15"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
