package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
	EnvironmentTest        = "test"
)

type Config struct {
	Environment string     `env:"ENVIRONMENT" envDefault:"production"`
	LogLevel    slog.Level `env:"LOG_LEVEL"   envDefault:"info"`

	Algorithm starmatch.Algorithm `env:"ALGORITHM" envDefault:"builtin"`

	Port            int `env:"PORT"              envDefault:"8080"`
	HealthCheckPort int `env:"HEALTH_CHECK_PORT" envDefault:"8081"`
	MaxBatchSize    int `env:"MAX_BATCH_SIZE"    envDefault:"1000"`

	// RedisAddress enables the result cache when set.
	RedisAddress string        `env:"REDIS_ADDRESS"`
	CacheTTL     time.Duration `env:"CACHE_TTL"     envDefault:"10m"`
}

func (c *Config) Init(_ context.Context) error {
	if c.Environment != "" {
		// already initialized manually
		return c.validate()
	}

	err := env.Parse(c)
	if err != nil {
		return fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}

	return c.validate()
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddress != ""
}

func (c *Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentDevelopment, EnvironmentTest:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.Environment)
	}

	if _, err := c.Algorithm.Backend(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.MaxBatchSize < 1 {
		return fmt.Errorf("%w: max batch size must be positive, got %d", ErrInvalidConfig, c.MaxBatchSize)
	}

	// redis expirations have millisecond resolution
	if c.CacheEnabled() && c.CacheTTL < time.Millisecond {
		return fmt.Errorf("%w: cache ttl must be at least 1ms, got %s", ErrInvalidConfig, c.CacheTTL)
	}

	return nil
}
