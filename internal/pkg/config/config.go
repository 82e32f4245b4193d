package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

// Config is built once at startup and passed down explicitly; nothing in the
// application reads the environment after Load returns.
type Config struct {
	Port     string `env:"PORT, default=8080"        validate:"required,numeric"`
	Env      string `env:"ENV, default=development"  validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL, default=info"   validate:"oneof=trace debug info warn warning error"`

	// RootDir is the installation root. Relative resource paths below are
	// resolved against it.
	RootDir     string `env:"APP_ROOT, default=."                    validate:"required"`
	StoreFile   string `env:"STORE_FILE, default=data/shipments.json" validate:"required"`
	TemplateDir string `env:"TEMPLATE_DIR, default=web/templates"    validate:"required"`
	StaticDir   string `env:"STATIC_DIR, default=web/static"         validate:"required"`

	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0" validate:"gte=0"`
}

type RateLimitConfig struct {
	Requests int           `env:"TRACK_RATE_LIMIT, default=30"  validate:"gt=0"`
	Window   time.Duration `env:"TRACK_RATE_WINDOW, default=1m" validate:"gte=1s"`
}

// Load reads configuration from the environment using go-envconfig and
// validates it. A nil lookuper reads the process environment.
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Resolve returns p unchanged when absolute, otherwise joined to RootDir.
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.RootDir, p)
}

func (c *Config) StorePath() string    { return c.Resolve(c.StoreFile) }
func (c *Config) TemplatePath() string { return c.Resolve(c.TemplateDir) }
func (c *Config) StaticPath() string   { return c.Resolve(c.StaticDir) }

// IsDevelopment enables human-readable logs.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
