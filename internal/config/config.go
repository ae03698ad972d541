// Package config reads the settings of the mesa binary from the
// environment, after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config is the process configuration
type Config struct {
	Storage string `env:"MESA_STORAGE" envDefault:"memory"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"MESA_REDIS_PREFIX" envDefault:"mesa:"`

	SQLitePath string `env:"MESA_SQLITE_PATH" envDefault:"mesa.db"`

	PersistDebounce time.Duration `env:"MESA_PERSIST_DEBOUNCE" envDefault:"1s"`
	LoginDelay      time.Duration `env:"MESA_LOGIN_DELAY" envDefault:"1s"`
	NotificationTTL time.Duration `env:"MESA_NOTIFICATION_TTL" envDefault:"5s"`

	// DiceSeed makes rolls reproducible when non-zero
	DiceSeed int64 `env:"MESA_DICE_SEED"`

	// The Discord bridge starts only when a token is set
	DiscordToken     string `env:"DISCORD_TOKEN"`
	ApplicationID    string `env:"APPLICATION_ID"`
	GuildID          string `env:"GUILD_ID"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`

	LogLevel string `env:"MESA_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env files (the default ".env" when none are named), then
// the environment. Missing .env files are not an error. Variables that
// are already set win over .env values.
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}
	if c.Storage == StorageSQLite && c.SQLitePath == "" {
		return errors.New("MESA_SQLITE_PATH is required for sqlite storage")
	}
	if c.PersistDebounce <= 0 {
		return errors.New("MESA_PERSIST_DEBOUNCE must be positive")
	}
	if c.NotificationTTL <= 0 {
		return errors.New("MESA_NOTIFICATION_TTL must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// DiscordEnabled reports whether the Discord bridge should run
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid MESA_LOG_LEVEL: %w", err)
	}
	return level, nil
}
