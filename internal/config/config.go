package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FYYUR_"

type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=dev test prod"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

type ServerConfig struct {
	Port         string `koanf:"port" validate:"required,numeric"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout int    `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"gte=0"`
	// CORSOrigins is a comma-separated list of extra origins allowed to call
	// the JSON API from a browser.
	CORSOrigins string `koanf:"cors_origins"`
}

// DatabaseConfig.DSN selects the driver: postgres:// and postgresql:// go to
// PostgreSQL, anything else is opened as a SQLite file.
type DatabaseConfig struct {
	DSN string `koanf:"dsn" validate:"required"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

func (c *Config) IsProd() bool { return c.Env == "prod" }

func defaults() *Config {
	return &Config{
		Env: "dev",
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15,
			WriteTimeout: 15,
			IdleTimeout:  60,
		},
		Database: DatabaseConfig{DSN: "fyyur.db"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads an optional .env file, then FYYUR_* variables on top of the
// defaults. FYYUR_SERVER_READ_TIMEOUT maps to server.read_timeout.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return parse(k)
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
}

func parse(k *koanf.Koanf) (*Config, error) {
	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
