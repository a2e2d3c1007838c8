// Package config читает настройки сервиса из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"dashboard-service/internal/model"
)

// Config — настройки процесса.
type Config struct {
	DatabaseDSN     string        `env:"DB_DSN,required,notEmpty"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	SupportAppID    string        `env:"SUPPORT_APP_ID"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load разбирает окружение процесса.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom разбирает переданный набор переменных вместо окружения процесса.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SupportAppID == "" {
		cfg.SupportAppID = model.DefaultSupportAppID
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel переводит LOG_LEVEL в уровень slog.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("parse LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
