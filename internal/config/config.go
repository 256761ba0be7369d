// Package config loads runtime settings for the spellfx CLI from the
// environment and an optional .env file
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/formula"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Redis logical databases on a default server
const maxRedisDB = 15

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{LogFormatText, LogFormatJSON}
)

// Config holds the CLI settings
type Config struct {
	RedisAddr     string        `env:"SPELLFX_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"SPELLFX_REDIS_PASSWORD"`
	RedisDB       int           `env:"SPELLFX_REDIS_DB" envDefault:"0"`
	RedisTLS      bool          `env:"SPELLFX_REDIS_TLS" envDefault:"false"`
	RedisTimeout  time.Duration `env:"SPELLFX_REDIS_TIMEOUT" envDefault:"5s"`
	LogLevel      string        `env:"SPELLFX_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"SPELLFX_LOG_FORMAT" envDefault:"text"`
	Style         string        `env:"SPELLFX_STYLE" envDefault:"sentence"`
}

// Load reads the .env files when present and parses the environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.Style = strings.ToLower(cfg.Style)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}

	if err := godotenv.Load(present...); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load .env")
	}
	return nil
}

// Validate checks the Redis settings and enumerated options
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	errors.ValidateRange("RedisDB", c.RedisDB, 0, maxRedisDB, vb)
	if c.RedisTimeout <= 0 {
		vb.Fieldf("RedisTimeout", "must be positive, got %s", c.RedisTimeout)
	}
	errors.ValidateEnum("LogLevel", c.LogLevel, logLevels, vb)
	errors.ValidateEnum("LogFormat", c.LogFormat, logFormats, vb)
	errors.ValidateEnum("Style", c.Style, formula.Styles, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TranslatorStyle returns Style as a formula style
func (c *Config) TranslatorStyle() formula.Style {
	return formula.Style(c.Style)
}
