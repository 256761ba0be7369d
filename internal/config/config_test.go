package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellfx/internal/config"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/formula"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 5*time.Second, cfg.RedisTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, config.LogFormatText, cfg.LogFormat)
	assert.Equal(t, formula.StyleSentence, cfg.TranslatorStyle())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SPELLFX_REDIS_ADDR", "redis:6380")
	t.Setenv("SPELLFX_LOG_LEVEL", "DEBUG")
	t.Setenv("SPELLFX_LOG_FORMAT", "json")
	t.Setenv("SPELLFX_STYLE", "compact")

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, formula.StyleCompact, cfg.TranslatorStyle())
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SPELLFX_REDIS_DB=4\nSPELLFX_LOG_LEVEL=warn\n"), 0o600))
	// godotenv sets process variables; register them for cleanup
	t.Setenv("SPELLFX_REDIS_DB", "")
	t.Setenv("SPELLFX_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("SPELLFX_REDIS_DB"))
	require.NoError(t, os.Unsetenv("SPELLFX_LOG_LEVEL"))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.RedisDB)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoadErrors(t *testing.T) {
	t.Run("unparsable value", func(t *testing.T) {
		t.Setenv("SPELLFX_REDIS_DB", "not-an-int")

		_, err := config.Load(missingEnvFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Setenv("SPELLFX_STYLE", "poetic")

		_, err := config.Load(missingEnvFile(t))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("redis db out of range", func(t *testing.T) {
		t.Setenv("SPELLFX_REDIS_DB", "16")

		_, err := config.Load(missingEnvFile(t))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "RedisDB: must be between 0 and 15")
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		t.Setenv("SPELLFX_REDIS_TIMEOUT", "0s")

		_, err := config.Load(missingEnvFile(t))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "RedisTimeout")
	})

	t.Run("blank redis address", func(t *testing.T) {
		t.Setenv("SPELLFX_REDIS_ADDR", "   ")

		_, err := config.Load(missingEnvFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RedisAddr: is required")
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("SPELLFX_LOG_FORMAT", "xml")

		_, err := config.Load(missingEnvFile(t))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
