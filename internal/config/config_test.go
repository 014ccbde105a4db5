package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coursepilot/searchcache/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, 0, cfg.Redis.DB)
		require.Equal(t, 250, cfg.Redis.OpTimeoutMillis)
		require.Equal(t, 600, cfg.Cache.TTLSeconds)
		require.True(t, cfg.Cache.Enabled)
		require.Equal(t, "http://localhost:9000", cfg.Platform.BaseURL)
		require.Equal(t, 30, cfg.Platform.Timeout)
		require.Equal(t, "text-embedding-3-small", cfg.OpenAI.Model)
		require.Empty(t, cfg.OpenAI.APIKey)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("REDIS_ADDR", "redis.internal:6380")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("REDIS_OP_TIMEOUT_MS", "500")
		t.Setenv("CACHE_TTL_SECONDS", "120")
		t.Setenv("CACHE_ENABLED", "false")
		t.Setenv("PLATFORM_BASE_URL", "https://platform.test")
		t.Setenv("PLATFORM_API_KEY", "pk-test")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("EMBEDDING_MODEL", "text-embedding-3-large")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
		require.Equal(t, 2, cfg.Redis.DB)
		require.Equal(t, 500, cfg.Redis.OpTimeoutMillis)
		require.Equal(t, 120, cfg.Cache.TTLSeconds)
		require.False(t, cfg.Cache.Enabled)
		require.Equal(t, "https://platform.test", cfg.Platform.BaseURL)
		require.Equal(t, "pk-test", cfg.Platform.APIKey)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "text-embedding-3-large", cfg.OpenAI.Model)
	})
}
