package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(604800), cfg.TokenExpiration) // 7 days
	assert.Equal(t, int64(10), cfg.BcryptCost)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, "book-images", cfg.MinioBucket)
	assert.Equal(t, "bookvault", cfg.UploadFolder)
	assert.False(t, cfg.MinioUseSSL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_EXPIRATION", "3600")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("AUTH_RATE_LIMIT", "5")

	cfg := LoadConfig()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, int64(3600), cfg.TokenExpiration)
	assert.True(t, cfg.MinioUseSSL)
	assert.Equal(t, int64(5), cfg.AuthRateLimit)
}

func TestLoadConfig_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("TOKEN_EXPIRATION", "not-a-number")
	t.Setenv("LOG_LEVEL", "noisy")

	cfg := LoadConfig()

	assert.Equal(t, int64(604800), cfg.TokenExpiration)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
