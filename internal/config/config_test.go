package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "jwt", cfg.Auth.Scheme)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.True(t, cfg.Auth.UsingDefaultSecret())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "not-the-default")
	t.Setenv("TOKEN_TTL", "3600")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.False(t, cfg.Auth.UsingDefaultSecret())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoad_ProductionHasNoDefaultOrigins(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.AllowedOrigins)
}

func TestLoad_PasetoScheme(t *testing.T) {
	t.Setenv("TOKEN_SCHEME", "paseto")
	t.Setenv("PASETO_KEY", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "paseto", cfg.Auth.Scheme)
	assert.Len(t, cfg.Auth.PasetoKey, 32)
	assert.False(t, cfg.Auth.UsingDefaultSecret())
}

func TestLoad_PasetoKeyLength(t *testing.T) {
	t.Setenv("TOKEN_SCHEME", "paseto")
	t.Setenv("PASETO_KEY", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PASETO_KEY")
}

func TestLoad_UnknownScheme(t *testing.T) {
	t.Setenv("TOKEN_SCHEME", "opaque")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SCHEME")
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "90")
	assert.Equal(t, 90*time.Second, getDurationEnv("SOME_TIMEOUT", time.Second))

	t.Setenv("SOME_TIMEOUT", "not-a-number")
	assert.Equal(t, time.Second, getDurationEnv("SOME_TIMEOUT", time.Second))

	assert.Equal(t, time.Minute, getDurationEnv("UNSET_TIMEOUT", time.Minute))
}

func TestGetSliceEnv(t *testing.T) {
	t.Setenv("ORIGIN_LIST", "a, b ,,c")
	assert.Equal(t, []string{"a", "b", "c"}, getSliceEnv("ORIGIN_LIST", nil))

	t.Setenv("ORIGIN_LIST", " , ")
	assert.Equal(t, []string{"fallback"}, getSliceEnv("ORIGIN_LIST", []string{"fallback"}))
}
