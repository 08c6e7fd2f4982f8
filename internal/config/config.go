package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is
// unset. It exists for behavioral fidelity with local development setups
// and must be overridden in any real deployment.
const DefaultJWTSecret = "secret"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port            string
	Env             string // dev or production
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string // CORS allow-list
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	// Scheme selects the session token implementation: "jwt" (HS256,
	// default) or "paseto" (v4.local).
	Scheme    string
	JWTSecret string
	PasetoKey []byte
	TokenTTL  time.Duration
}

// Load reads configuration from environment variables.
// A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			Env:             env,
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			AllowedOrigins:  getSliceEnv("ALLOWED_ORIGINS", defaultOrigins(env)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "taskflow"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			Scheme:    getEnv("TOKEN_SCHEME", "jwt"),
			JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
			PasetoKey: []byte(getEnv("PASETO_KEY", "")),
			TokenTTL:  getDurationEnv("TOKEN_TTL", 24*time.Hour),
		},
	}

	switch cfg.Auth.Scheme {
	case "jwt":
	case "paseto":
		// The paseto scheme has no insecure fallback: v4.local requires
		// an explicit 32-byte key.
		if len(cfg.Auth.PasetoKey) != 32 {
			return nil, fmt.Errorf("PASETO_KEY must be exactly 32 bytes, got %d", len(cfg.Auth.PasetoKey))
		}
	default:
		return nil, fmt.Errorf("unknown TOKEN_SCHEME %q (expected jwt or paseto)", cfg.Auth.Scheme)
	}

	return cfg, nil
}

// defaultOrigins returns the CORS allow-list used when ALLOWED_ORIGINS is
// unset: two localhost origins outside production, nothing in production.
func defaultOrigins(env string) []string {
	if env == "production" {
		return nil
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// IsProduction reports whether the environment is set to production.
func (c *ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// UsingDefaultSecret reports whether the insecure fallback signing key is
// in effect.
func (c *AuthConfig) UsingDefaultSecret() bool {
	return c.Scheme == "jwt" && c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	seconds, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return time.Duration(seconds) * time.Second
}

func getSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}

	return result
}
