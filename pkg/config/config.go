package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	TokenReapInterval  time.Duration
	TokenRetention     time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=todolist port=5432 sslmode=disable"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTIssuer:          getEnv("JWT_ISSUER", "todolist-api"),
		JWTAudience:        getEnv("JWT_AUDIENCE", "todolist-api"),
		AccessTokenExpiry:  getDuration("JWT_ACCESS_EXPIRY", 2*time.Hour),
		RefreshTokenExpiry: getDuration("JWT_REFRESH_EXPIRY", 168*time.Hour),
		TokenReapInterval:  getDuration("TOKEN_REAP_INTERVAL", time.Hour),
		TokenRetention:     getDuration("TOKEN_RETENTION", 720*time.Hour),
	}
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters, got %d", len(c.JWTSecret))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
