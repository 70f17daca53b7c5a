// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	// DatabaseURL is either a sqlite file path or a postgres DSN
	// (anything starting with "postgres://" or "postgresql://").
	DatabaseURL string
	// BlockedWords is the content-filter block-list. Injected into the
	// message service at construction; nothing reads it globally.
	BlockedWords     []string
	DefaultPageSize  int
	MaxPageSize      int
	MaxContentLength int
	Environment      string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "chat_messages.db"),
		BlockedWords:     getEnvAsList("BLOCKED_WORDS", "badword1,badword2,inappropriate,offensive"),
		DefaultPageSize:  getEnvAsInt("DEFAULT_PAGE_SIZE", 50),
		MaxPageSize:      getEnvAsInt("MAX_PAGE_SIZE", 100),
		MaxContentLength: getEnvAsInt("MAX_CONTENT_LENGTH", 5000),
		Environment:      env,
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		if os.Getenv("DATABASE_URL") == "" {
			log.Fatal("FATAL: DATABASE_URL must be set explicitly in production")
		}
	}

	return cfg
}

// IsPostgres reports whether DatabaseURL points at a postgres server
// rather than a local sqlite file.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using default %d", key, valueStr, fallback)
		return fallback
	}
	return value
}

// getEnvAsList parses a comma-separated env var, dropping empty entries.
func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
