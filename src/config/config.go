package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
// The values are loaded from environment variables.
type AppConfig struct {
	// Core settings
	Port     string
	LogLevel string

	// Session settings
	SessionTTL             time.Duration
	SessionCleanupInterval time.Duration
	MaxAccountsPerClass    int

	// HTTP settings
	RateLimitInterval time.Duration
	RateLimitBurst    int
	AllowedOrigins    []string

	// Frontend URL for reference (e.g., CORS, redirects)
	FrontendBaseURL string
}

// Cfg is a global instance of the AppConfig.
var Cfg *AppConfig

// LoadConfig loads configuration from environment variables or a .env file.
// It centralizes all configuration logic for the application.
func LoadConfig() {
	// 1. Try loading from the current directory (standard behavior)
	errEnv := godotenv.Load()

	// 2. If not found, try loading from the parent directory (common when running from /backend)
	if errEnv != nil {
		errEnv = godotenv.Load("../.env")
	}

	if errEnv != nil {
		if os.IsNotExist(errEnv) {
			log.Println("Info: No .env file found in current or parent directory. Relying on OS environment variables (expected in production).")
		} else {
			log.Printf("Warning: Error loading .env file: %v. Relying on OS environment variables.", errEnv)
		}
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	frontendBaseURL := getEnv("APP_BASE_URL", "http://localhost:3000")

	Cfg = &AppConfig{
		// Core
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Sessions
		SessionTTL:             getEnvAsDuration("SESSION_TTL", 2*time.Hour),
		SessionCleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", 30*time.Minute),
		MaxAccountsPerClass:    getEnvAsInt("MAX_ACCOUNTS_PER_CLASS", 10),

		// HTTP
		RateLimitInterval: getEnvAsDuration("RATE_LIMIT_INTERVAL", 100*time.Millisecond),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 30),
		AllowedOrigins:    getEnvAsList("CORS_ALLOWED_ORIGINS", frontendBaseURL),

		FrontendBaseURL: frontendBaseURL,
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, SessionTTL=%s, FrontendURL=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.SessionTTL, Cfg.FrontendBaseURL)
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer or returns a fallback.
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, strconv.Itoa(fallback))
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("WARNING: Invalid integer for %s: '%s'. Using default %d.", key, valueStr, fallback)
		return fallback
	}
	return value
}

// getEnvAsDuration retrieves an environment variable as a duration or returns a fallback.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, fallback.String())
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("WARNING: Invalid duration for %s: '%s'. Using default %s.", key, valueStr, fallback)
		return fallback
	}
	return value
}

// getEnvAsList retrieves a comma-separated environment variable as a slice.
func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
