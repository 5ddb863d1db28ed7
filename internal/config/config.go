package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string

	// JWT
	JWTSecret          string
	JWTExpirationHours int

	// Admin account (single-tenant: one operator)
	AdminEmail        string
	AdminPasswordHash string

	// Storage
	StoragePath string

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Email (Resend)
	ResendAPIKey string
	FromEmail    string

	// Sentry
	SentryDSN string

	// AI assistant (OpenAI-compatible endpoint)
	AIAPIKey  string
	AIBaseURL string
	AIModel   string

	// Billing conventions
	InvoicePrefix       string
	InvoiceNumberOffset int
	DefaultCurrency     string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		JWTExpirationHours:  getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		AdminEmail:          getEnv("ADMIN_EMAIL", "admin@advertsgen.local"),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
		StoragePath:         getEnv("STORAGE_PATH", "./storage"),
		WorkerCount:         getEnvAsInt("WORKER_COUNT", 5),
		AllowedOrigins:      getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		FromEmail:           getEnv("FROM_EMAIL", "billing@advertsgen.app"),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		AIAPIKey:            getEnv("AI_API_KEY", ""),
		AIBaseURL:           getEnv("AI_BASE_URL", ""),
		AIModel:             getEnv("AI_MODEL", "gpt-4o-mini"),
		InvoicePrefix:       getEnv("INVOICE_PREFIX", "AG-INV"),
		InvoiceNumberOffset: getEnvAsInt("INVOICE_NUMBER_OFFSET", 101),
		DefaultCurrency:     getEnv("DEFAULT_CURRENCY", "PKR"),
	}

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	if cfg.AdminPasswordHash == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required in production")
	}

	// Set default JWT secret for development
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
