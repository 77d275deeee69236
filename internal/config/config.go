package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Storage  StorageConfig
	Breaks   BreaksConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port      int
	Env       string
	LogLevel  string
	StaticDir string
}

// StorageConfig selects the session-store driver.
type StorageConfig struct {
	Driver string // "postgres" or "memory"
}

// BreaksConfig holds the break accounting rules
type BreaksConfig struct {
	DailyLimitSeconds int
	RetentionDays     int
	AdminEmployeeID   string
}

func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything already.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "breakdesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:      appPort,
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		StaticDir: getEnv("STATIC_DIR", "dist/spa"),
	}

	config.Storage = StorageConfig{
		Driver: getEnv("STORAGE_DRIVER", "postgres"),
	}

	dailyLimit, err := strconv.Atoi(getEnv("DAILY_BREAK_LIMIT_SECONDS", "1800"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_BREAK_LIMIT_SECONDS: %w", err)
	}

	retentionDays, err := strconv.Atoi(getEnv("RETENTION_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid RETENTION_DAYS: %w", err)
	}

	config.Breaks = BreaksConfig{
		DailyLimitSeconds: dailyLimit,
		RetentionDays:     retentionDays,
		AdminEmployeeID:   getEnv("ADMIN_EMPLOYEE_ID", "vuqar"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case "memory":
		// No database settings needed.
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.Storage.Driver)
	}

	if c.Breaks.DailyLimitSeconds <= 0 {
		return fmt.Errorf("DAILY_BREAK_LIMIT_SECONDS must be positive")
	}
	if c.Breaks.RetentionDays <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive")
	}
	if c.Breaks.AdminEmployeeID == "" {
		return fmt.Errorf("ADMIN_EMPLOYEE_ID is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
