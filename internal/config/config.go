package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Logger   LoggerConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
}

type LoggerConfig struct {
	Env string
}

type HTTPConfig struct {
	Port int
}

type StorageConfig struct {
	// Driver selects the task/user/audit store: "postgres" or "memory".
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Name     string
	User     string
	Password string
	Port     int
}

type CacheConfig struct {
	TTL time.Duration
}

type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return &Config{
		Logger: LoggerConfig{
			Env: getEnv("LOGGER_ENV", "development"),
		},
		HTTP: HTTPConfig{
			Port: getEnvInt("HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "postgres"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Name:     getEnv("POSTGRES_DB", "tasklist"),
			User:     getEnv("POSTGRES_USER", "tasklist"),
			Password: getEnv("POSTGRES_PASSWORD", "tasklist"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
		},
		Cache: CacheConfig{
			TTL: getEnvDuration("CACHE_TTL", 30*time.Second),
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("TOKEN_SECRET", ""),
			TokenTTL:    getEnvDuration("TOKEN_TTL", 24*time.Hour),
		},
	}, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
