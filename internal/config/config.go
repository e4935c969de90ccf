// Package config reads service settings from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Rovan44/shopping-app-44/internal/messaging"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port             string
	StoreDriver      string
	RunMigrations    bool
	SeedData         bool
	CORSAllowOrigins string
	Database         DatabaseConfig
	RabbitMQEnabled  bool
	RabbitMQ         *messaging.RabbitMQConfig
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// DataSourceName returns DATABASE_DSN when set, otherwise a key/value
// connection string built from the individual DB_* settings.
func (c DatabaseConfig) DataSourceName() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// LoadDotEnv loads the given files, or .env when none are given. Missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
		log.Printf("Environment loaded from %s", file)
	}
	return nil
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		StoreDriver:      strings.ToLower(getEnvOrDefault("STORE_DRIVER", StoreDriverPostgres)),
		RunMigrations:    getEnvBool("RUN_MIGRATIONS", true),
		SeedData:         getEnvBool("SEED_DATA", false),
		CORSAllowOrigins: getEnvOrDefault("CORS_ALLOW_ORIGINS", "*"),
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "5432"),
			User:         getEnvOrDefault("DB_USER", "postgres"),
			Password:     getEnvOrDefault("DB_PASSWORD", "postgres"),
			Name:         getEnvOrDefault("DB_NAME", "storefront_db"),
			SSLMode:      getEnvOrDefault("DB_SSLMODE", "disable"),
			DSN:          os.Getenv("DATABASE_DSN"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),
		},
		RabbitMQEnabled: getEnvBool("RABBITMQ_ENABLED", false),
		RabbitMQ: &messaging.RabbitMQConfig{
			Host:              getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Port:              getEnvInt("RABBITMQ_PORT", 5672),
			Username:          getEnvOrDefault("RABBITMQ_USERNAME", "guest"),
			Password:          getEnvOrDefault("RABBITMQ_PASSWORD", "guest"),
			VHost:             getEnvOrDefault("RABBITMQ_VHOST", "/"),
			Exchange:          getEnvOrDefault("RABBITMQ_EXCHANGE", "storefront.events"),
			RetryCount:        getEnvInt("RABBITMQ_RETRY_COUNT", 3),
			RetryDelay:        time.Second * 5,
			ConnectionTimeout: time.Second * 30,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want %s or %s)", c.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.RabbitMQ.RetryCount < 1 {
		return fmt.Errorf("RABBITMQ_RETRY_COUNT must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Ignoring invalid %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		log.Printf("Ignoring invalid %s=%q, using %t", key, value, defaultValue)
	}
	return defaultValue
}
