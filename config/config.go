package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Neo4j    Neo4jConfig
	ETL      ETLConfig
	Recs     RecsConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type Neo4jConfig struct {
	URI      string
	User     string
	Password string
	Database string
}

type ETLConfig struct {
	ChunkSize       int
	ConnectAttempts int
	ConnectDelay    time.Duration
	Schedule        string
}

type RecsConfig struct {
	DefaultLimit int
	MaxLimit     int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "app"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Name:     getEnv("POSTGRES_DB", "shop"),
		},
		Neo4j: Neo4jConfig{
			URI:      getEnv("NEO4J_URI", "bolt://localhost:7687"),
			User:     getEnv("NEO4J_USER", "neo4j"),
			Password: getEnv("NEO4J_PASSWORD", ""),
			Database: getEnv("NEO4J_DATABASE", "neo4j"),
		},
		ETL: ETLConfig{
			ChunkSize:       getEnvAsInt("ETL_CHUNK_SIZE", 500),
			ConnectAttempts: getEnvAsInt("ETL_CONNECT_ATTEMPTS", 30),
			ConnectDelay:    getEnvAsDuration("ETL_CONNECT_DELAY", 2*time.Second),
			Schedule:        getEnv("ETL_SCHEDULE", ""),
		},
		Recs: RecsConfig{
			DefaultLimit: getEnvAsInt("RECS_DEFAULT_LIMIT", 5),
			MaxLimit:     getEnvAsInt("RECS_MAX_LIMIT", 20),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}

	if c.Neo4j.URI == "" {
		return fmt.Errorf("NEO4J_URI is required")
	}

	if c.ETL.ChunkSize <= 0 {
		return fmt.Errorf("ETL_CHUNK_SIZE must be positive")
	}

	if c.Recs.DefaultLimit <= 0 || c.Recs.DefaultLimit > c.Recs.MaxLimit {
		return fmt.Errorf("RECS_DEFAULT_LIMIT must be in 1..RECS_MAX_LIMIT")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
