package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config 应用配置
type Config struct {
	Env             string
	Port            string
	LogLevel        string
	DBDriver        string
	DatabaseURL     string
	SQLitePath      string
	MaxConnections  int
	ConnMaxLifetime time.Duration
}

// Load 加载配置（只在启动时读取一次）
func Load() *Config {
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "5"))
	if err != nil || maxConns <= 0 {
		maxConns = 5
	}
	lifetimeMinutes, err := strconv.Atoi(getEnv("DB_CONN_MAX_LIFETIME_MINUTES", "30"))
	if err != nil || lifetimeMinutes < 0 {
		lifetimeMinutes = 30
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "movies")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	return &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBDriver:        getEnv("DB_DRIVER", DriverPostgres),
		DatabaseURL:     getEnv("DATABASE_URL", dbURL),
		SQLitePath:      getEnv("SQLITE_PATH", "movies.db"),
		MaxConnections:  maxConns,
		ConnMaxLifetime: time.Duration(lifetimeMinutes) * time.Minute,
	}
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
