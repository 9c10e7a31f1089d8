package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseDriver   string
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	SqlitePath       string

	// Server
	ListenAddr     string
	AllowedOrigins []string
	Environment    string

	// Other
	KafkaBroker                string
	SnapshotCacheSeconds       int
	OrphanSweepIntervalSeconds int
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		DatabaseDriver:   getEnvWithDefault("DATABASE_DRIVER", "sqlite"),
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		SqlitePath:       getEnvWithDefault("SQLITE_PATH", "formbuilder.db"),

		ListenAddr:     getEnvWithDefault("LISTEN_ADDR", ":8000"),
		AllowedOrigins: splitList(getEnvWithDefault("ALLOWED_ORIGINS", "*")),
		Environment:    getEnvWithDefault("ENVIRONMENT", "development"),

		// an empty broker disables change events
		KafkaBroker:                os.Getenv("KAFKA_BROKER"),
		SnapshotCacheSeconds:       getEnvAsInt("SNAPSHOT_CACHE_SECONDS", 60),
		OrphanSweepIntervalSeconds: getEnvAsInt("ORPHAN_SWEEP_INTERVAL_SECONDS", 3600),
	}
	if config.DatabaseDriver == "postgres" && IsProduction() {
		config.PostgresPassword = getEnv("POSTGRES_PASSWORD")
	}
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}
