package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Auth     AuthConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port        string
	Environment string
	LogFilePath string
	// CookieSecret enables cookie encryption when set (base64, 32 bytes).
	CookieSecret   string
	MetricsEnabled bool
}

type DatabaseConfig struct {
	Driver      string // "postgres" or "sqlite"
	Connection  string
	AutoMigrate bool
}

type SessionConfig struct {
	Store      string // "memory" or "redis"
	RedisURL   string
	TTL        time.Duration
	CookieName string
}

type AuthConfig struct {
	MinPasswordLength int
	BcryptCost        int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))

	return &Config{
		App: AppConfig{
			Port:           getEnv("APP_PORT", "3000"),
			Environment:    getEnv("GO_ENV", "development"),
			LogFilePath:    getEnv("LOG_FILE_PATH", "logs/app.log"),
			CookieSecret:   getEnv("COOKIE_SECRET", ""),
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
		Database: DatabaseConfig{
			Driver:      driver,
			Connection:  getEnv("DB_CONNECTION_STRING", defaultDSN(driver)),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", driver == "sqlite"),
		},
		Session: SessionConfig{
			Store:      strings.ToLower(getEnv("SESSION_STORE", "memory")),
			RedisURL:   getEnv("REDIS_URL", "redis://localhost:6379"),
			TTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "notes_session"),
		},
		Auth: AuthConfig{
			MinPasswordLength: getEnvAsInt("AUTH_MIN_PASSWORD_LENGTH", 6),
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 10),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "notetaking-web"),
		},
	}
}

func defaultDSN(driver string) string {
	if driver == "sqlite" {
		return "notes.sqlite"
	}
	return ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
