package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig encapsulates all runtime configuration knobs.
type AppConfig struct {
	App       AppSettings
	HTTP      HTTPSettings
	Auth      AuthSettings
	Log       LogSettings
	Database  DatabaseSettings
	RemoteAPI RemoteAPISettings
	Reports   ReportSettings
}

type AppSettings struct {
	Name        string
	Version     string
	Environment string
}

type HTTPSettings struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type AuthSettings struct {
	Enabled     bool
	Secret      string
	Issuer      string
	TokenTTL    time.Duration
	ClockSkew   time.Duration
	BypassPaths []string
}

type LogSettings struct {
	Level string
}

type DatabaseSettings struct {
	Host            string
	Port            int
	Database        string
	User            string
	Password        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RemoteAPISettings configures the externally hosted report endpoints
// (imprenta, plantillas, orel) this service proxies for some screens.
type RemoteAPISettings struct {
	BaseURL    string
	Username   string
	Password   string
	TokenTTL   time.Duration
	APITimeout time.Duration
}

// ReportSettings tunes the reporting pipeline.
type ReportSettings struct {
	PageSize             int
	MinIndicatorDuration time.Duration
}

// Load resolves the application configuration from environment variables.
// It first attempts to load variables from a .env file if it exists.
// Environment variables set in the system take precedence over .env values.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	cfg := AppConfig{
		App: AppSettings{
			Name:        getEnv("APP_NAME", "ms_reportes_core"),
			Version:     getEnv("APP_VERSION", "0.1.0"),
			Environment: getEnv("APP_ENV", "local"),
		},
		HTTP: HTTPSettings{
			Port:            getEnvAsInt("APP_PORT", 3000),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvAsDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Auth: AuthSettings{
			Enabled:     getEnvAsBool("AUTH_ENABLED", true),
			Secret:      strings.TrimSpace(os.Getenv("AUTH_SECRET")),
			Issuer:      getEnv("AUTH_ISSUER", "firmasecuador/ms_reportes_core"),
			TokenTTL:    getEnvAsDuration("AUTH_TOKEN_TTL", 8*time.Hour),
			ClockSkew:   getEnvAsDuration("AUTH_CLOCK_SKEW", 2*time.Minute),
			BypassPaths: getEnvAsCSV("AUTH_BYPASS_PATHS", []string{"/health", "/api/login", "/api/signup"}),
		},
		Log: LogSettings{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseSettings{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 3306),
			Database:        getEnv("DB_NAME", "firmasecuador"),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASS", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		RemoteAPI: RemoteAPISettings{
			BaseURL:    strings.TrimSpace(os.Getenv("REPORT_API_BASE_URL")),
			Username:   strings.TrimSpace(os.Getenv("REPORT_API_USERNAME")),
			Password:   strings.TrimSpace(os.Getenv("REPORT_API_PASSWORD")),
			TokenTTL:   getEnvAsDuration("REPORT_API_TOKEN_TTL", 1*time.Hour),
			APITimeout: getEnvAsDuration("REPORT_API_TIMEOUT", 30*time.Second),
		},
		Reports: ReportSettings{
			PageSize:             getEnvAsInt("REPORT_PAGE_SIZE", 10),
			MinIndicatorDuration: getEnvAsDuration("REPORT_MIN_INDICATOR_DURATION", 700*time.Millisecond),
		},
	}

	if cfg.Reports.PageSize < 1 {
		return cfg, errors.New("invalid config: REPORT_PAGE_SIZE must be greater than 0")
	}
	if cfg.Reports.MinIndicatorDuration < 0 {
		return cfg, errors.New("invalid config: REPORT_MIN_INDICATOR_DURATION cannot be negative")
	}
	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		return cfg, errors.New("invalid config: AUTH_SECRET is required when AUTH_ENABLED=true")
	}

	return cfg, nil
}

// Address returns the HTTP listen address in host:port form.
func (h HTTPSettings) Address() string {
	return fmt.Sprintf(":%d", h.Port)
}

// DSN renders the connection string for the MySQL driver. parseTime makes
// DATETIME columns scan into time.Time, which the export path needs.
func (d DatabaseSettings) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		d.User, d.Password, d.Host, d.Port, d.Database)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsCSV(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
