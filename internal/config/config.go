package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Log       LogConfig
	CORS      CORSConfig
	Analytics AnalyticsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AnalyticsConfig holds report computation settings.
type AnalyticsConfig struct {
	// OccupancyPeriodDays is the denominator period for monthly occupancy.
	OccupancyPeriodDays int `mapstructure:"occupancy_period_days"`
	// TopSitesLimit is the default size of the top-rated sites report.
	TopSitesLimit int `mapstructure:"top_sites_limit"`
}

// Load reads configuration from environment variables with the BINI_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BINI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "bini")
	v.SetDefault("db.password", "bini_secret")
	v.SetDefault("db.name", "bini_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// Analytics defaults
	v.SetDefault("analytics.occupancy_period_days", 30)
	v.SetDefault("analytics.top_sites_limit", 5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                     "BINI_SERVER_PORT",
		"server.read_timeout":             "BINI_SERVER_READ_TIMEOUT",
		"server.write_timeout":            "BINI_SERVER_WRITE_TIMEOUT",
		"server.environment":              "BINI_SERVER_ENVIRONMENT",
		"db.host":                         "BINI_DB_HOST",
		"db.port":                         "BINI_DB_PORT",
		"db.user":                         "BINI_DB_USER",
		"db.password":                     "BINI_DB_PASSWORD",
		"db.name":                         "BINI_DB_NAME",
		"db.sslmode":                      "BINI_DB_SSLMODE",
		"db.max_open":                     "BINI_DB_MAX_OPEN",
		"db.max_idle":                     "BINI_DB_MAX_IDLE",
		"log.level":                       "BINI_LOG_LEVEL",
		"log.format":                      "BINI_LOG_FORMAT",
		"cors.allowed_origins":            "BINI_CORS_ALLOWED_ORIGINS",
		"analytics.occupancy_period_days": "BINI_ANALYTICS_OCCUPANCY_PERIOD_DAYS",
		"analytics.top_sites_limit":       "BINI_ANALYTICS_TOP_SITES_LIMIT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BINI_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BINI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Analytics = AnalyticsConfig{
		OccupancyPeriodDays: v.GetInt("analytics.occupancy_period_days"),
		TopSitesLimit:       v.GetInt("analytics.top_sites_limit"),
	}

	return cfg, nil
}
