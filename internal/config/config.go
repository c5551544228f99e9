package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server  ServerConfig
	App     AppConfig
	Cache   CacheConfig
	Storage StorageConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"recruitdash-cache"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// CacheConfig holds per-instance cache tuning.
type CacheConfig struct {
	APITTL             time.Duration `envconfig:"CACHE_API_TTL" default:"5m"`
	APIMaxSize         int           `envconfig:"CACHE_API_MAX_SIZE" default:"100"`
	JobsTTL            time.Duration `envconfig:"CACHE_JOBS_TTL" default:"10m"`
	JobsMaxSize        int           `envconfig:"CACHE_JOBS_MAX_SIZE" default:"50"`
	ComparisonsTTL     time.Duration `envconfig:"CACHE_COMPARISONS_TTL" default:"5m"`
	ComparisonsMaxSize int           `envconfig:"CACHE_COMPARISONS_MAX_SIZE" default:"50"`
	SystemTTL          time.Duration `envconfig:"CACHE_SYSTEM_TTL" default:"30m"`
	SystemMaxSize      int           `envconfig:"CACHE_SYSTEM_MAX_SIZE" default:"20"`

	Persist         bool          `envconfig:"CACHE_PERSIST" default:"false"`
	CleanupInterval time.Duration `envconfig:"CACHE_CLEANUP_INTERVAL" default:"1m"`
}

// StorageConfig selects and configures the durable cache medium.
type StorageConfig struct {
	Type string `envconfig:"STORAGE_TYPE" default:"memory"` // memory, sqlite, mysql, or redis

	SQLitePath string `envconfig:"STORAGE_SQLITE_PATH" default:"./data/cache.db"`

	MySQLHost     string `envconfig:"STORAGE_MYSQL_HOST" default:"localhost"`
	MySQLPort     int    `envconfig:"STORAGE_MYSQL_PORT" default:"3306"`
	MySQLName     string `envconfig:"STORAGE_MYSQL_NAME" default:"recruitdash"`
	MySQLUser     string `envconfig:"STORAGE_MYSQL_USER" default:"root"`
	MySQLPassword string `envconfig:"STORAGE_MYSQL_PASS" default:""`

	RedisHost     string `envconfig:"STORAGE_REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"STORAGE_REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"STORAGE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"STORAGE_REDIS_DB" default:"0"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MySQLDSN returns the MySQL data source name.
func (s *StorageConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		s.MySQLUser, s.MySQLPassword, s.MySQLHost, s.MySQLPort, s.MySQLName)
}

// RedisAddress returns the Redis address in host:port format.
func (s *StorageConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
