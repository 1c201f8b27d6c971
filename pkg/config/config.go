// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loaded with cleanenv from the environment or a YAML file named by CONFIG_PATH

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Cache backends
const (
	CacheTypeSQLite = "sqlite"
	CacheTypeRedis  = "redis"
	CacheTypeMemory = "memory"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Cache contains durable store configuration
	Cache CacheConfig `yaml:"cache"`

	// Sources contains the upstream API settings
	Sources SourcesConfig `yaml:"sources"`

	// Log contains logger configuration
	Log LogConfig `yaml:"log"`

	// Refresh contains background cache refresh configuration
	Refresh RefreshConfig `yaml:"refresh"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port" env:"PORT" env-default:"8000"`

	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64 `yaml:"rate_limit" env:"RATE_LIMIT" env-default:"10"`

	// RateBurst is the burst size allowed per client
	RateBurst int `yaml:"rate_burst" env:"RATE_BURST" env-default:"20"`

	// HTTPTimeout bounds each upstream request
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"30s"`

	// CORSOrigins lists allowed browser origins
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// CacheConfig holds durable store configuration
type CacheConfig struct {
	// Type specifies the backend (sqlite/redis/memory)
	Type string `yaml:"type" env:"CACHE_TYPE" env-default:"sqlite"`

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"newsdesk.db"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`

	// Password is the Redis authentication password
	Password string `yaml:"password" env:"REDIS_PASSWORD"`

	// DB is the Redis database number
	DB int `yaml:"db" env:"REDIS_DB" env-default:"0"`

	// KeyPrefix namespaces every key written by this service
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"newsdesk:"`
}

// SourcesConfig holds the three upstream APIs
type SourcesConfig struct {
	Headlines HeadlinesConfig `yaml:"headlines"`
	Newspaper NewspaperConfig `yaml:"newspaper"`
	Community CommunityConfig `yaml:"community"`
}

// HeadlinesConfig is the headlines upstream
type HeadlinesConfig struct {
	URL string `yaml:"url" env:"HEADLINES_API_URL"`
	Key string `yaml:"key" env:"HEADLINES_API_KEY"`
}

// NewspaperConfig is the newspaper upstream
type NewspaperConfig struct {
	URL string `yaml:"url" env:"NEWSPAPER_API_URL"`
	Key string `yaml:"key" env:"NEWSPAPER_API_KEY"`

	// Sections overrides the category to section table
	Sections map[string]string `yaml:"sections"`
}

// CommunityConfig is the community upstream, which needs no key
type CommunityConfig struct {
	URL string `yaml:"url" env:"COMMUNITY_API_URL" env-default:"https://dev.to/api/articles"`

	// Tags overrides the technology tag allow-list
	Tags []string `yaml:"tags" env:"COMMUNITY_TAGS" env-separator:","`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`

	// Format is json or text
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`

	// File enables rotated file output in addition to stderr
	File string `yaml:"file" env:"LOG_FILE"`
}

// RefreshConfig holds background cache refresh configuration
type RefreshConfig struct {
	// Interval between refresh rounds; 0 disables the refresher
	Interval time.Duration `yaml:"interval" env:"REFRESH_INTERVAL" env-default:"0s"`

	// Workers bounds concurrent upstream fetches during a round
	Workers int `yaml:"workers" env:"REFRESH_WORKERS" env-default:"3"`

	// Keys are extra query keys refreshed alongside the landing queries
	Keys []string `yaml:"keys" env:"REFRESH_KEYS" env-separator:","`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// Load reads path when given, otherwise the file named by CONFIG_PATH, and
// falls back to the environment alone. Environment variables override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return LoadFromEnv()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid. Missing upstream keys are
// not errors; see MissingSources.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Server.Port)
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	if c.Server.HTTPTimeout <= 0 {
		return errors.New("http timeout must be positive")
	}

	switch c.Cache.Type {
	case CacheTypeSQLite:
		if c.Cache.SQLitePath == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	case CacheTypeRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheTypeMemory:
	default:
		return fmt.Errorf("cache type must be '%s', '%s' or '%s'", CacheTypeSQLite, CacheTypeRedis, CacheTypeMemory)
	}

	if c.Refresh.Interval < 0 {
		return errors.New("refresh interval cannot be negative")
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be 'json' or 'text', got %q", c.Log.Format)
	}

	return nil
}

// MissingSources lists the environment variables each keyed upstream still
// needs. Those sources answer with empty results until configured.
func (c *Config) MissingSources() []string {
	var missing []string
	if c.Sources.Headlines.URL == "" {
		missing = append(missing, "HEADLINES_API_URL")
	}
	if c.Sources.Headlines.Key == "" {
		missing = append(missing, "HEADLINES_API_KEY")
	}
	if c.Sources.Newspaper.URL == "" {
		missing = append(missing, "NEWSPAPER_API_URL")
	}
	if c.Sources.Newspaper.Key == "" {
		missing = append(missing, "NEWSPAPER_API_KEY")
	}
	return missing
}
