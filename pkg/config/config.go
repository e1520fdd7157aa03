// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the server, feed relay, caches, AI providers and logging

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultFeedURL is the publication's Substack feed
	DefaultFeedURL = "https://thebiblicalman.substack.com/feed"

	// DefaultRelayURL is the public CORS relay that wraps the feed body in {"contents": ...}
	DefaultRelayURL = "https://api.allorigins.win/get"

	// DefaultMaxArticles is how many feed items the list keeps
	DefaultMaxArticles = 3
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Feed contains the feed source and relay configuration
	Feed FeedConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// AI contains insight provider configuration
	AI AIConfig

	// Reader contains reader session configuration
	Reader ReaderConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per RateWindow per client IP
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// FeedConfig holds feed fetching configuration
type FeedConfig struct {
	// URL is the RSS/Atom feed to read
	URL string

	// RelayURL is the CORS relay endpoint; the feed URL is passed as ?url=
	RelayURL string

	// MaxArticles caps the number of items kept from the feed
	MaxArticles int

	// FallbackFile optionally replaces the embedded fallback articles
	FallbackFile string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// AIConfig holds insight provider configuration
type AIConfig struct {
	// Provider is "anthropic" or "gemini"
	Provider string

	AnthropicAPIKey string
	GeminiAPIKey    string

	// Model overrides the provider's default model
	Model string

	// Timeout bounds a single provider call
	Timeout time.Duration

	// InsightCacheTTL is how long generated insights are reused
	InsightCacheTTL time.Duration
}

// ReaderConfig holds reader session configuration
type ReaderConfig struct {
	// SessionTTL expires idle reader sessions
	SessionTTL time.Duration

	// Workers is the number of concurrent insight jobs
	Workers int

	// QueueSize bounds pending insight jobs
	QueueSize int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is a logrus level name
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, receives rotated log output instead of stdout
	File string
}

// LoadDotEnv loads the given .env files, skipping any that do not exist
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Feed: FeedConfig{
			URL:          getEnvOrDefault("FEED_URL", DefaultFeedURL),
			RelayURL:     getEnvOrDefault("RELAY_URL", DefaultRelayURL),
			MaxArticles:  getEnvAsIntOrDefault("FEED_MAX_ARTICLES", DefaultMaxArticles),
			FallbackFile: getEnvOrDefault("FALLBACK_FILE", ""),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "cache.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		AI: AIConfig{
			Provider:        getEnvOrDefault("AI_PROVIDER", "anthropic"),
			AnthropicAPIKey: getEnvOrDefault("ANTHROPIC_API_KEY", ""),
			GeminiAPIKey:    getEnvOrDefault("GEMINI_API_KEY", ""),
			Model:           getEnvOrDefault("AI_MODEL", ""),
			Timeout:         getEnvAsDurationOrDefault("AI_TIMEOUT", 30*time.Second),
			InsightCacheTTL: getEnvAsDurationOrDefault("INSIGHT_CACHE_TTL", 24*time.Hour),
		},
		Reader: ReaderConfig{
			SessionTTL: getEnvAsDurationOrDefault("SESSION_TTL", 30*time.Minute),
			Workers:    getEnvAsIntOrDefault("INSIGHT_WORKERS", 4),
			QueueSize:  getEnvAsIntOrDefault("INSIGHT_QUEUE_SIZE", 64),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// APIKey returns the key for the configured provider
func (c AIConfig) APIKey() string {
	switch c.Provider {
	case "gemini":
		return c.GeminiAPIKey
	default:
		return c.AnthropicAPIKey
	}
}

// Enabled reports whether insights can be requested at all
func (c AIConfig) Enabled() bool {
	return c.APIKey() != ""
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go duration strings ("90s", "24h")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if err := validateHTTPURL("feed url", c.Feed.URL); err != nil {
		return err
	}

	if err := validateHTTPURL("relay url", c.Feed.RelayURL); err != nil {
		return err
	}

	if c.Feed.MaxArticles < 1 {
		return errors.New("feed max articles must be at least 1")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.AI.Provider != "anthropic" && c.AI.Provider != "gemini" {
		return errors.New("ai provider must be 'anthropic' or 'gemini'")
	}

	if c.Reader.Workers < 1 {
		return errors.New("insight workers must be at least 1")
	}

	return nil
}

func validateHTTPURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, u.Scheme)
	}
	return nil
}
