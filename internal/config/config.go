// Package config loads service settings from environment variables, with a
// .env file honored in development.
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

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Pipeline tuning.
	FetchTimeout    time.Duration
	SourceTimeout   time.Duration
	DedupThreshold  float64
	MinEvents       int
	RefreshInterval time.Duration

	// Geocoding.
	GeocodeEnabled      bool
	NominatimBaseURL    string
	NominatimTimeout    time.Duration
	GeocodeRateInterval time.Duration
	GeocodeCacheTTL     time.Duration
	GeocodeCacheSize    int

	// Optional Kafka egress; empty brokers disable publishing.
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from the environment, applying defaults where
// unset. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:  envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),

		NominatimBaseURL: os.Getenv("NOMINATIM_BASE_URL"),
		KafkaBrokers:     parseBrokers(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:       envOrDefault("KAFKA_TOPIC", "crisis-events"),
	}

	var err error
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = parseDuration("FETCH_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if cfg.SourceTimeout, err = parseDuration("SOURCE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = parseDuration("REFRESH_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.NominatimTimeout, err = parseDuration("NOMINATIM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.GeocodeRateInterval, err = parseDuration("GEOCODE_RATE_INTERVAL", 1100*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.GeocodeCacheTTL, err = parseDuration("GEOCODE_CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	if cfg.DedupThreshold, err = parseFloat("DEDUP_THRESHOLD", 0.65); err != nil {
		return nil, err
	}
	if cfg.MinEvents, err = parseInt("MIN_EVENTS", 20); err != nil {
		return nil, err
	}
	if cfg.GeocodeCacheSize, err = parseInt("GEOCODE_CACHE_SIZE", 1000); err != nil {
		return nil, err
	}

	cfg.GeocodeEnabled = true
	if v := os.Getenv("GEOCODE_ENABLED"); v != "" {
		cfg.GeocodeEnabled = v == "true"
	}

	if cfg.DedupThreshold <= 0 || cfg.DedupThreshold > 1 {
		return nil, errors.New("DEDUP_THRESHOLD must be in (0, 1]")
	}
	if cfg.MinEvents < 0 {
		return nil, errors.New("MIN_EVENTS must not be negative")
	}
	if cfg.GeocodeCacheSize <= 0 {
		return nil, errors.New("GEOCODE_CACHE_SIZE must be positive")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

// KafkaEnabled reports whether batch publishing is configured.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBrokers(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return f, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
