package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	OFF     OFFConfig
	Cache   CacheConfig
	Scoring ScoringConfig
	Scan    ScanConfig
	Stores  StoresConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OFFConfig holds Open Food Facts API configuration
type OFFConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	UserAgent  string `mapstructure:"user_agent"`
	CountryTag string `mapstructure:"country_tag"` // market restriction, e.g. "en:united-states"
	PageSize   int    `mapstructure:"page_size"`
	RatePerMin int    `mapstructure:"rate_per_min"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ScoringConfig holds health-scoring and alternative-discovery configuration
type ScoringConfig struct {
	AlternativesThreshold float64 `mapstructure:"alternatives_threshold"`
}

// ScanConfig holds barcode acquisition configuration
type ScanConfig struct {
	// Mode is "full" (preprocessing variant pipeline) or "raw" (decode the
	// frame directly)
	Mode string `mapstructure:"mode"`
}

// StoresConfig holds store-suggestion configuration
type StoresConfig struct {
	Backend      string        `mapstructure:"backend"` // "gemini", "directory" or "retailers"
	GeminiAPIKey string        `mapstructure:"gemini_api_key"`
	GeminiModel  string        `mapstructure:"gemini_model"`
	Timeout      time.Duration `mapstructure:"timeout"`
	// PostalPrefix narrows the directory backend to one region; empty means
	// nationwide chains only
	PostalPrefix string `mapstructure:"postal_prefix"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/eatelligence/")

	// Environment variable settings
	v.SetEnvPrefix("EATELLIGENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Open Food Facts defaults
	v.SetDefault("off.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("off.user_agent", "Eatelligence/1.0")
	v.SetDefault("off.country_tag", "en:united-states")
	v.SetDefault("off.page_size", 100)
	v.SetDefault("off.rate_per_min", 100)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Scoring defaults
	v.SetDefault("scoring.alternatives_threshold", 70.0)

	// Scan defaults
	v.SetDefault("scan.mode", "full")

	// Store suggestion defaults
	v.SetDefault("stores.backend", "directory")
	v.SetDefault("stores.gemini_model", "gemini-2.0-flash")
	v.SetDefault("stores.timeout", "10s")
	v.SetDefault("stores.postal_prefix", "")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OFF.BaseURL == "" {
		return fmt.Errorf("Open Food Facts base URL is required")
	}

	if config.OFF.PageSize <= 0 || config.OFF.PageSize > 100 {
		return fmt.Errorf("page size must be in 1..100, got: %d", config.OFF.PageSize)
	}

	if config.Scan.Mode != "full" && config.Scan.Mode != "raw" {
		return fmt.Errorf("scan mode must be 'full' or 'raw', got: %s", config.Scan.Mode)
	}

	switch config.Stores.Backend {
	case "gemini":
		if config.Stores.GeminiAPIKey == "" {
			return fmt.Errorf("Gemini API key is required for the gemini store backend (set EATELLIGENCE_STORES_GEMINI_API_KEY)")
		}
	case "directory", "retailers":
	default:
		return fmt.Errorf("store backend must be 'gemini', 'directory' or 'retailers', got: %s", config.Stores.Backend)
	}

	return nil
}
