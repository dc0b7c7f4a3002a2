package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("EATELLIGENCE_SERVER_PORT")
		os.Unsetenv("EATELLIGENCE_SERVER_ENVIRONMENT")
		os.Unsetenv("EATELLIGENCE_OFF_BASE_URL")
		os.Unsetenv("EATELLIGENCE_OFF_COUNTRY_TAG")
		os.Unsetenv("EATELLIGENCE_OFF_PAGE_SIZE")
		os.Unsetenv("EATELLIGENCE_CACHE_TTL")
		os.Unsetenv("EATELLIGENCE_SCORING_ALTERNATIVES_THRESHOLD")
		os.Unsetenv("EATELLIGENCE_SCAN_MODE")
		os.Unsetenv("EATELLIGENCE_STORES_BACKEND")
		os.Unsetenv("EATELLIGENCE_STORES_GEMINI_API_KEY")
		os.Unsetenv("EATELLIGENCE_STORES_TIMEOUT")
		os.Unsetenv("EATELLIGENCE_STORES_POSTAL_PREFIX")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.OFF.BaseURL != "https://world.openfoodfacts.org" {
			t.Errorf("OFF.BaseURL = %s, want https://world.openfoodfacts.org", cfg.OFF.BaseURL)
		}
		if cfg.OFF.CountryTag != "en:united-states" {
			t.Errorf("OFF.CountryTag = %s, want en:united-states", cfg.OFF.CountryTag)
		}
		if cfg.OFF.PageSize != 100 {
			t.Errorf("OFF.PageSize = %d, want 100", cfg.OFF.PageSize)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Scoring.AlternativesThreshold != 70.0 {
			t.Errorf("Scoring.AlternativesThreshold = %v, want 70", cfg.Scoring.AlternativesThreshold)
		}
		if cfg.Scan.Mode != "full" {
			t.Errorf("Scan.Mode = %s, want full", cfg.Scan.Mode)
		}
		if cfg.Stores.Backend != "directory" {
			t.Errorf("Stores.Backend = %s, want directory", cfg.Stores.Backend)
		}
		if cfg.Stores.Timeout != 10*time.Second {
			t.Errorf("Stores.Timeout = %v, want 10s", cfg.Stores.Timeout)
		}
		if cfg.Stores.PostalPrefix != "" {
			t.Errorf("Stores.PostalPrefix = %s, want empty", cfg.Stores.PostalPrefix)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EATELLIGENCE_SERVER_PORT", "9090")
		os.Setenv("EATELLIGENCE_SERVER_ENVIRONMENT", "production")
		os.Setenv("EATELLIGENCE_OFF_BASE_URL", "https://custom.api.com")
		os.Setenv("EATELLIGENCE_OFF_COUNTRY_TAG", "en:france")
		os.Setenv("EATELLIGENCE_OFF_PAGE_SIZE", "50")
		os.Setenv("EATELLIGENCE_CACHE_TTL", "1h")
		os.Setenv("EATELLIGENCE_SCAN_MODE", "raw")
		os.Setenv("EATELLIGENCE_STORES_TIMEOUT", "5s")
		os.Setenv("EATELLIGENCE_STORES_POSTAL_PREFIX", "98")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.OFF.BaseURL != "https://custom.api.com" {
			t.Errorf("OFF.BaseURL = %s, want https://custom.api.com", cfg.OFF.BaseURL)
		}
		if cfg.OFF.CountryTag != "en:france" {
			t.Errorf("OFF.CountryTag = %s, want en:france", cfg.OFF.CountryTag)
		}
		if cfg.OFF.PageSize != 50 {
			t.Errorf("OFF.PageSize = %d, want 50", cfg.OFF.PageSize)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Scan.Mode != "raw" {
			t.Errorf("Scan.Mode = %s, want raw", cfg.Scan.Mode)
		}
		if cfg.Stores.Timeout != 5*time.Second {
			t.Errorf("Stores.Timeout = %v, want 5s", cfg.Stores.Timeout)
		}
		if cfg.Stores.PostalPrefix != "98" {
			t.Errorf("Stores.PostalPrefix = %s, want 98", cfg.Stores.PostalPrefix)
		}
	})

	t.Run("rejects invalid scan mode", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EATELLIGENCE_SCAN_MODE", "burst")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want invalid configuration error")
		}
	})

	t.Run("rejects out-of-range page size", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EATELLIGENCE_OFF_PAGE_SIZE", "500")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want invalid configuration error")
		}
	})

	t.Run("rejects unknown store backend", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EATELLIGENCE_STORES_BACKEND", "yellowpages")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want invalid configuration error")
		}
	})

	t.Run("requires API key for gemini backend", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EATELLIGENCE_STORES_BACKEND", "gemini")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want invalid configuration error")
		}
	})
}
