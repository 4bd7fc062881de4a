// Package models defines data structures for configuration, form input and
// the wire format exchanged between the form coordinator and the backend.
package models

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBackendURL   = "http://localhost:8000"
	DefaultServerPort   = 8000
	DefaultUIPort       = 8080
	DefaultWikiBaseURL  = "https://en.wikipedia.org"
	DefaultModel        = "gemini-2.0-flash"
	DefaultRequestsPerS = 2
)

// Config holds runtime configuration. Values come from an optional YAML file,
// the environment (.env supported) and finally CLI flags.
type Config struct {
	BackendURL  string        `yaml:"backend_url"`
	ServerPort  int           `yaml:"server_port"`
	UIPort      int           `yaml:"ui_port"`
	DBPath      string        `yaml:"db_path"`
	CacheDir    string        `yaml:"cache_dir"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	WikiBaseURL string        `yaml:"wiki_base_url"`
	RateLimit   float64       `yaml:"rate_limit"`
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"-"`
	CORSOrigins []string      `yaml:"cors_origins"`
}

// DefaultConfig returns a Config with every field populated.
func DefaultConfig() *Config {
	return &Config{
		BackendURL:  DefaultBackendURL,
		ServerPort:  DefaultServerPort,
		UIPort:      DefaultUIPort,
		CacheTTL:    24 * time.Hour,
		WikiBaseURL: DefaultWikiBaseURL,
		RateLimit:   DefaultRequestsPerS,
		Model:       DefaultModel,
		CORSOrigins: []string{"*"},
	}
}

// LoadConfig reads path (if non-empty) on top of the defaults and picks up
// GEMINI_API_KEY from the environment or a .env file in the working directory.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.APIKey = os.Getenv("GEMINI_API_KEY")

	if cfg.WikiBaseURL == "" {
		cfg.WikiBaseURL = DefaultWikiBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg, nil
}
