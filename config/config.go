package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Providers    []ProviderConfig   `yaml:"providers"`
	Analysis     AnalysisConfig     `yaml:"analysis"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting"`
	Cache        CacheConfig        `yaml:"cache"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// ProviderConfig describes one generative provider. Entries are attempted
// in the order they appear. BaseURL may point at any OpenAI-compatible
// endpoint.
type ProviderConfig struct {
	Name        string  `yaml:"name"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type AnalysisConfig struct {
	DeterministicParser    bool `yaml:"deterministic_parser"`
	ProviderTimeoutSeconds int  `yaml:"provider_timeout_seconds"`
}

type RateLimitingConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

type CacheConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Directory string `yaml:"directory"`
	TTLHours  int    `yaml:"ttl_hours"`
}

// Default returns the configuration used when no config file exists. If
// OPENAI_API_KEY is set a single OpenAI provider is registered so the
// service works out of the box.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Analysis: AnalysisConfig{
			DeterministicParser:    true,
			ProviderTimeoutSeconds: 30,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerMinute: 20,
			RequestsPerDay:    2000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Directory: "./analysis_cache",
			TTLHours:  24,
		},
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Providers = append(cfg.Providers, ProviderConfig{
			Name:        "openai:gpt-3.5-turbo",
			APIKey:      key,
			Model:       "gpt-3.5-turbo",
			Temperature: 0.3,
			MaxTokens:   2000,
		})
	}

	return cfg
}

// LoadConfig loads configuration from a YAML file with environment
// variable substitution. A missing file is not an error: the defaults
// plus environment apply.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env if present so ${VAR} substitution sees it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	content := expandEnvVars(string(data))

	config := Default()
	config.Providers = nil
	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Providers whose key did not resolve (env var unset) are skipped
	// rather than rejected; the deterministic parser still works.
	kept := config.Providers[:0]
	for _, p := range config.Providers {
		if p.APIKey == "" {
			fmt.Printf("Warning: provider %s has no API key, skipping\n", p.Model)
			continue
		}
		kept = append(kept, p)
	}
	config.Providers = kept

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive")
	}

	for i, p := range c.Providers {
		if p.Model == "" {
			return fmt.Errorf("provider %d: model is required", i)
		}
	}

	if c.Analysis.ProviderTimeoutSeconds < 0 {
		return fmt.Errorf("provider timeout must not be negative")
	}

	if c.Cache.Enabled && c.Cache.Directory == "" {
		return fmt.Errorf("cache directory is required when the cache is enabled")
	}

	return nil
}

// ProviderTimeout returns the per-attempt provider timeout.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Analysis.ProviderTimeoutSeconds) * time.Second
}

// CacheTTL returns the cache TTL as a time.Duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLHours) * time.Hour
}

// expandEnvVars expands environment variables in the format ${VAR_NAME}.
func expandEnvVars(content string) string {
	return os.Expand(content, func(key string) string {
		return os.Getenv(key)
	})
}
