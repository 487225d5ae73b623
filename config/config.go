// Package config provides configuration loading for narragraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete narragraph configuration.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	NATS    NATSConfig    `yaml:"nats"`
	Enrich  EnrichConfig  `yaml:"enrich"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Ingest  IngestConfig  `yaml:"ingest"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ModelConfig configures the sentence-semantics model.
type ModelConfig struct {
	// Endpoint is an OpenAI-compatible chat completions URL. Empty disables
	// sentence-semantics analysis.
	Endpoint string `yaml:"endpoint"`
	// Name is the model name sent with each request.
	Name string `yaml:"name"`
	// APIKey authenticates requests; may be empty for local endpoints.
	APIKey string `yaml:"api_key"`
	// Timeout is the maximum time to wait for model responses.
	Timeout time.Duration `yaml:"timeout"`
}

// NATSConfig configures graph-store publishing.
type NATSConfig struct {
	// URL is the NATS server URL. Empty disables publishing.
	URL string `yaml:"url"`
}

// EnrichConfig configures external entity enrichment.
type EnrichConfig struct {
	// Enabled turns enrichment lookups on.
	Enabled bool `yaml:"enabled"`
	// GeoNamesUser is the GeoNames API username. Empty disables GeoNames.
	GeoNamesUser string `yaml:"geonames_user"`
}

// LexiconConfig points at lexical-table overrides. Empty paths use the
// embedded tables.
type LexiconConfig struct {
	IdiomPath       string `yaml:"idiom_path"`
	PrepositionPath string `yaml:"preposition_path"`
	// Watch reloads the tables when the override files change.
	Watch bool `yaml:"watch"`
}

// IngestConfig configures web ingestion.
type IngestConfig struct {
	UserAgent      string        `yaml:"user_agent"`
	Timeout        time.Duration `yaml:"timeout"`
	MaxContentSize int64         `yaml:"max_content_size"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics. Empty disables the endpoint.
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Endpoint: "",
			Name:     "qwen2.5:14b",
			Timeout:  3 * time.Minute,
		},
		NATS: NATSConfig{URL: ""},
		Enrich: EnrichConfig{
			Enabled: false,
		},
		Ingest: IngestConfig{
			UserAgent:      "narragraph/0.1",
			Timeout:        30 * time.Second,
			MaxContentSize: 10 * 1024 * 1024,
		},
		Metrics: MetricsConfig{Addr: ""},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Model.Endpoint != "" && c.Model.Name == "" {
		return fmt.Errorf("model.name is required when model.endpoint is set")
	}
	if c.Ingest.MaxContentSize <= 0 {
		return fmt.Errorf("ingest.max_content_size must be positive")
	}
	if c.Ingest.Timeout <= 0 {
		return fmt.Errorf("ingest.timeout must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile writes the configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one; the other's non-zero values
// take precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Model.Endpoint != "" {
		c.Model.Endpoint = other.Model.Endpoint
	}
	if other.Model.Name != "" {
		c.Model.Name = other.Model.Name
	}
	if other.Model.APIKey != "" {
		c.Model.APIKey = other.Model.APIKey
	}
	if other.Model.Timeout != 0 {
		c.Model.Timeout = other.Model.Timeout
	}
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.Enrich.Enabled {
		c.Enrich.Enabled = true
	}
	if other.Enrich.GeoNamesUser != "" {
		c.Enrich.GeoNamesUser = other.Enrich.GeoNamesUser
	}
	if other.Lexicon.IdiomPath != "" {
		c.Lexicon.IdiomPath = other.Lexicon.IdiomPath
	}
	if other.Lexicon.PrepositionPath != "" {
		c.Lexicon.PrepositionPath = other.Lexicon.PrepositionPath
	}
	if other.Lexicon.Watch {
		c.Lexicon.Watch = true
	}
	if other.Ingest.UserAgent != "" {
		c.Ingest.UserAgent = other.Ingest.UserAgent
	}
	if other.Ingest.Timeout != 0 {
		c.Ingest.Timeout = other.Ingest.Timeout
	}
	if other.Ingest.MaxContentSize != 0 {
		c.Ingest.MaxContentSize = other.Ingest.MaxContentSize
	}
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
