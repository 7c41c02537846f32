package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values loaded from disk.
const (
	EnvLogLevel         = "STRCALC_LOG_LEVEL"
	EnvLogFormat        = "STRCALC_LOG_FORMAT"
	EnvOutputFormat     = "STRCALC_OUTPUT"
	EnvBatchConcurrency = "STRCALC_BATCH_CONCURRENCY"
)

// DefaultPath is where the CLI looks for a config file when --config is not set.
const DefaultPath = ".strcalc.yaml"

// Config holds all strcalc configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Batch   BatchConfig   `yaml:"batch"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
}

// BatchConfig configures the batch evaluator.
type BatchConfig struct {
	Concurrency int    `yaml:"concurrency"`
	Timeout     string `yaml:"timeout"` // duration string, empty = none
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Batch: BatchConfig{
			Concurrency: 4,
			Timeout:     "30s",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvBatchConcurrency)); v != "" {
		// Unparseable values are ignored rather than failing startup.
		if n, err := strconv.Atoi(v); err == nil {
			c.Batch.Concurrency = n
		}
	}
}

// GetBatchTimeout returns the batch timeout, or zero when unset.
func (c *Config) GetBatchTimeout() time.Duration {
	if c.Batch.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Batch.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (want text or json)", c.Output.Format)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch concurrency must be at least 1, got %d", c.Batch.Concurrency)
	}
	if c.Batch.Timeout != "" {
		if _, err := time.ParseDuration(c.Batch.Timeout); err != nil {
			return fmt.Errorf("invalid batch timeout: %w", err)
		}
	}
	return nil
}
