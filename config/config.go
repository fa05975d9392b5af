package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// EnvMaxFileBytes is the environment variable name for the input size limit.
	EnvMaxFileBytes = "CSV2PDF_MAX_FILE_BYTES"

	// EnvLayout selects the page layout ("plain" or "table").
	EnvLayout = "CSV2PDF_LAYOUT"

	// EnvSeparator is the text placed between fields of a row in plain layout.
	EnvSeparator = "CSV2PDF_SEPARATOR"

	// EnvMaxColumnWidth caps table layout column widths, in display cells.
	EnvMaxColumnWidth = "CSV2PDF_MAX_COLUMN_WIDTH"

	// DefaultMaxFileBytes is the default maximum accepted input size (50 MiB).
	DefaultMaxFileBytes int64 = 50 << 20

	DefaultLayout         = "plain"
	DefaultSeparator      = "    "
	DefaultMaxColumnWidth = 40
)

// Config holds runtime configuration sourced from an optional YAML file and
// environment variables.
type Config struct {
	MaxFileSizeBytes int64  `yaml:"max_file_bytes"`
	Layout           string `yaml:"layout"`
	Separator        string `yaml:"separator"`
	MaxColumnWidth   int    `yaml:"max_column_width"`
}

// MaxFileSizeMB returns the configured limit in whole megabytes.
func (c *Config) MaxFileSizeMB() int64 {
	return c.MaxFileSizeBytes >> 20
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxFileSizeBytes: DefaultMaxFileBytes,
		Layout:           DefaultLayout,
		Separator:        DefaultSeparator,
		MaxColumnWidth:   DefaultMaxColumnWidth,
	}
}

// Load reads Config from environment variables, falling back to defaults for
// missing or invalid values.
func Load() *Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// LoadFile reads a YAML config file over the defaults, then applies
// environment overrides. Keys absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = DefaultMaxFileBytes
	}
	if cfg.MaxColumnWidth <= 0 {
		cfg.MaxColumnWidth = DefaultMaxColumnWidth
	}
	if cfg.Layout == "" {
		cfg.Layout = DefaultLayout
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvMaxFileBytes); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.MaxFileSizeBytes = n
		}
	}
	if v := os.Getenv(EnvLayout); v != "" {
		c.Layout = v
	}
	// An empty separator is meaningful, so only an unset variable is skipped.
	if v, ok := os.LookupEnv(EnvSeparator); ok {
		c.Separator = v
	}
	if v := os.Getenv(EnvMaxColumnWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxColumnWidth = n
		}
	}
}
