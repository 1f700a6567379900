// Package config loads the YAML configuration shared by the mazepath CLI and
// HTTP service.
//
// Example:
//
//	log:
//	  level: info
//	  format: text
//	search:
//	  strategy: astar
//	  timeout: 5s
//	  max_depth: 4096
//	server:
//	  addr: ":8080"
//	  max_nodes: 1048576
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/search"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration.
//
// Thread Safety: safe to read concurrently; do not modify after Validate.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// SearchConfig holds the caller-imposed bounds on every search.
type SearchConfig struct {
	// Strategy is the default strategy name (see search.ParseStrategy).
	Strategy string `yaml:"strategy"`
	// Timeout bounds one search; 0 disables the deadline.
	Timeout time.Duration `yaml:"timeout"`
	// MaxDepth caps iterative deepening; 0 leaves it unbounded.
	MaxDepth int `yaml:"max_depth"`
	// Workers bounds concurrent strategies in a comparison; 0 means all.
	Workers int `yaml:"workers"`
	// AllowDuplicates accepts repeated node keys (last write wins).
	AllowDuplicates bool `yaml:"allow_duplicates"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	MaxNodes        int           `yaml:"max_nodes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Search: SearchConfig{
			Strategy: string(search.StrategyAStar),
			Timeout:  10 * time.Second,
			MaxDepth: 0,
			Workers:  0,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MaxNodes:        1 << 20,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Load reads and validates the YAML file at path, layered over Default.
// An empty path returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected; an empty document yields Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and returns an error wrapping ErrInvalid.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if _, err := search.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: search.strategy: %v", ErrInvalid, err)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be non-negative", ErrInvalid)
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: search.max_depth must be non-negative", ErrInvalid)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers must be non-negative", ErrInvalid)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalid)
	}
	if c.Server.MaxNodes < 1 {
		return fmt.Errorf("%w: server.max_nodes must be positive", ErrInvalid)
	}

	return nil
}
