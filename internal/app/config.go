package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string   `env:"LABPATROL_MANIFEST"` // hcl/yaml files
	InputPath    string   // single puzzle input, bypasses manifests
	Solver       string   `env:"LABPATROL_SOLVER" envDefault:"guard_patrol"`
	Only         []string `env:"LABPATROL_ONLY" envSeparator:","`
	ListSolvers  bool

	LogFormat string `env:"LABPATROL_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"LABPATROL_LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"LABPATROL_LOG_FILE"`
	Workers   int    `env:"LABPATROL_WORKERS" envDefault:"1"`
}

// ConfigFromEnv returns a Config filled with defaults and LABPATROL_*
// environment overrides. Flags are applied on top of it by the caller.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// NewConfig normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid workers: %d, must be at least 1", cfg.Workers)
	}

	if cfg.ListSolvers {
		return &cfg, nil
	}
	if cfg.ManifestPath == "" && cfg.InputPath == "" {
		return nil, errors.New("either a manifest path or an input file is required")
	}
	if cfg.ManifestPath != "" && cfg.InputPath != "" {
		return nil, errors.New("a manifest path and an input file cannot be used together")
	}
	if cfg.InputPath != "" && cfg.Solver == "" {
		return nil, errors.New("a solver name is required with an input file")
	}
	if cfg.InputPath != "" && len(cfg.Only) > 0 {
		return nil, errors.New("--only applies to manifests, not to a single input file")
	}

	return &cfg, nil
}
