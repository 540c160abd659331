// Package config holds the logprobe configuration: probe search parameters,
// per-backend numeric settings, and logging. Values come from defaults, an
// optional yaml file, and LOGPROBE_* environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/edkrueger/log-precision/internal/backend"
	"github.com/edkrueger/log-precision/internal/probe"
)

// Config holds all logprobe configuration.
type Config struct {
	// Probe search parameters
	Probe ProbeConfig `yaml:"probe"`

	// Vectorized float backend
	Vector VectorConfig `yaml:"vector"`

	// Arbitrary-precision decimal backend
	Decimal DecimalConfig `yaml:"decimal"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ProbeConfig configures the boundary search loop.
type ProbeConfig struct {
	Base          int `yaml:"base"`
	StartExponent int `yaml:"start_exponent"`
	Step          int `yaml:"step"`
	MaxSteps      int `yaml:"max_steps"`
}

// VectorConfig configures the vectorized float backend.
type VectorConfig struct {
	// EscalateWarnings turns non-finite lanes into hard failures.
	// Disabling it leaves the probe without a stopping condition on
	// this backend.
	EscalateWarnings bool `yaml:"escalate_warnings"`
}

// DecimalConfig configures the decimal context. The boundary measured on the
// decimal backend is MinExponent - Precision for base 10, so these are
// first-class settings rather than library defaults.
type DecimalConfig struct {
	Precision   uint32 `yaml:"precision"`
	MinExponent int32  `yaml:"min_exponent"`
	MaxExponent int32  `yaml:"max_exponent"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the settings that reproduce the documented
// boundaries: -324 for the float backends and -1000027 for decimal.
func DefaultConfig() *Config {
	decimal := backend.DefaultDecimalParams()
	p := probe.DefaultConfig()
	return &Config{
		Probe: ProbeConfig{
			Base:          p.Base,
			StartExponent: p.Start,
			Step:          p.Step,
			MaxSteps:      p.MaxSteps,
		},
		Vector: VectorConfig{
			EscalateWarnings: true,
		},
		Decimal: DecimalConfig{
			Precision:   decimal.Precision,
			MinExponent: decimal.MinExponent,
			MaxExponent: decimal.MaxExponent,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a yaml config file on top of the defaults and applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies LOGPROBE_* environment variables on top of the
// loaded values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LOGPROBE_BASE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Probe.Base = n
		}
	}
	if v := os.Getenv("LOGPROBE_MAX_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Probe.MaxSteps = n
		}
	}
	if v := os.Getenv("LOGPROBE_DECIMAL_PRECISION"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Decimal.Precision = uint32(n)
		}
	}
	if v := os.Getenv("LOGPROBE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the combined configuration.
func (c *Config) Validate() error {
	if err := c.ProbeConfig().Validate(); err != nil {
		return err
	}
	if c.Decimal.Precision == 0 {
		return fmt.Errorf("config: decimal precision must be positive")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}

// ProbeConfig converts to the probe package's search configuration.
func (c *Config) ProbeConfig() probe.Config {
	return probe.Config{
		Base:     c.Probe.Base,
		Start:    c.Probe.StartExponent,
		Step:     c.Probe.Step,
		MaxSteps: c.Probe.MaxSteps,
	}
}

// BackendOptions converts to the backend package's adapter options.
func (c *Config) BackendOptions() backend.Options {
	return backend.Options{
		Base:             c.Probe.Base,
		EscalateWarnings: c.Vector.EscalateWarnings,
		Decimal: backend.DecimalParams{
			Precision:   c.Decimal.Precision,
			MinExponent: c.Decimal.MinExponent,
			MaxExponent: c.Decimal.MaxExponent,
		},
	}
}
