// Package config holds the processing settings of the wgproc tool.
//
// Priority: environment > file > defaults. Files ending in .hcl are decoded
// with HCL; anything else is read as YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/nbest"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WGPROC_"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains the word-graph processing settings.
//
// Thread Safety: safe to read concurrently, not safe to modify after Load.
type Config struct {
	// PruneThreshold enables pruning when it is not core.Unlimited.
	PruneThreshold float64 `yaml:"prune_threshold" hcl:"prune_threshold,optional"`

	// NBest enables n-best extraction of that length when positive.
	NBest int `yaml:"nbest" hcl:"nbest,optional"`

	// StackSize bounds the k-best frontiers; 0 means unbounded.
	StackSize int `yaml:"stack_size" hcl:"stack_size,optional"`

	// MaxIterations caps k-best frontier pops; 0 means unlimited.
	MaxIterations int `yaml:"max_iterations" hcl:"max_iterations,optional"`

	// Workers is the number of word graphs processed concurrently.
	Workers int `yaml:"workers" hcl:"workers,optional"`

	// SparseStates accepts word graphs whose state numbers have gaps.
	SparseStates bool `yaml:"sparse_states" hcl:"sparse_states,optional"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" hcl:"log_level,optional"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format" hcl:"log_format,optional"`

	// Telemetry selects the otel exporter: none or stdout.
	Telemetry string `yaml:"telemetry" hcl:"telemetry,optional"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		PruneThreshold: core.Unlimited,
		NBest:          0,
		StackSize:      nbest.DefaultStackSize,
		Workers:        4,
		SparseStates:   true,
		LogLevel:       "info",
		LogFormat:      "text",
		Telemetry:      "none",
	}
}

// Load returns the defaults overlaid with the file at path (skipped when
// path is empty) and then with WGPROC_* environment variables.
//
// Errors: file read or decode errors, ErrInvalidConfig.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return loadHCL(path, cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadHCL decodes top-level attributes; absent ones keep their defaults.
func loadHCL(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	if diags = gohcl.DecodeBody(file.Body, nil, cfg); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	return nil
}

// loadEnv applies overrides. Malformed numbers are reported, not ignored.
func loadEnv(cfg *Config) error {
	floats := map[string]*float64{
		"PRUNE_THRESHOLD": &cfg.PruneThreshold,
	}
	ints := map[string]*int{
		"NBEST":          &cfg.NBest,
		"STACK_SIZE":     &cfg.StackSize,
		"MAX_ITERATIONS": &cfg.MaxIterations,
		"WORKERS":        &cfg.Workers,
	}
	strs := map[string]*string{
		"LOG_LEVEL":  &cfg.LogLevel,
		"LOG_FORMAT": &cfg.LogFormat,
		"TELEMETRY":  &cfg.Telemetry,
	}

	for name, dst := range floats {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, name, v)
			}
			*dst = f
		}
	}
	for name, dst := range ints {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrInvalidConfig, EnvPrefix, name, v)
			}
			*dst = i
		}
	}
	for name, dst := range strs {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv(EnvPrefix + "SPARSE_STATES"); v != "" {
		cfg.SparseStates = v == "true" || v == "1"
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.PruneThreshold < 0 && c.PruneThreshold != core.Unlimited {
		return fmt.Errorf("%w: prune_threshold must be >= 0 or %v", ErrInvalidConfig, core.Unlimited)
	}
	if c.NBest < 0 {
		return fmt.Errorf("%w: nbest must be >= 0", ErrInvalidConfig)
	}
	if c.StackSize < 0 {
		return fmt.Errorf("%w: stack_size must be >= 0", ErrInvalidConfig)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations must be >= 0", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1", ErrInvalidConfig)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}
	switch c.Telemetry {
	case "none", "stdout":
	default:
		return fmt.Errorf("%w: telemetry %q (want none or stdout)", ErrInvalidConfig, c.Telemetry)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level, falling back to Info.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
}
