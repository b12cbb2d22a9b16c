package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries everything a scan run needs. Defaults are overlaid first by
// an optional YAML config file, then by command-line flags.
type Config struct {
	Root             string   `yaml:"root"`
	CreateChecksums  bool     `yaml:"create_checksums"`
	IgnorePatterns   []string `yaml:"ignore_patterns"`
	HashAlgorithm    string   `yaml:"hash_algorithm"`
	ConcurrencyLevel int      `yaml:"concurrency_level"`
	NiceLevel        string   `yaml:"nice_level"`
	MaxIOPerSecond   int      `yaml:"max_io_per_second"`
	LogLevel         string   `yaml:"log_level"`
	OutputFormat     string   `yaml:"output_format"`
	OutputFile       string   `yaml:"output_file"`
	CacheFile        string   `yaml:"cache_file"`
	FailOn           string   `yaml:"fail_on"`

	ConcurrencySet bool `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Root:             ".",
		HashAlgorithm:    "sha256",
		ConcurrencyLevel: runtime.NumCPU(),
		NiceLevel:        "medium",
		MaxIOPerSecond:   0,
		LogLevel:         "info",
		OutputFormat:     "console",
	}
}

// LoadFromFile overlays values from a YAML config file.
func (cfg *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid config file format: %w", err)
	}
	return nil
}

func (cfg *Config) Validate() error {
	cfg.HashAlgorithm = strings.ToLower(strings.TrimSpace(cfg.HashAlgorithm))
	cfg.NiceLevel = strings.ToLower(strings.TrimSpace(cfg.NiceLevel))
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	cfg.FailOn = strings.ToLower(strings.TrimSpace(cfg.FailOn))

	if cfg.Root == "" {
		return fmt.Errorf("a scan root must be specified")
	}
	if cfg.HashAlgorithm != "md5" && cfg.HashAlgorithm != "sha256" {
		return fmt.Errorf("invalid hash algorithm: %s (md5 or sha256)", cfg.HashAlgorithm)
	}
	if cfg.ConcurrencyLevel <= 0 {
		return fmt.Errorf("concurrency level must be positive")
	}
	if cfg.NiceLevel != "high" && cfg.NiceLevel != "medium" && cfg.NiceLevel != "low" {
		return fmt.Errorf("invalid nice level: %s", cfg.NiceLevel)
	}
	if cfg.MaxIOPerSecond < 0 {
		return fmt.Errorf("max-io-per-second must be zero or positive")
	}
	if cfg.OutputFormat != "console" && cfg.OutputFormat != "json" {
		return fmt.Errorf("invalid output format: %s (console or json)", cfg.OutputFormat)
	}
	switch cfg.FailOn {
	case "", "critical", "high", "medium", "low":
	default:
		return fmt.Errorf("invalid fail-on severity: %s", cfg.FailOn)
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" &&
		cfg.LogLevel != "error" && cfg.LogLevel != "fatal" && cfg.LogLevel != "panic" {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	return nil
}

// AdjustConcurrency maps the nice level onto a worker count unless the caller
// set one explicitly.
func (cfg *Config) AdjustConcurrency() {
	if cfg.ConcurrencySet {
		return
	}
	numCPU := runtime.NumCPU()
	switch cfg.NiceLevel {
	case "high":
		cfg.ConcurrencyLevel = numCPU
	case "medium":
		cfg.ConcurrencyLevel = max(numCPU/2, 1)
	case "low":
		cfg.ConcurrencyLevel = 1
	}
}

// Ignores returns the effective ignore patterns; an explicit list replaces
// the default entirely.
func (cfg *Config) Ignores(defaults []string) []string {
	if len(cfg.IgnorePatterns) > 0 {
		return cfg.IgnorePatterns
	}
	return defaults
}
