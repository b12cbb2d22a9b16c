package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Root = "" },
		func(c *Config) { c.HashAlgorithm = "crc32" },
		func(c *Config) { c.ConcurrencyLevel = 0 },
		func(c *Config) { c.NiceLevel = "extreme" },
		func(c *Config) { c.MaxIOPerSecond = -1 },
		func(c *Config) { c.OutputFormat = "xml" },
		func(c *Config) { c.FailOn = "catastrophic" },
		func(c *Config) { c.LogLevel = "verbose" },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vigil.yaml")
	body := "hash_algorithm: md5\nignore_patterns:\n  - \"*.tmp\"\n  - generated\nfail_on: high\n"
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := Default()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HashAlgorithm != "md5" || cfg.FailOn != "high" {
		t.Fatalf("overlay failed: %+v", cfg)
	}
	if len(cfg.IgnorePatterns) != 2 {
		t.Fatalf("ignore patterns: %v", cfg.IgnorePatterns)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate after load: %v", err)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadFromFile("/nonexistent/vigil.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("root: [unclosed"), 0600)
	if err := cfg.LoadFromFile(bad); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestAdjustConcurrency(t *testing.T) {
	cfg := Default()
	cfg.NiceLevel = "high"
	cfg.AdjustConcurrency()
	if cfg.ConcurrencyLevel != runtime.NumCPU() {
		t.Fatalf("high expected %d got %d", runtime.NumCPU(), cfg.ConcurrencyLevel)
	}
	cfg.NiceLevel = "low"
	cfg.AdjustConcurrency()
	if cfg.ConcurrencyLevel != 1 {
		t.Fatal("low expected 1")
	}
	cfg.ConcurrencySet = true
	cfg.ConcurrencyLevel = 7
	cfg.NiceLevel = "high"
	cfg.AdjustConcurrency()
	if cfg.ConcurrencyLevel != 7 {
		t.Fatal("explicit concurrency must win")
	}
}

func TestIgnores(t *testing.T) {
	cfg := Default()
	defaults := []string{".git"}
	if got := cfg.Ignores(defaults); len(got) != 1 || got[0] != ".git" {
		t.Fatalf("expected defaults, got %v", got)
	}
	cfg.IgnorePatterns = []string{"custom"}
	if got := cfg.Ignores(defaults); len(got) != 1 || got[0] != "custom" {
		t.Fatalf("explicit patterns must replace defaults, got %v", got)
	}
}
