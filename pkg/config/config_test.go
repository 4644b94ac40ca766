package config

import (
	"os"
	"path/filepath"
	"testing"
)

const minimalYAML = `
environment: test
server:
  port: 8080
fallback:
  benchmark_rates:
    T: 0.0344
  funding_rates:
    USD: 0.05
    CAD: 0.045
  sofr_spreads:
    "1":
      treasury_rate: 0.0344
      t_sofr_spread: 0.0025
  fair_curves:
    USD_TECH:
      A: 0.0420
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "test" || cfg.Server.Port != 8080 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Fallback.BenchmarkRates["T"] != 0.0344 {
		t.Fatalf("fallback not parsed: %v", cfg.Fallback.BenchmarkRates)
	}
	if cfg.Fallback.SOFRSpreads["1"].TSOFRSpread != 0.0025 {
		t.Fatalf("sofr spreads not parsed: %v", cfg.Fallback.SOFRSpreads)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

	cfg, err := LoadWithEnv(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Gemini.APIKey != "test-key" {
		t.Fatalf("env api key not applied: %q", cfg.Gemini.APIKey)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Fatalf("env brokers not applied: %v", cfg.Kafka.Brokers)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no environment", func(c *Config) { c.Environment = "" }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad cache backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = "redis" }},
		{"kafka without brokers", func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Topic = "t" }},
		{"kafka without topic", func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = []string{"a:9092"} }},
		{"no benchmark rates", func(c *Config) { c.Fallback.BenchmarkRates = nil }},
		{"no funding rates", func(c *Config) { c.Fallback.FundingRates = nil }},
		{"no sofr spreads", func(c *Config) { c.Fallback.SOFRSpreads = nil }},
		{"no fair curves", func(c *Config) { c.Fallback.FairCurves = nil }},
		{"no usd funding", func(c *Config) { c.Fallback.FundingRates = map[string]float64{"CAD": 0.045} }},
	}
	for _, c := range cases {
		cfg, err := Load(writeConfig(t, minimalYAML))
		if err != nil {
			t.Fatalf("%s: base config must load: %v", c.name, err)
		}
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}
