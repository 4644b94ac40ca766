package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Gemini struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"gemini"`
	Realtime struct {
		Enabled  bool          `yaml:"enabled"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"realtime"`
	Cache struct {
		Backend string `yaml:"backend"` // memory or redis
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers"`
		Topic        string        `yaml:"topic"`
		RequiredAcks int           `yaml:"required_acks"`
		Compression  string        `yaml:"compression"`
		MaxAttempts  int           `yaml:"max_attempts"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		Async        bool          `yaml:"async"`
	} `yaml:"kafka"`
	// Fallback is the static market data configuration, the bottom layer of
	// every reconciliation. It must supply every field-group.
	Fallback FallbackMarketData `yaml:"fallback"`
	// Sources describes where each field-group's static values notionally come
	// from, for display alongside config-attributed data.
	Sources map[string]string `yaml:"sources"`
}

// SOFRPoint mirrors the per-tenor treasury/SOFR data in YAML form.
type SOFRPoint struct {
	TreasuryRate float64 `yaml:"treasury_rate"`
	TSOFRSpread  float64 `yaml:"t_sofr_spread"`
}

// FallbackMarketData is the statically configured market data set. Rates are
// decimal fractions. Fair curves are grouped CCY_SECTOR -> rating -> yield,
// matching how curve tables are published.
type FallbackMarketData struct {
	BenchmarkRates map[string]float64            `yaml:"benchmark_rates"`
	FundingRates   map[string]float64            `yaml:"funding_rates"`
	SOFRSpreads    map[string]SOFRPoint          `yaml:"sofr_spreads"`
	FairCurves     map[string]map[string]float64 `yaml:"fair_curves"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	if c.Cache.Backend != "" && c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for the redis backend")
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}
	return c.Fallback.Validate()
}

// Validate ensures the static fallback supplies every field-group, so
// reconciliation always has a bottom layer.
func (f *FallbackMarketData) Validate() error {
	if len(f.BenchmarkRates) == 0 {
		return fmt.Errorf("fallback.benchmark_rates cannot be empty")
	}
	if len(f.FundingRates) == 0 {
		return fmt.Errorf("fallback.funding_rates cannot be empty")
	}
	if len(f.SOFRSpreads) == 0 {
		return fmt.Errorf("fallback.sofr_spreads cannot be empty")
	}
	if len(f.FairCurves) == 0 {
		return fmt.Errorf("fallback.fair_curves cannot be empty")
	}
	if _, ok := f.FundingRates["USD"]; !ok {
		return fmt.Errorf("fallback.funding_rates must include USD")
	}
	return nil
}
