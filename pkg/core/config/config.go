// Package config loads runtime settings from a YAML file, .env and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultUserAgent     = "Mozilla/5.0"
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultConcurrency   = 1
	DefaultDirectoryPath = "fund_returns_urls.xlsx"
	DefaultMaxFunds      = 6
	DefaultListenAddr    = ":8080"
	DefaultLogLevel      = "info"
)

// Config holds application configuration
type Config struct {
	UserAgent      string        `yaml:"user_agent"`
	HTTPTimeout    time.Duration `yaml:"http_timeout"`
	Concurrency    int           `yaml:"concurrency"`    // parallel page fetches per scoring pass
	DirectoryPath  string        `yaml:"directory_path"` // .xlsx or .yaml fund list
	DirectorySheet string        `yaml:"directory_sheet"`
	MaxFunds       int           `yaml:"max_funds"`
	ListenAddr     string        `yaml:"listen_addr"`
	LogLevel       string        `yaml:"log_level"`
	LogPretty      bool          `yaml:"log_pretty"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		UserAgent:     DefaultUserAgent,
		HTTPTimeout:   DefaultHTTPTimeout,
		Concurrency:   DefaultConcurrency,
		DirectoryPath: DefaultDirectoryPath,
		MaxFunds:      DefaultMaxFunds,
		ListenAddr:    DefaultListenAddr,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads .env (if present), then the YAML file at path (if non-empty),
// then applies FUND_* environment overrides.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FUND_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("FUND_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid FUND_HTTP_TIMEOUT %q: %w", v, err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv("FUND_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FUND_CONCURRENCY %q: %w", v, err)
		}
		c.Concurrency = n
	}
	if v := os.Getenv("FUND_DIRECTORY"); v != "" {
		c.DirectoryPath = v
	}
	if v := os.Getenv("FUND_MAX_FUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FUND_MAX_FUNDS %q: %w", v, err)
		}
		c.MaxFunds = n
	}
	if v := os.Getenv("FUND_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("FUND_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// normalize fills zero values left by a partial YAML file.
func (c *Config) normalize() {
	c.UserAgent = strings.TrimSpace(c.UserAgent)
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Concurrency < 1 {
		c.Concurrency = DefaultConcurrency
	}
	if c.MaxFunds < 1 {
		c.MaxFunds = DefaultMaxFunds
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
