package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bryanwahyu/insight-dashboard/internal/validate"
)

const DefaultBaseURL = "http://localhost:8000"

type Config struct {
	API struct {
		BaseURL string `yaml:"baseURL"`
		// Timeout is applied by the caller per command; zero means none.
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"api"`

	Log struct {
		Quiet bool `yaml:"quiet"`
	} `yaml:"log"`
}

func Default() *Config {
	var cfg Config
	cfg.API.BaseURL = DefaultBaseURL
	return &cfg
}

// Load reads the YAML file at path (a missing file means defaults), then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse API_TIMEOUT: %w", err)
		}
		c.API.Timeout = d
	}
	if v := os.Getenv("LOG_QUIET"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse LOG_QUIET: %w", err)
		}
		c.Log.Quiet = b
	}
	return nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if err := validate.URL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.baseURL: %w", err)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	return nil
}
