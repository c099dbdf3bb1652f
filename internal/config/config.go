package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the job board client.
type Config struct {
	API     APIConfig
	UI      UIConfig
	Filters FilterConfig
	Log     LogConfig
}

// APIConfig locates the job board backend.
type APIConfig struct {
	BaseURL string        // scheme and host, e.g. http://localhost:5000
	Timeout time.Duration // per-request timeout
}

// UIConfig tunes the interactive pages.
type UIConfig struct {
	AutoCloseDelay time.Duration // apply modal closes this long after a successful submit
}

// FilterConfig holds the initial board filter values.
type FilterConfig struct {
	Keyword  string `yaml:"keyword"`
	Location string `yaml:"location"`
}

// LogConfig controls where logs go while a TUI owns the terminal.
type LogConfig struct {
	File string `yaml:"file"` // empty discards
}

const (
	defaultBaseURL        = "http://localhost:5000"
	defaultTimeout        = 30 * time.Second
	defaultAutoCloseDelay = 1200 * time.Millisecond
	defaultLogFile        = "jobboard.log"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	API     rawAPIConfig `yaml:"api"`
	UI      rawUIConfig  `yaml:"ui"`
	Filters FilterConfig `yaml:"filters"`
	Log     *LogConfig   `yaml:"log"`
}

type rawAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type rawUIConfig struct {
	AutoCloseDelay string `yaml:"auto_close_delay"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: defaultBaseURL,
			Timeout: defaultTimeout,
		},
		UI: UIConfig{
			AutoCloseDelay: defaultAutoCloseDelay,
		},
		Log: LogConfig{File: defaultLogFile},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.API.BaseURL != "" {
		cfg.API.BaseURL = raw.API.BaseURL
	}
	if raw.API.Timeout != "" {
		cfg.API.Timeout, err = time.ParseDuration(raw.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse api.timeout %q: %w", raw.API.Timeout, err)
		}
	}
	if raw.UI.AutoCloseDelay != "" {
		cfg.UI.AutoCloseDelay, err = time.ParseDuration(raw.UI.AutoCloseDelay)
		if err != nil {
			return nil, fmt.Errorf("parse ui.auto_close_delay %q: %w", raw.UI.AutoCloseDelay, err)
		}
	}
	cfg.Filters = raw.Filters
	if raw.Log != nil {
		cfg.Log = *raw.Log
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url %q: %w", cfg.API.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", cfg.API.Timeout)
	}
	if cfg.UI.AutoCloseDelay <= 0 {
		return fmt.Errorf("ui.auto_close_delay must be positive, got %v", cfg.UI.AutoCloseDelay)
	}
	return nil
}
