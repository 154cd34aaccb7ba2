// Package config loads moviefinder settings from defaults, an optional YAML
// file and MOVIEFINDER_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MOVIEFINDER_"

// FallbackAPIKeyEnv is read when api_key is not configured otherwise.
const FallbackAPIKeyEnv = "TMDB_API_KEY"

// Config is the full application configuration.
type Config struct {
	APIKey         string        `koanf:"api_key" yaml:"api_key"`
	APIBaseURL     string        `koanf:"api_base_url" yaml:"api_base_url"`
	ImageBaseURL   string        `koanf:"image_base_url" yaml:"image_base_url"`
	Language       string        `koanf:"language" yaml:"language"`
	RequestTimeout time.Duration `koanf:"request_timeout" yaml:"request_timeout"`
	Images         bool          `koanf:"images" yaml:"images"`
	LogLevel       string        `koanf:"log_level" yaml:"log_level"`
	LogFormat      string        `koanf:"log_format" yaml:"log_format"`
	LogFile        string        `koanf:"log_file" yaml:"log_file"`
	MetricsAddr    string        `koanf:"metrics_addr" yaml:"metrics_addr"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:     "https://api.themoviedb.org/3",
		ImageBaseURL:   "https://image.tmdb.org/t/p",
		Language:       "en-US",
		RequestTimeout: 10 * time.Second,
		Images:         true,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/moviefinder/config.yml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "moviefinder.yml"
	}
	return filepath.Join(dir, "moviefinder", "config.yml")
}

// Load reads configuration from the given YAML file (which may be missing),
// then overlays environment variable overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// MOVIEFINDER_API_KEY -> api_key, MOVIEFINDER_LOG_LEVEL -> log_level, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(FallbackAPIKeyEnv)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api_key is required (set %sAPI_KEY or %s)", EnvPrefix, FallbackAPIKeyEnv)
	}
	if err := validateHTTPURL("api_base_url", c.APIBaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("image_base_url", c.ImageBaseURL); err != nil {
		return err
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative")
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if !validFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	return nil
}

func validateHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an absolute http(s) URL", key, raw)
	}
	return nil
}
