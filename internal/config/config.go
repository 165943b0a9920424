// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the bearer token is never written anywhere.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"docquery/cli/internal/xdg"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is the backend used when nothing else is configured.
// Release builds may override it with -ldflags "-X docquery/cli/internal/config.DefaultAPIBaseURL=...".
var DefaultAPIBaseURL = "http://localhost:8000"

// Environment variables that override the config file.
const (
	EnvAPIBaseURL = "DOCQUERY_API_BASE_URL"
	EnvLogLevel   = "DOCQUERY_LOG_LEVEL"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	LogLevel   string `yaml:"log_level"`
	// Demo is nil when unset so that the default (on) can be told apart from "off".
	Demo   *bool        `yaml:"demo,omitempty"`
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds settings for the local demo backend.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DemoOrDefault returns whether demo mode is on; defaults to true when unset.
func (c *Config) DemoOrDefault() bool {
	if c.Demo != nil {
		return *c.Demo
	}
	return true
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from the XDG config file and the environment;
// a missing file yields defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	c, err := LoadFile(p)
	if err != nil {
		return c, err
	}
	ApplyEnv(&c, environ())
	return c, nil
}

// LoadFile reads the config file at path and applies defaults.
func LoadFile(path string) (Config, error) {
	var c Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ApplyDefaults(&c)
			return c, nil
		}
		return c, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	ApplyDefaults(&c)
	return c, nil
}

// Save writes configuration to the XDG config file.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(p, c)
}

// SaveFile writes configuration with 0600 permissions.
func SaveFile(path string, c Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return errors.Wrap(err, "writing config")
	}
	return nil
}

// ApplyDefaults sets default values for any zero values in c.
func ApplyDefaults(c *Config) {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
}

// ApplyEnv overrides c with values from env. For production use Load.
func ApplyEnv(c *Config, env map[string]string) {
	if v := strings.TrimSpace(env[EnvAPIBaseURL]); v != "" {
		c.APIBaseURL = v
	}
	if v := strings.TrimSpace(env[EnvLogLevel]); v != "" {
		c.LogLevel = v
	}
}

func environ() map[string]string {
	return map[string]string{
		EnvAPIBaseURL: os.Getenv(EnvAPIBaseURL),
		EnvLogLevel:   os.Getenv(EnvLogLevel),
	}
}

// Keys lists the settings accepted by Set.
var Keys = []string{"api_base_url", "log_level", "demo", "server.host", "server.port"}

// Set assigns value to the setting named key.
func Set(c *Config, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_base_url":
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return errors.Errorf("invalid api_base_url %q: must start with http:// or https://", value)
		}
		c.APIBaseURL = strings.TrimRight(value, "/")
	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(value)
		default:
			return errors.Errorf("invalid log_level %q: must be debug, info, warn or error", value)
		}
	case "demo":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Errorf("invalid demo %q: must be true or false", value)
		}
		c.Demo = &b
	case "server.host":
		if value == "" {
			return errors.New("server.host must not be empty")
		}
		c.Server.Host = value
	case "server.port":
		p, err := strconv.Atoi(value)
		if err != nil || p < 1 || p > 65535 {
			return errors.Errorf("invalid server.port %q: must be 1-65535", value)
		}
		c.Server.Port = p
	default:
		return errors.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}
