// Package config resolves client settings: defaults, then an optional YAML
// file, then COMPATQUIZ_* environment variables. Command-line flags are
// applied last by the cmd package.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config path constants.
const (
	DirName  = "compatquiz"
	FileName = "config.yml"

	DefaultServerURL = "http://localhost:5000"
	DefaultLogLevel  = "info"
)

// Config holds the client settings.
type Config struct {
	// ServerURL is the quiz server base address.
	ServerURL string `yaml:"server_url"`

	// LogFile receives structured logs. Empty discards them; the TUI owns
	// the terminal so logs never go to stderr.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with defaults applied.
func Default() Config {
	return Config{
		ServerURL: DefaultServerURL,
		LogLevel:  DefaultLogLevel,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/compatquiz/config.yml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

// Load reads the YAML file at path over the defaults and then applies the
// environment. A missing file is an error only when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from COMPATQUIZ_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("COMPATQUIZ_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv("COMPATQUIZ_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("COMPATQUIZ_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the server address and log level.
func (c Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("server_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server_url: scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("server_url: missing host in %q", c.ServerURL)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	return nil
}
