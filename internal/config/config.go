// Package config loads the optional termfolio.yaml settings file and merges
// it with environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/termfolio/pkg/termfolio"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the working directory unless --config is given.
const ConfigFileName = "termfolio.yaml"

// Environment variables read by ApplyEnv.
const (
	EnvHost       = "TERMFOLIO_HOST"
	EnvContentDir = "TERMFOLIO_CONTENT_DIR"
	EnvLogFile    = "TERMFOLIO_LOG_FILE"
)

// Config holds the shell settings.
type Config struct {
	Host       string   `yaml:"host"`
	ContentDir string   `yaml:"content_dir,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	Banner     *bool    `yaml:"banner,omitempty"`
	LogFile    string   `yaml:"log_file,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Host:       termfolio.DefaultHost,
		Extensions: []string{termfolio.MarkdownExt},
	}
}

// BannerEnabled reports whether the welcome banner is shown. Unset means yes.
func (c *Config) BannerEnabled() bool {
	return c.Banner == nil || *c.Banner
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads the config at path, filling unset fields from Default.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", termfolio.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the TERMFOLIO_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvContentDir); v != "" {
		c.ContentDir = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
}

// Validate checks field values and normalizes extensions to ".ext" form.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("%w: host must not be empty", termfolio.ErrInvalidConfig)
	}
	if strings.ContainsAny(c.Host, " \t/:") {
		return fmt.Errorf("%w: host %q contains whitespace, '/' or ':'", termfolio.ErrInvalidConfig, c.Host)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: extensions must list at least one suffix", termfolio.ErrInvalidConfig)
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: empty extension at index %d", termfolio.ErrInvalidConfig, i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}
	return nil
}
