// Package config provides configuration loading and validation for ogmedia.
// It uses koanf to read an optional YAML file; OGMEDIA_* environment
// variables take precedence over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for a scrape run.
type Config struct {
	// AllMedia keeps every ranked media record instead of only the best one.
	AllMedia bool `koanf:"all_media"`

	// HTTP
	UserAgent      string `koanf:"user_agent"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`

	// Crawl
	MaxPages int `koanf:"max_pages"`

	// Output
	OutputDir string `koanf:"output_dir"`
	Format    string `koanf:"format"`
}

// Configuration validation errors.
var (
	ErrInvalidTimeout  = errors.New("timeout_seconds must be a positive integer")
	ErrInvalidMaxPages = errors.New("max_pages must be a positive integer")
	ErrInvalidFormat   = errors.New("format must be one of json, markdown, pdf")
	ErrInvalidAllMedia = errors.New("OGMEDIA_ALL_MEDIA must be a boolean")
)

// Default values.
const (
	DefaultTimeoutSeconds = 30
	DefaultMaxPages       = 100
	DefaultFormat         = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{"json", "markdown", "pdf"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
		MaxPages:       DefaultMaxPages,
		Format:         DefaultFormat,
	}
}

// Load reads configuration from an optional YAML file and the environment.
// Keys missing from the file keep their defaults. It returns the loaded
// config and every validation problem found (empty if valid). A file that
// cannot be read or parsed is reported as the only error.
func Load(configFilePath string) (*Config, []error) {
	cfg := Default()

	if configFilePath != "" {
		k := koanf.New(".")
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
		if err := k.Unmarshal("", cfg); err != nil {
			return nil, []error{fmt.Errorf("failed to decode config file %s: %w", configFilePath, err)}
		}
	}

	var errs []error
	if err := applyEnv(cfg); err != nil {
		errs = append(errs, err...)
	}
	errs = append(errs, cfg.Validate()...)
	return cfg, errs
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() []error {
	var errs []error
	if c.TimeoutSeconds <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if c.MaxPages <= 0 {
		errs = append(errs, ErrInvalidMaxPages)
	}
	if !isFormat(c.Format) {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Format))
	}
	return errs
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func applyEnv(cfg *Config) []error {
	var errs []error

	if v := os.Getenv("OGMEDIA_ALL_MEDIA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, ErrInvalidAllMedia)
		} else {
			cfg.AllMedia = b
		}
	}
	if v := os.Getenv("OGMEDIA_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("OGMEDIA_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("OGMEDIA_FORMAT"); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if err := envInt("OGMEDIA_TIMEOUT_SECONDS", &cfg.TimeoutSeconds, ErrInvalidTimeout); err != nil {
		errs = append(errs, err)
	}
	if err := envInt("OGMEDIA_MAX_PAGES", &cfg.MaxPages, ErrInvalidMaxPages); err != nil {
		errs = append(errs, err)
	}
	return errs
}

func envInt(key string, dst *int, invalid error) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", invalid, key, v)
	}
	*dst = n
	return nil
}

func isFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
