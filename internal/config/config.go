// Package config provides configuration loading and validation for the renderer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/italia-opensource/awesome-italia-opensource/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	// EnvRoot overrides the repository root
	EnvRoot = "AWESOME_ROOT"
	// EnvVerbose enables debug logging when set to "true"
	EnvVerbose = "AWESOME_VERBOSE"
)

// Identity is the upstream repository referenced by the last-commit and contributors badges.
type Identity struct {
	Organization string `yaml:"organization" validate:"required"`
	Repository   string `yaml:"repository" validate:"required"`
}

// FullName returns "organization/repository".
func (i Identity) FullName() string {
	return i.Organization + "/" + i.Repository
}

// URL returns the GitHub URL of the repository.
func (i Identity) URL() string {
	return "https://github.com/" + i.FullName()
}

// Config holds the renderer configuration.
// All fields are optional in the YAML file; missing values keep their defaults.
type Config struct {
	Root          string        `yaml:"root" validate:"required"`        // Repository root containing awesome/<domain>
	Identity      Identity      `yaml:"identity"`                        // Upstream repository identity
	Verbose       bool          `yaml:"verbose"`                         // Debug logging and summaries
	WatchDebounce time.Duration `yaml:"watch_debounce" validate:"gte=0"` // Quiet period before a watch re-render
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Root: ".",
		Identity: Identity{
			Organization: "italia-opensource",
			Repository:   "awesome-italia-opensource",
		},
		WatchDebounce: 500 * time.Millisecond,
	}
}

// Load reads configuration from a YAML file on top of the defaults and applies
// environment overrides. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.Getenv)
}

// LoadWithEnv is Load with an injectable environment lookup.
func LoadWithEnv(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides(getenv func(string) string) error {
	if root := getenv(EnvRoot); root != "" {
		c.Root = root
	}
	if v := getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be a boolean, got %q", EnvVerbose, v)
		}
		c.Verbose = verbose
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// DataDir is the directory holding the JSON records of a domain.
func (c *Config) DataDir(domain types.Domain) string {
	return filepath.Join(c.Root, "awesome", string(domain), "data")
}

// OutputDir is the directory the README of a domain is written to.
func (c *Config) OutputDir(domain types.Domain) string {
	return filepath.Join(c.Root, "awesome", string(domain))
}
