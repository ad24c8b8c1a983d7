// Package config resolves the console configuration: where the backend
// API lives and where session state is kept on disk.
//
// Resolution order (highest to lowest precedence):
//  1. Environment variables (QUIMIDOCS_API_URL, QUIMIDOCS_STATE_DIR)
//  2. Config file (~/.quimidocs/config.yaml)
//  3. Built-in defaults
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
)

const (
	// DefaultAPIURL is the backend used when nothing else is configured
	DefaultAPIURL = "http://localhost:5000/api"

	// ConfigFileName is the file read from the state directory
	ConfigFileName = "config.yaml"

	// EnvAPIURL overrides the backend API base URL
	EnvAPIURL = "QUIMIDOCS_API_URL"

	// EnvStateDir overrides the state directory location
	EnvStateDir = "QUIMIDOCS_STATE_DIR"
)

// Config holds the console configuration
type Config struct {
	// APIURL is the base URL of the backend REST API
	APIURL string `yaml:"api_url"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// stateDir is where session state and the config file live
	stateDir string
}

// StateDir returns the directory holding session state
func (c *Config) StateDir() string {
	return c.stateDir
}

// DefaultStateDir returns ~/.quimidocs, honoring the env override
func DefaultStateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a project-local directory when home is unavailable
		return ".quimidocs"
	}
	return filepath.Join(homeDir, ".quimidocs")
}

// Load reads the configuration from the state directory.
// A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	return LoadFrom(DefaultStateDir())
}

// LoadFrom reads the configuration rooted at the given state directory
func LoadFrom(stateDir string) (*Config, error) {
	cfg := &Config{
		APIURL:   DefaultAPIURL,
		LogLevel: "warn",
		stateDir: stateDir,
	}

	path := filepath.Join(stateDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewFileUnmarshalError(path, "YAML", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "failed to read config file", err)
	}

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.APIURL = url
	}

	return cfg, nil
}

// Save writes the configuration to the state directory
func (c *Config) Save() error {
	if err := os.MkdirAll(c.stateDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create state directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to encode config", err)
	}

	path := filepath.Join(c.stateDir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to write config file", err)
	}

	return nil
}
