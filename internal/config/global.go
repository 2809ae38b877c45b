// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Remember defaults and scaffolded projects across runs in ~/.create-appystack/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the global config file location when set.
const EnvConfigPath = "APPYSTACK_CONFIG_PATH"

const configDirName = ".create-appystack"

// GlobalConfig represents the ~/.create-appystack/config.yaml file. It
// tracks remembered defaults and the projects scaffolded on this machine.
type GlobalConfig struct {
	Version  int                     `yaml:"version"`
	Defaults Defaults                `yaml:"defaults,omitempty"`
	Projects map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// Defaults are the remembered answers offered as prompt defaults on the
// next run.
type Defaults struct {
	Scope          string `yaml:"scope,omitempty"`
	ClientPort     int    `yaml:"client_port,omitempty"`
	ServerPort     int    `yaml:"server_port,omitempty"`
	PackageManager string `yaml:"package_manager,omitempty"`
}

// ProjectEntry records where a project was scaffolded and when.
type ProjectEntry struct {
	Path      string `yaml:"path"`
	CreatedAt string `yaml:"created_at,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the path to the global config file, honoring the
// APPYSTACK_CONFIG_PATH override.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, "config.yaml"), nil
}

// LoadGlobalConfig reads, schema-validates, and parses the global config.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	if err := validateGlobalConfig(payload); err != nil {
		return GlobalConfig{}, fmt.Errorf("config %s: %w", path, err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	return cfg, nil
}

// LoadOrDefault loads the global config, falling back to defaults when the
// file does not exist yet. Parse and validation errors are returned so the
// caller can warn without aborting the run.
func LoadOrDefault(path string) (GlobalConfig, error) {
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return DefaultGlobalConfig(), err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// RecordProject registers a scaffolded project and refreshes the remembered
// defaults.
func (c *GlobalConfig) RecordProject(name, path string, defaults Defaults, now time.Time) {
	if c.Projects == nil {
		c.Projects = map[string]ProjectEntry{}
	}
	c.Projects[name] = ProjectEntry{
		Path:      path,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
	c.Defaults = defaults
}
