package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jacksmith/td/internal/model"
)

const (
	// yamlConfigFile and tomlConfigFile are the user configuration files
	// in the data directory. YAML wins when both exist.
	yamlConfigFile = "config.yaml"
	tomlConfigFile = "config.toml"

	// Default configuration values
	DefaultStorageKey       = "tasks"
	DefaultIDScheme         = model.IDSchemeTimestamp
	DefaultRejectBlankEdits = false
	DefaultLogLevel         = "warn"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents user configuration from config.yaml or config.toml.
// This file is user-managed and never written by td.
type Config struct {
	// StorageKey is the key the task list is stored under.
	StorageKey string `yaml:"storage_key" toml:"storage_key"`

	// IDScheme selects how new task ids are generated.
	IDScheme model.IDScheme `yaml:"id_scheme" toml:"id_scheme"`

	// RejectBlankEdits ignores edits that would leave a blank title.
	RejectBlankEdits bool `yaml:"reject_blank_edits" toml:"reject_blank_edits"`

	// LogLevel is the minimum level written to td.log.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		StorageKey:       DefaultStorageKey,
		IDScheme:         DefaultIDScheme,
		RejectBlankEdits: DefaultRejectBlankEdits,
		LogLevel:         DefaultLogLevel,
	}
}

// LoadConfig loads the user config from the data directory if present,
// otherwise returns defaults. Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	return LoadConfig(s.root)
}

// LoadConfig loads the user config from dir.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	yamlPath := filepath.Join(dir, yamlConfigFile)
	data, err := os.ReadFile(yamlPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", yamlConfigFile, err)
		}
		return cfg, cfg.Validate()
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read %s: %w", yamlConfigFile, err)
	}

	tomlPath := filepath.Join(dir, tomlConfigFile)
	if _, err := os.Stat(tomlPath); err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", tomlConfigFile, err)
	}
	if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tomlConfigFile, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("invalid storage_key: must not be empty")
	}
	if _, err := model.NewIDGenerator(c.IDScheme); err != nil {
		return fmt.Errorf("invalid id_scheme: %w", err)
	}
	level := strings.ToLower(c.LogLevel)
	for _, l := range validLogLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log_level %q: must be one of %s", c.LogLevel, strings.Join(validLogLevels, ", "))
}

// ConfigPath returns the path of the YAML config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, yamlConfigFile)
}
