package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/revline/pkg/transcode"
)

// Config represents the revline configuration
type Config struct {
	Mode    transcode.Mode `yaml:"mode"`
	Append  bool           `yaml:"append"`
	Sync    bool           `yaml:"sync"`
	Logging Logging        `yaml:"logging"`
	Metrics Metrics        `yaml:"metrics"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Metrics contains metrics export configuration
type Metrics struct {
	// Textfile is the path of a Prometheus textfile written after each run.
	// Empty disables metrics export.
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Mode:   transcode.ModeLineReverse,
		Append: false,
		Sync:   false,
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that every field holds a supported value
func (c *Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("invalid mode: %d", int(c.Mode))
	}

	if _, err := NormalizeLevel(c.Logging.Level); err != nil {
		return err
	}

	if _, err := NormalizeFormat(c.Logging.Format); err != nil {
		return err
	}

	return nil
}

// NormalizeLevel maps a log level name to its canonical form. An empty name
// selects info and "warning" is accepted for warn.
func NormalizeLevel(level string) (string, error) {
	switch name := strings.ToLower(strings.TrimSpace(level)); name {
	case "debug", "info", "warn", "error":
		return name, nil
	case "":
		return "info", nil
	case "warning":
		return "warn", nil
	default:
		return "", fmt.Errorf("invalid log level: %q", level)
	}
}

// NormalizeFormat maps a log format name to its canonical form; empty selects text
func NormalizeFormat(format string) (string, error) {
	switch name := strings.ToLower(strings.TrimSpace(format)); name {
	case "", "text":
		return "text", nil
	case "json":
		return name, nil
	default:
		return "", fmt.Errorf("invalid log format: %q", format)
	}
}

// LoadConfig loads configuration from the specified path. Fields missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig writes a default configuration to configPath unless one
// already exists there, and returns the configuration in effect.
func BootstrapConfig(configPath string, force bool) (*Config, bool, error) {
	if ConfigExists(configPath) && !force {
		config, err := LoadConfig(configPath)
		return config, false, err
	}

	config := DefaultConfig()
	if err := SaveConfig(config, configPath); err != nil {
		return nil, false, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, true, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./revline.yaml"
	}

	// For Linux/macOS, use ~/.config/revline/config.yaml
	configDir := filepath.Join(homeDir, ".config", "revline")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
