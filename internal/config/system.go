// Package config loads the shapes CLI system configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// SystemConfig represents the global configuration file (~/.shapes.yaml).
type SystemConfig struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls how reports are written.
type OutputConfig struct {
	// Format is one of table, json or yaml
	Format string `yaml:"format"`
	// Indent pretty-prints JSON output
	Indent *bool `yaml:"indent,omitempty"`
}

// LogConfig controls the slog level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// LoadSystemConfig loads the system configuration from the specified path.
// If the file does not exist, it returns an empty config without error.
func LoadSystemConfig(path string) (*SystemConfig, error) {
	if path == "" {
		return &SystemConfig{}, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &SystemConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	return ParseSystemConfig(data)
}

// ParseSystemConfig parses a YAML configuration document.
func ParseSystemConfig(data []byte) (*SystemConfig, error) {
	var config SystemConfig
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}
	return &config, nil
}

// ApplyDefaults fills unset fields.
func (c *SystemConfig) ApplyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatTable
	}
	if c.Output.Indent == nil {
		indent := true
		c.Output.Indent = &indent
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate reports every invalid field.
func (c *SystemConfig) Validate() error {
	var errors []string

	switch strings.ToLower(c.Output.Format) {
	case "", FormatTable, FormatJSON, FormatYAML:
	default:
		errors = append(errors, fmt.Sprintf("output.format %q is not one of table, json, yaml", c.Output.Format))
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("system config validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// IndentJSON reports whether JSON output should be pretty-printed.
func (c *SystemConfig) IndentJSON() bool {
	return c.Output.Indent == nil || *c.Output.Indent
}

// LogLevel returns the configured slog level, defaulting to info.
func (c *SystemConfig) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", s)
	}
}

// DefaultConfigPath returns $HOME/.shapes.yaml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shapes.yaml")
}
