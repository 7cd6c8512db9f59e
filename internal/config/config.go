// Package config persists user defaults for vexil.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jmylchreest/vexil/internal/colour"
	"github.com/jmylchreest/vexil/internal/preset"
)

const (
	// ConfigDirName is the directory under the user config root.
	ConfigDirName = "vexil"

	// ConfigFileName is the config file name.
	ConfigFileName = "config.json"
)

// Config holds the persisted defaults. Flags win over these values at
// run time; these values win over the built-in defaults.
type Config struct {
	// Preset is the default palette name.
	Preset string `json:"preset,omitempty"`

	// Layer is "fg" or "bg".
	Layer string `json:"layer,omitempty"`

	// SpaceOnly defaults the space-only painting mode.
	SpaceOnly bool `json:"space_only,omitempty"`

	// Brightness is a lightness multiplier applied to every palette.
	// 1.0 leaves palettes untouched.
	Brightness float64 `json:"brightness,omitempty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Preset:     preset.DefaultName,
		Layer:      colour.Foreground.String(),
		SpaceOnly:  false,
		Brightness: 1.0,
	}
}

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// Load reads the config file at path, or the default path when path is
// empty. A missing file is not an error: the built-in defaults are
// returned so first runs work without any setup.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path) // #nosec G304 - Config file path controlled by application
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to path, or the default path when path is
// empty, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	if err := c.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the config values for consistency.
func (c *Config) Validate() error {
	if _, err := colour.ParseLayer(c.Layer); err != nil {
		return err
	}
	if c.Brightness <= 0 {
		return fmt.Errorf("brightness must be positive, got %g", c.Brightness)
	}
	return nil
}

// Keys returns the settable config keys.
func Keys() []string {
	return []string{"preset", "layer", "space_only", "brightness"}
}

// Get returns the value of a config key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "preset":
		return c.Preset, nil
	case "layer":
		return c.Layer, nil
	case "space_only":
		return strconv.FormatBool(c.SpaceOnly), nil
	case "brightness":
		return strconv.FormatFloat(c.Brightness, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unknown config key: %s (valid keys: %v)", key, Keys())
	}
}

// Set assigns a config key from its string form, validating the value.
func (c *Config) Set(key, value string) error {
	switch key {
	case "preset":
		c.Preset = value
	case "layer":
		layer, err := colour.ParseLayer(value)
		if err != nil {
			return err
		}
		c.Layer = layer.String()
	case "space_only":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("space_only must be true or false, got %q", value)
		}
		c.SpaceOnly = b
	case "brightness":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("brightness must be a number, got %q", value)
		}
		if f <= 0 {
			return fmt.Errorf("brightness must be positive, got %g", f)
		}
		c.Brightness = f
	default:
		return fmt.Errorf("unknown config key: %s (valid keys: %v)", key, Keys())
	}
	return nil
}
