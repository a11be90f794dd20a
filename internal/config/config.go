// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/jrywalker/displayselect/internal/model"
)

// Default configuration values.
const (
	DefaultInternalOutput  = "eDP-1"
	DefaultCloseResolution = "1600x900"
	DefaultFarResolution   = "1920x1080"
	DefaultDPI             = 96
	DefaultRemapsCommand   = "remaps"
	DefaultNotifyCommand   = "pkill -x dunst"
)

// Config represents the displayselect configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Picker  PickerConfig  `toml:"picker"`
	Hooks   HooksConfig   `toml:"hooks"`
}

// DisplayConfig holds the resolution policy.
type DisplayConfig struct {
	InternalOutput  string `toml:"internal_output"`  // Built-in panel identifier
	CloseResolution string `toml:"close_resolution"` // Internal panel mode, WxH
	FarResolution   string `toml:"far_resolution"`   // Primary mode when extending, WxH
	DPI             int    `toml:"dpi"`              // 0 = leave DPI alone
}

// PickerConfig holds the menu command.
type PickerConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// HooksConfig holds the post-apply commands. Empty disables a hook,
// except wallpaper which is auto-detected when empty.
type HooksConfig struct {
	Wallpaper     string `toml:"wallpaper"`
	Remaps        string `toml:"remaps"`
	Notifications string `toml:"notifications"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			InternalOutput:  DefaultInternalOutput,
			CloseResolution: DefaultCloseResolution,
			FarResolution:   DefaultFarResolution,
			DPI:             DefaultDPI,
		},
		Picker: PickerConfig{
			Command: "", // Auto-detect
		},
		Hooks: HooksConfig{
			Wallpaper:     "", // Auto-detect
			Remaps:        DefaultRemapsCommand,
			Notifications: DefaultNotifyCommand,
		},
	}
}

// ConfigPath returns the path to the config file, or empty when no
// file exists in the XDG config search path.
func ConfigPath() string {
	path, err := xdg.SearchConfigFile("displayselect/config.toml")
	if err != nil {
		return ""
	}
	return path
}

// LoadConfig loads configuration from the specified path. If path is
// empty, the XDG search path is consulted. Returns defaults when no
// file exists.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CloseRes parses the configured close-up resolution.
func (d DisplayConfig) CloseRes() (model.Resolution, error) {
	res, err := model.ParseResolution(d.CloseResolution)
	if err != nil {
		return model.Resolution{}, fmt.Errorf("close_resolution: %w", err)
	}
	return res, nil
}

// FarRes parses the configured extended-primary resolution.
func (d DisplayConfig) FarRes() (model.Resolution, error) {
	res, err := model.ParseResolution(d.FarResolution)
	if err != nil {
		return model.Resolution{}, fmt.Errorf("far_resolution: %w", err)
	}
	return res, nil
}
