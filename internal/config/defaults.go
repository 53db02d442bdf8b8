package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("max_content_width", d.MaxContentWidth)
	v.SetDefault("history_size", d.HistorySize)
	v.SetDefault("welcome", d.Welcome)
	v.SetDefault("settings_file", d.SettingsFile)
	v.SetDefault("watch_settings", d.WatchSettings)
	v.SetDefault("scroll_animation", d.ScrollAnimation)
	v.SetDefault("metrics.horizontal_padding", d.Metrics.HorizontalPadding)
	v.SetDefault("metrics.vertical_padding", d.Metrics.VerticalPadding)
	v.SetDefault("metrics.short_chunk_width", d.Metrics.ShortChunkWidth)
	v.SetDefault("metrics.item_spacing", d.Metrics.ItemSpacing)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:           "auto",
		LogFile:         filepath.Join(StateDir(), "rpns.log"),
		LogLevel:        "info",
		MaxContentWidth: 0,
		HistorySize:     500,
		Welcome:         true,
		SettingsFile:    filepath.Join(Dir(), "settings.yaml"),
		WatchSettings:   true,
		ScrollAnimation: true,
		Metrics: Metrics{
			HorizontalPadding: 2,
			VerticalPadding:   0,
			ShortChunkWidth:   4,
			ItemSpacing:       1,
		},
	}
}

// ErrExists is returned by WriteDefault when the file is already there.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the built-in configuration to path as YAML. An
// existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
