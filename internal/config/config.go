package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/logx"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme: "auto" (default), "dark" or "light".
	Theme string `mapstructure:"theme" yaml:"theme"`
	// LogFile is where logs are written; "off" disables logging.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// MaxContentWidth caps the transcript width in cells; 0 uses the
	// whole terminal.
	MaxContentWidth int `mapstructure:"max_content_width" yaml:"max_content_width"`
	// HistorySize bounds the scratchpad history.
	HistorySize int `mapstructure:"history_size" yaml:"history_size"`
	// Welcome shows the greeting banner on start.
	Welcome bool `mapstructure:"welcome" yaml:"welcome"`
	// SettingsFile is where runtime settings are stored.
	SettingsFile string `mapstructure:"settings_file" yaml:"settings_file"`
	// WatchSettings reloads the settings file when it changes on disk.
	WatchSettings bool `mapstructure:"watch_settings" yaml:"watch_settings"`
	// ScrollAnimation eases scrolls over a few frames.
	ScrollAnimation bool `mapstructure:"scroll_animation" yaml:"scroll_animation"`
	// Metrics tune the terminal layout.
	Metrics Metrics `mapstructure:"metrics" yaml:"metrics"`
}

// Metrics is the configurable part of layout.Metrics, in cells.
type Metrics struct {
	HorizontalPadding float64 `mapstructure:"horizontal_padding" yaml:"horizontal_padding"`
	VerticalPadding   float64 `mapstructure:"vertical_padding" yaml:"vertical_padding"`
	ShortChunkWidth   float64 `mapstructure:"short_chunk_width" yaml:"short_chunk_width"`
	// ItemSpacing is the number of blank rows between entries.
	ItemSpacing int `mapstructure:"item_spacing" yaml:"item_spacing"`
}

// Layout converts m to layout metrics for a one-cell font.
func (m Metrics) Layout() layout.Metrics {
	lm := layout.TerminalMetrics()
	lm.HorizontalPadding = m.HorizontalPadding
	lm.VerticalPadding = m.VerticalPadding
	lm.ShortChunkWidth = m.ShortChunkWidth
	return lm
}

// Load reads configuration from $XDG_CONFIG_HOME/rpns/config.yaml (or the
// working directory). Environment variables prefixed RPNS_ override file
// values, e.g. RPNS_LOG_LEVEL=debug.
func Load() (*Config, error) {
	return load("")
}

// LoadFile reads configuration from an explicit file.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(explicit string) (*Config, error) {
	v := viper.New()
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("RPNS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine; use defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(explicit == "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the program cannot use.
func (c *Config) Validate() error {
	switch c.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("config: theme %q: want auto, dark or light", c.Theme)
	}
	if !logx.ValidLevel(c.LogLevel) {
		return fmt.Errorf("config: log_level %q: want trace, debug, info, warn or error", c.LogLevel)
	}
	if c.MaxContentWidth < 0 {
		return fmt.Errorf("config: max_content_width must not be negative")
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("config: history_size must not be negative")
	}
	if c.Metrics.HorizontalPadding < 0 || c.Metrics.VerticalPadding < 0 ||
		c.Metrics.ShortChunkWidth < 0 || c.Metrics.ItemSpacing < 0 {
		return fmt.Errorf("config: metrics must not be negative")
	}
	return nil
}

// Dir is the rpns configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rpns")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "rpns")
}

// Path is the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// StateDir is where logs are kept.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "rpns")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "rpns")
}
