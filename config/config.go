// Package config loads runtime settings from TOML, environment and defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and the env prefix
	AppName   = "pulseshitter"
	envPrefix = "PULSESHITTER"
	fileName  = "config.toml"
)

// Config is the complete runtime configuration
type Config struct {
	UI    UIConfig                     `mapstructure:"ui"`
	Theme ThemeConfig                  `mapstructure:"theme"`
	Audio AudioConfig                  `mapstructure:"audio"`
	Log   LogConfig                    `mapstructure:"log"`
	Keys  map[string]map[string]string `mapstructure:"keys"`
}

// UIConfig tunes the render loop and terminal modes
type UIConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	MaxFrames     int           `mapstructure:"max_frames"`
	DrainEvents   bool          `mapstructure:"drain_events"`
	Mouse         bool          `mapstructure:"mouse"`
}

// ThemeConfig holds color strings: "#rrggbb", "#rgb" or an ANSI index 0-255
type ThemeConfig struct {
	Accent  string `mapstructure:"accent" toml:"accent"`
	Text    string `mapstructure:"text" toml:"text"`
	Muted   string `mapstructure:"muted" toml:"muted"`
	Error   string `mapstructure:"error" toml:"error"`
	Success string `mapstructure:"success" toml:"success"`
}

// AudioConfig controls feedback sounds
type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled" toml:"enabled"`
	Volume  float64 `mapstructure:"volume" toml:"volume"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `mapstructure:"debug" toml:"debug"`
	Dir   string `mapstructure:"dir" toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		UI: UIConfig{
			FrameInterval: 16 * time.Millisecond,
			Mouse:         true,
		},
		Theme: ThemeConfig{
			Accent:  "#1ed760",
			Text:    "#dcdcdc",
			Muted:   "#8c8c96",
			Error:   "#ff5050",
			Success: "#50c850",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pulseshitter/config.toml, or the platform equivalent
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppName, fileName), nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ui.frame_interval", d.UI.FrameInterval.String())
	v.SetDefault("ui.max_frames", d.UI.MaxFrames)
	v.SetDefault("ui.drain_events", d.UI.DrainEvents)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("theme.accent", d.Theme.Accent)
	v.SetDefault("theme.text", d.Theme.Text)
	v.SetDefault("theme.muted", d.Theme.Muted)
	v.SetDefault("theme.error", d.Theme.Error)
	v.SetDefault("theme.success", d.Theme.Success)
	v.SetDefault("audio.enabled", d.Audio.Enabled)
	v.SetDefault("audio.volume", d.Audio.Volume)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.dir", d.Log.Dir)
}

// Load reads configuration with precedence env > file > defaults
// An explicit path must exist; the default path is optional
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if def, err := DefaultPath(); err == nil {
		v.SetConfigFile(def)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", def, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

// Validate rejects values the runtime cannot honor
func (c Config) Validate() error {
	var errs []error
	if c.UI.FrameInterval < 0 {
		errs = append(errs, fmt.Errorf("ui.frame_interval must not be negative, got %v", c.UI.FrameInterval))
	}
	if c.UI.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("ui.max_frames must not be negative, got %d", c.UI.MaxFrames))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within 0..1, got %v", c.Audio.Volume))
	}
	if _, err := c.Theme.Parse(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.KeyTable(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// fileConfig mirrors Config with TOML-friendly field types
type fileConfig struct {
	UI struct {
		FrameInterval string `toml:"frame_interval"`
		MaxFrames     int    `toml:"max_frames"`
		DrainEvents   bool   `toml:"drain_events"`
		Mouse         bool   `toml:"mouse"`
	} `toml:"ui"`
	Theme ThemeConfig                  `toml:"theme"`
	Audio AudioConfig                  `toml:"audio"`
	Log   LogConfig                    `toml:"log"`
	Keys  map[string]map[string]string `toml:"keys,omitempty"`
}

// Encode renders c as TOML
func (c Config) Encode() ([]byte, error) {
	var fc fileConfig
	fc.UI.FrameInterval = c.UI.FrameInterval.String()
	fc.UI.MaxFrames = c.UI.MaxFrames
	fc.UI.DrainEvents = c.UI.DrainEvents
	fc.UI.Mouse = c.UI.Mouse
	fc.Theme = c.Theme
	fc.Audio = c.Audio
	fc.Log = c.Log
	fc.Keys = c.Keys

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores c at path, creating parent directories
// An existing file is left untouched unless overwrite is set
func Write(path string, c Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s: %w", path, os.ErrExist)
		}
	}
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
