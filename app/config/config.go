// Package config loads the optional startup settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

const (
	MinFontSize = 8
	MaxFontSize = 71
)

// Config holds the startup settings. Nothing here is written back.
type Config struct {
	FontFamily       string   `toml:"font_family"`
	FontSize         int      `toml:"font_size"`
	AutosaveInterval Duration `toml:"autosave_interval"`
	Dictionary       string   `toml:"dictionary"`
	Language         string   `toml:"language"`
	LogLevel         string   `toml:"log_level"`
}

// Duration decodes TOML strings such as "5m" or "90s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		FontFamily:       "Go",
		FontSize:         12,
		AutosaveInterval: Duration{5 * time.Minute},
		Language:         "en_US",
		LogLevel:         "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q: %w", undec[0].String(), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FontFamily) == "" {
		return fmt.Errorf("config: font_family is empty: %w", ErrInvalid)
	}
	if c.FontSize < MinFontSize || c.FontSize > MaxFontSize {
		return fmt.Errorf("config: font_size %d outside %d-%d: %w", c.FontSize, MinFontSize, MaxFontSize, ErrInvalid)
	}
	if c.AutosaveInterval.Duration < time.Second {
		return fmt.Errorf("config: autosave_interval %v is shorter than 1s: %w", c.AutosaveInterval.Duration, ErrInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	return lvl, nil
}
