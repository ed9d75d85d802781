// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the vdesk configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/AbelJSeba/vdesk"
	"gopkg.in/yaml.v3"
)

const appName = "vdesk"

// Config is the effective configuration.
type Config struct {
	// Size of a terminal cell in layout pixels.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`

	// Maximum delay between the presses of a double click. Zero disables
	// double clicks.
	DoubleClick time.Duration `yaml:"double_click"`

	// Interval of the clock driving the menu bar, power overlays and
	// applications.
	Tick time.Duration `yaml:"tick"`

	Theme string   `yaml:"theme"` // JSON theme file, empty for the built in theme.
	Prefs string   `yaml:"prefs"` // Preferences file, empty for the default location.
	Open  []string `yaml:"open"`  // Kinds of the windows opened at startup.
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		CellWidth:   8,
		CellHeight:  16,
		DoubleClick: 400 * time.Millisecond,
		Tick:        100 * time.Millisecond,
	}
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}

	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks c for values the desktop cannot run with.
func (c *Config) Validate() error {
	if c.CellWidth <= 0 {
		return &ValidationError{Path: "cell_width", Err: fmt.Errorf("cell_width must be > 0")}
	}
	if c.CellHeight <= 0 {
		return &ValidationError{Path: "cell_height", Err: fmt.Errorf("cell_height must be > 0")}
	}
	if c.DoubleClick < 0 {
		return &ValidationError{Path: "double_click", Err: fmt.Errorf("double_click must be >= 0")}
	}
	if c.Tick <= 0 {
		return &ValidationError{Path: "tick", Err: fmt.Errorf("tick must be > 0")}
	}
	for i, v := range c.Open {
		if _, err := vdesk.ParseKind(v); err != nil {
			return &ValidationError{Path: fmt.Sprintf("open[%d]", i), Err: err}
		}
	}
	return nil
}

// Cell returns the cell size in layout pixels.
func (c *Config) Cell() vdesk.Size { return vdesk.Size{Width: c.CellWidth, Height: c.CellHeight} }

// Kinds returns the kinds listed in Open. It must be called on a validated
// Config.
func (c *Config) Kinds() []vdesk.Kind {
	var r []vdesk.Kind
	for _, v := range c.Open {
		k, err := vdesk.ParseKind(v)
		if err != nil {
			panic("internal error")
		}

		r = append(r, k)
	}
	return r
}

// Dir returns the vdesk configuration directory, $XDG_CONFIG_HOME/vdesk or
// ~/.config/vdesk.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the location of the configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from path. A missing file yields the
// defaults. Keys present in the file override the defaults, unknown keys are
// an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			return cfg, cfg.Validate()
		}

		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
