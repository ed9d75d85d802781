// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs persists the desktop preferences.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AbelJSeba/vdesk"
	"github.com/AbelJSeba/vdesk/internal/config"
	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

// Preferences are the settings kept across sessions.
type Preferences struct {
	Wallpaper string `yaml:"wallpaper"`
}

// Defaults returns the preferences of a fresh desktop.
func Defaults() Preferences { return Preferences{Wallpaper: vdesk.DefaultWallpaper} }

// DefaultPath returns the location of the preferences file.
func DefaultPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "prefs.yaml"), nil
}

// Store reads and writes Preferences in a YAML file.
type Store struct {
	path string
}

// NewStore returns a Store using the file at path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the location of the preferences file.
func (s *Store) Path() string { return s.path }

// Load returns the stored preferences. It never fails: a missing, unreadable
// or corrupt file and empty values yield the defaults.
func (s *Store) Load() Preferences {
	p := Defaults()
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			glog.Warningf("prefs: %v", err)
		}
		return p
	}

	var v Preferences
	if err := yaml.Unmarshal(data, &v); err != nil {
		glog.Warningf("prefs: %s: %v", s.path, err)
		return p
	}

	if v.Wallpaper != "" {
		p.Wallpaper = v.Wallpaper
	}
	return p
}

// Save writes p, replacing the file atomically.
func (s *Store) Save(p Preferences) error {
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	f, err := os.CreateTemp(dir, ".prefs-*.yaml")
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("prefs: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Bind loads the wallpaper of d from s and saves it on every change. Save
// errors are logged.
func (s *Store) Bind(d *vdesk.Desktop) {
	d.SetWallpaper(s.Load().Wallpaper)
	d.OnSetWallpaper(func(d *vdesk.Desktop, prev vdesk.OnSetStringHandler, dst *string, src string) {
		if prev != nil {
			prev(d, nil, dst, src)
		} else {
			*dst = src
		}

		if err := s.Save(Preferences{Wallpaper: *dst}); err != nil {
			glog.Errorf("%v", err)
		}
	}, nil)
}
