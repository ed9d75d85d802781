// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"cell_width: 10",
		"double_click: 250ms",
		"open: [MusicPlayer, FileBrowser]",
		"",
	}, "\n"))
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := DefaultConfig()
	want.CellWidth = 10
	want.DoubleClick = 250 * time.Millisecond
	want.Open = []string{"MusicPlayer", "FileBrowser"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	if g, e := cfg.Kinds(), []vdesk.Kind{vdesk.MusicPlayer, vdesk.FileBrowser}; !cmp.Equal(g, e) {
		t.Fatalf("kinds %v, expected %v", g, e)
	}

	if g, e := cfg.Cell(), (vdesk.Size{Width: 10, Height: 16}); g != e {
		t.Fatalf("cell %v, expected %v", g, e)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	if _, err := Load(writeConfig(t, "wallpaper: red\n")); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, c := range []struct {
		data string
		path string
	}{
		{"cell_width: 0\n", "cell_width"},
		{"cell_height: -1\n", "cell_height"},
		{"double_click: -1s\n", "double_click"},
		{"tick: 0s\n", "tick"},
		{"open: [Browser]\n", "open[0]"},
	} {
		_, err := Load(writeConfig(t, c.data))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%q: expected validation error, got %v", c.data, err)
			continue
		}

		if verr.Path != c.path {
			t.Errorf("%q: path %q, expected %q", c.data, verr.Path, c.path)
		}
	}
}

func TestDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}

	if g, e := dir, filepath.Join("/tmp/xdg", "vdesk"); g != e {
		t.Fatalf("got %q, expected %q", g, e)
	}
}
