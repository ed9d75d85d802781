// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vdesk runs the simulated desktop in the terminal.
//
// Usage:
//
//	vdesk [-config path] [-theme path] [-prefs path] [glog flags]
//
// Ctrl-Q quits, Ctrl-W closes the active window. Logs go to the glog
// directory, see -log_dir.
package main

import (
	"flag"
	"os"

	"github.com/AbelJSeba/vdesk"
	"github.com/AbelJSeba/vdesk/internal/config"
	"github.com/AbelJSeba/vdesk/prefs"
	"github.com/AbelJSeba/vdesk/tui"
	"github.com/golang/glog"
)

var (
	oConfig    = flag.String("config", "", "configuration file (default $XDG_CONFIG_HOME/vdesk/config.yaml)")
	oDumpTheme = flag.Bool("dumptheme", false, "write the effective theme as JSON to stdout and exit")
	oPrefs     = flag.String("prefs", "", "preferences file, overrides the configuration")
	oTheme     = flag.String("theme", "", "JSON theme file, overrides the configuration")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(); err != nil {
		glog.Exit(err)
	}
}

func run() error {
	path := *oConfig
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	themePath := cfg.Theme
	if *oTheme != "" {
		themePath = *oTheme
	}
	theme, err := tui.LoadTheme(themePath)
	if err != nil {
		return err
	}

	if *oDumpTheme {
		return theme.WriteTo(os.Stdout)
	}

	prefsPath := cfg.Prefs
	if *oPrefs != "" {
		prefsPath = *oPrefs
	}
	if prefsPath == "" {
		if prefsPath, err = prefs.DefaultPath(); err != nil {
			return err
		}
	}

	m := vdesk.NewManager()
	d := vdesk.NewDesktop(m, vdesk.Size{}, vdesk.DefaultLayout, "")
	prefs.NewStore(prefsPath).Bind(d)
	for _, k := range cfg.Kinds() {
		m.Open(k)
	}

	glog.Infof("config %s, prefs %s", path, prefsPath)
	app, err := tui.NewApplication(d, theme, tui.Options{
		Cell:        cfg.Cell(),
		DoubleClick: cfg.DoubleClick,
		Tick:        cfg.Tick,
	})
	if err != nil {
		return err
	}

	defer app.Finalize()

	return app.Wait()
}
