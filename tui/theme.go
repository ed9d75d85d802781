// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell"
)

var (
	zeroStyle Style
)

// Style represents a text style.
type Style struct {
	Foreground tcell.Color
	Background tcell.Color
	Attr       tcell.AttrMask
}

// IsZero returns whether s is the zero value of Style.
func (s *Style) IsZero() bool { return *s == zeroStyle }

// NewStyle returns Style having values filled from s.
func NewStyle(s tcell.Style) Style {
	f, b, a := s.Decompose()
	return Style{f, b, a}
}

// TCellStyle converts a Style to a tcell.Style value.
func (s Style) TCellStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(s.Foreground).
		Background(s.Background).
		Bold(s.Attr&tcell.AttrBold != 0).
		Blink(s.Attr&tcell.AttrBlink != 0).
		Reverse(s.Attr&tcell.AttrReverse != 0).
		Underline(s.Attr&tcell.AttrUnderline != 0).
		Dim(s.Attr&tcell.AttrDim != 0)
}

// Theme represents visual styles of the desktop.
type Theme struct {
	Desktop      Style // Used when the wallpaper is not a gradient.
	Icon         Style
	IconSelected Style
	MenuBar      Style
	MenuBarApp   Style
	Menu         Style
	MenuDivider  Style
	Window       WindowStyle // Inactive windows.
	ActiveWindow WindowStyle
	Close        Style
	Minimize     Style
	Maximize     Style
	Panel        Style // About This Device.
	Power        Style
	PowerButton  Style
	Progress     Style
}

// WindowStyle represents visual styles of a window.
type WindowStyle struct {
	ClientArea Style
	Title      Style
	Resize     Style
}

func rgb(r, g, b int32) tcell.Color { return tcell.NewRGBColor(r, g, b) }

// DefaultTheme returns the built in theme.
func DefaultTheme() *Theme {
	light := rgb(0xf3, 0xf4, 0xf6)
	gray := rgb(0x6b, 0x72, 0x80)
	return &Theme{
		Desktop:      Style{tcell.ColorWhite, rgb(0x1e, 0x3c, 0x72), 0},
		Icon:         Style{tcell.ColorWhite, rgb(0x1e, 0x3c, 0x72), 0},
		IconSelected: Style{tcell.ColorWhite, rgb(0x25, 0x63, 0xeb), 0},
		MenuBar:      Style{tcell.ColorBlack, rgb(0xe5, 0xe7, 0xeb), 0},
		MenuBarApp:   Style{tcell.ColorBlack, rgb(0xe5, 0xe7, 0xeb), tcell.AttrBold},
		Menu:         Style{tcell.ColorBlack, light, 0},
		MenuDivider:  Style{gray, light, 0},
		Window: WindowStyle{
			ClientArea: Style{tcell.ColorBlack, tcell.ColorWhite, 0},
			Title:      Style{gray, rgb(0xe5, 0xe7, 0xeb), 0},
			Resize:     Style{gray, tcell.ColorWhite, 0},
		},
		ActiveWindow: WindowStyle{
			ClientArea: Style{tcell.ColorBlack, tcell.ColorWhite, 0},
			Title:      Style{tcell.ColorBlack, rgb(0xd1, 0xd5, 0xdb), tcell.AttrBold},
			Resize:     Style{gray, tcell.ColorWhite, 0},
		},
		Close:       Style{rgb(0xff, 0x5f, 0x57), rgb(0xd1, 0xd5, 0xdb), 0},
		Minimize:    Style{rgb(0xfe, 0xbc, 0x2e), rgb(0xd1, 0xd5, 0xdb), 0},
		Maximize:    Style{rgb(0x28, 0xc8, 0x40), rgb(0xd1, 0xd5, 0xdb), 0},
		Panel:       Style{tcell.ColorBlack, light, 0},
		Power:       Style{tcell.ColorWhite, tcell.ColorBlack, 0},
		PowerButton: Style{tcell.ColorWhite, rgb(0x37, 0x41, 0x51), tcell.AttrBold},
		Progress:    Style{tcell.ColorWhite, rgb(0x37, 0x41, 0x51), 0},
	}
}

// Clear sets t to its zero value.
func (t *Theme) Clear() { *t = Theme{} }

// WriteTo writes t to w in JSON format.
func (t *Theme) WriteTo(w io.Writer) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}

// ReadFrom reads t from r in JSON format. Values of fields having no JSON data
// are preserved.
func (t *Theme) ReadFrom(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, t)
}

// LoadTheme returns the built in theme overridden by the JSON file at path.
// An empty path yields the built in theme.
func LoadTheme(path string) (*Theme, error) {
	t := DefaultTheme()
	if path == "" {
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	defer f.Close()

	if err := t.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}

	return t, nil
}
