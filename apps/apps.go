// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package apps implements the applications hosted in desktop windows.
//
// An application sees only its own state: pointer clicks in content-local
// layout pixels, keys, clock ticks and a Canvas to paint on. It never sees
// the window manager.
package apps

import (
	"fmt"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

// Canvas is a rectangular area of character cells an application paints on.
type Canvas interface {
	// Size returns the size of the canvas in cells.
	Size() vdesk.Size
	// SetContent sets the cell at x, y. Cells outside of the canvas are
	// ignored.
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Content is a hosted application.
type Content interface {
	// Click handles a primary button press at the content-local position p.
	Click(p vdesk.Position)
	// Key handles a key press and reports whether it was consumed.
	Key(key tcell.Key, r rune) bool
	// Paint renders the application.
	Paint(c Canvas)
	// Tick advances the application clock by d.
	Tick(d time.Duration)
}

var (
	_ Content = (*FileBrowser)(nil)
	_ Content = (*ImageGallery)(nil)
	_ Content = (*MusicPlayer)(nil)
	_ Content = (*PhotoViewer)(nil)
)

// New returns the application for windows of kind k. Cell is the size of a
// character cell in layout pixels.
func New(k vdesk.Kind, cell vdesk.Size) Content {
	switch k {
	case vdesk.MusicPlayer:
		return NewMusicPlayer(cell)
	case vdesk.PhotoViewer:
		return NewPhotoViewer(cell)
	case vdesk.FileBrowser:
		return NewFileBrowser(cell)
	case vdesk.ImageGallery:
		return NewImageGallery(cell)
	default:
		panic("internal error")
	}
}

// Fill sets every cell of area to r.
func Fill(c Canvas, area vdesk.Rectangle, r rune, style tcell.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			c.SetContent(x, y, r, nil, style)
		}
	}
}

// Print writes s at x, y, truncated to width cells, and returns the number
// of cells written. A negative width means no limit.
func Print(c Canvas, x, y, width int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}

		if width >= 0 && n+w > width {
			break
		}

		c.SetContent(x+n, y, r, nil, style)
		n += w
	}
	return n
}

// PrintCenter writes s centered in the row y between x and x+width.
func PrintCenter(c Canvas, x, y, width int, s string, style tcell.Style) {
	if w := runewidth.StringWidth(s); w < width {
		x += (width - w) / 2
		width = w
	}
	Print(c, x, y, width, s, style)
}

// cellOf returns the canvas cell containing the content-local position p.
func cellOf(p vdesk.Position, cell vdesk.Size) vdesk.Position {
	return vdesk.Position{X: floorDiv(p.X, cell.Width), Y: floorDiv(p.Y, cell.Height)}
}

// center returns the content-local position of the center of the cell at
// x, y.
func center(x, y int, cell vdesk.Size) vdesk.Position {
	return vdesk.Position{X: x*cell.Width + cell.Width/2, Y: y*cell.Height + cell.Height/2}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// window returns the first index of a list of n items scrolled so that
// selected is shown in a page of rows items.
func window(n, selected, rows int) (start, end int) {
	start = selected - rows/2
	if start < 0 {
		start = 0
	}
	end = start + rows
	if end > n {
		end = n
		if start = end - rows; start < 0 {
			start = 0
		}
	}
	return start, end
}

// formatDuration formats d as m:ss.
func formatDuration(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
