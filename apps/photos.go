// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apps

import (
	"fmt"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/gdamore/tcell"
)

const shutterFlash = 300 * time.Millisecond

// PhotoViewer is the placeholder photo application. It shows a camera
// preview and counts the photos taken.
type PhotoViewer struct {
	cell  vdesk.Size    //
	flash time.Duration // Remaining shutter flash.
	shots int           //
	size  vdesk.Size    // Canvas size of the last Paint.
}

// NewPhotoViewer returns a PhotoViewer with no photos taken.
func NewPhotoViewer(cell vdesk.Size) *PhotoViewer { return &PhotoViewer{cell: cell} }

// Shots returns the number of photos taken.
func (v *PhotoViewer) Shots() int { return v.shots }

// TakePhoto takes a photo.
func (v *PhotoViewer) TakePhoto() {
	v.shots++
	v.flash = shutterFlash
}

// ShutterArea returns the area of the Take Photo button on a canvas of size
// sz, in cells.
func (v *PhotoViewer) ShutterArea(sz vdesk.Size) vdesk.Rectangle {
	const w = 14
	return vdesk.Rect((sz.Width-w)/2, sz.Height-3, w, 1)
}

// Click implements Content.
func (v *PhotoViewer) Click(p vdesk.Position) {
	if v.ShutterArea(v.size).Has(cellOf(p, v.cell)) {
		v.TakePhoto()
	}
}

// Key implements Content.
func (v *PhotoViewer) Key(key tcell.Key, r rune) bool {
	if key == tcell.KeyEnter || key == tcell.KeyRune && r == ' ' {
		v.TakePhoto()
		return true
	}

	return false
}

// Tick implements Content.
func (v *PhotoViewer) Tick(d time.Duration) {
	if v.flash -= d; v.flash < 0 {
		v.flash = 0
	}
}

var (
	photosStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	photosPanel  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x11, 0x18, 0x27)).Foreground(tcell.NewRGBColor(0x9c, 0xa3, 0xaf))
	photosFlash  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	photosButton = tcell.StyleDefault.Background(tcell.NewRGBColor(0xdc, 0x26, 0x26)).Foreground(tcell.ColorWhite)
)

// Paint implements Content.
func (v *PhotoViewer) Paint(c Canvas) {
	sz := c.Size()
	v.size = sz
	Fill(c, vdesk.Rect(0, 0, sz.Width, sz.Height), ' ', photosStyle)
	PrintCenter(c, 0, 1, sz.Width, "Photos", photosStyle.Bold(true))
	PrintCenter(c, 0, 2, sz.Width, "Photos coming soon! View and edit your creative images.", photosStyle.Foreground(tcell.NewRGBColor(0x9c, 0xa3, 0xaf)))

	preview := vdesk.Rect(4, 4, sz.Width-8, sz.Height-9)
	st := photosPanel
	if v.flash > 0 {
		st = photosFlash
	}
	Fill(c, preview, ' ', st)
	PrintCenter(c, preview.X, preview.Y+preview.Height/2, preview.Width, "Camera Preview", st)

	b := v.ShutterArea(sz)
	Fill(c, b, ' ', photosButton)
	PrintCenter(c, b.X, b.Y, b.Width, "Take Photo", photosButton)
	if v.shots != 0 {
		PrintCenter(c, 0, sz.Height-1, sz.Width, fmt.Sprintf("%d photos taken", v.shots), photosStyle)
	}
}
