// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"github.com/AbelJSeba/vdesk"
	"github.com/AbelJSeba/vdesk/apps"
	"github.com/cznic/mathutil"
	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

// canvas is an area of the screen. Cells outside of both the area and clip
// are not painted.
type canvas struct {
	area   vdesk.Rectangle // Screen cells.
	clip   vdesk.Rectangle // Screen cells.
	screen tcell.Screen
}

func (a *Application) canvas(area vdesk.Rectangle) *canvas {
	clip := vdesk.Rectangle{Size: a.size}
	if !clip.Clip(area) {
		clip = vdesk.Rectangle{}
	}
	return &canvas{area, clip, a.screen}
}

func (c *canvas) Size() vdesk.Size { return c.area.Size }

func (c *canvas) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.area.Width || y >= c.area.Height {
		return
	}

	p := vdesk.Position{X: c.area.X + x, Y: c.area.Y + y}
	if c.clip.Has(p) {
		c.screen.SetContent(p.X, p.Y, mainc, combc, style)
	}
}

// paint renders the whole desktop, back to front.
func (a *Application) paint() {
	a.screen.Clear()
	a.paintWallpaper()
	a.paintIcons()
	for _, r := range a.desktop.Visible() {
		a.paintWindow(r)
	}
	a.paintMenuBar()
	if m := a.desktop.ContextMenu(); m != nil {
		a.paintMenu(m)
	}
	if m := a.desktop.MenuBar().SystemMenu(); m != nil {
		a.paintMenu(m)
	}
	if a.desktop.MenuBar().About() {
		a.paintAbout()
	}
	a.paintPower()
	a.screen.Show()
}

func (a *Application) paintWallpaper() {
	g, ok := parseGradient(a.desktop.Wallpaper())
	if !ok {
		screen := a.canvas(vdesk.Rectangle{Size: a.size})
		apps.Fill(screen, vdesk.Rectangle{Size: a.size}, ' ', a.theme.Desktop.TCellStyle())
		return
	}

	for y := 0; y < a.size.Height; y++ {
		for x := 0; x < a.size.Width; x++ {
			var bg tcell.Color
			if g.horizontal {
				bg = g.at(x, a.size.Width)
			} else {
				bg = g.at(y, a.size.Height)
			}
			a.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
}

// background returns the background color painted at cell x, y.
func (a *Application) background(x, y int) tcell.Color {
	_, _, st, _ := a.screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func (a *Application) paintIcons() {
	d := a.desktop
	for i, ic := range d.Icons() {
		r := a.cells(d.IconArea(i))
		c := a.canvas(r)
		st := a.theme.Icon.TCellStyle()
		if i == d.Selected() {
			apps.Fill(c, vdesk.Rectangle{Size: r.Size}, ' ', a.theme.IconSelected.TCellStyle())
			st = a.theme.IconSelected.TCellStyle()
		} else {
			st = st.Background(a.background(r.X, r.Y+r.Height-1))
		}
		apps.PrintCenter(c, 0, r.Height/2-1, r.Width, ic.Glyph, st.Bold(true))
		apps.PrintCenter(c, 0, r.Height-1, r.Width, ic.Name, st)
	}
}

func (a *Application) paintWindow(r vdesk.WindowRecord) {
	f := a.desktop.Frame(r.ID)
	if f == nil {
		return
	}

	ws := &a.theme.Window
	if r.Active {
		ws = &a.theme.ActiveWindow
	}
	g := f.Geometry(r)
	ca := f.ContentArea(r).Translate(g.Position)
	cc := a.canvas(a.cells(ca))
	apps.Fill(cc, vdesk.Rectangle{Size: cc.Size()}, ' ', ws.ClientArea.TCellStyle())
	if c := a.contents[r.ID]; c != nil {
		c.Paint(cc)
	}

	m := f.Metrics()
	if r.Kind.Chromeless() {
		for _, p := range []struct {
			part  vdesk.Part
			glyph string
			style Style
		}{
			{vdesk.PartClose, "✕", a.theme.Close},
			{vdesk.PartMinimize, "−", a.theme.Minimize},
		} {
			br := a.cells(m.ButtonArea(r.Kind, p.part).Translate(g.Position))
			st := p.style.TCellStyle().Background(p.style.Foreground).Foreground(tcell.ColorWhite)
			bc := a.canvas(br)
			apps.Fill(bc, vdesk.Rectangle{Size: br.Size}, ' ', st)
			apps.PrintCenter(bc, 0, br.Height/2, br.Width, p.glyph, st)
		}
		return
	}

	tr := a.cells(vdesk.Rect(g.X, g.Y, g.Width, m.TitleBar))
	tc := a.canvas(tr)
	ts := ws.Title.TCellStyle()
	apps.Fill(tc, vdesk.Rectangle{Size: tr.Size}, ' ', ts)
	row := tr.Height / 2
	apps.PrintCenter(tc, 0, row, tr.Width, r.Title, ts)
	for _, p := range []struct {
		part  vdesk.Part
		style Style
	}{
		{vdesk.PartClose, a.theme.Close},
		{vdesk.PartMinimize, a.theme.Minimize},
		{vdesk.PartMaximize, a.theme.Maximize},
	} {
		br := a.cells(m.ButtonArea(r.Kind, p.part).Translate(g.Position))
		st := ts.Foreground(p.style.Foreground)
		if !r.Active {
			st = ts
		}
		a.canvas(br).SetContent(0, row+tr.Y-br.Y, '●', nil, st)
	}

	if !r.Maximized {
		h := a.cells(vdesk.Rect(g.X+g.Width-m.ResizeHandle, g.Y+g.Height-m.ResizeHandle, m.ResizeHandle, m.ResizeHandle))
		hc := a.canvas(h)
		hc.SetContent(h.Width-1, h.Height-1, '◢', nil, ws.Resize.TCellStyle())
	}
}

func (a *Application) paintMenuBar() {
	mb := a.desktop.MenuBar()
	r := a.cells(mb.Area())
	c := a.canvas(r)
	st := a.theme.MenuBar.TCellStyle()
	apps.Fill(c, vdesk.Rectangle{Size: r.Size}, ' ', st)
	row := r.Height / 2
	cellX := func(area vdesk.Rectangle) (int, int) {
		cr := a.cells(area)
		return cr.X - r.X, cr.Width
	}

	x, w := cellX(mb.SystemArea())
	apps.PrintCenter(c, x, row, w, "≡", st.Bold(true))
	x, w = cellX(mb.AppArea())
	apps.Print(c, x+1, row, w-1, mb.AppName(), a.theme.MenuBarApp.TCellStyle())
	x, w = cellX(mb.MuteArea())
	glyph := "♪"
	if mb.Muted() {
		glyph = "×"
	}
	apps.PrintCenter(c, x, row, w, glyph, st)
	x, w = cellX(mb.ClockArea())
	clock := mb.Clock()
	apps.Print(c, x+w-1-runewidth.StringWidth(clock), row, w, clock, st)
}

func (a *Application) paintMenu(m *vdesk.Menu) {
	st := a.theme.Menu.TCellStyle()
	ds := a.theme.MenuDivider.TCellStyle()
	for i, it := range m.Items {
		r := a.cells(vdesk.Rect(m.X, m.Y+i*m.Row, m.Width, m.Row))
		c := a.canvas(r)
		apps.Fill(c, vdesk.Rectangle{Size: r.Size}, ' ', st)
		row := r.Height / 2
		if it.Label == "" {
			for x := 0; x < r.Width; x++ {
				c.SetContent(x, row, '─', nil, ds)
			}
			continue
		}

		ist := st
		if it.Action == nil {
			ist = ds
		}
		apps.Print(c, 1, row, r.Width-2, it.Label, ist)
	}
}

var aboutLines = []string{
	"About This Device",
	"",
	"vdesk",
	"A simulated desktop",
	"",
	"Click anywhere to close",
}

func (a *Application) paintAbout() {
	w := 0
	for _, s := range aboutLines {
		w = mathutil.Max(w, runewidth.StringWidth(s))
	}
	w += 4
	h := len(aboutLines) + 2
	r := vdesk.Rect((a.size.Width-w)/2, (a.size.Height-h)/2, w, h)
	c := a.canvas(r)
	st := a.theme.Panel.TCellStyle()
	apps.Fill(c, vdesk.Rectangle{Size: r.Size}, ' ', st)
	for i, s := range aboutLines {
		ls := st
		if i == 0 {
			ls = st.Bold(true)
		}
		apps.PrintCenter(c, 0, i+1, w, s, ls)
	}
}

func (a *Application) paintPower() {
	ps := a.desktop.Power()
	mode := ps.Mode()
	if mode == vdesk.PowerOn {
		return
	}

	full := vdesk.Rectangle{Size: a.size}
	c := a.canvas(full)
	st := a.theme.Power.TCellStyle()
	apps.Fill(c, full, ' ', st)
	mid := a.size.Height / 2
	switch mode {
	case vdesk.Sleep:
		apps.PrintCenter(c, 0, mid, a.size.Width, "Sleeping. Click to wake.", st.Dim(true))
	case vdesk.Restart:
		apps.PrintCenter(c, 0, mid-1, a.size.Width, "Restarting...", st)
		w := mathutil.Min(40, a.size.Width-4)
		x := (a.size.Width - w) / 2
		done := w * ps.Progress() / 100
		pst := a.theme.Progress.TCellStyle()
		for i := 0; i < w; i++ {
			r := '░'
			if i < done {
				r = '█'
			}
			c.SetContent(x+i, mid+1, r, nil, pst)
		}
	case vdesk.Shutdown:
		br := a.cells(vdesk.PowerButton(a.desktop.Size()))
		bc := a.canvas(br)
		bst := a.theme.PowerButton.TCellStyle()
		apps.Fill(bc, vdesk.Rectangle{Size: br.Size}, ' ', bst)
		apps.PrintCenter(bc, 0, br.Height/2, br.Width, "⏻", bst)
		apps.PrintCenter(c, 0, br.Y+br.Height+1, a.size.Width, "Click the power button to turn on", st.Dim(true))
	}
}
