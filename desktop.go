// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"fmt"
)

// DefaultWallpaper is the wallpaper used when no preference is stored.
const DefaultWallpaper = "linear-gradient(to bottom, #1e3c72, #2a5298)"

// Wallpapers is the set of gradients the desktop offers.
var Wallpapers = []string{
	DefaultWallpaper,
	"linear-gradient(to bottom, #ff7e5f, #feb47b)",
	"linear-gradient(to bottom, #6a11cb, #2575fc)",
	"linear-gradient(to bottom, #f093fb, #f5576c)",
}

// Icon is a desktop shortcut launching a Kind.
type Icon struct {
	Name  string
	Kind  Kind
	Glyph string

	// Top left, relative to the desktop area.
	Position
}

// DefaultIcons are the shortcuts shown on a new desktop.
var DefaultIcons = []Icon{
	{"iPod", MusicPlayer, "♫", Position{20, 20}},
	{"Photos", PhotoViewer, "◉", Position{20, 120}},
	{"Projects", FileBrowser, "▤", Position{20, 220}},
	{"Gallery", ImageGallery, "▦", Position{20, 320}},
}

// Layout holds the pixel metrics of the desktop.
type Layout struct {
	Frame    FrameMetrics //
	Icon     Size         // Icon hit box.
	MenuBar  int          // Menu bar height.
	MenuRow  int          // Height of a menu item.
	MenuWide int          // Width of a menu.
}

// DefaultLayout is the desktop layout in layout pixels.
var DefaultLayout = Layout{
	Frame:    DefaultMetrics,
	Icon:     Size{64, 90},
	MenuBar:  39,
	MenuRow:  24,
	MenuWide: 240,
}

// Button is a pointer button.
type Button int

// Values of Button.
const (
	Primary Button = iota
	Secondary
)

// Target classifies what a pointer press landed on.
type Target int

// Values of Target.
const (
	TargetNone Target = iota
	TargetPower
	TargetMenuBar
	TargetMenu
	TargetWindow
	TargetIcon
	TargetDesktop
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetPower:
		return "power"
	case TargetMenuBar:
		return "menubar"
	case TargetMenu:
		return "menu"
	case TargetWindow:
		return "window"
	case TargetIcon:
		return "icon"
	case TargetDesktop:
		return "desktop"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Hit describes the outcome of a pointer press.
type Hit struct {
	Target Target
	Window WindowID // TargetWindow only.
	Part   Part     // TargetWindow only.
	Local  Position // Content-local position for PartContent.
	Icon   int      // TargetIcon only.
}

// Desktop is the simulated desktop surface: wallpaper, icons, menu bar,
// context menu, power overlay and one Frame per window of its Manager. It
// routes pointer input to them and holds pointer capture, so a release
// anywhere ends a drag started on a frame.
//
// Desktop methods must be called from a single goroutine, usually the event
// loop of the renderer.
type Desktop struct {
	capture        *Frame                  // Frame with a pointer session in progress.
	context        *Menu                   // Open context menu, if any.
	frames         map[WindowID]*Frame     //
	icons          []Icon                  //
	layout         Layout                  //
	m              *Manager                //
	menuBar        *MenuBar                //
	onSetWallpaper *onSetStringHandlerList //
	power          PowerStates             //
	selected       int                     // Selected icon index or -1.
	size           Size                    //
	wallpaper      string                  //
}

// NewDesktop returns a Desktop of size sz showing the windows of m. An empty
// wallpaper selects DefaultWallpaper.
func NewDesktop(m *Manager, sz Size, layout Layout, wallpaper string) *Desktop {
	if wallpaper == "" {
		wallpaper = DefaultWallpaper
	}
	d := &Desktop{
		frames:    map[WindowID]*Frame{},
		icons:     append([]Icon(nil), DefaultIcons...),
		layout:    layout,
		m:         m,
		selected:  -1,
		size:      sz,
		wallpaper: wallpaper,
	}
	d.menuBar = newMenuBar(d)
	d.power.onRestart = m.CloseAll
	m.OnChange(d.onChangeHandler, nil)
	d.sync(m.Windows())
	return d
}

func (d *Desktop) onChangeHandler(m *Manager, prev OnChangeHandler, windows []WindowRecord) {
	if prev != nil {
		prev(m, nil, windows)
	}

	d.sync(windows)
}

// sync creates frames for new windows and drops frames of closed ones.
func (d *Desktop) sync(windows []WindowRecord) {
	live := make(map[WindowID]bool, len(windows))
	for _, r := range windows {
		live[r.ID] = true
		if d.frames[r.ID] == nil {
			d.frames[r.ID] = NewFrame(d.m, r.ID, d.layout.Frame, d.WorkArea)
		}
	}
	for id := range d.frames {
		if !live[id] {
			delete(d.frames, id)
		}
	}
	if c := d.capture; c != nil && !live[c.ID()] {
		c.Cancel()
		d.capture = nil
	}
}

// Manager returns the window manager of d.
func (d *Desktop) Manager() *Manager { return d.m }

// Layout returns the pixel metrics of d.
func (d *Desktop) Layout() Layout { return d.layout }

// Size returns the desktop size in pixels.
func (d *Desktop) Size() Size { return d.size }

// SetSize sets the desktop size in pixels.
func (d *Desktop) SetSize(sz Size) { d.size = sz }

// WorkArea returns the area below the menu bar.
func (d *Desktop) WorkArea() Rectangle {
	return Rect(0, d.layout.MenuBar, d.size.Width, d.size.Height-d.layout.MenuBar)
}

// Frame returns the frame of the window id, if any.
func (d *Desktop) Frame(id WindowID) *Frame { return d.frames[id] }

// Captured returns the frame holding pointer capture, if any.
func (d *Desktop) Captured() *Frame { return d.capture }

// Visible returns the windows shown, back to front.
func (d *Desktop) Visible() []WindowRecord {
	var r []WindowRecord
	for _, w := range d.m.Stacked() {
		if w.Visible() {
			r = append(r, w)
		}
	}
	return r
}

// Icons returns the desktop shortcuts.
func (d *Desktop) Icons() []Icon { return d.icons }

// IconArea returns the desktop area of the icon at index i.
func (d *Desktop) IconArea(i int) Rectangle {
	return Rectangle{d.icons[i].Position.Add(Position{0, d.layout.MenuBar}), d.layout.Icon}
}

// Selected returns the index of the selected icon, or -1.
func (d *Desktop) Selected() int { return d.selected }

// Launch opens a window of kind k and clears the icon selection.
func (d *Desktop) Launch(k Kind) WindowID {
	d.selected = -1
	return d.m.Open(k)
}

// ContextMenu returns the open context menu, if any.
func (d *Desktop) ContextMenu() *Menu { return d.context }

func (d *Desktop) openContextMenu(p Position) {
	d.context = &Menu{
		Position: p,
		Items: []MenuItem{
			{Label: "New Folder"},
			{Label: "Get Info"},
			{Label: "Change Desktop Background...", Action: d.CycleWallpaper},
			{},
			{Label: "Sort By"},
			{Label: "Clean Up"},
		},
		Width: d.layout.MenuWide,
		Row:   d.layout.MenuRow,
	}
}

// MenuBar returns the menu bar of d.
func (d *Desktop) MenuBar() *MenuBar { return d.menuBar }

// Power returns the power overlay of d.
func (d *Desktop) Power() *PowerStates { return &d.power }

// Wallpaper returns the current wallpaper.
func (d *Desktop) Wallpaper() string { return d.wallpaper }

// SetWallpaper changes the wallpaper.
func (d *Desktop) SetWallpaper(s string) { d.onSetWallpaper.handle(d, &d.wallpaper, s) }

// CycleWallpaper switches to the wallpaper following the current one in
// Wallpapers.
func (d *Desktop) CycleWallpaper() {
	next := Wallpapers[0]
	for i, v := range Wallpapers {
		if v == d.wallpaper {
			next = Wallpapers[(i+1)%len(Wallpapers)]
			break
		}
	}
	d.SetWallpaper(next)
}

// OnSetWallpaper sets a handler invoked on SetWallpaper. The handler at the
// bottom of the chain must store the value. When the event handler is
// removed, finalize is called, if not nil.
//
//	d.OnSetWallpaper(func(d *vdesk.Desktop, prev vdesk.OnSetStringHandler, dst *string, src string) {
//		if prev != nil {
//			prev(d, nil, dst, src)
//		} else {
//			*dst = src
//		}
//		save(src)
//	}, nil)
func (d *Desktop) OnSetWallpaper(h OnSetStringHandler, finalize func()) {
	addOnSetStringHandler(d, &d.onSetWallpaper, h, finalize)
}

// RemoveOnSetWallpaper undoes the most recent OnSetWallpaper call. The
// function will panic if there is no handler set.
func (d *Desktop) RemoveOnSetWallpaper() { removeOnSetStringHandler(&d.onSetWallpaper) }

// PointerDown routes a press of button b at the desktop position p. Clicks
// is 2 for the second press of a double click. The power overlay, the menus,
// the windows top to bottom, the icons and the bare desktop are tried in
// that order.
func (d *Desktop) PointerDown(p Position, b Button, clicks int) Hit {
	if d.capture != nil {
		d.capture.Cancel()
		d.capture = nil
	}

	if d.power.Click(p, d.size) {
		return Hit{Target: TargetPower}
	}

	if mb := d.menuBar; mb.about {
		mb.about = false
		return Hit{Target: TargetMenu}
	}

	if c := d.context; c != nil {
		d.context = nil
		if c.Area().Has(p) {
			c.Activate(p)
			return Hit{Target: TargetMenu}
		}
	}

	if t := d.menuBar.pointerDown(p); t != TargetNone {
		return Hit{Target: t}
	}

	visible := d.Visible()
	for i := len(visible) - 1; i >= 0; i-- {
		r := visible[i]
		f := d.frames[r.ID]
		if f == nil || !f.HitArea(r).Has(p) {
			continue
		}

		if b != Primary {
			if f.Geometry(r).Has(p) {
				d.m.Focus(r.ID)
				return Hit{Target: TargetWindow, Window: r.ID, Part: PartContent}
			}
			continue
		}

		part := f.PointerDown(p)
		if part == PartNone {
			continue
		}

		if f.State() != Idle {
			d.capture = f
		}
		h := Hit{Target: TargetWindow, Window: r.ID, Part: part}
		if part == PartContent {
			g := f.Geometry(r)
			h.Local = p.Sub(g.Position).Sub(f.ContentArea(r).Position)
		}
		return h
	}

	for i := range d.icons {
		if d.IconArea(i).Has(p) {
			d.selected = i
			if b == Primary && clicks >= 2 {
				d.Launch(d.icons[i].Kind)
			}
			return Hit{Target: TargetIcon, Icon: i}
		}
	}

	d.selected = -1
	if b == Secondary {
		d.openContextMenu(p)
	}
	return Hit{Target: TargetDesktop}
}

// PointerMove routes pointer motion to the frame holding capture, if any,
// and reports whether it was consumed.
func (d *Desktop) PointerMove(p Position) bool {
	if d.capture == nil {
		return false
	}

	return d.capture.PointerMove(p)
}

// PointerUp ends the pointer session in progress, wherever p is.
func (d *Desktop) PointerUp(p Position) {
	if c := d.capture; c != nil {
		d.capture = nil
		c.PointerUp(p)
	}
}

// PointerCancel ends the pointer session in progress without a final
// position, for example when the pointer leaves the screen.
func (d *Desktop) PointerCancel() {
	if c := d.capture; c != nil {
		d.capture = nil
		c.Cancel()
	}
}
