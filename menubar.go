// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"math/rand"
	"time"
)

// ClockFormat is the time layout of the menu bar clock.
const ClockFormat = "3:04 PM"

const (
	menuBarSystem = 40  // Width of the system menu title.
	menuBarApp    = 120 // Width of the application name.
	menuBarMute   = 40  // Width of the mute toggle.
	menuBarClock  = 100 // Width of the clock.
)

// MenuBar is the strip across the top of the desktop. It shows the system
// menu, the name of the active application, a mute toggle and a clock.
type MenuBar struct {
	about bool             // The About This Device panel is shown.
	d     *Desktop         //
	muted bool             //
	now   func() time.Time //
	open  *Menu            // Open system menu, if any.
	rand  *rand.Rand       //
}

func newMenuBar(d *Desktop) *MenuBar {
	return &MenuBar{
		d:    d,
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetClock sets the time source of the clock.
func (mb *MenuBar) SetClock(now func() time.Time) { mb.now = now }

// SetRand sets the source used to pick a random wallpaper.
func (mb *MenuBar) SetRand(r *rand.Rand) { mb.rand = r }

// Area returns the desktop area of the menu bar.
func (mb *MenuBar) Area() Rectangle {
	return Rect(0, 0, mb.d.size.Width, mb.d.layout.MenuBar)
}

// SystemArea returns the area of the system menu title.
func (mb *MenuBar) SystemArea() Rectangle { return Rect(0, 0, menuBarSystem, mb.d.layout.MenuBar) }

// AppArea returns the area of the application name.
func (mb *MenuBar) AppArea() Rectangle {
	return Rect(menuBarSystem, 0, menuBarApp, mb.d.layout.MenuBar)
}

// ClockArea returns the area of the clock.
func (mb *MenuBar) ClockArea() Rectangle {
	return Rect(mb.d.size.Width-menuBarClock, 0, menuBarClock, mb.d.layout.MenuBar)
}

// MuteArea returns the area of the mute toggle.
func (mb *MenuBar) MuteArea() Rectangle {
	return Rect(mb.d.size.Width-menuBarClock-menuBarMute, 0, menuBarMute, mb.d.layout.MenuBar)
}

// AppName returns the menu name of the active window's kind, or "Finder"
// when no window is active.
func (mb *MenuBar) AppName() string {
	r, ok := mb.d.m.Active()
	if !ok {
		return fallbackDefaults.MenuName
	}

	return r.Kind.Defaults().MenuName
}

// Clock returns the formatted current time.
func (mb *MenuBar) Clock() string { return mb.now().Format(ClockFormat) }

// Muted reports whether sound is muted.
func (mb *MenuBar) Muted() bool { return mb.muted }

// About reports whether the About This Device panel is shown.
func (mb *MenuBar) About() bool { return mb.about }

// SystemMenu returns the open system menu, if any.
func (mb *MenuBar) SystemMenu() *Menu { return mb.open }

func (mb *MenuBar) openSystemMenu() {
	ps := &mb.d.power
	mb.open = &Menu{
		Position: Position{0, mb.d.layout.MenuBar},
		Items: []MenuItem{
			{Label: "About This Device", Action: func() { mb.about = true }},
			{Label: "System Preferences..."},
			{},
			{Label: "Change Wallpaper", Action: mb.RandomWallpaper},
			{},
			{Label: "Sleep", Action: func() { ps.Enter(Sleep) }},
			{Label: "Restart...", Action: func() { ps.Enter(Restart) }},
			{Label: "Shut Down...", Action: func() { ps.Enter(Shutdown) }},
		},
		Width: mb.d.layout.MenuWide,
		Row:   mb.d.layout.MenuRow,
	}
}

// RandomWallpaper sets a wallpaper picked at random from Wallpapers.
func (mb *MenuBar) RandomWallpaper() {
	mb.d.SetWallpaper(Wallpapers[mb.rand.Intn(len(Wallpapers))])
}

// pointerDown handles a press at p. An open system menu closes on any press;
// a press outside the menu and the bar is then routed further.
func (mb *MenuBar) pointerDown(p Position) Target {
	if m := mb.open; m != nil {
		mb.open = nil
		if m.Area().Has(p) {
			m.Activate(p)
			return TargetMenu
		}

		if mb.SystemArea().Has(p) {
			return TargetMenuBar
		}
	}

	if !mb.Area().Has(p) {
		return TargetNone
	}

	switch {
	case mb.SystemArea().Has(p):
		mb.openSystemMenu()
	case mb.MuteArea().Has(p):
		mb.muted = !mb.muted
	}
	return TargetMenuBar
}
