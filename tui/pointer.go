// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/gdamore/tcell"
)

const (
	anyButton = tcell.Button8<<1 - 1
	primary   = tcell.Button1
	secondary = tcell.Button3 // Right button on xterm.
)

// pointer turns terminal mouse reports, which carry the set of buttons held
// down, into press, motion and release events of the desktop.
type pointer struct {
	buttons tcell.ButtonMask // Buttons down.
	clicks  int              // Presses in the current click sequence.
	last    time.Time        // Time of the last primary press.
	lastPos vdesk.Position   // Cell of the last primary press.
	pos     vdesk.Position   // Last cell reported.
}

// clickCount returns the number of presses of the click sequence a primary
// press at cell at time when belongs to. Only two presses on the same cell
// within d form a double click; a third press starts over.
func (ps *pointer) clickCount(cell vdesk.Position, when time.Time, d time.Duration) int {
	n := 1
	if d > 0 && ps.clicks == 1 && cell == ps.lastPos && when.Sub(ps.last) <= d {
		n = 2
	}
	ps.clicks = n
	ps.last = when
	ps.lastPos = cell
	return n
}

func (a *Application) mouse(e *tcell.EventMouse) {
	x, y := e.Position()
	cell := vdesk.Position{X: x, Y: y}
	p := a.pixel(cell)
	d := a.desktop
	ps := &a.pointer
	if cell != ps.pos {
		ps.pos = cell
		if ps.buttons&primary != 0 {
			d.PointerMove(p)
		}
	}

	b := e.Buttons() & anyButton
	diff := b ^ ps.buttons
	ps.buttons = b
	if diff&primary != 0 {
		if b&primary == 0 {
			d.PointerUp(p)
		} else {
			a.press(p, vdesk.Primary, ps.clickCount(cell, e.When(), a.doubleClick))
		}
	}
	if diff&secondary != 0 && b&secondary != 0 {
		a.press(p, vdesk.Secondary, 1)
	}

	switch {
	case e.Buttons()&tcell.WheelUp != 0:
		a.contentKey(tcell.KeyUp, 0)
	case e.Buttons()&tcell.WheelDown != 0:
		a.contentKey(tcell.KeyDown, 0)
	}
}

func (a *Application) press(p vdesk.Position, b vdesk.Button, clicks int) {
	h := a.desktop.PointerDown(p, b, clicks)
	if h.Target != vdesk.TargetWindow || h.Part != vdesk.PartContent || b != vdesk.Primary {
		return
	}

	if c := a.contents[h.Window]; c != nil {
		c.Click(h.Local)
	}
}
