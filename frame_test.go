// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"testing"
)

func newFrame(t *testing.T, k Kind, at Position) (*Manager, *Frame) {
	t.Helper()
	m := NewManager()
	id := m.Open(k)
	m.Update(id, Move(at))
	return m, NewFrame(m, id, DefaultMetrics, func() Rectangle { return Rect(0, 39, 1280, 761) })
}

func position(t *testing.T, m *Manager, id WindowID) Position {
	t.Helper()
	r, ok := m.Window(id)
	if !ok {
		t.Fatalf("%v missing", id)
	}
	return r.Position
}

func TestDragScenario(t *testing.T) {
	m, f := newFrame(t, FileBrowser, Position{100, 100})
	p0 := Position{300, 110}
	if g, e := f.PointerDown(p0), PartTitleBar; g != e {
		t.Fatalf("hit %v, expected %v", g, e)
	}

	if g, e := f.State(), Dragging; g != e {
		t.Fatalf("state %v, expected %v", g, e)
	}

	for _, d := range []Position{{20, -5}, {40, -10}, {50, -20}} {
		if !f.PointerMove(p0.Add(d)) {
			t.Fatal("move not consumed")
		}
	}
	f.PointerUp(p0.Add(Position{50, -20}))
	if g, e := position(t, m, f.ID()), (Position{150, 80}); g != e {
		t.Fatalf("window at %v, expected %v", g, e)
	}

	if g, e := f.State(), Idle; g != e {
		t.Fatalf("state %v, expected %v", g, e)
	}
}

func TestDragNoDrift(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	p0 := Position{300, 110}
	f.PointerDown(p0)
	p := p0
	for i := 0; i < 37; i++ {
		p = p.Add(Position{3, -2})
		f.PointerMove(p)
	}
	for i := 0; i < 11; i++ {
		p = p.Add(Position{-7, 5})
		f.PointerMove(p)
	}
	f.PointerUp(p)
	d := p.Sub(p0)
	if g, e := position(t, m, f.ID()), (Position{100 + d.X, 100 + d.Y}); g != e {
		t.Fatalf("window at %v, expected %v", g, e)
	}
}

func TestPointerUpAnywhereEndsDrag(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	f.PointerDown(Position{300, 110})
	f.PointerMove(Position{310, 120})
	far := Position{-5000, 9000}
	f.PointerUp(far)
	if g, e := f.State(), Idle; g != e {
		t.Fatalf("state %v, expected %v", g, e)
	}

	at := position(t, m, f.ID())
	if f.PointerMove(Position{0, 0}) {
		t.Fatal("move consumed after pointer up")
	}

	if g := position(t, m, f.ID()); g != at {
		t.Fatalf("window moved to %v after pointer up", g)
	}
}

func TestResizeClamps(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	corner := Position{100 + 640 - 4, 100 + 480 - 4}
	if g, e := f.PointerDown(corner), PartResize; g != e {
		t.Fatalf("hit %v, expected %v", g, e)
	}

	for _, d := range []Position{{-100, -100}, {-600, -50}, {-1000, -1000}} {
		f.PointerMove(corner.Add(d))
		r, _ := m.Window(f.ID())
		if r.Width < MinSize.Width || r.Height < MinSize.Height {
			t.Fatalf("size %v below minimum", r.Size)
		}
	}
	f.PointerUp(corner.Add(Position{-1000, -1000}))
	r, _ := m.Window(f.ID())
	if g, e := r.Size, MinSize; g != e {
		t.Fatalf("size %v, expected %v", g, e)
	}

	if g, e := r.Position, (Position{100, 100}); g != e {
		t.Fatalf("resize moved the window to %v", g)
	}
}

func TestResizeGrows(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	corner := Position{100 + 640 - 1, 100 + 480 - 1}
	f.PointerDown(corner)
	f.PointerUp(corner.Add(Position{60, 20}))
	r, _ := m.Window(f.ID())
	if g, e := r.Size, (Size{700, 500}); g != e {
		t.Fatalf("size %v, expected %v", g, e)
	}
}

func TestPointerDownFocuses(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	other := m.Open(FileBrowser)
	f.PointerDown(Position{300, 300})
	r, _ := m.Window(f.ID())
	o, _ := m.Window(other)
	if !r.Active || o.Active || r.Z <= o.Z {
		t.Fatalf("frame window %+v, other %+v", r, o)
	}

	if g, e := f.State(), Idle; g != e {
		t.Fatalf("content press entered %v", g)
	}
}

func TestPointerDownMiss(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	other := m.Open(FileBrowser)
	if g, e := f.PointerDown(Position{50, 50}), PartNone; g != e {
		t.Fatalf("hit %v, expected %v", g, e)
	}

	if r, _ := m.Window(other); !r.Active {
		t.Fatal("miss changed focus")
	}
}

func TestTrafficLights(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	button := func(part Part) Position {
		a := DefaultMetrics.ButtonArea(PhotoViewer, part)
		return Position{100 + a.X + a.Width/2, 100 + a.Y + a.Height/2}
	}

	// Release away from the button does nothing.
	f.PointerDown(button(PartMaximize))
	if g, e := f.State(), Pressing; g != e {
		t.Fatalf("state %v, expected %v", g, e)
	}

	f.PointerUp(Position{500, 500})
	if r, _ := m.Window(f.ID()); r.Maximized {
		t.Fatal("maximized on release elsewhere")
	}

	f.PointerDown(button(PartMaximize))
	f.PointerUp(button(PartMaximize))
	r, _ := m.Window(f.ID())
	if !r.Maximized {
		t.Fatal("not maximized")
	}

	if g, e := f.Geometry(r), Rect(0, 39, 1280, 761); g != e {
		t.Fatalf("maximized geometry %v, expected %v", g, e)
	}

	if g, e := f.PointerDown(Position{600, 50}), PartTitleBar; g != e {
		t.Fatalf("hit %v, expected %v", g, e)
	}

	if g, e := f.State(), Idle; g != e {
		t.Fatalf("maximized window entered %v", g)
	}

	f.PointerUp(Position{600, 50})
	if g, e := f.Hit(r, Position{1279, 760}), PartContent; g != e {
		t.Fatalf("maximized corner hit %v, expected %v", g, e)
	}

	max := Position{mid(DefaultMetrics.ButtonArea(PhotoViewer, PartMaximize)).X, 39 + 16}
	f.PointerDown(max)
	f.PointerUp(max)
	if r, _ := m.Window(f.ID()); r.Maximized {
		t.Fatal("maximize did not toggle back")
	}

	f.PointerDown(button(PartMinimize))
	f.PointerUp(button(PartMinimize))
	if r, _ := m.Window(f.ID()); !r.Minimized {
		t.Fatal("not minimized")
	}

	if g, e := f.PointerDown(button(PartClose)), PartNone; g != e {
		t.Fatalf("minimized window hit %v", g)
	}

	m.Update(f.ID(), SetMinimized(false))
	f.PointerDown(button(PartClose))
	f.PointerUp(button(PartClose))
	if _, ok := m.Window(f.ID()); ok {
		t.Fatal("not closed")
	}
}

// mid returns the center of r.
func mid(r Rectangle) Position { return Position{r.X + r.Width/2, r.Y + r.Height/2} }

func TestChromelessFrame(t *testing.T) {
	m, f := newFrame(t, MusicPlayer, Position{100, 100})
	r, _ := m.Window(f.ID())
	if g, e := f.ContentArea(r), Rect(0, 0, 400, 650); g != e {
		t.Fatalf("content area %v, expected %v", g, e)
	}

	if !DefaultMetrics.ButtonArea(MusicPlayer, PartMaximize).IsZero() {
		t.Fatal("chromeless window has a maximize button")
	}

	for _, c := range []struct {
		local Position
		part  Part
	}{
		{Position{200, 10}, PartGrip},
		{Position{10, 150}, PartGrip},
		{Position{390, 150}, PartGrip},
		{Position{200, 640}, PartGrip},
		{Position{40, 280}, PartGrip},
		{Position{200, 100}, PartContent}, // Screen.
		{Position{189, 442}, PartContent}, // Center button.
		{Position{189, 360}, PartContent}, // Menu.
		{Position{189, 520}, PartContent}, // Wheel.
		{Position{395, 645}, PartGrip},    // No resize handle.
		{Position{16 + 12, -32 + 12}, PartClose},
		{Position{48 + 12, -32 + 12}, PartMinimize},
		{Position{200, 700}, PartNone},
	} {
		if g, e := f.Hit(r, c.local), c.part; g != e {
			t.Errorf("hit %v: %v, expected %v", c.local, g, e)
		}
	}

	p0 := Position{300, 105}
	if g, e := f.PointerDown(p0), PartGrip; g != e {
		t.Fatalf("hit %v, expected %v", g, e)
	}

	f.PointerUp(p0.Add(Position{-30, 40}))
	if g, e := position(t, m, f.ID()), (Position{70, 140}); g != e {
		t.Fatalf("window at %v, expected %v", g, e)
	}

	ha := f.HitArea(r)
	if g, e := ha, Rect(100, 100-32, 400, 650+32); g != e {
		t.Fatalf("hit area %v, expected %v", g, e)
	}
}

func TestChromelessHitArea(t *testing.T) {
	m, f := newFrame(t, MusicPlayer, Position{100, 100})
	r, _ := m.Window(f.ID())
	ha := f.HitArea(r)
	if g, e := ha.Y, 100+DefaultMetrics.ButtonArea(MusicPlayer, PartClose).Y; g != e {
		t.Fatalf("hit area top %d, expected %d", g, e)
	}

	for _, part := range []Part{PartClose, PartMinimize} {
		b := DefaultMetrics.ButtonArea(MusicPlayer, part).Translate(r.Position)
		if !ha.Has(b.Position) || !ha.Has(Position{b.X + b.Width - 1, b.Y + b.Height - 1}) {
			t.Errorf("%v at %v outside the hit area %v", part, b, ha)
		}
	}

	if p := (Position{120, ha.Y - 1}); ha.Has(p) {
		t.Fatalf("%v above the buttons is in the hit area %v", p, ha)
	}
}

func TestFrameCancel(t *testing.T) {
	m, f := newFrame(t, PhotoViewer, Position{100, 100})
	f.PointerDown(Position{300, 110})
	f.PointerMove(Position{320, 130})
	f.Cancel()
	if g, e := f.State(), Idle; g != e {
		t.Fatalf("state %v, expected %v", g, e)
	}

	if g, e := position(t, m, f.ID()), (Position{120, 120}); g != e {
		t.Fatalf("window at %v, expected %v", g, e)
	}
}
