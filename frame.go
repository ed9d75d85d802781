// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"fmt"

	"github.com/golang/glog"
)

// FrameState is the pointer interaction state of a Frame.
type FrameState int

// Values of FrameState.
const (
	Idle FrameState = iota
	Dragging
	Resizing
	Pressing // A chrome button is held down.
)

func (s FrameState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	case Pressing:
		return "pressing"
	default:
		return fmt.Sprintf("FrameState(%d)", int(s))
	}
}

// Part identifies the element of a frame under a point.
type Part int

// Values of Part.
const (
	PartNone Part = iota
	PartContent
	PartTitleBar
	PartClose
	PartMinimize
	PartMaximize
	PartResize
	PartGrip // Draggable body area of a chromeless window.
)

func (p Part) String() string {
	switch p {
	case PartNone:
		return "none"
	case PartContent:
		return "content"
	case PartTitleBar:
		return "titlebar"
	case PartClose:
		return "close"
	case PartMinimize:
		return "minimize"
	case PartMaximize:
		return "maximize"
	case PartResize:
		return "resize"
	case PartGrip:
		return "grip"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

func (p Part) button() bool { return p == PartClose || p == PartMinimize || p == PartMaximize }

// FrameMetrics is the chrome layout, in pixels.
type FrameMetrics struct {
	TitleBar     int // Title bar height.
	Button       int // Traffic light width.
	ButtonGap    int //
	ButtonInset  int // Left edge to the first traffic light.
	ResizeHandle int // Side of the bottom right resize square.
	FloatButton  int // Side of a floating control of a chromeless window.
	FloatGap     int //
	FloatInset   int //
	FloatTop     int // Offset of the floating controls from the window top.
}

// DefaultMetrics is the standard chrome layout.
var DefaultMetrics = FrameMetrics{
	TitleBar:     32,
	Button:       12,
	ButtonGap:    8,
	ButtonInset:  12,
	ResizeHandle: 16,
	FloatButton:  24,
	FloatGap:     8,
	FloatInset:   16,
	FloatTop:     -32,
}

// ButtonArea returns the window-local area of the chrome button part of a
// window of kind k.
func (fm FrameMetrics) ButtonArea(k Kind, part Part) Rectangle {
	var i int
	switch part {
	case PartClose:
		i = 0
	case PartMinimize:
		i = 1
	case PartMaximize:
		if k.Chromeless() {
			return Rectangle{}
		}

		i = 2
	default:
		return Rectangle{}
	}

	if k.Chromeless() {
		return Rect(fm.FloatInset+i*(fm.FloatButton+fm.FloatGap), fm.FloatTop, fm.FloatButton, fm.FloatButton)
	}

	return Rect(fm.ButtonInset+i*(fm.Button+fm.ButtonGap), 0, fm.Button, fm.TitleBar)
}

// Frame translates pointer input on one window into Manager operations.
// Pointer positions are in desktop coordinates.
type Frame struct {
	id       WindowID         //
	m        *Manager         //
	metrics  FrameMetrics     //
	pressed  Part             // Valid in Pressing.
	pointer0 Position         // Pointer position at pointer-down.
	state    FrameState       //
	winPos0  Position         // Window position at pointer-down.
	winSize0 Size             // Window size at pointer-down.
	work     func() Rectangle // Area a maximized window fills.
}

// NewFrame returns a Frame for the window id of m. A maximized window fills
// the rectangle returned by work. If work is nil, maximizing does not change
// the window geometry.
func NewFrame(m *Manager, id WindowID, metrics FrameMetrics, work func() Rectangle) *Frame {
	return &Frame{
		id:      id,
		m:       m,
		metrics: metrics,
		work:    work,
	}
}

// ID returns the id of the window f handles.
func (f *Frame) ID() WindowID { return f.id }

// State returns the interaction state.
func (f *Frame) State() FrameState { return f.state }

// Metrics returns the chrome layout of f.
func (f *Frame) Metrics() FrameMetrics { return f.metrics }

// Geometry returns the area r occupies on the desktop.
func (f *Frame) Geometry(r WindowRecord) Rectangle {
	if r.Maximized && f.work != nil {
		return f.work()
	}

	return r.Rectangle
}

// ContentArea returns the window-local area given to the hosted application.
func (f *Frame) ContentArea(r WindowRecord) Rectangle {
	g := f.Geometry(r)
	if r.Kind.Chromeless() {
		return Rectangle{Size: g.Size}
	}

	return Rect(0, f.metrics.TitleBar, g.Width, g.Height-f.metrics.TitleBar)
}

// HitArea returns the desktop area where f accepts pointer-down events.
func (f *Frame) HitArea(r WindowRecord) Rectangle {
	g := f.Geometry(r)
	if r.Kind.Chromeless() {
		pos := g.Position
		g.Join(f.metrics.ButtonArea(r.Kind, PartClose).Translate(pos))
		g.Join(f.metrics.ButtonArea(r.Kind, PartMinimize).Translate(pos))
	}
	return g
}

// Hit returns the part of r at the window-local position p.
func (f *Frame) Hit(r WindowRecord, p Position) Part {
	for _, part := range []Part{PartClose, PartMinimize, PartMaximize} {
		if f.metrics.ButtonArea(r.Kind, part).Has(p) {
			return part
		}
	}

	g := f.Geometry(r)
	if !(Rectangle{Size: g.Size}).Has(p) {
		return PartNone
	}

	if r.Kind.Chromeless() {
		if MusicPlayerHitMap(g.Size).Draggable(p) {
			return PartGrip
		}

		return PartContent
	}

	rh := f.metrics.ResizeHandle
	switch {
	case p.Y < f.metrics.TitleBar:
		return PartTitleBar
	case !r.Maximized && p.X >= g.Width-rh && p.Y >= g.Height-rh:
		return PartResize
	default:
		return PartContent
	}
}

// PointerDown handles a primary button press at the desktop position p and
// returns the part hit. Any hit focuses the window first. A press on the
// title bar or a grip starts a drag, a press on the resize handle starts a
// resize and a press on a chrome button arms it until PointerUp.
func (f *Frame) PointerDown(p Position) Part {
	r, ok := f.m.Window(f.id)
	if !ok || !r.Visible() {
		return PartNone
	}

	g := f.Geometry(r)
	part := f.Hit(r, p.Sub(g.Position))
	if part == PartNone {
		return PartNone
	}

	f.m.Focus(f.id)
	switch {
	case part == PartTitleBar || part == PartGrip:
		if r.Maximized {
			break
		}

		f.begin(Dragging, p, r)
	case part == PartResize:
		f.begin(Resizing, p, r)
	case part.button():
		f.state = Pressing
		f.pressed = part
	}
	return part
}

func (f *Frame) begin(s FrameState, p Position, r WindowRecord) {
	f.state = s
	f.pointer0 = p
	f.winPos0 = r.Position
	f.winSize0 = r.Size
	glog.V(3).Infof("%v: %v from %v", f.id, s, p)
}

// PointerMove handles pointer motion to the desktop position p. It reports
// whether f consumed the event.
func (f *Frame) PointerMove(p Position) bool {
	switch f.state {
	case Dragging, Resizing:
		f.track(p)
		return true
	case Pressing:
		return true
	default:
		return false
	}
}

// track applies the pointer offset from the pointer-down origin, never from
// the previous event, so any number of intermediate moves lands at the same
// place.
func (f *Frame) track(p Position) {
	d := p.Sub(f.pointer0)
	switch f.state {
	case Dragging:
		f.m.Update(f.id, Move(f.winPos0.Add(d)))
	case Resizing:
		f.m.Update(f.id, Resize(Size{f.winSize0.Width + d.X, f.winSize0.Height + d.Y}.Clamp(MinSize)))
	}
}

// PointerUp handles the primary button release at the desktop position p,
// wherever it happens, and returns f to Idle. A release over the armed chrome
// button activates it.
func (f *Frame) PointerUp(p Position) {
	switch f.state {
	case Dragging, Resizing:
		f.track(p)
	case Pressing:
		if r, ok := f.m.Window(f.id); ok && f.Hit(r, p.Sub(f.Geometry(r).Position)) == f.pressed {
			f.activate(r, f.pressed)
		}
	}
	f.reset()
}

// Cancel abandons any interaction in progress. The window keeps the geometry
// of the last move.
func (f *Frame) Cancel() { f.reset() }

func (f *Frame) reset() {
	f.state = Idle
	f.pressed = PartNone
}

func (f *Frame) activate(r WindowRecord, part Part) {
	switch part {
	case PartClose:
		f.m.Close(f.id)
	case PartMinimize:
		f.m.Update(f.id, SetMinimized(true))
	case PartMaximize:
		f.m.Update(f.id, SetMaximized(!r.Maximized))
	default:
		panic("internal error")
	}
}
