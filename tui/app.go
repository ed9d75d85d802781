// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui renders a vdesk Desktop in a terminal and feeds it terminal
// input.
//
// Geometry of the desktop is in layout pixels. A character cell covers
// Options.Cell pixels; a cell belongs to whatever contains its center pixel.
package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/AbelJSeba/vdesk/apps"
	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
	"github.com/golang/glog"
)

// Options configure an Application.
type Options struct {
	Cell        vdesk.Size    // Size of a character cell in layout pixels.
	DoubleClick time.Duration // Zero disables double clicks.
	Tick        time.Duration // Zero disables the clock.
}

// DefaultOptions are the options used by NewApplication for zero fields.
var DefaultOptions = Options{
	Cell:        vdesk.Size{Width: 8, Height: 16},
	DoubleClick: 400 * time.Millisecond,
	Tick:        100 * time.Millisecond,
}

// Application represents the interactive terminal desktop.
//
// The desktop, its window manager and the hosted applications are driven by
// a single event loop goroutine. Code outside of the loop must use Post or
// PostWait to touch them.
type Application struct {
	cell         vdesk.Size                      //
	contents     map[vdesk.WindowID]apps.Content //
	desktop      *vdesk.Desktop                  //
	doubleClick  time.Duration                   //
	mu           sync.Mutex                      //
	onKey        *onKeyHandlerList               //
	onceFinalize sync.Once                       //
	onceWait     sync.Once                       //
	pointer      pointer                         //
	quit         chan struct{}                   // Closed by Finalize.
	screen       tcell.Screen                    //
	size         vdesk.Size                      // In cells.
	terminated   bool                            // Exit called.
	theme        *Theme                          //
	wait         chan error                      //
}

// NewApplication returns a newly created Application showing d on the
// terminal, or an error, if any.
//
//	func main() {
//		app, err := tui.NewApplication(desktop, tui.DefaultTheme(), tui.DefaultOptions)
//		if err != nil {
//			glog.Fatal(err)
//		}
//
//		defer app.Finalize()
//
//		if err := app.Wait(); err != nil {
//			glog.Error(err)
//		}
//	}
func NewApplication(d *vdesk.Desktop, theme *Theme, opts Options) (*Application, error) {
	return newApplication(nil, d, theme, opts)
}

func newApplication(screen tcell.Screen, d *vdesk.Desktop, t *Theme, opts Options) (*Application, error) {
	encoding.Register()
	var err error
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	if opts.Cell.IsZero() {
		opts.Cell = DefaultOptions.Cell
	}
	theme := *t
	a := &Application{
		cell:        opts.Cell,
		contents:    map[vdesk.WindowID]apps.Content{},
		desktop:     d,
		doubleClick: opts.DoubleClick,
		quit:        make(chan struct{}),
		screen:      screen,
		theme:       &theme,
		wait:        make(chan error, 1),
	}
	a.pointer.pos = vdesk.Position{X: -1, Y: -1}
	w, h := screen.Size()
	a.setSize(vdesk.Size{Width: w, Height: h})
	a.OnKey(a.onKeyHandler, nil)
	d.Manager().OnChange(a.onChangeHandler, nil)
	a.sync(d.Manager().Windows())
	screen.EnableMouse()
	go a.handleEvents()
	if opts.Tick > 0 {
		go a.ticker(opts.Tick)
	}
	return a, nil
}

func (a *Application) handleEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case *tcell.EventResize:
			w, h := e.Size()
			a.desktop.PointerCancel()
			a.setSize(vdesk.Size{Width: w, Height: h})
			a.screen.Sync()
		case *tcell.EventKey:
			a.onKey.handle(a, e.Key(), e.Modifiers(), e.Rune())
		case *tcell.EventMouse:
			a.mouse(e)
		case *eventFunc:
			e.f()
			e.dispose()
		default:
			glog.V(2).Infof("ignored event %T", e)
			continue
		}

		a.paint()
	}
}

func (a *Application) ticker(d time.Duration) {
	t := time.NewTicker(d)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			a.Post(func() { a.tick(d) })
		case <-a.quit:
			return
		}
	}
}

// tick advances the clocks of the desktop and of every application.
func (a *Application) tick(d time.Duration) {
	a.desktop.Power().Tick(d)
	for _, c := range a.contents {
		c.Tick(d)
	}
}

func (a *Application) onChangeHandler(m *vdesk.Manager, prev vdesk.OnChangeHandler, windows []vdesk.WindowRecord) {
	if prev != nil {
		prev(m, nil, windows)
	}

	a.sync(windows)
}

// sync mounts an application for every new window and drops the
// applications of closed ones.
func (a *Application) sync(windows []vdesk.WindowRecord) {
	live := make(map[vdesk.WindowID]bool, len(windows))
	for _, r := range windows {
		live[r.ID] = true
		if a.contents[r.ID] == nil {
			a.contents[r.ID] = apps.New(r.Kind, a.cell)
		}
	}
	for id := range a.contents {
		if !live[id] {
			delete(a.contents, id)
		}
	}
}

func (a *Application) onKeyHandler(_ *Application, prev OnKeyHandler, key tcell.Key, mod tcell.ModMask, r rune) bool {
	if prev != nil && prev(a, nil, key, mod, r) {
		return true
	}

	switch key {
	case tcell.KeyCtrlQ:
		a.Exit(nil)
		return true
	case tcell.KeyCtrlW:
		if w, ok := a.desktop.Manager().Active(); ok {
			a.desktop.Manager().Close(w.ID)
		}
		return true
	}

	return a.contentKey(key, r)
}

// contentKey forwards a key to the application of the active window.
func (a *Application) contentKey(key tcell.Key, r rune) bool {
	w, ok := a.desktop.Manager().Active()
	if !ok || !w.Visible() {
		return false
	}

	if c := a.contents[w.ID]; c != nil {
		return c.Key(key, r)
	}

	return false
}

func (a *Application) setSize(s vdesk.Size) {
	a.size = s
	a.desktop.SetSize(vdesk.Size{Width: s.Width * a.cell.Width, Height: s.Height * a.cell.Height})
}

// pixel returns the layout pixel at the center of cell.
func (a *Application) pixel(cell vdesk.Position) vdesk.Position {
	return vdesk.Position{
		X: cell.X*a.cell.Width + a.cell.Width/2,
		Y: cell.Y*a.cell.Height + a.cell.Height/2,
	}
}

// cells returns the cells whose centers lie in r.
func (a *Application) cells(r vdesk.Rectangle) vdesk.Rectangle {
	cw, ch := a.cell.Width, a.cell.Height
	x0 := ceilDiv(r.X-cw/2, cw)
	y0 := ceilDiv(r.Y-ch/2, ch)
	x1 := ceilDiv(r.X+r.Width-cw/2, cw)
	y1 := ceilDiv(r.Y+r.Height-ch/2, ch)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return vdesk.Rect(x0, y0, x1-x0, y1-y0)
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// ----------------------------------------------------------------------------

// Content returns the application hosted in the window id, if any.
func (a *Application) Content(id vdesk.WindowID) apps.Content { return a.contents[id] }

// Desktop returns the desktop a shows.
func (a *Application) Desktop() *vdesk.Desktop { return a.desktop }

// Exit terminates the interactive terminal application and returns err from
// Wait(). Calling this method more than once will panic.
func (a *Application) Exit(err error) {
	a.mu.Lock()
	if a.terminated {
		a.mu.Unlock()
		panic("Application.Exit called more than once")
	}

	a.terminated = true
	a.wait <- err
	a.mu.Unlock()
}

// Finalize should be called when main exits to restore the normal terminal
// state. Calling it more than once has no effect.
func (a *Application) Finalize() {
	a.onceFinalize.Do(func() {
		close(a.quit)
		a.screen.Fini()
	})
}

// OnKey sets a key event handler. When the event handler is removed, finalize
// is called, if not nil.
func (a *Application) OnKey(h OnKeyHandler, finalize func()) {
	addOnKeyHandler(a, &a.onKey, h, finalize)
}

// Post puts f in the event queue, if the queue is not full, and executes it on
// dequeuing the event.
func (a *Application) Post(f func()) { a.screen.PostEvent(newEventFunc(f)) }

// PostWait puts f in the event queue and executes it on dequeuing the event.
func (a *Application) PostWait(f func()) { a.screen.PostEventWait(newEventFunc(f)) }

// RemoveOnKey undoes the most recent OnKey call. The function will panic if
// there is no handler set.
func (a *Application) RemoveOnKey() { removeOnKeyHandler(&a.onKey) }

// Size returns the size of the terminal in cells.
func (a *Application) Size() vdesk.Size { return a.size }

// Sync updates every character cell of the application screen.
func (a *Application) Sync() { a.screen.Sync() }

// Wait blocks until the interactive terminal application terminates.
//
// Calling this method more than once will panic.
func (a *Application) Wait() error {
	done := false
	var err error
	a.onceWait.Do(func() {
		err = <-a.wait
		done = true
	})
	if !done {
		panic("Application.Wait called more than once")
	}

	return err
}
