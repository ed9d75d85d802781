// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"sync"

	"github.com/golang/glog"
)

const (
	// FirstZ is the stacking key of the first window a Manager opens.
	FirstZ = 1000

	cascadeStep  = 20
	cascadeRange = 200
)

var (
	// MinSize is the smallest size a window can be given.
	MinSize = Size{100, 100}

	cascadeOrigin = Position{100, 50}
)

// Manager opens, closes, focuses and mutates windows. It is the only writer
// of its window Store and owns the id and stacking counters, so independent
// managers never share state.
//
// The store and counters of a Manager are guarded by a mutex, but change
// notifications are delivered after it is released, so mutations are expected
// to come from a single goroutine, the event loop of the program. Change
// handlers run on the calling goroutine after the mutation is complete and
// may call back into the Manager.
type Manager struct {
	mu       sync.Mutex           //
	nextID   WindowID             //
	nextZ    int                  //
	onChange *onChangeHandlerList //
	store    Store                //
}

// NewManager returns a Manager with no windows.
func NewManager() *Manager {
	return &Manager{
		nextID: 1,
		nextZ:  FirstZ,
	}
}

// cascade returns the initial position of the window with id. Successive
// windows step down and right, wrapping within cascadeRange.
func cascade(id WindowID) Position {
	off := int(id) * cascadeStep % cascadeRange
	return cascadeOrigin.Add(Position{off, off})
}

func (m *Manager) changed(windows []WindowRecord) {
	m.mu.Lock()
	l := m.onChange
	m.mu.Unlock()
	l.handle(m, windows)
}

// Open creates an active window of kind k on top of all others and returns
// its id. Kinds without a defaults entry get a generic window.
func (m *Manager) Open(k Kind) WindowID {
	d := k.Defaults()
	if d == fallbackDefaults {
		glog.Warningf("open: no defaults for %v, using generic window", k)
	}

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	r := WindowRecord{
		Rectangle: Rectangle{cascade(id), d.Size},
		ID:        id,
		Kind:      k,
		Title:     d.Title,
		Active:    true,
		Z:         m.nextZ,
	}
	m.nextZ++
	for i := range m.store.records {
		m.store.records[i].Active = false
	}
	m.store.append(r)
	windows := m.store.Windows()
	m.mu.Unlock()

	glog.V(2).Infof("open %v", r)
	m.changed(windows)
	return id
}

// Close removes the window with id. Closing the active window leaves no
// window active.
func (m *Manager) Close(id WindowID) {
	m.mu.Lock()
	ok := m.store.remove(id)
	windows := m.store.Windows()
	m.mu.Unlock()
	if !ok {
		glog.V(1).Infof("close %v: no such window", id)
		return
	}

	glog.V(2).Infof("close %v", id)
	m.changed(windows)
}

// CloseAll removes every window.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	n := m.store.Len()
	m.store.records = nil
	m.mu.Unlock()
	if n != 0 {
		m.changed(nil)
	}
}

// Focus makes the window with id the only active window and brings it in
// front of all others.
func (m *Manager) Focus(id WindowID) {
	m.mu.Lock()
	i := m.store.index(id)
	if i < 0 {
		m.mu.Unlock()
		glog.V(1).Infof("focus %v: no such window", id)
		return
	}

	m.focus(i)
	windows := m.store.Windows()
	m.mu.Unlock()
	m.changed(windows)
}

// focus must be called with m.mu held.
func (m *Manager) focus(i int) {
	for j := range m.store.records {
		m.store.records[j].Active = j == i
	}
	m.store.records[i].Z = m.nextZ
	m.nextZ++
}

// Update merges u into the window with id. Sizes below MinSize are raised to
// it before they are stored.
func (m *Manager) Update(id WindowID, u Update) {
	m.mu.Lock()
	i := m.store.index(id)
	if i < 0 {
		m.mu.Unlock()
		glog.V(1).Infof("update %v: no such window", id)
		return
	}

	u.apply(&m.store.records[i], MinSize)
	windows := m.store.Windows()
	m.mu.Unlock()
	m.changed(windows)
}

// Restore un-minimizes the window with id and focuses it.
func (m *Manager) Restore(id WindowID) {
	m.mu.Lock()
	i := m.store.index(id)
	if i < 0 {
		m.mu.Unlock()
		glog.V(1).Infof("restore %v: no such window", id)
		return
	}

	m.store.records[i].Minimized = false
	m.focus(i)
	windows := m.store.Windows()
	m.mu.Unlock()
	m.changed(windows)
}

// Active returns the active window, if any.
func (m *Manager) Active() (WindowRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Active()
}

// Len returns the number of windows, minimized ones included.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Len()
}

// Stacked returns all windows ordered back to front.
func (m *Manager) Stacked() []WindowRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Stacked()
}

// Window returns the window with id.
func (m *Manager) Window(id WindowID) (WindowRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Window(id)
}

// Windows returns all windows in creation order.
func (m *Manager) Windows() []WindowRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Windows()
}

// OnChange sets a handler invoked after every effective mutation. When the
// handler is removed, finalize is called, if not nil.
func (m *Manager) OnChange(h OnChangeHandler, finalize func()) {
	m.mu.Lock()
	addOnChangeHandler(m, &m.onChange, h, finalize)
	m.mu.Unlock()
}

// RemoveOnChange undoes the most recent OnChange call. The function will
// panic if there is no handler set.
func (m *Manager) RemoveOnChange() {
	m.mu.Lock()
	removeOnChangeHandler(&m.onChange)
	m.mu.Unlock()
}
