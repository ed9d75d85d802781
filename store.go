// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"fmt"
	"sort"
)

// WindowID identifies a window for the lifetime of its Manager. The zero
// value identifies no window.
type WindowID int

func (id WindowID) String() string { return fmt.Sprintf("window-%d", int(id)) }

// WindowRecord is the state of one open application window.
type WindowRecord struct {
	// Geometry in desktop coordinates.
	Rectangle

	ID        WindowID //
	Kind      Kind     // Never changes.
	Title     string   //
	Minimized bool     // Kept in the store but not shown.
	Maximized bool     //
	Active    bool     // At most one record is active.
	Z         int      // Stacking key, higher is in front.
}

func (r WindowRecord) String() string {
	return fmt.Sprintf("%v %v %q %v z=%d", r.ID, r.Kind, r.Title, r.Rectangle, r.Z)
}

// Visible reports whether the record is rendered.
func (r WindowRecord) Visible() bool { return !r.Minimized }

// Update is a partial update of a WindowRecord. Nil fields are left
// unchanged.
type Update struct {
	X, Y          *int
	Width, Height *int
	Minimized     *bool
	Maximized     *bool
}

// Move returns an Update setting the position to p.
func Move(p Position) Update { return Update{X: &p.X, Y: &p.Y} }

// Resize returns an Update setting the size to s.
func Resize(s Size) Update { return Update{Width: &s.Width, Height: &s.Height} }

// SetMinimized returns an Update setting the minimized flag.
func SetMinimized(v bool) Update { return Update{Minimized: &v} }

// SetMaximized returns an Update setting the maximized flag.
func SetMaximized(v bool) Update { return Update{Maximized: &v} }

// IsZero reports whether u changes nothing.
func (u Update) IsZero() bool {
	return u.X == nil && u.Y == nil && u.Width == nil && u.Height == nil && u.Minimized == nil && u.Maximized == nil
}

// Merge returns u overlaid with the non-nil fields of v.
func (u Update) Merge(v Update) Update {
	if v.X != nil {
		u.X = v.X
	}
	if v.Y != nil {
		u.Y = v.Y
	}
	if v.Width != nil {
		u.Width = v.Width
	}
	if v.Height != nil {
		u.Height = v.Height
	}
	if v.Minimized != nil {
		u.Minimized = v.Minimized
	}
	if v.Maximized != nil {
		u.Maximized = v.Maximized
	}
	return u
}

// apply merges u into r, clamping the size to min.
func (u Update) apply(r *WindowRecord, min Size) {
	if u.X != nil {
		r.X = *u.X
	}
	if u.Y != nil {
		r.Y = *u.Y
	}
	if u.Width != nil {
		r.Width = *u.Width
	}
	if u.Height != nil {
		r.Height = *u.Height
	}
	if u.Width != nil || u.Height != nil {
		r.Size = r.Size.Clamp(min)
	}
	if u.Minimized != nil {
		r.Minimized = *u.Minimized
	}
	if u.Maximized != nil {
		r.Maximized = *u.Maximized
	}
}

// Store is the ordered collection of window records. Readers get copies;
// only a Manager writes.
type Store struct {
	records []WindowRecord // In creation order.
}

func (s *Store) index(id WindowID) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) append(r WindowRecord) { s.records = append(s.records, r) }

func (s *Store) remove(id WindowID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	copy(s.records[i:], s.records[i+1:])
	s.records[len(s.records)-1] = WindowRecord{}
	s.records = s.records[:len(s.records)-1]
	return true
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// Windows returns a copy of all records in creation order.
func (s *Store) Windows() []WindowRecord {
	if len(s.records) == 0 {
		return nil
	}

	return append([]WindowRecord(nil), s.records...)
}

// Window returns the record with id.
func (s *Store) Window(id WindowID) (WindowRecord, bool) {
	if i := s.index(id); i >= 0 {
		return s.records[i], true
	}

	return WindowRecord{}, false
}

// Active returns the active record, if any.
func (s *Store) Active() (WindowRecord, bool) {
	for _, r := range s.records {
		if r.Active {
			return r, true
		}
	}
	return WindowRecord{}, false
}

// Stacked returns a copy of all records ordered back to front.
func (s *Store) Stacked() []WindowRecord {
	r := s.Windows()
	sort.Slice(r, func(i, j int) bool { return r[i].Z < r[j].Z })
	return r
}
