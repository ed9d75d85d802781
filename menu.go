// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

// MenuItem is one entry of a Menu. An item with an empty Label is a
// divider.
type MenuItem struct {
	Label  string
	Action func()
}

// Menu is a transient list of items shown at a desktop position.
type Menu struct {
	Position
	Items []MenuItem
	Width int // In pixels.
	Row   int // Item height in pixels.
}

// Area returns the desktop area of m.
func (m *Menu) Area() Rectangle {
	return Rectangle{m.Position, Size{m.Width, m.Row * len(m.Items)}}
}

// ItemAt returns the index of the item at the desktop position p. Dividers
// are never returned.
func (m *Menu) ItemAt(p Position) (int, bool) {
	if !m.Area().Has(p) {
		return 0, false
	}

	i := (p.Y - m.Y) / m.Row
	if m.Items[i].Label == "" {
		return 0, false
	}

	return i, true
}

// Activate runs the action of the item at p and reports whether there was
// one.
func (m *Menu) Activate(p Position) bool {
	i, ok := m.ItemAt(p)
	if !ok {
		return false
	}

	if a := m.Items[i].Action; a != nil {
		a()
	}
	return true
}
