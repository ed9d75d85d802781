// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

// Region is an area that can be hit-tested.
type Region interface {
	Has(p Position) bool
}

var (
	_ Region = Rectangle{}
	_ Region = Circle{}
	_ Region = Ring{}
	_ Region = Regions(nil)
)

// Circle is a disc of Radius around Center. Points on the boundary are inside.
type Circle struct {
	Center Position
	Radius int
}

// Has returns whether c contains p.
func (c Circle) Has(p Position) bool { return dist2(c.Center, p) <= c.Radius*c.Radius }

// Ring is the annulus between Inner and Outer around Center, both boundaries
// included.
type Ring struct {
	Center       Position
	Inner, Outer int
}

// Has returns whether r contains p.
func (r Ring) Has(p Position) bool {
	d := dist2(r.Center, p)
	return d >= r.Inner*r.Inner && d <= r.Outer*r.Outer
}

// Regions is a union of regions.
type Regions []Region

// Has returns whether any member of rs contains p.
func (rs Regions) Has(p Position) bool {
	for _, r := range rs {
		if r.Has(p) {
			return true
		}
	}
	return false
}

// HitMap describes the draggable surface of a chromeless window: a point is
// draggable when it is in Drag and not in Exclude.
type HitMap struct {
	Drag    Regions
	Exclude Regions
}

// Draggable reports whether a pointer-down at p may start a drag.
func (h HitMap) Draggable(p Position) bool { return h.Drag.Has(p) && !h.Exclude.Has(p) }

func dist2(a, b Position) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
