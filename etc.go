// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"fmt"

	"github.com/cznic/mathutil"
)

// Position represents 2D coordinates in layout pixels.
type Position struct {
	X, Y int
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position { return Position{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Position) Sub(q Position) Position { return Position{p.X - q.X, p.Y - q.Y} }

// In returns whether p is inside r.
func (p Position) In(r Rectangle) bool { return r.Has(p) }

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Rectangle represents a 2D area.
type Rectangle struct {
	Position
	Size
}

// NewRectangle returns a Rectangle from 4 coordinates.
func NewRectangle(x1, y1, x2, y2 int) Rectangle {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rectangle{Position{x1, y1}, Size{x2 - x1 + 1, y2 - y1 + 1}}
}

// Rect returns a Rectangle at x, y of size w, h.
func Rect(x, y, w, h int) Rectangle { return Rectangle{Position{x, y}, Size{w, h}} }

// Clip sets r to the intersection of r and s and returns a boolean value indicating
// whether the result is of non zero size.
func (r *Rectangle) Clip(s Rectangle) bool {
	x1 := mathutil.Max(r.X, s.X)
	x2 := mathutil.Min(r.X+r.Width, s.X+s.Width)
	if x1 >= x2 {
		return false
	}

	y1 := mathutil.Max(r.Y, s.Y)
	y2 := mathutil.Min(r.Y+r.Height, s.Y+s.Height)
	if y1 >= y2 {
		return false
	}

	*r = Rect(x1, y1, x2-x1, y2-y1)
	return true
}

// Join sets r to the smallest rectangle containing both r and s.
func (r *Rectangle) Join(s Rectangle) {
	if s.IsZero() {
		return
	}

	if r.IsZero() {
		*r = s
		return
	}

	x2 := mathutil.Max(r.X+r.Width, s.X+s.Width)
	y2 := mathutil.Max(r.Y+r.Height, s.Y+s.Height)
	r.X = mathutil.Min(r.X, s.X)
	r.Width = x2 - r.X
	r.Y = mathutil.Min(r.Y, s.Y)
	r.Height = y2 - r.Y
}

// Has returns whether r contains p.
func (r Rectangle) Has(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Translate returns r moved by p.
func (r Rectangle) Translate(p Position) Rectangle {
	r.Position = r.Position.Add(p)
	return r
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%v %dx%d", r.Position, r.Width, r.Height)
}

// Size represents 2D dimensions.
type Size struct {
	Width, Height int
}

// IsZero returns whether s.Width or s.Height is zero.
func (s Size) IsZero() bool { return s.Width <= 0 || s.Height <= 0 }

// Clamp returns s with each dimension raised to at least min.
func (s Size) Clamp(min Size) Size {
	return Size{mathutil.Max(s.Width, min.Width), mathutil.Max(s.Height, min.Height)}
}
