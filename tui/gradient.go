// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"regexp"
	"strings"

	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"
)

var hexColor = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)

// gradient is a two stop linear gradient.
type gradient struct {
	from, to   colorful.Color
	horizontal bool
}

// parseGradient parses wallpapers of the form
//
//	linear-gradient(to bottom, #1e3c72, #2a5298)
//
// using the first two colors. A single color is a solid fill.
func parseGradient(s string) (gradient, bool) {
	stops := hexColor.FindAllString(s, 2)
	if len(stops) == 0 {
		return gradient{}, false
	}

	from, err := colorful.Hex(stops[0])
	if err != nil {
		return gradient{}, false
	}

	to := from
	if len(stops) > 1 {
		if to, err = colorful.Hex(stops[1]); err != nil {
			return gradient{}, false
		}
	}

	return gradient{from, to, strings.Contains(s, "to right")}, true
}

// at returns the color at position i of n steps along the gradient.
func (g gradient) at(i, n int) tcell.Color {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	r, gr, b := g.from.BlendRgb(g.to, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(gr), int32(b))
}
