// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apps

import (
	"strings"
	"testing"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/gdamore/tcell"
)

func TestPhotoViewer(t *testing.T) {
	v := NewPhotoViewer(cell)
	c := newTestCanvas(80, 28)
	v.Paint(c)
	s := c.String()
	for _, w := range []string{"Photos coming soon!", "Camera Preview", "Take Photo"} {
		if !strings.Contains(s, w) {
			t.Errorf("missing %q in\n%s", w, s)
		}
	}

	b := v.ShutterArea(c.Size())
	if g, e := b, vdesk.Rect(33, 25, 14, 1); g != e {
		t.Fatalf("shutter %v, expected %v", g, e)
	}

	v.Click(at(b.X, b.Y))
	v.Click(at(b.X+b.Width-1, b.Y))
	v.Click(at(b.X+b.Width, b.Y))
	v.Click(at(b.X, b.Y-1))
	if g, e := v.Shots(), 2; g != e {
		t.Fatalf("%d shots, expected %d", g, e)
	}

	if !v.Key(tcell.KeyEnter, 0) || !v.Key(tcell.KeyRune, ' ') || v.Key(tcell.KeyRune, 'p') {
		t.Fatal("keys")
	}

	if g, e := v.Shots(), 4; g != e {
		t.Fatalf("%d shots, expected %d", g, e)
	}

	c = newTestCanvas(80, 28)
	v.Paint(c)
	if s := c.String(); !strings.Contains(s, "4 photos taken") {
		t.Fatalf("missing count in\n%s", s)
	}
}

func TestPhotoFlash(t *testing.T) {
	v := NewPhotoViewer(cell)
	v.TakePhoto()
	v.Tick(shutterFlash / 2)
	if v.flash <= 0 {
		t.Fatal("flash ended early")
	}

	v.Tick(shutterFlash)
	if g, e := v.flash, time.Duration(0); g != e {
		t.Fatalf("flash %v, expected %v", g, e)
	}
}
