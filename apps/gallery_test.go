// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apps

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell"
)

func TestPlaceholderImages(t *testing.T) {
	im := PlaceholderImages()
	if g, e := len(im), GalleryImages; g != e {
		t.Fatalf("%d images, expected %d", g, e)
	}

	if g, e := im[0], (Image{"midjourney-001.png", "1.0MB"}); g != e {
		t.Fatalf("%+v, expected %+v", g, e)
	}

	if g, e := im[23].Name, "midjourney-024.png"; g != e {
		t.Fatalf("%q, expected %q", g, e)
	}
}

func TestGallerySearch(t *testing.T) {
	v := NewImageGallery(cell)
	for _, c := range []struct {
		q string
		n int
	}{
		{"", 24},
		{"00", 9},
		{"MIDJOURNEY-02", 5},
		{"png", 24},
		{"zzz", 0},
	} {
		v.SetSearch(c.q)
		if n := len(v.Shown()); n != c.n {
			t.Errorf("%q: %d images, expected %d", c.q, n, c.n)
		}
	}

	v.SetSearch("")
	v.Key(tcell.KeyRune, '0')
	v.Key(tcell.KeyRune, '2')
	if g, e := v.Search(), "02"; g != e {
		t.Fatalf("search %q, expected %q", g, e)
	}

	v.Key(tcell.KeyBackspace2, 0)
	if g, e := v.Search(), "0"; g != e {
		t.Fatalf("search %q, expected %q", g, e)
	}

	v.SetSearch("")
	if v.Key(tcell.KeyBackspace2, 0) {
		t.Fatal("backspace on an empty search consumed")
	}
}

func TestGalleryPreview(t *testing.T) {
	v := NewImageGallery(cell)
	c := newTestCanvas(100, 15)
	v.Paint(c)
	v.Click(at(30, galleryHeader+galleryTile))
	im, ok := v.Preview()
	if !ok || im.Name != "midjourney-006.png" {
		t.Fatalf("preview %+v %v", im, ok)
	}

	c = newTestCanvas(100, 15)
	v.Paint(c)
	if s := c.String(); !strings.Contains(s, "midjourney-006.png") || !strings.Contains(s, im.Size) {
		t.Fatalf("preview not painted\n%s", s)
	}

	v.Click(at(0, 0))
	if _, ok := v.Preview(); ok {
		t.Fatal("click kept the preview")
	}

	v.Click(at(0, 0))
	if _, ok := v.Preview(); ok {
		t.Fatal("header click opened a preview")
	}

	v.OpenShown(0)
	if !v.Key(tcell.KeyEscape, 0) {
		t.Fatal("escape not consumed")
	}

	if _, ok := v.Preview(); ok || v.Key(tcell.KeyEscape, 0) {
		t.Fatal("escape")
	}

	v.SetSearch("-02")
	v.OpenShown(4)
	if im, _ := v.Preview(); im.Name != "midjourney-024.png" {
		t.Fatalf("preview %+v", im)
	}

	v.ClosePreview()
	v.OpenShown(5)
	if _, ok := v.Preview(); ok {
		t.Fatal("opened an image not shown")
	}
}

func TestGalleryScroll(t *testing.T) {
	v := NewImageGallery(cell)
	v.Paint(newTestCanvas(100, 15))
	v.Key(tcell.KeyPgDn, 0)
	if g, e := v.Top(), 3; g != e {
		t.Fatalf("top %d, expected %d", g, e)
	}

	v.ScrollRows(10)
	if g, e := v.Top(), 3; g != e {
		t.Fatalf("top %d, expected %d", g, e)
	}

	v.Click(at(0, galleryHeader))
	if im, _ := v.Preview(); im.Name != "midjourney-013.png" {
		t.Fatalf("preview %+v", im)
	}

	v.ClosePreview()
	v.Key(tcell.KeyUp, 0)
	v.Key(tcell.KeyPgUp, 0)
	if g, e := v.Top(), 0; g != e {
		t.Fatalf("top %d, expected %d", g, e)
	}

	v.Key(tcell.KeyDown, 0)
	v.SetSearch("1")
	if g, e := v.Top(), 0; g != e {
		t.Fatalf("search kept top %d", g)
	}
}

func TestGalleryPaint(t *testing.T) {
	v := NewImageGallery(cell)
	c := newTestCanvas(100, 40)
	v.Paint(c)
	s := c.String()
	for _, w := range []string{"Midjourney Gallery", "24 images", "Search images...", "midjourney-001.png", "midjourney-024.png"} {
		if !strings.Contains(s, w) {
			t.Errorf("missing %q in\n%s", w, s)
		}
	}

	v.SetSearch("nothing")
	v.Tick(time.Second)
	c = newTestCanvas(100, 40)
	v.Paint(c)
	s = c.String()
	for _, w := range []string{"0 images", "nothing", "No images found"} {
		if !strings.Contains(s, w) {
			t.Errorf("missing %q in\n%s", w, s)
		}
	}
}
