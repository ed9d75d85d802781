// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func activeCount(windows []WindowRecord) (n int, id WindowID) {
	for _, r := range windows {
		if r.Active {
			n++
			id = r.ID
		}
	}
	return n, id
}

func TestOpenDefaults(t *testing.T) {
	m := NewManager()
	id := m.Open(FileBrowser)
	if id != 1 {
		t.Fatalf("first id %v", id)
	}

	r, ok := m.Window(id)
	if !ok {
		t.Fatal("window not found")
	}

	want := WindowRecord{
		Rectangle: Rect(120, 70, 800, 600),
		ID:        1,
		Kind:      FileBrowser,
		Title:     "Projects",
		Active:    true,
		Z:         FirstZ,
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenFallback(t *testing.T) {
	m := NewManager()
	id := m.Open(Kind(42))
	r, _ := m.Window(id)
	if g, e := r.Title, "Window"; g != e {
		t.Fatalf("title %q, expected %q", g, e)
	}

	if g, e := r.Size, (Size{600, 400}); g != e {
		t.Fatalf("size %v, expected %v", g, e)
	}
}

func TestCascade(t *testing.T) {
	m := NewManager()
	for i := 1; i <= 12; i++ {
		r, _ := m.Window(m.Open(PhotoViewer))
		off := i * 20 % 200
		if g, e := r.Position, (Position{100 + off, 50 + off}); g != e {
			t.Fatalf("window %d at %v, expected %v", i, g, e)
		}
	}
}

func TestOpenActivatesNewest(t *testing.T) {
	m := NewManager()
	for i := 0; i < 20; i++ {
		id := m.Open(Kinds[i%len(Kinds)])
		n, active := activeCount(m.Windows())
		if n != 1 || active != id {
			t.Fatalf("after open %v: %d active, active %v", id, n, active)
		}
	}
}

func TestFocusRaises(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := NewManager()
	var ids []WindowID
	for i := 0; i < 8; i++ {
		ids = append(ids, m.Open(Kinds[i%len(Kinds)]))
	}
	for i := 0; i < 100; i++ {
		id := ids[rng.Intn(len(ids))]
		m.Focus(id)
		windows := m.Windows()
		n, active := activeCount(windows)
		if n != 1 || active != id {
			t.Fatalf("after focus %v: %d active, active %v", id, n, active)
		}

		r, _ := m.Window(id)
		for _, v := range windows {
			if v.ID != id && v.Z >= r.Z {
				t.Fatalf("%v z=%d not below focused %v z=%d", v.ID, v.Z, id, r.Z)
			}
		}
	}
}

func TestZUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewManager()
	seen := map[int]bool{}
	note := func(id WindowID) {
		r, ok := m.Window(id)
		if !ok {
			t.Fatalf("%v missing", id)
		}

		if seen[r.Z] {
			t.Fatalf("z %d reused", r.Z)
		}
		seen[r.Z] = true
	}
	var ids []WindowID
	for i := 0; i < 200; i++ {
		if len(ids) == 0 || rng.Intn(3) == 0 {
			id := m.Open(Kinds[rng.Intn(len(Kinds))])
			ids = append(ids, id)
			note(id)
			continue
		}

		id := ids[rng.Intn(len(ids))]
		m.Focus(id)
		note(id)
	}
}

func TestCloseThenOperate(t *testing.T) {
	m := NewManager()
	a := m.Open(MusicPlayer)
	b := m.Open(ImageGallery)
	m.Close(b)
	before := m.Windows()
	m.Close(b)
	m.Focus(b)
	m.Update(b, Move(Position{1, 2}))
	m.Restore(b)
	if diff := cmp.Diff(before, m.Windows()); diff != "" {
		t.Fatalf("operations on closed window changed the store (-want +got):\n%s", diff)
	}

	if _, ok := m.Window(b); ok {
		t.Fatal("closed window still present")
	}

	if _, ok := m.Active(); ok {
		t.Fatal("closing the active window promoted another one")
	}

	if _, ok := m.Window(a); !ok {
		t.Fatal("other window removed")
	}
}

func TestFocusScenario(t *testing.T) {
	m := NewManager()
	music := m.Open(MusicPlayer)
	files := m.Open(FileBrowser)
	m.Focus(music)
	mr, _ := m.Window(music)
	fr, _ := m.Window(files)
	if fr.Active || !mr.Active {
		t.Fatalf("active: files %v, music %v", fr.Active, mr.Active)
	}

	if mr.Z <= fr.Z {
		t.Fatalf("music z=%d not above files z=%d", mr.Z, fr.Z)
	}
}

func TestReopenScenario(t *testing.T) {
	m := NewManager()
	w1 := m.Open(FileBrowser)
	m.Update(w1, Resize(Size{300, 200}))
	m.Close(w1)
	w2 := m.Open(FileBrowser)
	if w2 == w1 {
		t.Fatalf("id %v reused", w1)
	}

	r, _ := m.Window(w2)
	if g, e := r.Size, (Size{800, 600}); g != e {
		t.Fatalf("size %v, expected %v", g, e)
	}
}

func TestUpdateClampsSize(t *testing.T) {
	m := NewManager()
	id := m.Open(PhotoViewer)
	m.Update(id, Resize(Size{10, -5}))
	r, _ := m.Window(id)
	if g, e := r.Size, MinSize; g != e {
		t.Fatalf("size %v, expected %v", g, e)
	}

	w := 250
	m.Update(id, Update{Width: &w})
	r, _ = m.Window(id)
	if g, e := r.Size, (Size{250, 100}); g != e {
		t.Fatalf("size %v, expected %v", g, e)
	}
}

func TestUpdateMerge(t *testing.T) {
	m := NewManager()
	id := m.Open(PhotoViewer)
	before, _ := m.Window(id)
	m.Update(id, Move(Position{7, 9}).Merge(SetMinimized(true)))
	r, _ := m.Window(id)
	want := before
	want.Position = Position{7, 9}
	want.Minimized = true
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	if r.Visible() {
		t.Fatal("minimized window visible")
	}

	if !(Update{}).IsZero() || SetMaximized(false).IsZero() {
		t.Fatal("IsZero")
	}
}

func TestRestore(t *testing.T) {
	m := NewManager()
	a := m.Open(PhotoViewer)
	b := m.Open(FileBrowser)
	m.Update(a, SetMinimized(true))
	m.Restore(a)
	r, _ := m.Window(a)
	if r.Minimized || !r.Active {
		t.Fatalf("restored %+v", r)
	}

	s := m.Stacked()
	if s[len(s)-1].ID != a || s[0].ID != b {
		t.Fatalf("stacking %v", s)
	}
}

func TestCloseAll(t *testing.T) {
	m := NewManager()
	calls := 0
	m.OnChange(func(m *Manager, prev OnChangeHandler, windows []WindowRecord) {
		calls++
	}, nil)
	m.Open(PhotoViewer)
	m.Open(FileBrowser)
	m.CloseAll()
	if m.Len() != 0 {
		t.Fatalf("%d windows left", m.Len())
	}

	m.CloseAll()
	if g, e := calls, 3; g != e {
		t.Fatalf("%d change notifications, expected %d", g, e)
	}
}

func TestIndependentManagers(t *testing.T) {
	a := NewManager()
	b := NewManager()
	a.Open(MusicPlayer)
	a.Open(MusicPlayer)
	id := b.Open(MusicPlayer)
	r, _ := b.Window(id)
	if id != 1 || r.Z != FirstZ {
		t.Fatalf("second manager shares counters: %v", r)
	}
}

func TestOnChangeChain(t *testing.T) {
	m := NewManager()
	var log []string
	m.OnChange(func(m *Manager, prev OnChangeHandler, windows []WindowRecord) {
		log = append(log, "first")
	}, func() { log = append(log, "finalize first") })
	m.OnChange(func(m *Manager, prev OnChangeHandler, windows []WindowRecord) {
		if prev != nil {
			prev(m, nil, windows)
		}
		log = append(log, "second")
	}, nil)
	m.Open(PhotoViewer)
	m.RemoveOnChange()
	m.Open(PhotoViewer)
	m.RemoveOnChange()
	want := []string{"first", "second", "first", "finalize first"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestOnChangeReentrant(t *testing.T) {
	m := NewManager()
	m.OnChange(func(m *Manager, prev OnChangeHandler, windows []WindowRecord) {
		if len(windows) == 1 {
			m.Open(FileBrowser)
		}
	}, nil)
	m.Open(PhotoViewer)
	if g, e := m.Len(), 2; g != e {
		t.Fatalf("%d windows, expected %d", g, e)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		g, err := ParseKind(k.String())
		if err != nil || g != k {
			t.Fatalf("%v: %v %v", k, g, err)
		}
	}

	if _, err := ParseKind("Browser"); err == nil {
		t.Fatal("expected error")
	}
}
