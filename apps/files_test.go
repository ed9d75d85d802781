// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apps

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/google/go-cmp/cmp"
)

func names(b *FileBrowser) []string {
	var r []string
	for _, v := range b.Entries() {
		r = append(r, v.Name)
	}
	return r
}

func TestFilesSort(t *testing.T) {
	b := NewFileBrowser(cell)
	want := []string{"AI/ML Projects", "Design", "Mobile Apps", "Open Source", "Research", "Web Development"}
	if diff := cmp.Diff(want, names(b)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	b.Click(at(20, filesHeader+1))
	if g, e := b.Selected(), 1; g != e {
		t.Fatalf("selected %d, expected %d", g, e)
	}

	b.Click(at(20, 1))
	if k, desc := b.Sort(); k != ByName || !desc {
		t.Fatalf("sort %v, descending %v", k, desc)
	}

	if g, e := names(b)[0], "Web Development"; g != e {
		t.Fatalf("first %q, expected %q", g, e)
	}

	if g, e := b.Entries()[b.Selected()].Name, "Design"; g != e {
		t.Fatalf("selection moved to %q", g)
	}

	b.Click(at(filesSidebar+30, 1))
	if k, desc := b.Sort(); k != ByKind || desc {
		t.Fatalf("sort %v, descending %v", k, desc)
	}

	if diff := cmp.Diff(want, names(b)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFilesNavigation(t *testing.T) {
	b := NewFileBrowser(cell)
	b.Click(at(20, filesHeader+1))
	b.Click(at(20, filesHeader+1))
	if g, e := b.Location(), "Design"; g != e {
		t.Fatalf("location %q, expected %q", g, e)
	}

	if len(b.Entries()) != 0 || b.Selected() != -1 {
		t.Fatalf("entries %v, selected %d", names(b), b.Selected())
	}

	b.Click(at(1, 0))
	if g, e := b.Location(), "Projects"; g != e {
		t.Fatalf("location %q, expected %q", g, e)
	}

	b.Click(at(1, 0))
	if g, e := b.Location(), "Projects"; g != e {
		t.Fatalf("back past the start: %q", g)
	}

	b.Click(at(2, filesHeader+2))
	if g, e := b.Location(), "Downloads"; g != e {
		t.Fatalf("location %q, expected %q", g, e)
	}

	b.Click(at(2, filesHeader))
	if g, e := b.Location(), "Projects"; g != e {
		t.Fatalf("location %q, expected %q", g, e)
	}

	b.Key(tcell.KeyBackspace2, 0)
	if g, e := b.Location(), "Downloads"; g != e {
		t.Fatalf("location %q, expected %q", g, e)
	}
}

func TestFilesKeys(t *testing.T) {
	b := NewFileBrowser(cell)
	for i := 0; i < 10; i++ {
		b.Key(tcell.KeyDown, 0)
	}
	if g, e := b.Selected(), len(ProjectFolders)-1; g != e {
		t.Fatalf("selected %d, expected %d", g, e)
	}

	b.Key(tcell.KeyUp, 0)
	b.Key(tcell.KeyEnter, 0)
	if g, e := b.Location(), "Research"; g != e {
		t.Fatalf("location %q, expected %q", g, e)
	}

	if b.Key(tcell.KeyRune, 'a') {
		t.Fatal("rune consumed")
	}
}

func TestFilesPaint(t *testing.T) {
	b := NewFileBrowser(cell)
	c := newTestCanvas(100, 36)
	b.Paint(c)
	s := c.String()
	for _, v := range append([]string{"Projects", "Favorites", "Name ▲", "Kind", "Downloads"}, names(b)...) {
		if !strings.Contains(s, v) {
			t.Errorf("missing %q in\n%s", v, s)
		}
	}

	b.Go("Downloads")
	c = newTestCanvas(100, 36)
	b.Paint(c)
	if s := c.String(); !strings.Contains(s, "Folder is empty") {
		t.Errorf("missing empty folder text in\n%s", s)
	}
}
