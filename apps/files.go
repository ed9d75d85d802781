// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apps

import (
	"sort"
	"strings"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/gdamore/tcell"
)

// Folder is an entry of the file browser.
type Folder struct {
	Name  string
	Glyph string
	Kind  string
}

// ProjectFolders are the entries of the Projects location.
var ProjectFolders = []Folder{
	{"Web Development", "◈", "Folder"},
	{"Mobile Apps", "▯", "Folder"},
	{"Design", "✎", "Folder"},
	{"AI/ML Projects", "◎", "Folder"},
	{"Open Source", "◇", "Folder"},
	{"Research", "⌕", "Folder"},
}

// Favorites are the sidebar shortcuts of the file browser.
var Favorites = []string{"Home", "Desktop", "Downloads"}

// SortKey selects the column the file browser sorts by.
type SortKey int

// Values of SortKey.
const (
	ByName SortKey = iota
	ByKind
)

const (
	filesSidebar = 16 // Sidebar width in cells.
	filesHeader  = 2  // Toolbar and column header rows.
	filesRoot    = "Projects"
)

// FileBrowser lists folders of a location with a favorites sidebar.
type FileBrowser struct {
	cell       vdesk.Size //
	descending bool       //
	entries    []Folder   // Sorted.
	location   string     //
	selected   int        // Index into entries or -1.
	sortKey    SortKey    //
	trail      []string   // Locations to go back to.
}

// NewFileBrowser returns a FileBrowser showing the Projects location sorted
// by name.
func NewFileBrowser(cell vdesk.Size) *FileBrowser {
	b := &FileBrowser{
		cell:     cell,
		selected: -1,
	}
	b.show(filesRoot)
	return b
}

func (b *FileBrowser) show(loc string) {
	b.location = loc
	b.selected = -1
	b.entries = nil
	if loc == filesRoot {
		b.entries = append([]Folder(nil), ProjectFolders...)
	}
	b.sort()
}

// Location returns the name of the location shown.
func (b *FileBrowser) Location() string { return b.location }

// Entries returns the folders shown, in display order.
func (b *FileBrowser) Entries() []Folder { return b.entries }

// Selected returns the index of the selected entry or -1.
func (b *FileBrowser) Selected() int { return b.selected }

// Sort returns the sort column and direction.
func (b *FileBrowser) Sort() (SortKey, bool) { return b.sortKey, b.descending }

// SetSort sorts by key. Sorting again by the current key reverses the
// direction. The selection follows its entry.
func (b *FileBrowser) SetSort(key SortKey) {
	if key == b.sortKey {
		b.descending = !b.descending
	} else {
		b.sortKey = key
		b.descending = false
	}
	b.sort()
}

func (b *FileBrowser) sort() {
	var sel string
	if b.selected >= 0 {
		sel = b.entries[b.selected].Name
	}
	sort.SliceStable(b.entries, func(i, j int) bool {
		x, y := b.entries[i], b.entries[j]
		var c int
		if b.sortKey == ByKind {
			c = strings.Compare(x.Kind, y.Kind)
		}
		if c == 0 {
			c = strings.Compare(strings.ToLower(x.Name), strings.ToLower(y.Name))
		}
		if b.descending {
			return c > 0
		}
		return c < 0
	})
	if sel == "" {
		return
	}

	for i, v := range b.entries {
		if v.Name == sel {
			b.selected = i
		}
	}
}

// Open enters the selected folder.
func (b *FileBrowser) Open() {
	if b.selected < 0 {
		return
	}

	b.Go(b.entries[b.selected].Name)
}

// Go shows the location loc, remembering the current one for Back.
func (b *FileBrowser) Go(loc string) {
	if loc == b.location {
		return
	}

	b.trail = append(b.trail, b.location)
	b.show(loc)
}

// Back returns to the previous location.
func (b *FileBrowser) Back() {
	n := len(b.trail)
	if n == 0 {
		return
	}

	loc := b.trail[n-1]
	b.trail = b.trail[:n-1]
	b.show(loc)
}

// Click implements Content. Clicking the selected entry again opens it.
func (b *FileBrowser) Click(p vdesk.Position) {
	q := cellOf(p, b.cell)
	switch {
	case q.Y == 0:
		if q.X >= 0 && q.X < 3 {
			b.Back()
		}
	case q.X < filesSidebar:
		if i := q.Y - filesHeader; i >= 0 && i < len(Favorites) {
			loc := Favorites[i]
			if loc == "Home" {
				loc = filesRoot
			}
			b.Go(loc)
		}
	case q.Y == 1:
		if q.X < filesSidebar+24 {
			b.SetSort(ByName)
			break
		}

		b.SetSort(ByKind)
	default:
		i := q.Y - filesHeader
		if i < 0 || i >= len(b.entries) {
			b.selected = -1
			break
		}

		if i == b.selected {
			b.Open()
			break
		}

		b.selected = i
	}
}

// Key implements Content.
func (b *FileBrowser) Key(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyUp:
		if b.selected > 0 {
			b.selected--
		}
	case tcell.KeyDown:
		if b.selected < len(b.entries)-1 {
			b.selected++
		}
	case tcell.KeyEnter:
		b.Open()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.Back()
	default:
		return false
	}
	return true
}

// Tick implements Content.
func (b *FileBrowser) Tick(time.Duration) {}

var (
	filesStyle    = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	filesBar      = tcell.StyleDefault.Background(tcell.NewRGBColor(0xf3, 0xf4, 0xf6)).Foreground(tcell.ColorBlack)
	filesSide     = tcell.StyleDefault.Background(tcell.NewRGBColor(0xf9, 0xfa, 0xfb)).Foreground(tcell.ColorBlack)
	filesDim      = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(0x9c, 0xa3, 0xaf))
	filesSelected = tcell.StyleDefault.Background(tcell.NewRGBColor(0x3b, 0x82, 0xf6)).Foreground(tcell.ColorWhite)
)

// Paint implements Content.
func (b *FileBrowser) Paint(c Canvas) {
	sz := c.Size()
	Fill(c, vdesk.Rect(0, 0, sz.Width, sz.Height), ' ', filesStyle)
	Fill(c, vdesk.Rect(0, 0, sz.Width, 1), ' ', filesBar)
	back := filesBar
	if len(b.trail) == 0 {
		back = back.Foreground(tcell.NewRGBColor(0x99, 0x99, 0x99))
	}
	Print(c, 1, 0, 1, "‹", back)
	PrintCenter(c, 0, 0, sz.Width, b.location, filesBar.Bold(true))

	Fill(c, vdesk.Rect(0, 1, filesSidebar, sz.Height-1), ' ', filesSide)
	Print(c, 1, 1, filesSidebar-2, "Favorites", filesSide.Foreground(tcell.NewRGBColor(0x6b, 0x72, 0x80)).Bold(true))
	for i, v := range Favorites {
		Print(c, 2, filesHeader+i, filesSidebar-3, v, filesSide)
	}

	x := filesSidebar + 1
	arrow := "▲"
	if b.descending {
		arrow = "▼"
	}
	name, kind := "Name", "Kind"
	if b.sortKey == ByName {
		name += " " + arrow
	} else {
		kind += " " + arrow
	}
	Print(c, x, 1, 22, name, filesDim.Bold(true))
	Print(c, filesSidebar+24, 1, -1, kind, filesDim.Bold(true))
	if len(b.entries) == 0 {
		PrintCenter(c, filesSidebar, filesHeader+1, sz.Width-filesSidebar, "Folder is empty", filesDim)
		return
	}

	for i, v := range b.entries {
		y := filesHeader + i
		if y >= sz.Height {
			break
		}

		st := filesStyle
		if i == b.selected {
			st = filesSelected
			Fill(c, vdesk.Rect(filesSidebar, y, sz.Width-filesSidebar, 1), ' ', st)
		}
		n := Print(c, x, y, 2, v.Glyph, st)
		Print(c, x+n+1, y, 20-n, v.Name, st)
		Print(c, filesSidebar+24, y, -1, v.Kind, st)
	}
}
