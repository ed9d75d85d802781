// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apps

import (
	"fmt"
	"math"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/cznic/mathutil"
	"github.com/gdamore/tcell"
)

// Track is a song of the music player library.
type Track struct {
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

func song(title, artist, album string, seconds int) Track {
	return Track{title, artist, album, time.Duration(seconds) * time.Second}
}

// SampleTracks is the music player library.
var SampleTracks = []Track{
	song("Bohemian Rhapsody", "Queen", "A Night at the Opera", 354),
	song("Stairway to Heaven", "Led Zeppelin", "Led Zeppelin IV", 482),
	song("Hotel California", "Eagles", "Hotel California", 391),
	song("Imagine", "John Lennon", "Imagine", 183),
	song("Billie Jean", "Michael Jackson", "Thriller", 294),
	song("Sweet Child O' Mine", "Guns N' Roses", "Appetite for Destruction", 356),
	song("Smells Like Teen Spirit", "Nirvana", "Nevermind", 301),
	song("Like a Rolling Stone", "Bob Dylan", "Highway 61 Revisited", 369),
	song("Purple Haze", "Jimi Hendrix", "Are You Experienced", 170),
	song("Hey Jude", "The Beatles", "Hey Jude", 431),
}

// View is a screen of the music player.
type View int

// Values of View.
const (
	MainMenu View = iota
	MusicList
	NowPlaying
	Settings
	ThemeSettings
)

func (v View) String() string {
	switch v {
	case MainMenu:
		return "iPod"
	case MusicList:
		return "Music"
	case NowPlaying:
		return "Now Playing"
	case Settings:
		return "Settings"
	case ThemeSettings:
		return "Theme"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// PlayerTheme is the color scheme of the music player.
type PlayerTheme int

// Values of PlayerTheme.
const (
	Light PlayerTheme = iota
	Dark
)

func (t PlayerTheme) String() string {
	if t == Dark {
		return "Dark"
	}

	return "Light"
}

type playerItem struct {
	title string
	view  View         // Submenu entered, if submenu.
	theme *PlayerTheme // Theme set, if not nil.
}

var (
	light = Light
	dark  = Dark

	playerMenus = map[View][]playerItem{
		MainMenu: {
			{title: "Music", view: MusicList},
			{title: "Now Playing", view: NowPlaying},
			{title: "Settings", view: Settings},
		},
		Settings: {
			{title: "Theme", view: ThemeSettings},
		},
		ThemeSettings: {
			{title: "Light", theme: &light},
			{title: "Dark", theme: &dark},
		},
	}
)

// PlayerRows is the number of list rows the player screen shows.
const PlayerRows = 6

type playerFrame struct {
	view     View
	selected int
}

// MusicPlayer is a click wheel music player. Playback is simulated: the
// position in the current track advances with Tick while playing.
type MusicPlayer struct {
	cell     vdesk.Size    //
	current  int           // Index of the current track.
	elapsed  time.Duration // Position in the current track.
	playing  bool          //
	selected int           // Highlighted row of a list view.
	stack    []playerFrame // Views to return to with Menu.
	theme    PlayerTheme   //
	tracks   []Track       //
	view     View          //
}

// NewMusicPlayer returns a stopped MusicPlayer showing the main menu.
func NewMusicPlayer(cell vdesk.Size) *MusicPlayer {
	return &MusicPlayer{
		cell:   cell,
		tracks: SampleTracks,
	}
}

// View returns the current screen.
func (m *MusicPlayer) View() View { return m.view }

// Selected returns the highlighted row of the current list view.
func (m *MusicPlayer) Selected() int { return m.selected }

// Current returns the index of the current track.
func (m *MusicPlayer) Current() int { return m.current }

// Track returns the current track.
func (m *MusicPlayer) Track() Track { return m.tracks[m.current] }

// Elapsed returns the position in the current track.
func (m *MusicPlayer) Elapsed() time.Duration { return m.elapsed }

// Playing reports whether playback is running.
func (m *MusicPlayer) Playing() bool { return m.playing }

// Theme returns the color scheme.
func (m *MusicPlayer) Theme() PlayerTheme { return m.theme }

// rows returns the number of rows of the current list view, or 0.
func (m *MusicPlayer) rows() int {
	if m.view == MusicList {
		return len(m.tracks)
	}

	return len(playerMenus[m.view])
}

func (m *MusicPlayer) push(v View, selected int) {
	m.stack = append(m.stack, playerFrame{m.view, m.selected})
	m.view = v
	m.selected = selected
}

// Menu returns to the previous view. The main menu is the bottom of the
// navigation stack.
func (m *MusicPlayer) Menu() {
	n := len(m.stack)
	if n == 0 {
		m.view = MainMenu
		return
	}

	f := m.stack[n-1]
	m.stack = m.stack[:n-1]
	m.view = f.view
	m.selected = f.selected
}

// Scroll moves the highlight of a list view by one row, up when up is
// true. The highlight stops at the ends of the list.
func (m *MusicPlayer) Scroll(up bool) {
	n := m.rows()
	if n == 0 {
		return
	}

	if up {
		m.selected = mathutil.Max(0, m.selected-1)
		return
	}

	m.selected = mathutil.Min(n-1, m.selected+1)
}

// Center activates the highlighted row of a list view. In the music list it
// makes the highlighted song current and shows it; in the now playing view
// it toggles playback.
func (m *MusicPlayer) Center() {
	switch m.view {
	case MusicList:
		m.SelectTrack(m.selected)
	case NowPlaying:
		m.TogglePlay()
	default:
		items := playerMenus[m.view]
		if m.selected >= len(items) {
			return
		}

		it := items[m.selected]
		if it.theme != nil {
			m.theme = *it.theme
			m.Menu()
			return
		}

		sel := 0
		if it.view == MusicList {
			sel = m.current
		}
		m.push(it.view, sel)
	}
}

// SelectTrack makes track i current and shows the now playing view.
func (m *MusicPlayer) SelectTrack(i int) {
	if i < 0 || i >= len(m.tracks) {
		return
	}

	m.setCurrent(i)
	if m.view != NowPlaying {
		m.push(NowPlaying, 0)
	}
}

func (m *MusicPlayer) setCurrent(i int) {
	if i != m.current {
		m.elapsed = 0
	}
	m.current = i
}

// TogglePlay starts or pauses playback.
func (m *MusicPlayer) TogglePlay() { m.playing = !m.playing }

// Previous makes the preceding track current. It stops at the first track.
func (m *MusicPlayer) Previous() { m.setCurrent(mathutil.Max(0, m.current-1)) }

// Next makes the following track current. It stops at the last track.
func (m *MusicPlayer) Next() { m.setCurrent(mathutil.Min(len(m.tracks)-1, m.current+1)) }

// Tick implements Content. At the end of a track playback continues with the
// next one and stops after the last.
func (m *MusicPlayer) Tick(d time.Duration) {
	if !m.playing {
		return
	}

	m.elapsed += d
	for m.playing && m.elapsed >= m.tracks[m.current].Duration {
		if m.current == len(m.tracks)-1 {
			m.elapsed = m.tracks[m.current].Duration
			m.playing = false
			return
		}

		m.elapsed -= m.tracks[m.current].Duration
		m.current++
	}
}

// Click implements Content. The controls are tested before the wheel ring
// they overlap.
func (m *MusicPlayer) Click(p vdesk.Position) {
	f := vdesk.MusicFace
	switch {
	case f.Center.Has(p):
		m.Center()
	case f.Menu.Has(p):
		m.Menu()
	case f.Prev.Has(p):
		m.Previous()
	case f.Next.Has(p):
		m.Next()
	case f.Wheel.Has(p):
		m.wheel(p)
	case f.Screen.Has(p):
		m.screenClick(p)
	}
}

// wheel scrolls when p is in the bottom or the top quarter of the ring.
func (m *MusicPlayer) wheel(p vdesk.Position) {
	c := vdesk.MusicFace.Wheel.Center
	deg := math.Atan2(float64(p.Y-c.Y), float64(p.X-c.X)) * 180 / math.Pi
	deg = math.Mod(deg+360, 360)
	switch {
	case deg > 45 && deg < 135:
		m.Scroll(false)
	case deg > 225 && deg < 315:
		m.Scroll(true)
	}
}

// screenOrigin returns the first cell fully inside the screen.
func (m *MusicPlayer) screenOrigin() vdesk.Position {
	s := vdesk.MusicFace.Screen
	return cellOf(s.Position.Add(vdesk.Position{X: m.cell.Width - 1, Y: m.cell.Height - 1}), m.cell)
}

// screenClick handles a click at p on the screen. The first row is the
// header, list rows follow.
func (m *MusicPlayer) screenClick(p vdesk.Position) {
	row := cellOf(p, m.cell).Y - m.screenOrigin().Y - 1
	n := m.rows()
	if row < 0 || n == 0 {
		return
	}

	start, end := window(n, m.selected, PlayerRows)
	if i := start + row; i < end {
		m.selected = i
		if m.view == MusicList {
			m.SelectTrack(i)
			m.playing = true
			return
		}

		m.Center()
	}
}

// Key implements Content.
func (m *MusicPlayer) Key(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyUp:
		m.Scroll(true)
	case tcell.KeyDown:
		m.Scroll(false)
	case tcell.KeyLeft:
		m.Previous()
	case tcell.KeyRight:
		m.Next()
	case tcell.KeyEnter:
		m.Center()
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		m.Menu()
	case tcell.KeyRune:
		if r != ' ' {
			return false
		}

		m.TogglePlay()
	default:
		return false
	}
	return true
}

type playerPalette struct {
	body, wheel, button, label, screen, header, text, muted, selected tcell.Style
}

var playerPalettes = [...]playerPalette{
	Light: {
		body:     tcell.StyleDefault.Background(tcell.NewRGBColor(0xe8, 0xe8, 0xe8)).Foreground(tcell.ColorBlack),
		wheel:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(0x80, 0x80, 0x80)),
		button:   tcell.StyleDefault.Background(tcell.NewRGBColor(0xd0, 0xd0, 0xd0)).Foreground(tcell.ColorBlack),
		label:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(0x60, 0x60, 0x60)),
		screen:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		header:   tcell.StyleDefault.Background(tcell.NewRGBColor(0xf3, 0xf4, 0xf6)).Foreground(tcell.ColorBlack).Bold(true),
		text:     tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		muted:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(0x4b, 0x55, 0x63)),
		selected: tcell.StyleDefault.Background(tcell.NewRGBColor(0x3b, 0x82, 0xf6)).Foreground(tcell.ColorWhite),
	},
	Dark: {
		body:     tcell.StyleDefault.Background(tcell.NewRGBColor(0x20, 0x20, 0x20)).Foreground(tcell.ColorWhite),
		wheel:    tcell.StyleDefault.Background(tcell.NewRGBColor(0x38, 0x38, 0x38)).Foreground(tcell.NewRGBColor(0xa0, 0xa0, 0xa0)),
		button:   tcell.StyleDefault.Background(tcell.NewRGBColor(0x10, 0x10, 0x10)).Foreground(tcell.ColorWhite),
		label:    tcell.StyleDefault.Background(tcell.NewRGBColor(0x38, 0x38, 0x38)).Foreground(tcell.NewRGBColor(0xc0, 0xc0, 0xc0)),
		screen:   tcell.StyleDefault.Background(tcell.NewRGBColor(0x12, 0x12, 0x12)).Foreground(tcell.NewRGBColor(0xf3, 0xf4, 0xf6)),
		header:   tcell.StyleDefault.Background(tcell.NewRGBColor(0x1f, 0x29, 0x37)).Foreground(tcell.NewRGBColor(0xf3, 0xf4, 0xf6)).Bold(true),
		text:     tcell.StyleDefault.Background(tcell.NewRGBColor(0x12, 0x12, 0x12)).Foreground(tcell.NewRGBColor(0xf3, 0xf4, 0xf6)),
		muted:    tcell.StyleDefault.Background(tcell.NewRGBColor(0x12, 0x12, 0x12)).Foreground(tcell.NewRGBColor(0x9c, 0xa3, 0xaf)),
		selected: tcell.StyleDefault.Background(tcell.NewRGBColor(0x25, 0x63, 0xeb)).Foreground(tcell.ColorWhite),
	},
}

// Paint implements Content. The body is sampled at cell centers against the
// face regions, so the drawing matches the hit testing.
func (m *MusicPlayer) Paint(c Canvas) {
	pal := &playerPalettes[m.theme]
	f := vdesk.MusicFace
	sz := c.Size()
	for y := 0; y < sz.Height; y++ {
		for x := 0; x < sz.Width; x++ {
			p := center(x, y, m.cell)
			st := pal.body
			switch {
			case f.Screen.Has(p):
				st = pal.screen
			case f.Center.Has(p):
				st = pal.button
			case f.Wheel.Has(p):
				st = pal.wheel
			}
			c.SetContent(x, y, ' ', nil, st)
		}
	}

	m.label(c, f.Menu.Position.Add(vdesk.Position{X: f.Menu.Width / 2, Y: f.Menu.Height / 2}), "MENU", pal.label)
	m.label(c, f.Prev.Center, "◀◀", pal.label)
	m.label(c, f.Next.Center, "▶▶", pal.label)
	m.label(c, f.Wheel.Center.Add(vdesk.Position{Y: (f.Wheel.Inner + f.Wheel.Outer) / 2}), "▶❚❚", pal.label)
	m.paintScreen(c, pal)
}

// label prints s centered at the content-local position p.
func (m *MusicPlayer) label(c Canvas, p vdesk.Position, s string, st tcell.Style) {
	q := cellOf(p, m.cell)
	w := len([]rune(s))
	Print(c, q.X-w/2, q.Y, w, s, st)
}

func (m *MusicPlayer) paintScreen(c Canvas, pal *playerPalette) {
	s := vdesk.MusicFace.Screen
	o := m.screenOrigin()
	w := s.Width / m.cell.Width
	h := s.Height / m.cell.Height
	if w <= 0 || h <= 0 {
		return
	}

	Fill(c, vdesk.Rect(o.X, o.Y, w, 1), ' ', pal.header)
	Print(c, o.X+1, o.Y, w-2, m.view.String(), pal.header)
	if m.playing {
		Print(c, o.X+w-2, o.Y, 1, "▶", pal.header)
	}

	if m.view == NowPlaying {
		m.paintNowPlaying(c, pal, o, w, h)
		return
	}

	n := m.rows()
	start, end := window(n, m.selected, PlayerRows)
	for i := start; i < end; i++ {
		y := o.Y + 1 + i - start
		if y >= o.Y+h {
			break
		}

		st := pal.text
		if i == m.selected {
			st = pal.selected
		}
		Fill(c, vdesk.Rect(o.X, y, w, 1), ' ', st)
		switch m.view {
		case MusicList:
			t := m.tracks[i]
			x := o.X + 1 + Print(c, o.X+1, y, w-2, t.Title, st)
			Print(c, x, y, o.X+w-1-x, " - "+t.Artist, st)
		default:
			it := playerMenus[m.view][i]
			Print(c, o.X+1, y, w-3, it.title, st)
			if it.theme == nil {
				Print(c, o.X+w-2, y, 1, "›", st)
			} else if *it.theme == m.theme {
				Print(c, o.X+w-2, y, 1, "✓", st)
			}
		}
	}
	if n > 1 {
		pos := fmt.Sprintf("%d / %d", m.selected+1, n)
		Print(c, o.X+w-1-len(pos), o.Y+h-1, len(pos), pos, pal.muted)
	}
}

func (m *MusicPlayer) paintNowPlaying(c Canvas, pal *playerPalette, o vdesk.Position, w, h int) {
	t := m.tracks[m.current]
	y := o.Y + 2
	PrintCenter(c, o.X, y, w, fmt.Sprintf("%d of %d", m.current+1, len(m.tracks)), pal.muted)
	PrintCenter(c, o.X, y+2, w, t.Title, pal.text.Bold(true))
	PrintCenter(c, o.X, y+3, w, t.Artist, pal.text)
	PrintCenter(c, o.X, y+4, w, t.Album, pal.muted)
	if h < 10 {
		return
	}

	bar := w - 4
	done := 0
	if t.Duration > 0 {
		done = int(int64(bar) * int64(m.elapsed) / int64(t.Duration))
	}
	for i := 0; i < bar; i++ {
		r := '─'
		if i < done {
			r = '━'
		}
		c.SetContent(o.X+2+i, o.Y+h-3, r, nil, pal.text)
	}
	Print(c, o.X+2, o.Y+h-2, -1, formatDuration(m.elapsed), pal.muted)
	rest := "-" + formatDuration(t.Duration-m.elapsed)
	Print(c, o.X+w-2-len(rest), o.Y+h-2, -1, rest, pal.muted)
}
