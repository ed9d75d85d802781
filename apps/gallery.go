// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apps

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbelJSeba/vdesk"
	"github.com/cznic/mathutil"
	"github.com/gdamore/tcell"
)

// GalleryImages is the number of placeholder images of the gallery.
const GalleryImages = 24

// Image is a gallery entry.
type Image struct {
	Name string
	Size string
}

// PlaceholderImages returns the gallery entries, midjourney-001.png and up.
func PlaceholderImages() []Image {
	r := make([]Image, GalleryImages)
	for i := range r {
		r[i] = Image{
			Name: fmt.Sprintf("midjourney-%03d.png", i+1),
			Size: fmt.Sprintf("%d.%dMB", 1+i*7%4, i*3%10),
		}
	}
	return r
}

const (
	galleryColumns = 4
	galleryHeader  = 3 // Title, search and spacing rows.
	galleryTile    = 4 // Tile height in rows.
)

// ImageGallery is a grid of images with a search filter and a preview of
// the selected image.
type ImageGallery struct {
	cell     vdesk.Size //
	filtered []int      // Indexes of images matching search.
	images   []Image    //
	open     int        // Previewed image index into images or -1.
	search   string     //
	size     vdesk.Size // Canvas size of the last Paint.
	top      int        // First grid row shown.
}

// NewImageGallery returns an ImageGallery listing PlaceholderImages.
func NewImageGallery(cell vdesk.Size) *ImageGallery {
	g := &ImageGallery{
		cell:   cell,
		images: PlaceholderImages(),
		open:   -1,
	}
	g.filter()
	return g
}

func (g *ImageGallery) filter() {
	g.filtered = g.filtered[:0]
	q := strings.ToLower(g.search)
	for i, v := range g.images {
		if strings.Contains(strings.ToLower(v.Name), q) {
			g.filtered = append(g.filtered, i)
		}
	}
	g.top = 0
}

// Search returns the search filter.
func (g *ImageGallery) Search() string { return g.search }

// SetSearch sets the search filter. Only images whose names contain s,
// ignoring case, are shown.
func (g *ImageGallery) SetSearch(s string) {
	g.search = s
	g.filter()
}

// Shown returns the images matching the search filter.
func (g *ImageGallery) Shown() []Image {
	r := make([]Image, len(g.filtered))
	for i, v := range g.filtered {
		r[i] = g.images[v]
	}
	return r
}

// Preview returns the previewed image, if any.
func (g *ImageGallery) Preview() (Image, bool) {
	if g.open < 0 {
		return Image{}, false
	}

	return g.images[g.open], true
}

// OpenShown previews the i-th shown image.
func (g *ImageGallery) OpenShown(i int) {
	if i >= 0 && i < len(g.filtered) {
		g.open = g.filtered[i]
	}
}

// ClosePreview closes the preview.
func (g *ImageGallery) ClosePreview() { g.open = -1 }

func (g *ImageGallery) rows() int { return (len(g.filtered) + galleryColumns - 1) / galleryColumns }

func (g *ImageGallery) pageRows() int {
	return mathutil.Max(1, (g.size.Height-galleryHeader)/galleryTile)
}

// ScrollRows scrolls the grid by n rows, clamped to its extent.
func (g *ImageGallery) ScrollRows(n int) {
	g.top = mathutil.Max(0, mathutil.Min(g.top+n, g.rows()-g.pageRows()))
}

// Top returns the first grid row shown.
func (g *ImageGallery) Top() int { return g.top }

// Click implements Content. While a preview is shown any click closes it.
func (g *ImageGallery) Click(p vdesk.Position) {
	if g.open >= 0 {
		g.ClosePreview()
		return
	}

	q := cellOf(p, g.cell)
	if q.Y < galleryHeader || g.size.Width <= 0 {
		return
	}

	col := q.X * galleryColumns / g.size.Width
	row := g.top + (q.Y-galleryHeader)/galleryTile
	g.OpenShown(row*galleryColumns + col)
}

// Key implements Content. Printable runes edit the search filter.
func (g *ImageGallery) Key(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape:
		if g.open < 0 {
			return false
		}

		g.ClosePreview()
	case tcell.KeyPgDn:
		g.ScrollRows(g.pageRows())
	case tcell.KeyPgUp:
		g.ScrollRows(-g.pageRows())
	case tcell.KeyDown:
		g.ScrollRows(1)
	case tcell.KeyUp:
		g.ScrollRows(-1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if g.search == "" {
			return false
		}

		s := []rune(g.search)
		g.SetSearch(string(s[:len(s)-1]))
	case tcell.KeyRune:
		g.SetSearch(g.search + string(r))
	default:
		return false
	}
	return true
}

// Tick implements Content.
func (g *ImageGallery) Tick(time.Duration) {}

var (
	galleryStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x11, 0x18, 0x27)).Foreground(tcell.ColorWhite)
	galleryBar    = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1f, 0x29, 0x37)).Foreground(tcell.ColorWhite)
	gallerySearch = tcell.StyleDefault.Background(tcell.NewRGBColor(0x37, 0x41, 0x51)).Foreground(tcell.ColorWhite)
	galleryDim    = galleryStyle.Foreground(tcell.NewRGBColor(0x9c, 0xa3, 0xaf))
	galleryTitle  = galleryBar.Foreground(tcell.NewRGBColor(0xc0, 0x84, 0xfc)).Bold(true)
)

// tileColor returns a stand-in color for image i.
func tileColor(i int) tcell.Color {
	return tcell.NewRGBColor(int32(40+i*37%160), int32(30+i*53%120), int32(80+i*29%150))
}

// Paint implements Content.
func (g *ImageGallery) Paint(c Canvas) {
	sz := c.Size()
	g.size = sz
	Fill(c, vdesk.Rect(0, 0, sz.Width, sz.Height), ' ', galleryStyle)
	Fill(c, vdesk.Rect(0, 0, sz.Width, 2), ' ', galleryBar)
	Print(c, 1, 0, sz.Width-2, "Midjourney Gallery", galleryTitle)
	count := fmt.Sprintf("%d images", len(g.filtered))
	Print(c, sz.Width-1-len(count), 0, -1, count, galleryBar)
	Fill(c, vdesk.Rect(1, 1, sz.Width-2, 1), ' ', gallerySearch)
	if g.search == "" {
		Print(c, 2, 1, sz.Width-4, "Search images...", gallerySearch.Foreground(tcell.NewRGBColor(0x9c, 0xa3, 0xaf)))
	} else {
		Print(c, 2, 1, sz.Width-4, g.search, gallerySearch)
	}

	if len(g.filtered) == 0 {
		PrintCenter(c, 0, sz.Height/2, sz.Width, "No images found", galleryDim)
		return
	}

	tw := sz.Width / galleryColumns
	for n := g.top * galleryColumns; n < len(g.filtered); n++ {
		row := n/galleryColumns - g.top
		y := galleryHeader + row*galleryTile
		if y >= sz.Height {
			break
		}

		i := g.filtered[n]
		x := n % galleryColumns * tw
		Fill(c, vdesk.Rect(x+1, y, tw-2, galleryTile-2), ' ', tcell.StyleDefault.Background(tileColor(i)))
		Print(c, x+1, y+galleryTile-2, tw-2, g.images[i].Name, galleryStyle)
	}

	if g.open < 0 {
		return
	}

	im := g.images[g.open]
	box := vdesk.Rect(sz.Width/8, sz.Height/6, sz.Width*3/4, sz.Height*2/3)
	Fill(c, box, ' ', galleryBar)
	Fill(c, vdesk.Rect(box.X+2, box.Y+1, box.Width-4, box.Height-4), ' ', tcell.StyleDefault.Background(tileColor(g.open)))
	Print(c, box.X+2, box.Y+box.Height-2, box.Width-4, im.Name, galleryBar.Bold(true))
	Print(c, box.X+box.Width-2-len(im.Size), box.Y+box.Height-2, -1, im.Size, galleryBar)
}
