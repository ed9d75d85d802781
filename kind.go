// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

import (
	"fmt"
)

// Kind enumerates the hosted application kinds.
type Kind int

// Values of Kind.
const (
	_ Kind = iota
	MusicPlayer
	PhotoViewer
	FileBrowser
	ImageGallery
)

// Kinds lists every known Kind in desktop icon order.
var Kinds = []Kind{MusicPlayer, PhotoViewer, FileBrowser, ImageGallery}

// Defaults holds the creation-time properties of a window of some Kind.
type Defaults struct {
	Title    string
	Size     Size
	MenuName string // Application name shown in the menu bar while active.
}

var fallbackDefaults = Defaults{Title: "Window", Size: Size{600, 400}, MenuName: "Finder"}

// Defaults returns the creation-time properties of k. Unknown kinds get a
// generic window.
func (k Kind) Defaults() Defaults {
	switch k {
	case MusicPlayer:
		return Defaults{Title: "iPod", Size: Size{400, 650}, MenuName: "iPod"}
	case PhotoViewer:
		return Defaults{Title: "Photos", Size: Size{640, 480}, MenuName: "Photos"}
	case FileBrowser:
		return Defaults{Title: "Projects", Size: Size{800, 600}, MenuName: "Projects"}
	case ImageGallery:
		return Defaults{Title: "Gallery", Size: Size{900, 700}, MenuName: "Gallery"}
	default:
		return fallbackDefaults
	}
}

// Chromeless reports whether windows of k render without the standard title
// bar and resize handle.
func (k Kind) Chromeless() bool { return k == MusicPlayer }

func (k Kind) String() string {
	switch k {
	case MusicPlayer:
		return "MusicPlayer"
	case PhotoViewer:
		return "PhotoViewer"
	case FileBrowser:
		return "FileBrowser"
	case ImageGallery:
		return "ImageGallery"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown application kind %q", s)
}

// Face describes the controls of the music player body, in window-local
// pixels.
type Face struct {
	Screen Rectangle
	Wheel  Ring
	Center Circle
	Menu   Rectangle
	Prev   Circle
	Next   Circle
}

// MusicFace is the music player body layout.
var MusicFace = Face{
	Screen: Rect(33, 27, 312, 236),
	Wheel:  Ring{Center: Position{189, 442}, Inner: 45, Outer: 110},
	Center: Circle{Center: Position{189, 442}, Radius: 40},
	Menu:   Rect(170, 350, 38, 20),
	Prev:   Circle{Center: Position{85, 442}, Radius: 25},
	Next:   Circle{Center: Position{293, 442}, Radius: 25},
}

// MusicPlayerHitMap returns the drag regions of a music player window of size
// sz. The edges of the body and the pockets beside the click wheel drag the
// window; the screen and every control are carved out.
func MusicPlayerHitMap(sz Size) HitMap {
	w, h := sz.Width, sz.Height
	side := h - 290 - 27
	return HitMap{
		Drag: Regions{
			Rect(0, 0, w, 27),
			Rect(0, 27, 33, side),
			Rect(w-33, 27, 33, side),
			Rect(0, h-40, w, 40),
			Rect(33, 270, 100, 100),
			Rect(w-33-100, 270, 100, 100),
		},
		Exclude: Regions{
			MusicFace.Screen,
			MusicFace.Wheel,
			MusicFace.Center,
			MusicFace.Menu,
			MusicFace.Prev,
			MusicFace.Next,
		},
	}
}
