// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"github.com/gdamore/tcell"
)

// OnKeyHandler handles key events. If there was a previous handler
// installed, it's passed in prev. The handler then has the opportunity to
// call the previous handler before or after its own execution. The handler
// should return true if it consumed the event and it should not be
// considered by other subscribed handlers.
type OnKeyHandler func(a *Application, prev OnKeyHandler, key tcell.Key, mod tcell.ModMask, r rune) bool

type onKeyHandlerList struct {
	prev      *onKeyHandlerList
	h         OnKeyHandler
	finalizer func()
}

func addOnKeyHandler(a *Application, l **onKeyHandlerList, h OnKeyHandler, finalizer func()) {
	prev := *l
	if prev == nil {
		*l = &onKeyHandlerList{
			h:         h,
			finalizer: finalizer,
		}
		return
	}

	*l = &onKeyHandlerList{
		prev: prev,
		h: func(_ *Application, _ OnKeyHandler, key tcell.Key, mod tcell.ModMask, r rune) bool {
			return h(a, prev.h, key, mod, r)
		},
		finalizer: finalizer,
	}
}

func (l *onKeyHandlerList) handle(a *Application, key tcell.Key, mod tcell.ModMask, r rune) bool {
	if l != nil {
		return l.h(a, nil, key, mod, r)
	}

	return false
}

func removeOnKeyHandler(l **onKeyHandlerList) {
	node := *l
	*l = node.prev
	if f := node.finalizer; f != nil {
		f()
	}
}
