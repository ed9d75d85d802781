// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell"
)

var (
	_ tcell.Event = (*eventFunc)(nil)
)

var (
	eventFuncPool = sync.Pool{New: func() interface{} { return &eventFunc{} }}
)

type event struct{}

func (e event) When() time.Time { return time.Time{} }

type eventFunc struct {
	event
	f func()
}

func newEventFunc(f func()) *eventFunc {
	e := eventFuncPool.Get().(*eventFunc)
	e.f = f
	return e
}

func (e *eventFunc) dispose() {
	*e = eventFunc{}
	eventFuncPool.Put(e)
}
