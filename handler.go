// Copyright 2026 The VDesk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vdesk

// OnChangeHandler is called after every effective mutation of the window
// store with a snapshot of all records in creation order. If there was a
// previous handler installed, it's passed in prev. The handler then has the
// opportunity to call the previous handler before or after its own execution.
type OnChangeHandler func(m *Manager, prev OnChangeHandler, windows []WindowRecord)

type onChangeHandlerList struct {
	prev      *onChangeHandlerList
	h         OnChangeHandler
	finalizer func()
}

func addOnChangeHandler(m *Manager, l **onChangeHandlerList, h OnChangeHandler, finalizer func()) {
	prev := *l
	if prev == nil {
		*l = &onChangeHandlerList{
			h:         h,
			finalizer: finalizer,
		}
		return
	}

	*l = &onChangeHandlerList{
		prev: prev,
		h: func(_ *Manager, _ OnChangeHandler, windows []WindowRecord) {
			h(m, prev.h, windows)
		},
		finalizer: finalizer,
	}
}

func (l *onChangeHandlerList) handle(m *Manager, windows []WindowRecord) {
	if l != nil {
		l.h(m, nil, windows)
	}
}

func removeOnChangeHandler(l **onChangeHandlerList) {
	node := *l
	*l = node.prev
	if f := node.finalizer; f != nil {
		f()
	}
}

// OnSetStringHandler handles requests to change a string property. The
// handler at the bottom of the chain stores src into dst.
type OnSetStringHandler func(d *Desktop, prev OnSetStringHandler, dst *string, src string)

type onSetStringHandlerList struct {
	prev      *onSetStringHandlerList
	h         OnSetStringHandler
	finalizer func()
}

func addOnSetStringHandler(d *Desktop, l **onSetStringHandlerList, h OnSetStringHandler, finalizer func()) {
	prev := *l
	if prev == nil {
		*l = &onSetStringHandlerList{
			h:         h,
			finalizer: finalizer,
		}
		return
	}

	*l = &onSetStringHandlerList{
		prev: prev,
		h: func(_ *Desktop, _ OnSetStringHandler, dst *string, src string) {
			h(d, prev.h, dst, src)
		},
		finalizer: finalizer,
	}
}

func (l *onSetStringHandlerList) handle(d *Desktop, dst *string, src string) {
	if *dst == src {
		return
	}

	if l != nil {
		l.h(d, nil, dst, src)
		return
	}

	*dst = src
}

func removeOnSetStringHandler(l **onSetStringHandlerList) {
	node := *l
	*l = node.prev
	if f := node.finalizer; f != nil {
		f()
	}
}
