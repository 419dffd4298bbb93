// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/sprite/base/ordmap"
	"cogentcore.org/sprite/base/slicesx"
)

// Listener is a function called with an emitted [Event].
// Listeners are closures with all context captured,
// registered on specific objects.
type Listener func(e *Event)

// ListenerID identifies a registered [Listener] within its [Listeners],
// since functions can not be compared. IDs start at 1 and are never
// reused by the same registry.
type ListenerID uint64

// listener is one registration of a [Listener].
type listener struct {
	id   ListenerID
	fun  Listener
	once bool
}

// Listeners registers lists of event listener functions by event name.
// Event names are kept in the order they were first registered.
// The zero value is ready to use.
type Listeners struct {
	byName ordmap.Map[string, []listener]
	lastID ListenerID
}

// On adds a listener for the given event name, to be called on every
// subsequent [Listeners.Call] for that name after the listeners already
// registered for it. It returns the ID to use with [Listeners.Off].
func (ls *Listeners) On(name string, fun Listener) ListenerID {
	return ls.add(name, fun, false)
}

// Once is like [Listeners.On], except that the listener is removed
// right before it is first called, so it is called at most once.
func (ls *Listeners) Once(name string, fun Listener) ListenerID {
	return ls.add(name, fun, true)
}

func (ls *Listeners) add(name string, fun Listener, once bool) ListenerID {
	ls.lastID++
	l := listener{id: ls.lastID, fun: fun, once: once}
	cur := ls.byName.ValueByKey(name)
	// a fresh slice, so that snapshots held by in-progress calls are unaffected
	next := make([]listener, len(cur), len(cur)+1)
	copy(next, cur)
	ls.byName.Add(name, append(next, l))
	return l.id
}

// Off removes the listeners with the given IDs for the given event name.
// If no IDs are given, it removes all listeners for that name.
// Unknown names and IDs are ignored.
func (ls *Listeners) Off(name string, ids ...ListenerID) {
	if len(ids) == 0 {
		ls.byName.DeleteKey(name)
		return
	}
	for _, id := range ids {
		ls.remove(name, id)
	}
}

// OffAll removes all listeners for all event names.
func (ls *Listeners) OffAll() {
	ls.byName.Reset()
}

// remove removes the listener with the given ID,
// returning whether it was registered.
func (ls *Listeners) remove(name string, id ListenerID) bool {
	cur, ok := ls.byName.ValueByKeyTry(name)
	if !ok {
		return false
	}
	idx := slicesx.Search(cur, func(l listener) bool { return l.id == id })
	if idx < 0 {
		return false
	}
	if len(cur) == 1 {
		ls.byName.DeleteKey(name)
		return true
	}
	ls.byName.Add(name, slicesx.Without(cur, idx))
	return true
}

// Len returns the number of listeners for the given event name.
func (ls *Listeners) Len(name string) int {
	return len(ls.byName.ValueByKey(name))
}

// Has returns whether there are any listeners for the given event name.
func (ls *Listeners) Has(name string) bool {
	return ls.Len(name) > 0
}

// Names returns the event names that have listeners,
// in the order they were first registered.
func (ls *Listeners) Names() []string {
	return ls.byName.Keys()
}

// Call calls the listeners for the given event in the order they were
// registered, and reports whether any of them stopped its propagation.
// All listeners are called even if an earlier one stops propagation.
//
// The listeners called are those registered when Call starts, so
// listeners added or removed by a listener take effect on the next
// call. The exception is a [Listeners.Once] listener already consumed
// by a reentrant call, which is not called again.
func (ls *Listeners) Call(e *Event) Propagation {
	for _, l := range ls.byName.ValueByKey(e.Name) {
		if l.once && !ls.remove(e.Name, l.id) {
			continue
		}
		l.fun(e)
	}
	if e.IsStopped() {
		return Stop
	}
	return Continue
}
