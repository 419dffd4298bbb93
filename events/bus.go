// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Emitter is the event capability shared by everything that events can
// be emitted on. Listeners are registered per emitter; how an event moves
// on from one emitter to the next is up to the implementation of
// [Emitter.Dispatch].
type Emitter interface {

	// On adds a listener for the given event name.
	On(name string, fun Listener) ListenerID

	// Once adds a listener for the given event name
	// that is removed right before it is first called.
	Once(name string, fun Listener) ListenerID

	// Off removes the listeners with the given IDs for the given event name,
	// or all listeners for that name if no IDs are given.
	Off(name string, ids ...ListenerID)

	// OffAll removes all listeners.
	OffAll()

	// Dispatch delivers the given event to this emitter and
	// any emitters it propagates to.
	Dispatch(e *Event)
}

// Bus is the emitter at the end of every propagation chain. It has
// listeners like any other emitter but no parent, so events dispatched
// to it stop there. A Bus is created once with [NewBus] and shared by
// all of the objects that propagate to it.
type Bus struct {

	// Name is used for logging and debugging.
	Name string

	listeners Listeners
}

// Default is the bus that events end up on when neither the root they
// reach nor the node they were emitted on has a bus of its own.
var Default = NewBus("default")

// NewBus returns a new bus with the given name.
func NewBus(name string) *Bus {
	return &Bus{Name: name}
}

func (b *Bus) String() string {
	return "bus:" + b.Name
}

// On implements [Emitter.On].
func (b *Bus) On(name string, fun Listener) ListenerID {
	return b.listeners.On(name, fun)
}

// Once implements [Emitter.Once].
func (b *Bus) Once(name string, fun Listener) ListenerID {
	return b.listeners.Once(name, fun)
}

// Off implements [Emitter.Off].
func (b *Bus) Off(name string, ids ...ListenerID) {
	b.listeners.Off(name, ids...)
}

// OffAll implements [Emitter.OffAll].
func (b *Bus) OffAll() {
	b.listeners.OffAll()
}

// Listeners returns the listener registry of the bus.
func (b *Bus) Listeners() *Listeners {
	return &b.listeners
}

// Dispatch calls the listeners of the bus for the given event.
// Stopping propagation has no further effect, since nothing
// comes after the bus.
func (b *Bus) Dispatch(e *Event) {
	e.Current = b
	b.listeners.Call(e)
}

// Emit emits an event with the given name and arguments on the bus,
// calling only the listeners of the bus, and returns the bus.
func (b *Bus) Emit(name string, args ...any) *Bus {
	b.Dispatch(NewEvent(b, name, args...))
	return b
}
