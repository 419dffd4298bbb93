// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides named, synchronous events with opaque
// arguments, per-object listener registries, and a [Bus] that
// terminates event propagation. Propagation itself is driven by
// the owner of the registries, such as tree nodes bubbling an
// event up to their parents.
package events

import (
	"fmt"
)

// Event is a single emission of a named event. One Event value is shared
// by every registry the emission visits, and it carries the only state
// of the emission, so a listener can stop it with [Event.StopPropagation]
// without affecting any other emission, including reentrant ones.
type Event struct {

	// Name is the name of the event, such as "change" or "select".
	Name string

	// Args are the arguments passed to Emit, unmodified.
	Args []any

	// Source is the object on which the event was originally emitted.
	Source any

	// Current is the object whose listeners are currently being called.
	Current any

	// stopped is set by StopPropagation.
	stopped bool
}

// NewEvent returns a new event with the given source, name and arguments.
func NewEvent(source any, name string, args ...any) *Event {
	return &Event{Name: name, Args: args, Source: source, Current: source}
}

// StopPropagation marks the event as stopped. The remaining listeners of
// [Event.Current] are still called, but the event is not passed on to the
// next emitter in the chain. It has no effect after the emission returned.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// IsStopped returns whether [Event.StopPropagation] has been called.
func (e *Event) IsStopped() bool {
	return e.stopped
}

// Arg returns the argument at the given index, or nil if there is none.
func (e *Event) Arg(i int) any {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

func (e *Event) String() string {
	return fmt.Sprintf("%s%v", e.Name, e.Args)
}

// Propagation is the outcome of calling the listeners of one emitter
// for an event: whether the event continues to the next emitter.
type Propagation int32

const (
	// Continue indicates that the event should be passed on.
	Continue Propagation = iota

	// Stop indicates that a listener called [Event.StopPropagation].
	Stop
)

func (p Propagation) String() string {
	switch p {
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	}
	return fmt.Sprintf("Propagation(%d)", int32(p))
}
