// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"

	"cogentcore.org/sprite/events"
)

// TraceEmit can be set to true to log every step
// of events bubbling up through trees.
var TraceEmit = false

// On adds a listener for the given event name on this node. It is
// called for events emitted on this node and for events bubbling up
// from its descendants. It returns the ID to use with [NodeBase.Off].
func (n *NodeBase) On(name string, fun events.Listener) events.ListenerID {
	return n.listeners.On(name, fun)
}

// Once is like [NodeBase.On], except that the listener
// is removed right before it is first called.
func (n *NodeBase) Once(name string, fun events.Listener) events.ListenerID {
	return n.listeners.Once(name, fun)
}

// Off removes the listeners with the given IDs for the given event name,
// or all listeners for that name on this node if no IDs are given.
func (n *NodeBase) Off(name string, ids ...events.ListenerID) {
	n.listeners.Off(name, ids...)
}

// OffAll removes all listeners on this node.
func (n *NodeBase) OffAll() {
	n.listeners.OffAll()
}

// Listeners returns the listener registry of this node.
func (n *NodeBase) Listeners() *events.Listeners {
	return &n.listeners
}

// Emit emits an event with the given name and arguments on this node and
// returns [NodeBase.This]. The listeners of this node are called first, and
// then, unless one of them called [events.Event.StopPropagation], the event
// bubbles up to the parent, and so on up to the root, after which it is
// dispatched to a bus. Every emission that is not stopped reaches a bus,
// falling back on [events.Default] for trees built without one.
func (n *NodeBase) Emit(name string, args ...any) Node {
	this := n.this()
	this.Dispatch(events.NewEvent(this, name, args...))
	return this
}

// Dispatch implements [events.Emitter.Dispatch] by calling the listeners
// of this node for the given event and then passing it on to the parent,
// or the bus for a root, unless propagation was stopped.
func (n *NodeBase) Dispatch(e *events.Event) {
	this := n.this()
	e.Current = this
	if TraceEmit {
		slog.Info("tree.Emit", "event", e.Name, "node", n.Path(), "listeners", n.listeners.Len(e.Name))
	}
	if n.listeners.Call(e) == events.Stop {
		if TraceEmit {
			slog.Info("tree.Emit: propagation stopped", "event", e.Name, "node", n.Path())
		}
		return
	}
	if parent := this.Parent(); parent != nil {
		parent.Dispatch(e)
		return
	}
	bus := n.rootBus(e)
	if TraceEmit {
		slog.Info("tree.Emit: reached bus", "event", e.Name, "bus", bus.Name, "listeners", bus.Listeners().Len(e.Name))
	}
	bus.Dispatch(e)
}

// rootBus returns the bus that the given event goes to after reaching
// this root: the bus of the root, or else the bus of the node the event
// was emitted on, or else [events.Default].
func (n *NodeBase) rootBus(e *events.Event) *events.Bus {
	if n.bus != nil {
		return n.bus
	}
	if src, ok := e.Source.(Node); ok && src.AsTree().bus != nil {
		return src.AsTree().bus
	}
	return events.Default
}
