// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a tree system with event bubbling, centered on
// the [Node] interface. Nodes own ordered children, know their parent,
// and propagate every event emitted on them up through their ancestors
// to an [events.Bus], unless a listener stops the event on the way.
package tree

import (
	"cogentcore.org/sprite/base/enumerable"
	"cogentcore.org/sprite/events"
)

// Node is an interface that all tree nodes satisfy. It is the composition
// of the [Hierarchical], [events.Emitter] and [Enumerable] capabilities,
// all of which are implemented by [NodeBase]. Higher-level tree types
// must embed NodeBase and may override methods of this interface.
// You can call [Node.AsTree] to get the [NodeBase] of a Node and access
// the rest of the core tree functionality. All values that implement
// Node are pointer values.
type Node interface {
	Hierarchical
	events.Emitter
	Enumerable

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Emit emits an event with the given name and arguments on this
	// node, from where it bubbles up to the root and then the bus of
	// the tree. It returns this node so that calls can be chained.
	Emit(name string, args ...any) Node

	// Init is called when the node is first initialized, before
	// it is added to a parent. It is called only once in the
	// lifetime of the node. It does nothing by default, but it can
	// be implemented by higher-level types to set defaults and
	// register their own event listeners.
	Init()
}

// Hierarchical is the capability of owning children and having a parent.
type Hierarchical interface {

	// Parent returns the parent of this node, or nil if it is a root.
	Parent() Node

	// Parents returns the ancestors of this node, starting with its
	// parent and ending with its root. It does not include the node itself.
	Parents() []Node

	// Add adds the given node to the end of the children of this node,
	// and makes this node its parent. A node that already has a parent
	// is removed from that parent first. It returns this node.
	Add(child Node) Node

	// Remove removes the given child from the children of this node,
	// making it a root. It returns the child, or nil if it is not a
	// child of this node.
	Remove(child Node) Node

	// RemoveAll removes all of the children of this node and returns
	// them in their previous order.
	RemoveAll() []Node
}

// Enumerable is the capability of exposing the children of a node for
// generic sequence operations in the [enumerable] package, without
// exposing their storage.
type Enumerable interface {

	// Iterate returns a view of the children of this node.
	Iterate() enumerable.Source[Node]
}
