// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/sprite/base/errors"
	"cogentcore.org/sprite/events"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// Nodes should be created with [New] or [NewNodeBase], or initialized with
// [InitNode], so that the [NodeBase.This] field is set correctly and the
// [Node.Init] method is called. Nodes that are added with [NodeBase.Add]
// are initialized automatically.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other
	// children of the same parent. It is used for paths and for finding nodes.
	// If it is empty when the node is added to a parent, it is set to the
	// kebab-case name of the node type combined with the total number of
	// children that have ever been added to that parent.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types, which
	// is necessary so that parents, children and event sources are recorded as
	// the higher-level type.
	This Node `copier:"-" json:"-" yaml:"-"`

	// Properties is a property map for arbitrary key-value properties.
	// When possible, use typed fields on a new type embedding NodeBase instead of this.
	// You should typically use the [NodeBase.SetProperty], [NodeBase.Property], and
	// [NodeBase.DeleteProperty] methods for modifying and accessing properties.
	Properties map[string]any `copier:"-"`

	// parent is the parent of this node, or nil for a root.
	parent Node

	// children is the list of children of this node, nil until the first child
	// is added and again after [NodeBase.RemoveAll].
	children []Node

	// listeners are the event listeners registered on this node.
	listeners events.Listeners

	// bus is where events end up after bubbling past the root.
	bus *events.Bus

	// numLifetimeChildren is the number of children that have ever been added to this
	// node, which is used for automatic unique naming.
	numLifetimeChildren uint64

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// this returns [NodeBase.This], initializing
// the node as a plain NodeBase if needed.
func (n *NodeBase) this() Node {
	if n.This == nil {
		InitNode(n)
	}
	return n.This
}

// Parents:

// Parent returns the parent of this node, or nil if it is a root.
func (n *NodeBase) Parent() Node {
	return n.parent
}

// Parents returns the ancestors of this node, starting with its parent
// and ending with its root. It returns an empty slice for a root.
func (n *NodeBase) Parents() []Node {
	ps := []Node{}
	n.WalkUpParent(func(p Node) bool {
		ps = append(ps, p)
		return Continue
	})
	return ps
}

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	idx := IndexOf(n.parent.AsTree().children, n.this(), n.index) // very fast if index is close
	n.index = idx
	return idx
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUpParent(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// ParentByName finds first parent recursively up hierarchy that matches
// the given name. It returns nil if not found.
func (n *NodeBase) ParentByName(name string) Node {
	var res Node
	n.WalkUpParent(func(p Node) bool {
		if p.AsTree().Name == name {
			res = p
			return Break
		}
		return Continue
	})
	return res
}

// Bus returns the bus of this node, or [events.Default] if it has none.
// Events bubbling past the root of a tree go to the bus of the root.
func (n *NodeBase) Bus() *events.Bus {
	if n.bus == nil {
		return events.Default
	}
	return n.bus
}

// SetBus sets the bus of this node. Events bubbling up from a tree go
// to the bus of its root; the bus of another node is used only for
// events emitted on it while its root has no bus, or once it is
// removed from its parent.
func (n *NodeBase) SetBus(bus *events.Bus) {
	n.bus = bus
}

// Adding and Removing Children:

// Add adds the given child at the end of the children of this node and
// returns [NodeBase.This]. If the child already has a parent, it is removed
// from that parent first, so adding a child to its own parent again moves it
// to the end. Adding a node to itself or to one of its descendants would
// create a cycle, so it is logged as an error and nothing changes.
func (n *NodeBase) Add(child Node) Node {
	this := n.this()
	if child == nil {
		errors.Log(fmt.Errorf("tree.NodeBase.Add: cannot add a nil child to %v", n))
		return this
	}
	InitNode(child)
	child = child.AsTree().This
	if n.ParentLevel(child) >= 0 || child == this {
		errors.Log(fmt.Errorf("tree.NodeBase.Add: adding %v to %v would create a cycle", child, n))
		return this
	}
	if old := child.Parent(); old != nil {
		old.Remove(child)
	}
	n.children = append(n.children, child)
	n.setParent(child)
	return this
}

// setParent makes this node the parent of the given new child,
// naming it and sharing the bus of this node with it.
func (n *NodeBase) setParent(child Node) {
	cb := child.AsTree()
	cb.parent = n.This
	cb.index = len(n.children) - 1
	n.numLifetimeChildren++
	if cb.Name == "" {
		cb.Name = typeIDName(child) + "-" + strconv.FormatUint(n.numLifetimeChildren-1, 10) // must subtract 1 so we start at 0
	}
	if n.bus != nil {
		cb.WalkDown(func(k Node) bool {
			kb := k.AsTree()
			if kb.bus == nil {
				kb.bus = n.bus
			}
			return Continue
		})
	}
}

// Remove removes the given child from the children of this node, keeping
// the order of the other children, and clears its parent. It returns the
// removed child, or nil if the given node is not a child of this node,
// in which case nothing changes.
func (n *NodeBase) Remove(child Node) Node {
	if child == nil {
		return nil
	}
	if t := child.AsTree().This; t != nil {
		child = t
	}
	idx := IndexOf(n.children, child, child.AsTree().index)
	if idx < 0 {
		return nil
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.AsTree().parent = nil
	return child
}

// RemoveAll removes all of the children of this node, clearing their
// parent, and returns them in their previous order. It returns an
// empty slice if there are no children.
func (n *NodeBase) RemoveAll() []Node {
	kids := n.children
	if len(kids) == 0 {
		return []Node{}
	}
	for _, kid := range kids {
		kid.AsTree().parent = nil
	}
	n.children = nil
	return kids
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using [NodeBase.Name]s separated by / delimeters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.parent != nil {
		return n.parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// PathFrom returns the path to this node from the given parent node,
// using [NodeBase.Name]s separated by / delimeters. Any
// existing / characters in names are escaped to \\
//
// The paths that it returns exclude the name of the parent and the
// leading slash; for example, in the tree a/b/c/d/e, the result of
// d.PathFrom(b) would be c/d.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	if n.parent == nil || n.parent == parent {
		return EscapePathName(n.Name)
	}
	return n.parent.AsTree().PathFrom(parent) + "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path. A path starting with /
// is absolute, in the format of [NodeBase.Path], and is resolved from the
// root of this node, whose name must be its first element. Other paths are
// relative to this node, in the format of [NodeBase.PathFrom]. Elements of
// the form [i] select the child at index i, counting from the end for
// negative i. It returns nil if no node is found at the given path.
// FindPath only works correctly when names are unique.
func (n *NodeBase) FindPath(path string) Node {
	path = strings.TrimSpace(path)
	cur := n.this()
	if strings.HasPrefix(path, "/") {
		cur = Root(cur)
		pels := strings.Split(strings.Trim(path, "/"), "/")
		if UnescapePathName(pels[0]) != cur.AsTree().Name {
			return nil
		}
		path = strings.Join(pels[1:], "/")
	}
	for _, pe := range strings.Split(path, "/") {
		if len(pe) == 0 {
			continue
		}
		idx := findPathChild(cur.AsTree(), UnescapePathName(pe))
		if idx < 0 {
			return nil
		}
		cur = cur.AsTree().children[idx]
	}
	return cur
}

// findPathChild finds the child with the given string representation in [NodeBase.FindPath].
func findPathChild(n *NodeBase, child string) int {
	if child[0] == '[' && child[len(child)-1] == ']' {
		idx, err := strconv.Atoi(child[1 : len(child)-1])
		if err != nil {
			return -1
		}
		if idx < 0 { // from end
			idx = len(n.children) + idx
		}
		if idx < 0 || idx >= len(n.children) {
			return -1
		}
		return idx
	}
	return IndexByName(n.children, child)
}

// Property Storage:

// SetProperty sets given the given property to the given value.
func (n *NodeBase) SetProperty(key string, value any) {
	if n.Properties == nil {
		n.Properties = map[string]any{}
	}
	n.Properties[key] = value
}

// Property returns the property value for the given key.
// It returns nil if it doesn't exist.
func (n *NodeBase) Property(key string) any {
	return n.Properties[key]
}

// DeleteProperty deletes the property with the given key.
func (n *NodeBase) DeleteProperty(key string) {
	if n.Properties == nil {
		return
	}
	delete(n.Properties, key)
}
