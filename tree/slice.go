// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"iter"
	"slices"

	"cogentcore.org/sprite/base/enumerable"
	"cogentcore.org/sprite/base/slicesx"
)

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// allows for optimized bidirectional searching if you have a guess
// at where the node might be, which can be a key speedup for large
// slices.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return slicesx.Search(slice, func(e Node) bool { return e == child }, startIndex...)
}

// IndexByName returns the index of the first element in the given slice that
// has the given name, or -1 if none is found. See [IndexOf] for info on startIndex.
func IndexByName(slice []Node, name string, startIndex ...int) int {
	return slicesx.Search(slice, func(ch Node) bool { return ch.AsTree().Name == name }, startIndex...)
}

// childSource is the [enumerable.Source] view of the children of a node.
type childSource struct {
	n *NodeBase
}

func (c childSource) Len() int {
	return len(c.n.children)
}

// At returns nil if the index is out of range.
func (c childSource) At(i int) Node {
	return c.n.Child(i)
}

// Iterate implements [Enumerable] by returning a live view of the
// children of this node, for use with the [enumerable] functions.
func (n *NodeBase) Iterate() enumerable.Source[Node] {
	return childSource{n}
}

// All returns an iterator over the index and value of each child.
func (n *NodeBase) All() iter.Seq2[int, Node] {
	return enumerable.All(n.Iterate())
}

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.children) || i < 0 {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the list of children of this node.
func (n *NodeBase) Children() []Node {
	return slices.Clone(n.children)
}

// IndexOf returns the index of the given child of this node,
// or -1 if it is not a child of this node.
func (n *NodeBase) IndexOf(child Node) int {
	if child == nil {
		return -1
	}
	if t := child.AsTree().This; t != nil {
		child = t
	}
	return enumerable.IndexOf(n.Iterate(), child)
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found. startIndex arg allows for optimized
// bidirectional find if you have an idea where it might be, which
// can be a key speedup for large lists.
func (n *NodeBase) ChildByName(name string, startIndex ...int) Node {
	return n.Child(IndexByName(n.children, name, startIndex...))
}
