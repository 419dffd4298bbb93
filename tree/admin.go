// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"reflect"

	"github.com/iancoleman/strcase"

	"cogentcore.org/sprite/events"
)

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the given node by setting its [NodeBase.This]
// and calling [Node.Init]. It does nothing if the node is already
// initialized, so [Node.Init] is called only once per node.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This == nil {
		nb.This = n
		n.Init()
	}
}

// New returns a new initialized root node of the given type whose
// events end up on the given bus. If the bus is nil, events end up
// on [events.Default] unless the node is given a bus later.
func New[T any, PT interface {
	*T
	Node
}](bus *events.Bus) PT {
	n := PT(new(T))
	InitNode(n)
	n.AsTree().bus = bus
	return n
}

// NewNodeBase returns a new initialized root [NodeBase]
// whose events end up on the given bus.
func NewNodeBase(bus *events.Bus) *NodeBase {
	return New[NodeBase](bus)
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	return n.Parent() == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	root := n
	n.AsTree().WalkUpParent(func(p Node) bool {
		root = p
		return Continue
	})
	return root
}

// typeIDNames caches the kebab-case names of node types.
var typeIDNames = map[reflect.Type]string{}

// typeIDName returns the kebab-case name of the type of the given node,
// such as node-base for [NodeBase].
func typeIDName(n Node) string {
	typ := reflect.TypeOf(n)
	if name, ok := typeIDNames[typ]; ok {
		return name
	}
	et := typ
	if et.Kind() == reflect.Pointer {
		et = et.Elem()
	}
	name := strcase.ToKebab(et.Name())
	typeIDNames[typ] = name
	return name
}
