// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"maps"
	"reflect"

	"github.com/jinzhu/copier"

	"cogentcore.org/sprite/base/errors"
)

// NewInstance returns a new, uninitialized instance of this node type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.this()).Elem()).Interface().(Node)
}

// Clone creates and returns a deep copy of the tree from this node down.
// The fields of higher-level node types are deep copied, except for those
// with a `copier:"-"` struct tag, along with the name and properties of
// every node. The clone is a root that shares the bus of this node.
// Event listeners are not copied, but [Node.Init] is called on every
// new node, so listeners registered there are present on the clone.
func (n *NodeBase) Clone() Node {
	this := n.this()
	nc := n.NewInstance()
	err := copier.CopyWithOption(nc, this, copier.Option{CaseSensitive: true, DeepCopy: true})
	errors.Log(err)
	// the tree structure is never copied
	*nc.AsTree() = NodeBase{
		Name:       n.Name,
		Properties: maps.Clone(n.Properties),
		bus:        n.bus,
	}
	InitNode(nc)
	for _, kid := range n.children {
		nc.Add(kid.AsTree().Clone())
	}
	return nc
}
