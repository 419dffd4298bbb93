// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/sprite/tree"
	"cogentcore.org/sprite/tree/testdata"
)

func testTree() *NodeBase {
	root := newNamed("root")
	child0 := newNamed("child0")
	child1 := newNamed("child1")
	schild1 := newNamed("subchild1")
	sschild1 := testdata.NewNodeEmbed(nil)
	sschild1.Name = "subsubchild1"
	child2 := testdata.NewNodeEmbed(nil)
	child2.Name = "child2"
	child3 := newNamed("child3")
	schild1.Add(sschild1)
	child1.Add(schild1)
	root.Add(child0).Add(child1).Add(child2).Add(child3)
	return root
}

func TestWalkDown(t *testing.T) {
	root := testTree()
	res := []string{}
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return n.AsTree().Name != "child1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3"}, res)
}

func TestWalkUp(t *testing.T) {
	root := testTree()
	leaf := root.FindPath("child1/subchild1/subsubchild1")
	res := []string{}
	done := leaf.AsTree().WalkUp(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	})
	assert.True(t, done)
	assert.Equal(t, []string{"subsubchild1", "subchild1", "child1", "root"}, res)

	res = nil
	done = leaf.AsTree().WalkUpParent(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return n.AsTree().Name != "child1"
	})
	assert.False(t, done)
	assert.Equal(t, []string{"subchild1", "child1"}, res)
}

func TestParentLevel(t *testing.T) {
	root := testTree()
	leaf := root.FindPath("child1/subchild1/subsubchild1").AsTree()
	assert.Equal(t, 0, leaf.ParentLevel(root.Child(1).AsTree().Child(0)))
	assert.Equal(t, 2, leaf.ParentLevel(root))
	assert.Equal(t, -1, leaf.ParentLevel(root.Child(0)))
	assert.Equal(t, -1, leaf.ParentLevel(leaf))

	assert.Equal(t, Node(root), leaf.ParentByName("root"))
	assert.Nil(t, leaf.ParentByName("child0"))
	assert.Equal(t, Node(root), Root(leaf))
	assert.True(t, IsRoot(root))
	assert.False(t, IsRoot(leaf))
}
