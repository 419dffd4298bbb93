// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	if !fun(n.this()) { // false return means stop
		return false
	}
	return n.WalkUpParent(fun)
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself), from the nearest to the root, obtaining each of them with
// [Node.Parent]. It stops walking if the function returns [Break] and keeps
// walking if it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	cur := n.this()
	for {
		parent := cur.Parent()
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		if !fun(parent) { // false return means stop
			return false
		}
		cur = parent
	}
}

// WalkDown calls the given function on the node and all of its descendants
// in a depth-first manner, sequentially in the current goroutine. It stops
// walking the current branch of the tree if the function returns [Break]
// and keeps walking if it returns [Continue]. The children of each node are
// read after the function is called on it, so the function may change them.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	this := n.this()
	if !fun(this) {
		return
	}
	for _, kid := range n.Children() {
		kid.AsTree().WalkDown(fun)
	}
}
