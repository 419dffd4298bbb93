// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testdata

import (
	"cogentcore.org/sprite/events"
	"cogentcore.org/sprite/tree"
)

// NodeEmbed embeds tree.NodeBase and adds a couple of fields.
// It counts the events named "ping" that reach it.
type NodeEmbed struct {
	tree.NodeBase
	Mbr1 string
	Mbr2 int
	Tags []string

	// Inits is the number of times Init has been called.
	Inits int `copier:"-"`

	// Pings is the number of ping events received.
	Pings int `copier:"-"`
}

// NewNodeEmbed returns a new root NodeEmbed on the given bus.
func NewNodeEmbed(bus *events.Bus) *NodeEmbed {
	return tree.New[NodeEmbed](bus)
}

func (n *NodeEmbed) Init() {
	n.Inits++
	n.On("ping", func(e *events.Event) {
		n.Pings++
	})
}
