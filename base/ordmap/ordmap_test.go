// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	var om Map[string, int]
	assert.Equal(t, 0, om.Len())

	om.Add("b", 2)
	om.Add("a", 1)
	om.Add("c", 3)
	assert.Equal(t, []string{"b", "a", "c"}, om.Keys())
	assert.Equal(t, 1, om.ValueByKey("a"))
	assert.Equal(t, 0, om.ValueByKey("z"))

	om.Add("a", 10)
	assert.Equal(t, []string{"b", "a", "c"}, om.Keys())
	v, ok := om.ValueByKeyTry("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	assert.True(t, om.DeleteKey("b"))
	assert.False(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"a", "c"}, om.Keys())
	assert.Equal(t, 0, om.IndexByKey("a"))
	assert.Equal(t, 1, om.IndexByKey("c"))
	assert.Equal(t, -1, om.IndexByKey("b"))

	om.Reset()
	assert.Equal(t, 0, om.Len())
	_, ok = om.ValueByKeyTry("a")
	assert.False(t, ok)
}

func TestNilMap(t *testing.T) {
	var om *Map[string, int]
	assert.Equal(t, 0, om.Len())
	_, ok := om.ValueByKeyTry("a")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	var om Map[string, int]
	assert.Equal(t, "{}", om.String())
	om.Add("x", 1)
	om.Add("y", 2)
	assert.Equal(t, "{x: 1, y: 2}", om.String())
	keys := om.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"x", "y"}, om.Keys())
}
