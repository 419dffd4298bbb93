// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slicesx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	s := []int{5, 6, 7, 8, 9, 7}
	is := func(v int) func(e int) bool {
		return func(e int) bool { return e == v }
	}
	assert.Equal(t, -1, Search([]int{}, is(1)))
	assert.Equal(t, 0, Search(s, is(5)))
	assert.Equal(t, 2, Search(s, is(7)))
	assert.Equal(t, -1, Search(s, is(10)))

	// searching outward from a start index finds the nearest match
	assert.Equal(t, 5, Search(s, is(7), 4))
	assert.Equal(t, 0, Search(s, is(5), 3))
	assert.Equal(t, 4, Search(s, is(9), 100))
}

func TestWithout(t *testing.T) {
	s := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "c"}, Without(s, 1))
	assert.Equal(t, []string{"b", "c"}, Without(s, 0))
	assert.Equal(t, []string{"a", "b"}, Without(s, 2))
	assert.Equal(t, []string{"a", "b", "c"}, s)
}
