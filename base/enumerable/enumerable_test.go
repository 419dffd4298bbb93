// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumerable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueries(t *testing.T) {
	s := Of([]string{"apple", "banana", "cherry", "avocado"})
	startsA := func(v string) bool { return strings.HasPrefix(v, "a") }

	assert.Equal(t, []string{"apple", "banana", "cherry", "avocado"}, Slice(s))
	assert.Equal(t, 2, IndexOf(s, "cherry"))
	assert.Equal(t, -1, IndexOf(s, "durian"))
	assert.True(t, Contains(s, "banana"))
	assert.False(t, Contains(s, "durian"))
	assert.Equal(t, []string{"apple", "avocado"}, Filter(s, startsA))
	assert.Equal(t, 2, Count(s, startsA))
	assert.True(t, Any(s, startsA))
	assert.False(t, Every(s, startsA))
	assert.Equal(t, []int{5, 6, 6, 7}, Map(s, func(v string) int { return len(v) }))

	v, ok := Find(s, func(v string) bool { return strings.HasPrefix(v, "c") })
	assert.True(t, ok)
	assert.Equal(t, "cherry", v)
	_, ok = Find(s, func(v string) bool { return v == "" })
	assert.False(t, ok)

	f, ok := First(s)
	assert.True(t, ok)
	assert.Equal(t, "apple", f)
	l, ok := Last(s)
	assert.True(t, ok)
	assert.Equal(t, "avocado", l)
}

func TestEmpty(t *testing.T) {
	s := Of[int](nil)
	assert.NotNil(t, Slice(s))
	assert.Empty(t, Slice(s))
	assert.True(t, Every(s, func(v int) bool { return false }))
	_, ok := First(s)
	assert.False(t, ok)
	_, ok = Last(s)
	assert.False(t, ok)
}

func TestIteration(t *testing.T) {
	s := Of([]int{10, 20, 30})
	var got []int
	for i, v := range All(s) {
		got = append(got, i, v)
	}
	assert.Equal(t, []int{0, 10, 1, 20, 2, 30}, got)

	got = nil
	for v := range Values(s) {
		if v == 30 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 20}, got)

	sum := 0
	Each(s, func(i int, v int) { sum += v })
	assert.Equal(t, 60, sum)
}

func TestShrinkingSource(t *testing.T) {
	data := []int{1, 2, 3, 4}
	s := Func[int]{
		LenFunc: func() int { return len(data) },
		AtFunc:  func(i int) int { return data[i] },
	}
	var seen []int
	for _, v := range All[int](s) {
		seen = append(seen, v)
		data = data[:len(data)-1]
	}
	assert.Equal(t, []int{1, 2}, seen)
}
