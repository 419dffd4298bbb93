// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a generic map that remembers
// the order in which its keys were first added.
package ordmap

import (
	"fmt"
	"slices"
	"strings"
)

// Map is a map from keys to values that keeps its keys in the order
// they were first added. Lookup is by map; deleting a key shifts the
// keys after it. The zero value is an empty map ready to use, and the
// read methods also work on a nil *Map.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Add sets the value for the given key. A new key goes at the end
// of the order; an existing key keeps its position.
func (om *Map[K, V]) Add(key K, val V) {
	if om.values == nil {
		om.values = map[K]V{}
	}
	if _, has := om.values[key]; !has {
		om.keys = append(om.keys, key)
	}
	om.values[key] = val
}

// ValueByKey returns the value for the given key,
// or the zero value if the key is not in the map.
func (om *Map[K, V]) ValueByKey(key K) V {
	v, _ := om.ValueByKeyTry(key)
	return v
}

// ValueByKeyTry returns the value for the given key
// and whether the key is in the map.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if om == nil {
		var zv V
		return zv, false
	}
	v, ok := om.values[key]
	return v, ok
}

// IndexByKey returns the position of the given key in the order, or -1.
func (om *Map[K, V]) IndexByKey(key K) int {
	if om == nil {
		return -1
	}
	return slices.Index(om.keys, key)
}

// Len returns the number of keys.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.keys)
}

// DeleteKey removes the given key and its value,
// returning whether the key was in the map.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx := om.IndexByKey(key)
	if idx < 0 {
		return false
	}
	om.keys = slices.Delete(om.keys, idx, idx+1)
	delete(om.values, key)
	return true
}

// Reset removes all keys.
func (om *Map[K, V]) Reset() {
	om.keys = nil
	om.values = nil
}

// Keys returns a copy of the keys in order.
func (om *Map[K, V]) Keys() []K {
	if om == nil {
		return []K{}
	}
	return append(make([]K, 0, len(om.keys)), om.keys...)
}

func (om *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range om.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", k, om.values[k])
	}
	sb.WriteString("}")
	return sb.String()
}
