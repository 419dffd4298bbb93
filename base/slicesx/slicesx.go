// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

// Search returns the index of the item in the given slice that matches the target
// according to the given match function, using the given optional starting index
// to optimize the search by searching bidirectionally outward from given index.
// This is much faster when you have some idea about where the item might be.
// If no start index is given, it starts at the front, which matches the
// behavior of [slices.IndexFunc]. It returns -1 if no item matching the match
// function is found.
func Search[E any](slice []E, match func(e E) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	si := 0
	if len(startIndex) > 0 && startIndex[0] > 0 {
		si = startIndex[0]
	}
	if si == 0 {
		for idx, e := range slice {
			if match(e) {
				return idx
			}
		}
		return -1
	}
	if si >= n {
		si = n - 1
	}
	ui := si + 1
	di := si
	for ui < n || di >= 0 {
		if di >= 0 {
			if match(slice[di]) {
				return di
			}
			di--
		}
		if ui < n {
			if match(slice[ui]) {
				return ui
			}
			ui++
		}
	}
	return -1
}

// Without returns a copy of the given slice with the element
// at the given index removed. The original slice is not modified.
func Without[E any](slice []E, index int) []E {
	res := make([]E, 0, len(slice)-1)
	res = append(res, slice[:index]...)
	return append(res, slice[index+1:]...)
}
