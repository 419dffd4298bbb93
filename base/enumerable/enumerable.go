// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumerable provides generic sequence operations over any
// collection that can report its length and return the element at an
// index. Types expose a [Source] view of their contents instead of
// their backing storage, and get iteration, search and filtering
// from this package.
package enumerable

import (
	"iter"
)

// Source is the minimal shape of an enumerable collection.
type Source[T any] interface {

	// Len returns the number of elements.
	Len() int

	// At returns the element at the given index.
	At(i int) T
}

// Func adapts a length function and an accessor function to a [Source].
type Func[T any] struct {
	LenFunc func() int
	AtFunc  func(i int) T
}

func (f Func[T]) Len() int   { return f.LenFunc() }
func (f Func[T]) At(i int) T { return f.AtFunc(i) }

// Of returns a [Source] over the given slice.
func Of[T any](s []T) Source[T] {
	return Func[T]{
		LenFunc: func() int { return len(s) },
		AtFunc:  func(i int) T { return s[i] },
	}
}

// All returns an iterator over the index and element pairs of the source.
// The length is re-read on every step, so elements removed by the loop
// body end the iteration early instead of panicking.
func All[T any](s Source[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the source.
func Values[T any](s Source[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range All(s) {
			if !yield(v) {
				return
			}
		}
	}
}

// Each calls the given function on every element in order.
func Each[T any](s Source[T], fun func(i int, v T)) {
	for i, v := range All(s) {
		fun(i, v)
	}
}

// Slice returns a new slice holding the elements of the source.
// It returns a non-nil empty slice for an empty source.
func Slice[T any](s Source[T]) []T {
	res := make([]T, 0, s.Len())
	for _, v := range All(s) {
		res = append(res, v)
	}
	return res
}

// IndexFunc returns the index of the first element satisfying match,
// or -1 if there is none.
func IndexFunc[T any](s Source[T], match func(v T) bool) int {
	for i, v := range All(s) {
		if match(v) {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first element equal to target,
// or -1 if there is none.
func IndexOf[T comparable](s Source[T], target T) int {
	return IndexFunc(s, func(v T) bool { return v == target })
}

// Contains returns whether the source holds an element equal to target.
func Contains[T comparable](s Source[T], target T) bool {
	return IndexOf(s, target) >= 0
}

// Find returns the first element satisfying match and true,
// or the zero value and false if there is none.
func Find[T any](s Source[T], match func(v T) bool) (T, bool) {
	if i := IndexFunc(s, match); i >= 0 {
		return s.At(i), true
	}
	var zv T
	return zv, false
}

// Filter returns the elements satisfying match, in order.
func Filter[T any](s Source[T], match func(v T) bool) []T {
	var res []T
	for _, v := range All(s) {
		if match(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map returns the result of calling fun on every element, in order.
func Map[T, R any](s Source[T], fun func(v T) R) []R {
	res := make([]R, 0, s.Len())
	for _, v := range All(s) {
		res = append(res, fun(v))
	}
	return res
}

// Any returns whether at least one element satisfies match.
func Any[T any](s Source[T], match func(v T) bool) bool {
	return IndexFunc(s, match) >= 0
}

// Every returns whether all elements satisfy match.
// It is true for an empty source.
func Every[T any](s Source[T], match func(v T) bool) bool {
	return IndexFunc(s, func(v T) bool { return !match(v) }) < 0
}

// Count returns the number of elements satisfying match.
func Count[T any](s Source[T], match func(v T) bool) int {
	n := 0
	for _, v := range All(s) {
		if match(v) {
			n++
		}
	}
	return n
}

// First returns the first element and true,
// or the zero value and false for an empty source.
func First[T any](s Source[T]) (T, bool) {
	if s.Len() == 0 {
		var zv T
		return zv, false
	}
	return s.At(0), true
}

// Last returns the last element and true,
// or the zero value and false for an empty source.
func Last[T any](s Source[T]) (T, bool) {
	n := s.Len()
	if n == 0 {
		var zv T
		return zv, false
	}
	return s.At(n - 1), true
}
