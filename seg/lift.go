// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seg

import "code.hybscloud.com/fn"

// All returns a segment predicate satisfied when every element of the
// segment matches p. The empty segment satisfies it vacuously.
//
// All panics when p is nil.
func All[E any](p fn.Predicate[E]) Predicate[E] {
	if p == nil {
		panic("seg: All: nil predicate")
	}
	return func(s []E, from, to int) bool {
		for _, e := range s[from:to] {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Any returns a segment predicate satisfied when at least one element of
// the segment matches p. The empty segment never satisfies it.
//
// Any panics when p is nil.
func Any[E any](p fn.Predicate[E]) Predicate[E] {
	if p == nil {
		panic("seg: Any: nil predicate")
	}
	return func(s []E, from, to int) bool {
		for _, e := range s[from:to] {
			if p(e) {
				return true
			}
		}
		return false
	}
}

// None returns a segment predicate satisfied when no element of the segment
// matches p. It is the negation of [Any], so the empty segment satisfies it.
//
// None panics when p is nil.
func None[E any](p fn.Predicate[E]) Predicate[E] {
	return Any(p).Negated()
}

// Each returns a segment consumer that applies c to every element of the
// segment in index order.
//
// Each panics when c is nil.
func Each[E any](c fn.Consumer[E]) Consumer[E] {
	if c == nil {
		panic("seg: Each: nil consumer")
	}
	return func(s []E, from, to int) {
		for _, e := range s[from:to] {
			c(e)
		}
	}
}

// Count returns a segment function that returns the number of elements of
// the segment matching p.
//
// Count panics when p is nil.
func Count[E any](p fn.Predicate[E]) Func[E, int] {
	if p == nil {
		panic("seg: Count: nil predicate")
	}
	return func(s []E, from, to int) int {
		n := 0
		for _, e := range s[from:to] {
			if p(e) {
				n++
			}
		}
		return n
	}
}

// Index returns a segment function that returns the index into s of the
// first element of the segment matching p, or -1 when no element matches.
// The index is relative to s, not to the start of the segment.
//
// Index panics when p is nil.
func Index[E any](p fn.Predicate[E]) Func[E, int] {
	if p == nil {
		panic("seg: Index: nil predicate")
	}
	return func(s []E, from, to int) int {
		for i := from; i < to; i++ {
			if p(s[i]) {
				return i
			}
		}
		return -1
	}
}
