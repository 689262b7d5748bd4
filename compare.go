// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fn

import "golang.org/x/exp/constraints"

// EQ returns a predicate reporting whether its argument equals want.
func EQ[T comparable](want T) Predicate[T] {
	return func(x T) bool {
		return x == want
	}
}

// NE returns a predicate reporting whether its argument differs from want.
func NE[T comparable](want T) Predicate[T] {
	return func(x T) bool {
		return x != want
	}
}

// LT returns a predicate reporting whether its argument is less than bound.
func LT[T constraints.Ordered](bound T) Predicate[T] {
	return func(x T) bool {
		return x < bound
	}
}

// LE returns a predicate reporting whether its argument is less than or
// equal to bound.
func LE[T constraints.Ordered](bound T) Predicate[T] {
	return func(x T) bool {
		return x <= bound
	}
}

// GT returns a predicate reporting whether its argument is greater than
// bound.
func GT[T constraints.Ordered](bound T) Predicate[T] {
	return func(x T) bool {
		return x > bound
	}
}

// GE returns a predicate reporting whether its argument is greater than or
// equal to bound.
func GE[T constraints.Ordered](bound T) Predicate[T] {
	return func(x T) bool {
		return x >= bound
	}
}

// Between returns a predicate reporting whether its argument lies in the
// half-open interval [lo, hi).
func Between[T constraints.Ordered](lo, hi T) Predicate[T] {
	return func(x T) bool {
		return lo <= x && x < hi
	}
}

// Always returns a predicate that reports true for every argument.
func Always[T any]() Predicate[T] {
	return alwaysTrue[T]
}

// Never returns a predicate that reports false for every argument.
func Never[T any]() Predicate[T] {
	return alwaysFalse[T]
}

// alwaysTrue and alwaysFalse are named generic functions for the same reason
// as identity: a static function value per type instantiation instead of a
// closure allocation per call.
func alwaysTrue[T any](T) bool  { return true }
func alwaysFalse[T any](T) bool { return false }
