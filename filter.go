// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fn

// AllOf returns a predicate satisfied when every predicate in ps is
// satisfied. Evaluation is left to right and stops at the first predicate
// that reports false. With no operands the result reports true.
//
// AllOf panics when an element of ps is nil.
func AllOf[T any](ps ...Predicate[T]) Predicate[T] {
	for _, p := range ps {
		if p == nil {
			panic("fn: AllOf: nil predicate")
		}
	}
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// AnyOf returns a predicate satisfied when at least one predicate in ps is
// satisfied. Evaluation is left to right and stops at the first predicate
// that reports true. With no operands the result reports false.
//
// AnyOf panics when an element of ps is nil.
func AnyOf[T any](ps ...Predicate[T]) Predicate[T] {
	for _, p := range ps {
		if p == nil {
			panic("fn: AnyOf: nil predicate")
		}
	}
	return func(x T) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// NoneOf returns a predicate satisfied when no predicate in ps is satisfied.
// It is the negation of [AnyOf], with the same evaluation order. With no
// operands the result reports true.
//
// NoneOf panics when an element of ps is nil.
func NoneOf[T any](ps ...Predicate[T]) Predicate[T] {
	return AnyOf(ps...).Negated()
}
