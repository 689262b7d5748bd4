// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fn

// UnaryOperator represents an operation on a single argument that produces
// a result of the same type as the argument.
type UnaryOperator[T any] func(T) T

// AndThen returns a compound operator that first applies op to its argument
// and then applies after to op's result.
//
// AndThen panics when after is nil.
func (op UnaryOperator[T]) AndThen(after UnaryOperator[T]) UnaryOperator[T] {
	if after == nil {
		panic("fn: UnaryOperator.AndThen: nil operator")
	}
	return func(x T) T {
		return after(op(x))
	}
}

// Compose returns a compound operator that first applies before to its
// argument and then applies op to before's result.
//
// Compose panics when before is nil.
func (op UnaryOperator[T]) Compose(before UnaryOperator[T]) UnaryOperator[T] {
	if before == nil {
		panic("fn: UnaryOperator.Compose: nil operator")
	}
	return func(x T) T {
		return op(before(x))
	}
}

// identity returns its argument unchanged.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identity[T any](x T) T { return x }

// Identity returns an operator that always returns its input argument.
func Identity[T any]() UnaryOperator[T] {
	return identity[T]
}

// BinaryOperator represents an operation on two arguments that produces a
// result of the same type as the arguments.
type BinaryOperator[T any] func(T, T) T

// AndThen returns a compound operator that first applies op to its arguments
// and then applies after to op's result.
//
// AndThen panics when after is nil.
func (op BinaryOperator[T]) AndThen(after UnaryOperator[T]) BinaryOperator[T] {
	if after == nil {
		panic("fn: BinaryOperator.AndThen: nil operator")
	}
	return func(x, y T) T {
		return after(op(x, y))
	}
}
