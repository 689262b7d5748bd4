// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fn provides first-class operation types — predicates, consumers,
// functions, operators, and suppliers over one to four arguments — together
// with the combinators that compose them.
//
// Each operation is a defined function type, so any ordinary Go function or
// closure with a matching signature converts to it implicitly. Combinators
// build compound operations out of simple ones without invoking anything:
// evaluation happens only when the compound value itself is called.
//
// # Shape Families
//
// Four generated families cover arities one through four. Type parameters
// replace the per-primitive variants a monomorphic language would need; a
// predicate over int16 values is simply Predicate[int16].
//
//   - [Predicate], [BiPredicate], [TriPredicate], [TetraPredicate]:
//     func(...) bool
//   - [Consumer], [BiConsumer], [TriConsumer], [TetraConsumer]:
//     func(...) with no result
//   - [Func], [BiFunc], [TriFunc], [TetraFunc]: func(...) R
//   - [UnaryOperator], [BinaryOperator]: functions whose result type equals
//     the argument type
//   - [Supplier]: func() R
//
// # Combinators
//
// Shape-preserving combinators are methods; combinators that change a type
// parameter are package-level functions, since Go methods cannot introduce
// new type parameters.
//
//   - [Predicate.And], [Predicate.Or]: short-circuit conjunction and
//     disjunction (and likewise on the Bi/Tri/Tetra shapes)
//   - [Predicate.Negated]: logical negation
//   - [Consumer.AndThen]: sequencing, both consumers always run
//   - [Then], [Then2], [Then3], [Then4]: apply a function, then transform
//     its result
//   - [Compose]: transform the argument before applying a one-argument
//     function
//   - [UnaryOperator.AndThen], [UnaryOperator.Compose],
//     [BinaryOperator.AndThen]: operator chaining within one element type
//   - [Identity]: the do-nothing operator
//
// The conjunction p.And(q) evaluates q only when p reports true, and
// p.Or(q) evaluates q only when p reports false, matching the && and ||
// operators. Compound values capture their operands: later reassignment of
// the variables they were built from has no effect on the compound.
//
// # Argument Predicates
//
// Small factories build the leaf predicates that combinator chains start
// from:
//
//   - [EQ], [NE]: equality over comparable types
//   - [LT], [LE], [GT], [GE], [Between]: order comparisons over ordered
//     types
//   - [Always], [Never]: constant predicates
//   - [AllOf], [AnyOf], [NoneOf]: variadic conjunction, disjunction, and
//     rejection
//
// # Error Model
//
// Combinators validate their operands eagerly: composing with a nil operand
// panics at combination time with a message of the form
//
//	fn: <Type>.<Method>: nil <operand>
//
// so the fault surfaces where the compound is built, not where it is later
// called. Panics raised by operation bodies propagate to the caller of the
// compound unchanged; the package never recovers them.
//
// # Concurrency
//
// Evaluation is synchronous on the caller's stack; the package starts no
// goroutines and holds no locks. Operation values are immutable once built,
// so any compound may be invoked from multiple goroutines concurrently.
// State captured by user-supplied bodies is outside this guarantee and
// needs whatever synchronization the bodies' own semantics require.
//
// # Array Segments
//
// The subpackage [code.hybscloud.com/fn/seg] carries the same families over
// array segments — an (s, from, to) triple designating the half-open window
// s[from:to] — for callers that index windows of a shared backing array
// rather than slicing it.
//
// # Code Generation
//
// The arity-indexed families in this package and in seg are rendered by
// cmd/fngen from the templates in internal/gen; run go generate to refresh
// them after editing the templates.
package fn

//go:generate go run ./cmd/fngen
