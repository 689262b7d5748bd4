// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seg provides the fn operation families over array segments.
//
// A segment is the triple (s, from, to) designating the half-open window
// s[from:to] of a backing slice: from is the first index included and to is
// the first index excluded. Operation types here take the triple explicitly
// instead of a sub-slice, for callers that address windows of one shared
// backing array and want the window arithmetic visible at the call site.
//
// Segment operations do not validate the triple. Indexes outside
// [0, len(s)] or from > to surface as the usual runtime bounds panics when
// the operation body indexes the slice, exactly as s[from:to] would.
//
// # Shape Families
//
//   - [Predicate], [ObjPredicate]: segment predicates, with [Predicate.And],
//     [Predicate.Or], and [Predicate.Negated] combinators
//   - [Consumer], [ObjConsumer]: segment consumers, with
//     [Consumer.AndThen]
//   - [Func], [ObjFunc]: segment functions, with [Then] and [ThenObj]
//
// The Obj variants thread one leading value of an independent type through
// the segment operation, mirroring the plain variants otherwise.
//
// # Element Lifts
//
// Per-element operations from the root package lift to whole-segment
// operations:
//
//   - [All], [Any], [None]: quantify an element predicate over a segment
//   - [Each]: apply an element consumer to every element in order
//   - [Count], [Index]: derive segment functions from an element predicate
//
// Combinators follow the root package's error model: composing with a nil
// operand panics at combination time with a message of the form
// seg: <Type>.<Method>: nil <operand>.
package seg
