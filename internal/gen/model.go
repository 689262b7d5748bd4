// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gen renders the arity-indexed operation families of the fn and
// seg packages from the templates in templates/. The committed output is
// checked in; cmd/fngen re-runs the rendering and, with --check, verifies
// the committed files are current.
package gen

// Shape describes one operation type of a generated family: its name, its
// documentation fragment, and the signature fragments the family templates
// splice together.
type Shape struct {
	Name string // type name, e.g. "BiPredicate"
	Doc  string // completes "<Name> represents ..."

	TParams  string // type parameter declaration, e.g. "[T, U any]"
	TArgs    string // type argument list, e.g. "[T, U]"
	ArgTypes string // unnamed parameter list, e.g. "(T, U)"
	FuncArgs string // named parameter list, e.g. "(x T, y U)"
	CallArgs string // call argument list, e.g. "(x, y)"
	SameArgs string // "the same argument" or "the same arguments"

	// Function family only.
	ThenName    string // compound constructor name, e.g. "Then2"
	ThenTParams string // its type parameters, e.g. "[T, U, R, S any]"
	SelfInst    string // instantiated operand type, e.g. "BiFunc[T, U, R]"
	AfterType   string // type of the result transform, e.g. "Func[R, S]"
	OutInst     string // instantiated compound type, e.g. "BiFunc[T, U, S]"
	ArgNoun     string // "its argument" or "its arguments"
}

// Family groups the shapes rendered into one output file.
type Family struct {
	Imports []string
	Shapes  []Shape
}

// Model is the data handed to the templates of one package.
type Model struct {
	Pkg        string
	Predicates Family
	Consumers  Family
	Functions  Family

	// HasCompose marks the package whose function family additionally
	// carries the argument-side Compose combinator.
	HasCompose bool
}
