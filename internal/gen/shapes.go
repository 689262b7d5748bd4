// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"strconv"
	"strings"
)

// argWords spells the arity inside the generated documentation.
var argWords = [4]string{
	"a single argument",
	"two arguments",
	"three arguments",
	"four arguments",
}

var (
	typeLetters = [4]string{"T", "U", "V", "W"}
	argLetters  = [4]string{"x", "y", "z", "w"}
	arityPrefix = [4]string{"", "Bi", "Tri", "Tetra"}
)

// valueShape assembles the signature fragments shared by every root family
// shape of the given arity, 1 through 4.
func valueShape(arity int) Shape {
	letters := typeLetters[:arity]
	args := argLetters[:arity]
	named := make([]string, arity)
	for i := range named {
		named[i] = args[i] + " " + letters[i]
	}
	sameArgs := "the same arguments"
	if arity == 1 {
		sameArgs = "the same argument"
	}
	return Shape{
		TParams:  "[" + strings.Join(letters, ", ") + " any]",
		TArgs:    "[" + strings.Join(letters, ", ") + "]",
		ArgTypes: "(" + strings.Join(letters, ", ") + ")",
		FuncArgs: "(" + strings.Join(named, ", ") + ")",
		CallArgs: "(" + strings.Join(args, ", ") + ")",
		SameArgs: sameArgs,
	}
}

// Root returns the model for the root fn package: the predicate, consumer,
// and function families over one to four value arguments.
func Root() Model {
	m := Model{Pkg: "fn", HasCompose: true}
	for arity := 1; arity <= 4; arity++ {
		prefix := arityPrefix[arity-1]
		words := argWords[arity-1]
		letters := strings.Join(typeLetters[:arity], ", ")

		p := valueShape(arity)
		p.Name = prefix + "Predicate"
		p.Doc = "a predicate over " + words
		m.Predicates.Shapes = append(m.Predicates.Shapes, p)

		c := valueShape(arity)
		c.Name = prefix + "Consumer"
		c.Doc = "an operation that accepts " + words + " and returns no result"
		m.Consumers.Shapes = append(m.Consumers.Shapes, c)

		f := valueShape(arity)
		f.Name = prefix + "Func"
		f.Doc = "a function that takes " + words + " and produces a result"
		f.TParams = "[" + letters + ", R any]"
		f.ThenName = "Then"
		if arity > 1 {
			f.ThenName += strconv.Itoa(arity)
		}
		f.ThenTParams = "[" + letters + ", R, S any]"
		f.SelfInst = f.Name + "[" + letters + ", R]"
		f.AfterType = "Func[R, S]"
		f.OutInst = f.Name + "[" + letters + ", S]"
		f.ArgNoun = "its arguments"
		if arity == 1 {
			f.ArgNoun = "its argument"
		}
		m.Functions.Shapes = append(m.Functions.Shapes, f)
	}
	return m
}

// Seg returns the model for the seg package: the same families over an
// array segment, each in a plain and an Obj variant.
func Seg() Model {
	plain := Shape{
		TParams:  "[E any]",
		TArgs:    "[E]",
		ArgTypes: "([]E, int, int)",
		FuncArgs: "(s []E, from, to int)",
		CallArgs: "(s, from, to)",
		SameArgs: "the same arguments",
	}
	obj := Shape{
		TParams:  "[T, E any]",
		TArgs:    "[T, E]",
		ArgTypes: "(T, []E, int, int)",
		FuncArgs: "(obj T, s []E, from, to int)",
		CallArgs: "(obj, s, from, to)",
		SameArgs: "the same arguments",
	}

	m := Model{Pkg: "seg"}

	p, po := plain, obj
	p.Name, p.Doc = "Predicate", "a predicate over an array segment"
	po.Name, po.Doc = "ObjPredicate", "a predicate over a value and an array segment"
	m.Predicates.Shapes = []Shape{p, po}

	c, co := plain, obj
	c.Name = "Consumer"
	c.Doc = "an operation that accepts an array segment and returns no result"
	co.Name = "ObjConsumer"
	co.Doc = "an operation that accepts a value and an array segment and returns no result"
	m.Consumers.Shapes = []Shape{c, co}

	f, fo := plain, obj
	f.Name = "Func"
	f.Doc = "a function that takes an array segment and produces a result"
	f.TParams = "[E, R any]"
	f.ThenName = "Then"
	f.ThenTParams = "[E, R, S any]"
	f.SelfInst = "Func[E, R]"
	f.AfterType = "fn.Func[R, S]"
	f.OutInst = "Func[E, S]"
	f.ArgNoun = "its arguments"
	fo.Name = "ObjFunc"
	fo.Doc = "a function that takes a value and an array segment and produces a result"
	fo.TParams = "[T, E, R any]"
	fo.ThenName = "ThenObj"
	fo.ThenTParams = "[T, E, R, S any]"
	fo.SelfInst = "ObjFunc[T, E, R]"
	fo.AfterType = "fn.Func[R, S]"
	fo.OutInst = "ObjFunc[T, E, S]"
	fo.ArgNoun = "its arguments"
	m.Functions.Shapes = []Shape{f, fo}
	m.Functions.Imports = []string{"code.hybscloud.com/fn"}

	return m
}
