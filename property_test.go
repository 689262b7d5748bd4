// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fn_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/fn"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randPredicate returns a random threshold predicate.
func randPredicate(rng *rand.Rand) fn.Predicate[int] {
	bound := randInt(rng)
	if rng.IntN(2) == 0 {
		return fn.LT(bound)
	}
	return fn.GT(bound)
}

// --- Group 1: Predicate Laws ---

// TestPropertyAndMatchesBuiltin: p.And(q)(x) ≡ p(x) && q(x)
func TestPropertyAndMatchesBuiltin(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p, q := randPredicate(rng), randPredicate(rng)
		x := randInt(rng)
		if got, want := p.And(q)(x), p(x) && q(x); got != want {
			t.Fatalf("And: %v != %v (x=%d)", got, want, x)
		}
	}
}

// TestPropertyOrMatchesBuiltin: p.Or(q)(x) ≡ p(x) || q(x)
func TestPropertyOrMatchesBuiltin(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p, q := randPredicate(rng), randPredicate(rng)
		x := randInt(rng)
		if got, want := p.Or(q)(x), p(x) || q(x); got != want {
			t.Fatalf("Or: %v != %v (x=%d)", got, want, x)
		}
	}
}

// TestPropertyNegatedMatchesBuiltin: p.Negated()(x) ≡ !p(x)
func TestPropertyNegatedMatchesBuiltin(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randPredicate(rng)
		x := randInt(rng)
		if got, want := p.Negated()(x), !p(x); got != want {
			t.Fatalf("Negated: %v != %v (x=%d)", got, want, x)
		}
	}
}

// TestPropertyDoubleNegation: p.Negated().Negated()(x) ≡ p(x)
func TestPropertyDoubleNegation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p := randPredicate(rng)
		x := randInt(rng)
		if got, want := p.Negated().Negated()(x), p(x); got != want {
			t.Fatalf("double negation: %v != %v (x=%d)", got, want, x)
		}
	}
}

// TestPropertyDeMorgan: p.And(q).Negated()(x) ≡ p.Negated().Or(q.Negated())(x)
func TestPropertyDeMorgan(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p, q := randPredicate(rng), randPredicate(rng)
		x := randInt(rng)
		left := p.And(q).Negated()(x)
		right := p.Negated().Or(q.Negated())(x)
		if left != right {
			t.Fatalf("De Morgan: %v != %v (x=%d)", left, right, x)
		}
	}
}

// TestPropertyAndAssociative: p.And(q).And(r)(x) ≡ p.And(q.And(r))(x)
func TestPropertyAndAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p, q, r := randPredicate(rng), randPredicate(rng), randPredicate(rng)
		x := randInt(rng)
		left := p.And(q).And(r)(x)
		right := p.And(q.And(r))(x)
		if left != right {
			t.Fatalf("And associativity: %v != %v (x=%d)", left, right, x)
		}
	}
}

// --- Group 2: Function Composition Laws ---

// TestPropertyThenAssociative: Then(Then(f, g), h)(x) ≡ Then(f, Then(g, h))(x)
func TestPropertyThenAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b, c := randInt(rng), randInt(rng), randInt(rng)
		f := fn.Func[int, int](func(x int) int { return x + a })
		g := fn.Func[int, int](func(x int) int { return x * 2 })
		h := fn.Func[int, int](func(x int) int { return x - b })
		x := c
		left := fn.Then(fn.Then(f, g), h)(x)
		right := fn.Then(f, fn.Then(g, h))(x)
		if left != right {
			t.Fatalf("Then associativity: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyComposeThenDual: Compose(f, g)(x) ≡ Then(g, f)(x)
func TestPropertyComposeThenDual(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := fn.Func[int, int](func(x int) int { return x + a })
		g := fn.Func[int, int](func(x int) int { return x * 3 })
		x := randInt(rng)
		left := fn.Compose(f, g)(x)
		right := fn.Then(g, f)(x)
		if left != right {
			t.Fatalf("Compose/Then duality: %d != %d (x=%d)", left, right, x)
		}
	}
}

// TestPropertyThenIdentity: Then(f, id) ≡ f ≡ Compose(f, id)
func TestPropertyThenIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	id := fn.Func[int, int](func(x int) int { return x })
	for range propertyN {
		a := randInt(rng)
		f := fn.Func[int, int](func(x int) int { return x ^ a })
		x := randInt(rng)
		if got := fn.Then(f, id)(x); got != f(x) {
			t.Fatalf("Then identity: %d != %d (x=%d)", got, f(x), x)
		}
		if got := fn.Compose(f, id)(x); got != f(x) {
			t.Fatalf("Compose identity: %d != %d (x=%d)", got, f(x), x)
		}
	}
}

// --- Group 3: Operator Laws ---

// TestPropertyOperatorIdentityNeutral: id.AndThen(op) ≡ op ≡ op.AndThen(id)
func TestPropertyOperatorIdentityNeutral(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	id := fn.Identity[int]()
	for range propertyN {
		a := randInt(rng)
		op := fn.UnaryOperator[int](func(x int) int { return x + a })
		x := randInt(rng)
		if got := id.AndThen(op)(x); got != op(x) {
			t.Fatalf("id.AndThen(op): %d != %d (x=%d)", got, op(x), x)
		}
		if got := op.AndThen(id)(x); got != op(x) {
			t.Fatalf("op.AndThen(id): %d != %d (x=%d)", got, op(x), x)
		}
	}
}

// TestPropertyOperatorAndThenComposeDual: op.Compose(q)(x) ≡ q.AndThen(op)(x)
func TestPropertyOperatorAndThenComposeDual(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randInt(rng), randInt(rng)
		op := fn.UnaryOperator[int](func(x int) int { return x + a })
		q := fn.UnaryOperator[int](func(x int) int { return x*2 - b })
		x := randInt(rng)
		if got, want := op.Compose(q)(x), q.AndThen(op)(x); got != want {
			t.Fatalf("Compose/AndThen duality: %d != %d (x=%d)", got, want, x)
		}
	}
}

// --- Group 4: Filter Equivalences ---

// TestPropertyAllOfMatchesAndChain: AllOf(p, q, r)(x) ≡ p.And(q).And(r)(x)
func TestPropertyAllOfMatchesAndChain(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p, q, r := randPredicate(rng), randPredicate(rng), randPredicate(rng)
		x := randInt(rng)
		left := fn.AllOf(p, q, r)(x)
		right := p.And(q).And(r)(x)
		if left != right {
			t.Fatalf("AllOf: %v != %v (x=%d)", left, right, x)
		}
	}
}

// TestPropertyAnyOfMatchesOrChain: AnyOf(p, q, r)(x) ≡ p.Or(q).Or(r)(x)
func TestPropertyAnyOfMatchesOrChain(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p, q, r := randPredicate(rng), randPredicate(rng), randPredicate(rng)
		x := randInt(rng)
		left := fn.AnyOf(p, q, r)(x)
		right := p.Or(q).Or(r)(x)
		if left != right {
			t.Fatalf("AnyOf: %v != %v (x=%d)", left, right, x)
		}
	}
}

// TestPropertyNoneOfMatchesNegatedAnyOf: NoneOf(p, q)(x) ≡ AnyOf(p, q).Negated()(x)
func TestPropertyNoneOfMatchesNegatedAnyOf(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		p, q := randPredicate(rng), randPredicate(rng)
		x := randInt(rng)
		left := fn.NoneOf(p, q)(x)
		right := fn.AnyOf(p, q).Negated()(x)
		if left != right {
			t.Fatalf("NoneOf: %v != %v (x=%d)", left, right, x)
		}
	}
}

// --- Group 5: Comparison Coherence ---

// TestPropertyEQNEComplement: EQ(a)(x) ≡ !NE(a)(x)
func TestPropertyEQNEComplement(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, x := randInt(rng), randInt(rng)
		if fn.EQ(a)(x) == fn.NE(a)(x) {
			t.Fatalf("EQ and NE agree (a=%d, x=%d)", a, x)
		}
	}
}

// TestPropertyLTGEComplement: LT(a)(x) ≡ !GE(a)(x)
func TestPropertyLTGEComplement(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, x := randInt(rng), randInt(rng)
		if fn.LT(a)(x) == fn.GE(a)(x) {
			t.Fatalf("LT and GE agree (a=%d, x=%d)", a, x)
		}
	}
}

// TestPropertyLEMatchesLTOrEQ: LE(a)(x) ≡ LT(a).Or(EQ(a))(x)
func TestPropertyLEMatchesLTOrEQ(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, x := randInt(rng), randInt(rng)
		left := fn.LE(a)(x)
		right := fn.LT(a).Or(fn.EQ(a))(x)
		if left != right {
			t.Fatalf("LE: %v != %v (a=%d, x=%d)", left, right, a, x)
		}
	}
}

// TestPropertyBetweenMatchesGEAndLT: Between(lo, hi)(x) ≡ GE(lo).And(LT(hi))(x)
func TestPropertyBetweenMatchesGEAndLT(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		lo, hi, x := randInt(rng), randInt(rng), randInt(rng)
		left := fn.Between(lo, hi)(x)
		right := fn.GE(lo).And(fn.LT(hi))(x)
		if left != right {
			t.Fatalf("Between: %v != %v (lo=%d, hi=%d, x=%d)", left, right, lo, hi, x)
		}
	}
}
