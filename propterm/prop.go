// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package propterm

import "bitbucket.org/creachadair/stringset"

// Kind discriminates the eight Prop node shapes. It replaces the source
// project's runtime class-name dispatch with a tagged discriminant that a
// type switch can handle exhaustively.
type Kind int

const (
	// KindVar is a variable occurrence, treated as a 0-ary proposition.
	KindVar Kind = iota
	// KindNot is logical negation.
	KindNot
	// KindImply is material implication.
	KindImply
	// KindForall is universal quantification.
	KindForall
	// KindAnd is the extended conjunction alias.
	KindAnd
	// KindOr is the extended disjunction alias.
	KindOr
	// KindIff is the extended biconditional alias.
	KindIff
	// KindExists is the extended existential-quantification alias.
	KindExists
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindNot:
		return "Not"
	case KindImply:
		return "Imply"
	case KindForall:
		return "Forall"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindIff:
		return "Iff"
	case KindExists:
		return "Exists"
	default:
		return "Unknown"
	}
}

// Prop is a proposition: a formula of first-order logic over variables and
// the connectives not, imply, forall (core), plus and, or, iff, exists
// (extended forms defined by one-step reduction to the core four).
//
// Prop values are immutable once built. Free/bound variable sets are not
// cached on the node: each FreeVars/BoundVars call rebuilds the set from
// the node's children.
type Prop interface {
	// Kind reports which of the eight node shapes this Prop is.
	Kind() Kind

	// FreeVars returns the set of free variables. Callers must not mutate
	// the returned set.
	FreeVars() stringset.Set

	// BoundVars returns the set of bound variables. Callers must not
	// mutate the returned set.
	BoundVars() stringset.Set

	// IsFree reports whether x occurs free.
	IsFree(x Variable) bool

	// IsBounded reports whether x occurs bound.
	IsBounded(x Variable) bool

	// Substitute returns a Prop with every occurrence of x replaced by y.
	// Substitution is capture-permitting by contract; callers that need
	// capture-avoidance (the kernel's Axiom4) must check the side
	// condition themselves before calling Substitute.
	Substitute(x, y Variable) Prop

	// Replacement returns a Prop with every subtree structurally equal to
	// sub replaced by rep. Not capture-avoiding.
	Replacement(sub, rep Prop) Prop

	// Eval expands one semantic step of an extended form into the core
	// four; it is the identity on core forms.
	Eval() Prop

	// Equals is structural (syntactic) equality: two extended-form Props are equal iff their one-step
	// expansions are structurally equal; an extended Prop is never equal
	// to its own expansion.
	Equals(other Prop) bool

	// String returns a debugging form. Not part of any parsing contract.
	String() string
}

// extended is implemented only by the four alias node types (And, Or, Iff,
// Exists); it exposes the eagerly computed single-step core expansion that
// both Eval and Equals consult.
type extended interface {
	Prop
	expansion() Prop
}

// isExtended reports whether p is one of the four alias forms.
func isExtended(p Prop) (extended, bool) {
	e, ok := p.(extended)
	return e, ok
}

// eq is the single place that implements the structural/extended-aware
// equality rule described on Prop.Equals; every concrete Prop's Equals
// method forwards here.
func eq(a, b Prop) bool {
	aExt, aIsExt := isExtended(a)
	bExt, bIsExt := isExtended(b)
	if aIsExt != bIsExt {
		// An extended Prop is never equal to a core Prop, even its own
		// expansion -- this keeps proof-term displays compact and gives
		// ToEvalAxiom/FromEvalAxiom real work to do.
		return false
	}
	if aIsExt {
		return structEq(aExt.expansion(), bExt.expansion())
	}
	return structEq(a, b)
}

// structEq compares two Props node-by-node by Kind and children, using eq
// (not structEq) to compare children so that nested extended forms are
// still compared via their own expansion rule.
func structEq(a, b Prop) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindVar:
		av, _ := VarOf(a)
		bv, _ := VarOf(b)
		return av.Equals(bv)
	case KindNot:
		ac, _ := NotChild(a)
		bc, _ := NotChild(b)
		return eq(ac, bc)
	case KindImply:
		al, ar, _ := ImplyParts(a)
		bl, br, _ := ImplyParts(b)
		return eq(al, bl) && eq(ar, br)
	case KindForall:
		av, abody, _ := ForallParts(a)
		bv, bbody, _ := ForallParts(b)
		return av.Equals(bv) && eq(abody, bbody)
	default:
		// Extended kinds never reach structEq directly: eq() always
		// dereferences them to their expansion first, and an expansion
		// is always a core Prop.
		return false
	}
}
