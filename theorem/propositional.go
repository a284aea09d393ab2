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

// Package theorem is a catalogue of propositional and quantifier lemmas
// derived once, here, from the kernel axioms and the Deduction Theorem, so
// that completeness (and any other caller) never has to re-derive them.
// Functions whose inputs can violate a precondition (Transitive,
// ImplyExchange, the quantifier lemmas, Replacement, ExistRenameVar,
// ChoiceToExist) return a *kernel.Proof together with whatever error the
// underlying kernel/deduction step raises. The unconditional lemmas
// (Reflexive, DoubleNotElim, AndIntro, ...) return only the *kernel.Proof
// and panic if an internal kernel step is rejected.
package theorem

import (
	"github.com/ColorlessBoy/first-order-logic/deduction"
	"github.com/ColorlessBoy/first-order-logic/kernel"
	"github.com/ColorlessBoy/first-order-logic/propterm"
)

// Reflexive proves p=>p.
func Reflexive(p propterm.Prop) *kernel.Proof {
	x1 := kernel.Axiom1(p, propterm.Imply(p, p))
	x2 := kernel.Axiom2(p, propterm.Imply(p, p), p)
	x3, err := kernel.ModusPonens(x1, x2)
	if err != nil {
		panic("theorem: Reflexive: " + err.Error())
	}
	x4 := kernel.Axiom1(p, p)
	x5, err := kernel.ModusPonens(x4, x3)
	if err != nil {
		panic("theorem: Reflexive: " + err.Error())
	}
	return x5
}

// Transitive composes ab: a=>b and bc: b=>c into a proof of a=>c. It fails
// if either proof does not conclude an implication, or if ab's consequent
// does not match bc's antecedent.
func Transitive(ab, bc *kernel.Proof) (*kernel.Proof, error) {
	a, b, ok := propterm.ImplyParts(ab.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "Transitive", Message: "first proof must conclude an implication, got " + ab.Prop().String()}
	}
	b2, c, ok := propterm.ImplyParts(bc.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "Transitive", Message: "second proof must conclude an implication, got " + bc.Prop().String()}
	}
	if !b.Equals(b2) {
		return nil, &kernel.RuleError{Kind: kernel.AntecedentMismatch, Rule: "Transitive", Message: "middle terms " + b.String() + " and " + b2.String() + " do not match"}
	}

	h := kernel.Assumption(a)
	hb, err := kernel.ModusPonens(h, ab)
	if err != nil {
		return nil, err
	}
	hc, err := kernel.ModusPonens(hb, bc)
	if err != nil {
		return nil, err
	}
	return deduction.Deduction(h, hc)
}

// ImplyExchange turns a proof of a=>(b=>c) into a proof of b=>(a=>c).
func ImplyExchange(proof *kernel.Proof) (*kernel.Proof, error) {
	a, bc, ok := propterm.ImplyParts(proof.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "ImplyExchange", Message: "expected an implication, got " + proof.Prop().String()}
	}
	b, c, ok := propterm.ImplyParts(bc)
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "ImplyExchange", Message: "expected a nested implication, got " + bc.String()}
	}

	x1 := kernel.Axiom1(b, a)
	x2, err := kernel.ModusPonens(proof, kernel.Axiom2(a, b, c))
	if err != nil {
		return nil, err
	}
	return Transitive(x1, x2)
}

// DoubleNotElim proves !!p => p.
func DoubleNotElim(p propterm.Prop) *kernel.Proof {
	notNotP := propterm.Not(propterm.Not(p))
	h := kernel.Assumption(notNotP)
	step1, err := kernel.ModusPonens(h, kernel.Axiom1(notNotP, propterm.Not(p)))
	if err != nil {
		panic("theorem: DoubleNotElim: " + err.Error())
	}
	step2, err := kernel.ModusPonens(step1, kernel.Axiom3(p, propterm.Not(p)))
	if err != nil {
		panic("theorem: DoubleNotElim: " + err.Error())
	}
	step3, err := kernel.ModusPonens(Reflexive(propterm.Not(p)), step2)
	if err != nil {
		panic("theorem: DoubleNotElim: " + err.Error())
	}
	result, err := deduction.Deduction(h, step3)
	if err != nil {
		panic("theorem: DoubleNotElim: " + err.Error())
	}
	return result
}

// DoubleNotIntro proves p => !!p.
func DoubleNotIntro(p propterm.Prop) *kernel.Proof {
	notNotNotP := propterm.Not(propterm.Not(propterm.Not(p)))
	premise := DoubleNotElim(propterm.Not(p)) // !!!p => !p

	h := kernel.Assumption(p)
	step, err := kernel.ModusPonens(h, kernel.Axiom1(p, notNotNotP))
	if err != nil {
		panic("theorem: DoubleNotIntro: " + err.Error())
	}
	ax3, err := kernel.ModusPonens(premise, kernel.Axiom3(propterm.Not(propterm.Not(p)), p))
	if err != nil {
		panic("theorem: DoubleNotIntro: " + err.Error())
	}
	notNotP, err := kernel.ModusPonens(step, ax3)
	if err != nil {
		panic("theorem: DoubleNotIntro: " + err.Error())
	}
	result, err := deduction.Deduction(h, notNotP)
	if err != nil {
		panic("theorem: DoubleNotIntro: " + err.Error())
	}
	return result
}

// NotToNotElim proves (!a=>!b) => (b=>a).
func NotToNotElim(a, b propterm.Prop) *kernel.Proof {
	x1 := kernel.Axiom1(b, propterm.Not(a))
	x2, err := ImplyExchange(kernel.Axiom3(a, b))
	if err != nil {
		panic("theorem: NotToNotElim: " + err.Error())
	}
	x3, err := Transitive(x1, x2)
	if err != nil {
		panic("theorem: NotToNotElim: " + err.Error())
	}
	result, err := ImplyExchange(x3)
	if err != nil {
		panic("theorem: NotToNotElim: " + err.Error())
	}
	return result
}

// NotToNotIntro proves (a=>b) => (!b=>!a), the contrapositive direction.
func NotToNotIntro(a, b propterm.Prop) *kernel.Proof {
	h := kernel.Assumption(propterm.Imply(a, b))
	t1, err := Transitive(h, DoubleNotIntro(b))
	if err != nil {
		panic("theorem: NotToNotIntro: " + err.Error())
	}
	t2, err := Transitive(DoubleNotElim(a), t1)
	if err != nil {
		panic("theorem: NotToNotIntro: " + err.Error())
	}
	nte := NotToNotElim(propterm.Not(a), propterm.Not(b))
	r, err := kernel.ModusPonens(t2, nte)
	if err != nil {
		panic("theorem: NotToNotIntro: " + err.Error())
	}
	result, err := deduction.Deduction(h, r)
	if err != nil {
		panic("theorem: NotToNotIntro: " + err.Error())
	}
	return result
}

// Contradiction proves (a=>b) => ((!a=>b)=>b): if both a and its negation
// lead to b, then b holds outright.
func Contradiction(a, b propterm.Prop) *kernel.Proof {
	h1 := kernel.Assumption(propterm.Imply(a, b))
	h2 := kernel.Assumption(propterm.Imply(propterm.Not(a), b))

	g3, err := kernel.ModusPonens(h2, NotToNotIntro(propterm.Not(a), b))
	if err != nil {
		panic("theorem: Contradiction: " + err.Error())
	}
	g4, err := Transitive(g3, DoubleNotElim(a))
	if err != nil {
		panic("theorem: Contradiction: " + err.Error())
	}
	g1, err := kernel.ModusPonens(h1, NotToNotIntro(a, b))
	if err != nil {
		panic("theorem: Contradiction: " + err.Error())
	}
	g2, err := kernel.ModusPonens(g1, kernel.Axiom3(b, a))
	if err != nil {
		panic("theorem: Contradiction: " + err.Error())
	}
	r, err := kernel.ModusPonens(g4, g2)
	if err != nil {
		panic("theorem: Contradiction: " + err.Error())
	}
	d1, err := deduction.Deduction(h2, r)
	if err != nil {
		panic("theorem: Contradiction: " + err.Error())
	}
	d2, err := deduction.Deduction(h1, d1)
	if err != nil {
		panic("theorem: Contradiction: " + err.Error())
	}
	return d2
}

// ExFalso proves !a => (a=>x): from a contradiction, anything follows.
func ExFalso(a, x propterm.Prop) *kernel.Proof {
	h := kernel.Assumption(propterm.Not(a))
	h2 := kernel.Assumption(a)

	p1, err := kernel.ModusPonens(h, kernel.Axiom1(propterm.Not(a), propterm.Not(x)))
	if err != nil {
		panic("theorem: ExFalso: " + err.Error())
	}
	p2, err := kernel.ModusPonens(p1, kernel.Axiom3(x, a))
	if err != nil {
		panic("theorem: ExFalso: " + err.Error())
	}
	p3, err := kernel.ModusPonens(h2, kernel.Axiom1(a, propterm.Not(x)))
	if err != nil {
		panic("theorem: ExFalso: " + err.Error())
	}
	p4, err := kernel.ModusPonens(p3, p2)
	if err != nil {
		panic("theorem: ExFalso: " + err.Error())
	}
	d1, err := deduction.Deduction(h2, p4)
	if err != nil {
		panic("theorem: ExFalso: " + err.Error())
	}
	d2, err := deduction.Deduction(h, d1)
	if err != nil {
		panic("theorem: ExFalso: " + err.Error())
	}
	return d2
}

// SelfNegation proves (x=>!x) => !x.
func SelfNegation(x propterm.Prop) *kernel.Proof {
	c := Contradiction(x, propterm.Not(x))
	h := kernel.Assumption(propterm.Imply(x, propterm.Not(x)))
	mid, err := kernel.ModusPonens(h, c)
	if err != nil {
		panic("theorem: SelfNegation: " + err.Error())
	}
	result, err := kernel.ModusPonens(Reflexive(propterm.Not(x)), mid)
	if err != nil {
		panic("theorem: SelfNegation: " + err.Error())
	}
	final, err := deduction.Deduction(h, result)
	if err != nil {
		panic("theorem: SelfNegation: " + err.Error())
	}
	return final
}
