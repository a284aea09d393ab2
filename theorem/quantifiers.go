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

package theorem

import (
	"github.com/ColorlessBoy/first-order-logic/deduction"
	"github.com/ColorlessBoy/first-order-logic/kernel"
	"github.com/ColorlessBoy/first-order-logic/propterm"
)

// ForallExchange proves Forall(x,Forall(y,p)) => Forall(y,Forall(x,p)):
// universal quantifiers commute.
func ForallExchange(x, y propterm.Variable, p propterm.Prop) (*kernel.Proof, error) {
	h := kernel.Assumption(propterm.Forall(x, propterm.Forall(y, p)))

	ax4Outer, err := kernel.Axiom4(propterm.Forall(y, p), x, x)
	if err != nil {
		return nil, err
	}
	inst, err := kernel.ModusPonens(h, ax4Outer)
	if err != nil {
		return nil, err
	}
	ax4Inner, err := kernel.Axiom4(p, y, y)
	if err != nil {
		return nil, err
	}
	inst2, err := kernel.ModusPonens(inst, ax4Inner)
	if err != nil {
		return nil, err
	}
	genX := kernel.Generalization(inst2, x)
	genXY := kernel.Generalization(genX, y)
	return deduction.Deduction(h, genXY)
}

// ExistIntro proves p[x->y] => Exists(x,p), so long as y does not occur
// bound in p (which would let the witness capture an inner quantifier).
func ExistIntro(x, y propterm.Variable, p propterm.Prop) (*kernel.Proof, error) {
	renamed := p.Substitute(x, y)
	ax4, err := kernel.Axiom4(propterm.Not(p), x, y)
	if err != nil {
		return nil, err
	}
	nti := NotToNotIntro(propterm.Forall(x, propterm.Not(p)), propterm.Not(renamed))
	step, err := kernel.ModusPonens(ax4, nti)
	if err != nil {
		return nil, err
	}
	composed, err := Transitive(DoubleNotIntro(renamed), step)
	if err != nil {
		return nil, err
	}
	exists := propterm.Exists(x, p)
	return Transitive(composed, kernel.FromEvalAxiom(exists))
}

// forallDistributesImply proves Forall(x,Imply(q,r)) =>
// (Forall(x,q) => Forall(x,r)): universal quantification distributes over
// implication.
func forallDistributesImply(q, r propterm.Prop, x propterm.Variable) (*kernel.Proof, error) {
	h := kernel.Assumption(propterm.Forall(x, propterm.Imply(q, r)))
	h2 := kernel.Assumption(propterm.Forall(x, q))

	ax4qr, err := kernel.Axiom4(propterm.Imply(q, r), x, x)
	if err != nil {
		return nil, err
	}
	instQR, err := kernel.ModusPonens(h, ax4qr)
	if err != nil {
		return nil, err
	}
	ax4q, err := kernel.Axiom4(q, x, x)
	if err != nil {
		return nil, err
	}
	instQ, err := kernel.ModusPonens(h2, ax4q)
	if err != nil {
		return nil, err
	}
	instR, err := kernel.ModusPonens(instQ, instQR)
	if err != nil {
		return nil, err
	}
	gen := kernel.Generalization(instR, x)
	d1, err := deduction.Deduction(h2, gen)
	if err != nil {
		return nil, err
	}
	return deduction.Deduction(h, d1)
}

// existsMonotone lifts a proof of Forall(x, Imply(p,q)) into a proof of
// Imply(Exists(x,p), Exists(x,q)): existential quantification is monotone
// in its body under entailment, with the same open assumptions as
// forallImp.
func existsMonotone(forallImp *kernel.Proof, x propterm.Variable) (*kernel.Proof, error) {
	_, body, ok := propterm.ForallParts(forallImp.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "existsMonotone", Message: "expected a Forall, got " + forallImp.Prop().String()}
	}
	p, q, ok := propterm.ImplyParts(body)
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "existsMonotone", Message: "expected Forall of an implication, got " + body.String()}
	}

	h := kernel.Assumption(propterm.Forall(x, propterm.Imply(p, q)))
	ax4, err := kernel.Axiom4(body, x, x)
	if err != nil {
		return nil, err
	}
	inst, err := kernel.ModusPonens(h, ax4)
	if err != nil {
		return nil, err
	}
	contraposed, err := kernel.ModusPonens(inst, NotToNotIntro(p, q))
	if err != nil {
		return nil, err
	}
	gen := kernel.Generalization(contraposed, x)
	d1, err := deduction.Deduction(h, gen)
	if err != nil {
		return nil, err
	}
	forallContrapositive, err := kernel.ModusPonens(forallImp, d1)
	if err != nil {
		return nil, err
	}

	dist, err := forallDistributesImply(propterm.Not(q), propterm.Not(p), x)
	if err != nil {
		return nil, err
	}
	forallNotQToForallNotP, err := kernel.ModusPonens(forallContrapositive, dist)
	if err != nil {
		return nil, err
	}

	nti := NotToNotIntro(propterm.Forall(x, propterm.Not(q)), propterm.Forall(x, propterm.Not(p)))
	coreImply, err := kernel.ModusPonens(forallNotQToForallNotP, nti)
	if err != nil {
		return nil, err
	}

	existsP := propterm.Exists(x, p)
	existsQ := propterm.Exists(x, q)
	t1, err := Transitive(kernel.ToEvalAxiom(existsP), coreImply)
	if err != nil {
		return nil, err
	}
	return Transitive(t1, kernel.FromEvalAxiom(existsQ))
}

// NotFreeVarForallIntro lifts a proof of a.Prop()=>proof.Prop() (proof
// depending on the open assumption a) into a proof of
// a.Prop() => Forall(x, proof.Prop()), so long as x is not free in
// a.Prop().
func NotFreeVarForallIntro(a, proof *kernel.Proof, x propterm.Variable) (*kernel.Proof, error) {
	return deduction.Deduction(a, kernel.Generalization(proof, x))
}

// NotFreeVarExistElim takes a proof px of p=>a (x not free in a) and
// derives Exists(x,p) => a: an existential whose witness cannot affect a
// may be eliminated.
func NotFreeVarExistElim(px *kernel.Proof, x propterm.Variable) (*kernel.Proof, error) {
	p, a, ok := propterm.ImplyParts(px.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "NotFreeVarExistElim", Message: "expected an implication, got " + px.Prop().String()}
	}

	h := kernel.Assumption(propterm.Not(a))
	contrapos, err := kernel.ModusPonens(px, NotToNotIntro(p, a))
	if err != nil {
		return nil, err
	}
	s1, err := kernel.ModusPonens(h, contrapos)
	if err != nil {
		return nil, err
	}
	gen := kernel.Generalization(s1, x)
	d1, err := deduction.Deduction(h, gen)
	if err != nil {
		return nil, err
	}
	forallNotP := propterm.Forall(x, propterm.Not(p))
	nti := NotToNotIntro(propterm.Not(a), forallNotP)
	mp, err := kernel.ModusPonens(d1, nti)
	if err != nil {
		return nil, err
	}
	exists := propterm.Exists(x, p)
	t1, err := Transitive(kernel.ToEvalAxiom(exists), mp)
	if err != nil {
		return nil, err
	}
	return Transitive(t1, DoubleNotElim(a))
}

// ForallImplyToImplyForall specializes proof: Forall(x, p1=>p2) into
// p1=>Forall(x,p2) via Axiom5.
func ForallImplyToImplyForall(proof *kernel.Proof, x propterm.Variable) (*kernel.Proof, error) {
	_, body, ok := propterm.ForallParts(proof.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "ForallImplyToImplyForall", Message: "expected a Forall, got " + proof.Prop().String()}
	}
	p1, p2, ok := propterm.ImplyParts(body)
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "ForallImplyToImplyForall", Message: "expected Forall of an implication, got " + body.String()}
	}
	ax5, err := kernel.Axiom5(p1, p2, x)
	if err != nil {
		return nil, err
	}
	return kernel.ModusPonens(proof, ax5)
}

// ForallImplyToImplyExist turns proof: Forall(x, p1=>p2) into
// Exists(x,p1)=>p2, so long as x is not free in p2.
func ForallImplyToImplyExist(proof *kernel.Proof, x propterm.Variable) (*kernel.Proof, error) {
	_, body, ok := propterm.ForallParts(proof.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "ForallImplyToImplyExist", Message: "expected a Forall, got " + proof.Prop().String()}
	}
	p1, p2, ok := propterm.ImplyParts(body)
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.NotImply, Rule: "ForallImplyToImplyExist", Message: "expected Forall of an implication, got " + body.String()}
	}

	h := kernel.Assumption(propterm.Forall(x, propterm.Imply(p1, p2)))
	ax4, err := kernel.Axiom4(propterm.Imply(p1, p2), x, x)
	if err != nil {
		return nil, err
	}
	inst, err := kernel.ModusPonens(h, ax4)
	if err != nil {
		return nil, err
	}
	contrapos, err := kernel.ModusPonens(inst, NotToNotIntro(p1, p2))
	if err != nil {
		return nil, err
	}
	gen := kernel.Generalization(contrapos, x)
	d1, err := deduction.Deduction(h, gen)
	if err != nil {
		return nil, err
	}

	actualForall, err := kernel.ModusPonens(proof, d1)
	if err != nil {
		return nil, err
	}
	ax5, err := kernel.Axiom5(propterm.Not(p2), propterm.Not(p1), x)
	if err != nil {
		return nil, err
	}
	mp2, err := kernel.ModusPonens(actualForall, ax5)
	if err != nil {
		return nil, err
	}
	forallNotP1 := propterm.Forall(x, propterm.Not(p1))
	nti := NotToNotIntro(propterm.Not(p2), forallNotP1)
	mp3, err := kernel.ModusPonens(mp2, nti)
	if err != nil {
		return nil, err
	}
	exists := propterm.Exists(x, p1)
	t1, err := Transitive(kernel.ToEvalAxiom(exists), mp3)
	if err != nil {
		return nil, err
	}
	return Transitive(t1, DoubleNotElim(p2))
}

// NotForallToExistNot proves Not(Forall(x,p)) => Exists(x, Not(p)).
func NotForallToExistNot(x propterm.Variable, p propterm.Prop) (*kernel.Proof, error) {
	h := kernel.Assumption(propterm.Forall(x, propterm.Not(propterm.Not(p))))
	ax4, err := kernel.Axiom4(propterm.Not(propterm.Not(p)), x, x)
	if err != nil {
		return nil, err
	}
	inst, err := kernel.ModusPonens(h, ax4)
	if err != nil {
		return nil, err
	}
	s1, err := kernel.ModusPonens(inst, DoubleNotElim(p))
	if err != nil {
		return nil, err
	}
	gen := kernel.Generalization(s1, x)
	d1, err := deduction.Deduction(h, gen)
	if err != nil {
		return nil, err
	}

	forallNotNotP := propterm.Forall(x, propterm.Not(propterm.Not(p)))
	forallP := propterm.Forall(x, p)
	nti := NotToNotIntro(forallNotNotP, forallP)
	mp, err := kernel.ModusPonens(d1, nti)
	if err != nil {
		return nil, err
	}
	exists := propterm.Exists(x, propterm.Not(p))
	return Transitive(mp, kernel.FromEvalAxiom(exists))
}

// NotExistToForallNot proves Not(Exists(x,p)) => Forall(x, Not(p)).
func NotExistToForallNot(x propterm.Variable, p propterm.Prop) (*kernel.Proof, error) {
	exists := propterm.Exists(x, p)
	forallNotP := propterm.Forall(x, propterm.Not(p))

	nti := NotToNotIntro(propterm.Not(forallNotP), exists)
	mp, err := kernel.ModusPonens(kernel.FromEvalAxiom(exists), nti)
	if err != nil {
		return nil, err
	}
	return Transitive(mp, DoubleNotElim(forallNotP))
}
