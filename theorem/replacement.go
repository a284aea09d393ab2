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
	log "github.com/golang/glog"

	"github.com/ColorlessBoy/first-order-logic/deduction"
	"github.com/ColorlessBoy/first-order-logic/kernel"
	"github.com/ColorlessBoy/first-order-logic/propterm"
)

// iffReflexive proves Iff(q,q).
func iffReflexive(q propterm.Prop) *kernel.Proof {
	step, err := kernel.ModusPonens(Reflexive(q), IffIntro(q, q))
	if err != nil {
		panic("theorem: iffReflexive: " + err.Error())
	}
	result, err := kernel.ModusPonens(Reflexive(q), step)
	if err != nil {
		panic("theorem: iffReflexive: " + err.Error())
	}
	return result
}

// notCongruence lifts a proof of Iff(l,l') into a proof of
// Iff(Not(l),Not(l')).
func notCongruence(lIff *kernel.Proof) (*kernel.Proof, error) {
	l, lp, ok := propterm.IffParts(lIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "notCongruence", Message: "expected an Iff, got " + lIff.Prop().String()}
	}
	toL2, err := kernel.ModusPonens(lIff, IffElimLeft(l, lp))
	if err != nil {
		return nil, err
	}
	toL1, err := kernel.ModusPonens(lIff, IffElimRight(l, lp))
	if err != nil {
		return nil, err
	}
	dir1, err := kernel.ModusPonens(toL1, NotToNotIntro(lp, l))
	if err != nil {
		return nil, err
	}
	dir2, err := kernel.ModusPonens(toL2, NotToNotIntro(l, lp))
	if err != nil {
		return nil, err
	}
	step, err := kernel.ModusPonens(dir1, IffIntro(propterm.Not(l), propterm.Not(lp)))
	if err != nil {
		return nil, err
	}
	return kernel.ModusPonens(dir2, step)
}

// implyCongruence lifts proofs of Iff(a,a') and Iff(b,b') into a proof of
// Iff(Imply(a,b), Imply(a',b')).
func implyCongruence(aIff, bIff *kernel.Proof) (*kernel.Proof, error) {
	a, ap, ok := propterm.IffParts(aIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "implyCongruence", Message: "expected an Iff, got " + aIff.Prop().String()}
	}
	b, bp, ok := propterm.IffParts(bIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "implyCongruence", Message: "expected an Iff, got " + bIff.Prop().String()}
	}

	aToAp, err := kernel.ModusPonens(aIff, IffElimLeft(a, ap))
	if err != nil {
		return nil, err
	}
	apToA, err := kernel.ModusPonens(aIff, IffElimRight(a, ap))
	if err != nil {
		return nil, err
	}
	bToBp, err := kernel.ModusPonens(bIff, IffElimLeft(b, bp))
	if err != nil {
		return nil, err
	}
	bpToB, err := kernel.ModusPonens(bIff, IffElimRight(b, bp))
	if err != nil {
		return nil, err
	}

	h := kernel.Assumption(propterm.Imply(a, b))
	hx := kernel.Assumption(ap)
	fromAp, err := kernel.ModusPonens(hx, apToA)
	if err != nil {
		return nil, err
	}
	viaH, err := kernel.ModusPonens(fromAp, h)
	if err != nil {
		return nil, err
	}
	toBp, err := kernel.ModusPonens(viaH, bToBp)
	if err != nil {
		return nil, err
	}
	d1, err := deduction.Deduction(hx, toBp)
	if err != nil {
		return nil, err
	}
	dir1, err := deduction.Deduction(h, d1)
	if err != nil {
		return nil, err
	}

	h2 := kernel.Assumption(propterm.Imply(ap, bp))
	hy := kernel.Assumption(a)
	fromA, err := kernel.ModusPonens(hy, aToAp)
	if err != nil {
		return nil, err
	}
	viaH2, err := kernel.ModusPonens(fromA, h2)
	if err != nil {
		return nil, err
	}
	toB, err := kernel.ModusPonens(viaH2, bpToB)
	if err != nil {
		return nil, err
	}
	e1, err := deduction.Deduction(hy, toB)
	if err != nil {
		return nil, err
	}
	dir2, err := deduction.Deduction(h2, e1)
	if err != nil {
		return nil, err
	}

	step, err := kernel.ModusPonens(dir1, IffIntro(propterm.Imply(a, b), propterm.Imply(ap, bp)))
	if err != nil {
		return nil, err
	}
	return kernel.ModusPonens(dir2, step)
}

// forallCongruence lifts a proof of Iff(body,body') into a proof of
// Iff(Forall(v,body), Forall(v,body')).
func forallCongruence(v propterm.Variable, bodyIff *kernel.Proof) (*kernel.Proof, error) {
	body, bodyp, ok := propterm.IffParts(bodyIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "forallCongruence", Message: "expected an Iff, got " + bodyIff.Prop().String()}
	}
	toBodyp, err := kernel.ModusPonens(bodyIff, IffElimLeft(body, bodyp))
	if err != nil {
		return nil, err
	}
	toBody, err := kernel.ModusPonens(bodyIff, IffElimRight(body, bodyp))
	if err != nil {
		return nil, err
	}

	h := kernel.Assumption(propterm.Forall(v, body))
	ax4, err := kernel.Axiom4(body, v, v)
	if err != nil {
		return nil, err
	}
	inst, err := kernel.ModusPonens(h, ax4)
	if err != nil {
		return nil, err
	}
	toBp, err := kernel.ModusPonens(inst, toBodyp)
	if err != nil {
		return nil, err
	}
	gen := kernel.Generalization(toBp, v)
	dir1, err := deduction.Deduction(h, gen)
	if err != nil {
		return nil, err
	}

	h2 := kernel.Assumption(propterm.Forall(v, bodyp))
	ax4b, err := kernel.Axiom4(bodyp, v, v)
	if err != nil {
		return nil, err
	}
	inst2, err := kernel.ModusPonens(h2, ax4b)
	if err != nil {
		return nil, err
	}
	toB, err := kernel.ModusPonens(inst2, toBody)
	if err != nil {
		return nil, err
	}
	gen2 := kernel.Generalization(toB, v)
	dir2, err := deduction.Deduction(h2, gen2)
	if err != nil {
		return nil, err
	}

	step, err := kernel.ModusPonens(dir1, IffIntro(propterm.Forall(v, body), propterm.Forall(v, bodyp)))
	if err != nil {
		return nil, err
	}
	return kernel.ModusPonens(dir2, step)
}

// evalBridgeUp lifts a proof of Iff(lhs.Eval(), rhs.Eval()) into a proof of
// Iff(lhs,rhs). One ToEval/FromEval round trip on each side suffices,
// since evalIff is stated over exactly lhs.Eval() and rhs.Eval(); aliases
// nested below the top node are left as they are.
func evalBridgeUp(evalIff *kernel.Proof, lhs, rhs propterm.Prop) (*kernel.Proof, error) {
	lhsEval, rhsEval, ok := propterm.IffParts(evalIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "evalBridgeUp", Message: "expected an Iff, got " + evalIff.Prop().String()}
	}
	toRhsEval, err := kernel.ModusPonens(evalIff, IffElimLeft(lhsEval, rhsEval))
	if err != nil {
		return nil, err
	}
	toLhsEval, err := kernel.ModusPonens(evalIff, IffElimRight(lhsEval, rhsEval))
	if err != nil {
		return nil, err
	}

	h := kernel.Assumption(lhs)
	s1, err := kernel.ModusPonens(h, kernel.ToEvalAxiom(lhs))
	if err != nil {
		return nil, err
	}
	s2, err := kernel.ModusPonens(s1, toRhsEval)
	if err != nil {
		return nil, err
	}
	s3, err := kernel.ModusPonens(s2, kernel.FromEvalAxiom(rhs))
	if err != nil {
		return nil, err
	}
	dir1, err := deduction.Deduction(h, s3)
	if err != nil {
		return nil, err
	}

	h2 := kernel.Assumption(rhs)
	t1, err := kernel.ModusPonens(h2, kernel.ToEvalAxiom(rhs))
	if err != nil {
		return nil, err
	}
	t2, err := kernel.ModusPonens(t1, toLhsEval)
	if err != nil {
		return nil, err
	}
	t3, err := kernel.ModusPonens(t2, kernel.FromEvalAxiom(lhs))
	if err != nil {
		return nil, err
	}
	dir2, err := deduction.Deduction(h2, t3)
	if err != nil {
		return nil, err
	}

	step, err := kernel.ModusPonens(dir1, IffIntro(lhs, rhs))
	if err != nil {
		return nil, err
	}
	return kernel.ModusPonens(dir2, step)
}

// andEvalCongruence lifts proofs of Iff(l,l') and Iff(r,r') into a proof of
// Iff(And(l,r).Eval(), And(l',r').Eval()), i.e. the congruence one level
// short of the And nodes themselves.
func andEvalCongruence(lIff, rIff *kernel.Proof) (*kernel.Proof, error) {
	notR, err := notCongruence(rIff)
	if err != nil {
		return nil, err
	}
	implyCong, err := implyCongruence(lIff, notR)
	if err != nil {
		return nil, err
	}
	return notCongruence(implyCong)
}

func andCongruence(lIff, rIff *kernel.Proof) (*kernel.Proof, error) {
	l, lp, ok := propterm.IffParts(lIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "andCongruence", Message: "expected an Iff"}
	}
	r, rp, ok := propterm.IffParts(rIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "andCongruence", Message: "expected an Iff"}
	}
	evalCong, err := andEvalCongruence(lIff, rIff)
	if err != nil {
		return nil, err
	}
	return evalBridgeUp(evalCong, propterm.And(l, r), propterm.And(lp, rp))
}

func orCongruence(lIff, rIff *kernel.Proof) (*kernel.Proof, error) {
	l, lp, ok := propterm.IffParts(lIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "orCongruence", Message: "expected an Iff"}
	}
	r, rp, ok := propterm.IffParts(rIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "orCongruence", Message: "expected an Iff"}
	}
	notL, err := notCongruence(lIff)
	if err != nil {
		return nil, err
	}
	evalCong, err := implyCongruence(notL, rIff)
	if err != nil {
		return nil, err
	}
	return evalBridgeUp(evalCong, propterm.Or(l, r), propterm.Or(lp, rp))
}

func iffCongruence(pIff, qIff *kernel.Proof) (*kernel.Proof, error) {
	p, pp, ok := propterm.IffParts(pIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "iffCongruence", Message: "expected an Iff"}
	}
	q, qp, ok := propterm.IffParts(qIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "iffCongruence", Message: "expected an Iff"}
	}
	pqCong, err := implyCongruence(pIff, qIff)
	if err != nil {
		return nil, err
	}
	qpCong, err := implyCongruence(qIff, pIff)
	if err != nil {
		return nil, err
	}
	evalCong, err := andEvalCongruence(pqCong, qpCong)
	if err != nil {
		return nil, err
	}
	return evalBridgeUp(evalCong, propterm.Iff(p, q), propterm.Iff(pp, qp))
}

func existsCongruence(v propterm.Variable, bodyIff *kernel.Proof) (*kernel.Proof, error) {
	body, bodyp, ok := propterm.IffParts(bodyIff.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "existsCongruence", Message: "expected an Iff"}
	}
	notBody, err := notCongruence(bodyIff)
	if err != nil {
		return nil, err
	}
	forallCong, err := forallCongruence(v, notBody)
	if err != nil {
		return nil, err
	}
	evalCong, err := notCongruence(forallCong)
	if err != nil {
		return nil, err
	}
	return evalBridgeUp(evalCong, propterm.Exists(v, body), propterm.Exists(v, bodyp))
}

// replacementCongruence builds a proof of Iff(q, q.Replacement(sub,rep))
// from a proof base of Iff(sub,rep), mirroring propterm's own structural
// Replacement recursion node for node.
func replacementCongruence(base *kernel.Proof, q propterm.Prop) (*kernel.Proof, error) {
	sub, _, ok := propterm.IffParts(base.Prop())
	if !ok {
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "Replacement", Message: "expected an Iff, got " + base.Prop().String()}
	}
	if q.Equals(sub) {
		return base, nil
	}

	switch q.Kind() {
	case propterm.KindVar:
		return iffReflexive(q), nil
	case propterm.KindNot:
		child, _ := propterm.NotChild(q)
		rc, err := replacementCongruence(base, child)
		if err != nil {
			return nil, err
		}
		return notCongruence(rc)
	case propterm.KindImply:
		l, r, _ := propterm.ImplyParts(q)
		rl, err := replacementCongruence(base, l)
		if err != nil {
			return nil, err
		}
		rr, err := replacementCongruence(base, r)
		if err != nil {
			return nil, err
		}
		return implyCongruence(rl, rr)
	case propterm.KindForall:
		v, body, _ := propterm.ForallParts(q)
		rb, err := replacementCongruence(base, body)
		if err != nil {
			return nil, err
		}
		return forallCongruence(v, rb)
	case propterm.KindAnd:
		l, r, _ := propterm.AndParts(q)
		rl, err := replacementCongruence(base, l)
		if err != nil {
			return nil, err
		}
		rr, err := replacementCongruence(base, r)
		if err != nil {
			return nil, err
		}
		return andCongruence(rl, rr)
	case propterm.KindOr:
		l, r, _ := propterm.OrParts(q)
		rl, err := replacementCongruence(base, l)
		if err != nil {
			return nil, err
		}
		rr, err := replacementCongruence(base, r)
		if err != nil {
			return nil, err
		}
		return orCongruence(rl, rr)
	case propterm.KindIff:
		l, r, _ := propterm.IffParts(q)
		rl, err := replacementCongruence(base, l)
		if err != nil {
			return nil, err
		}
		rr, err := replacementCongruence(base, r)
		if err != nil {
			return nil, err
		}
		return iffCongruence(rl, rr)
	case propterm.KindExists:
		v, body, _ := propterm.ExistsParts(q)
		rb, err := replacementCongruence(base, body)
		if err != nil {
			return nil, err
		}
		return existsCongruence(v, rb)
	default:
		return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "Replacement", Message: "unrecognized Prop kind"}
	}
}

// Replacement proves Imply(closed, Iff(p3, p3.Replacement(p1,p2))), where
// closed is Iff(p1,p2) universally closed over its free variables. The
// closure is built by nesting Forall around Iff(p1,p2) one free variable
// at a time, assumed, then peeled straight back off with Axiom4's trivial
// same-variable instantiation to recover a derived (non-leaf) proof of
// Iff(p1,p2) that the structural congruence recursion can consume; the
// closure assumption is finally discharged with deduction.Deduction.
func Replacement(p1, p2, p3 propterm.Prop) (*kernel.Proof, error) {
	biIff := propterm.Iff(p1, p2)
	names := biIff.FreeVars().Elements()
	vars := make([]propterm.Variable, len(names))
	for i, name := range names {
		vars[i] = propterm.NewVariable(name)
	}
	log.V(2).Infof("theorem: Replacement: closing %s over %d free variable(s)", biIff, len(vars))

	closed := biIff
	for i := len(vars) - 1; i >= 0; i-- {
		closed = propterm.Forall(vars[i], closed)
	}

	h := kernel.Assumption(closed)
	peeled := h
	current := closed
	for _, v := range vars {
		_, body, ok := propterm.ForallParts(current)
		if !ok {
			return nil, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "Replacement", Message: "expected a Forall while peeling the closure, got " + current.String()}
		}
		ax4, err := kernel.Axiom4(body, v, v)
		if err != nil {
			return nil, err
		}
		peeled, err = kernel.ModusPonens(peeled, ax4)
		if err != nil {
			return nil, err
		}
		current = body
	}

	log.V(2).Infof("theorem: Replacement: recursing over %s", p3)
	inner, err := replacementCongruence(peeled, p3)
	if err != nil {
		return nil, err
	}
	return deduction.Deduction(h, inner)
}

// ExistRenameVar proves Exists(x,p) => Exists(y, p.Substitute(x,y)) for a
// variable y that occurs nowhere in p.
func ExistRenameVar(x, y propterm.Variable, p propterm.Prop) (*kernel.Proof, error) {
	renamed := p.Substitute(x, y)
	exists := propterm.Exists(x, p)
	existsRenamed := propterm.Exists(y, renamed)

	h := kernel.Assumption(exists)
	toEval, err := kernel.ModusPonens(h, kernel.ToEvalAxiom(exists))
	if err != nil {
		return nil, err
	}

	hc := kernel.Assumption(propterm.Forall(y, propterm.Not(renamed)))
	ax4, err := kernel.Axiom4(propterm.Not(renamed), y, x)
	if err != nil {
		return nil, err
	}
	inst, err := kernel.ModusPonens(hc, ax4)
	if err != nil {
		return nil, err
	}
	gen := kernel.Generalization(inst, x)
	d1, err := deduction.Deduction(hc, gen)
	if err != nil {
		return nil, err
	}

	contrapos, err := kernel.ModusPonens(d1, NotToNotIntro(propterm.Forall(y, propterm.Not(renamed)), propterm.Forall(x, propterm.Not(p))))
	if err != nil {
		return nil, err
	}
	final1, err := kernel.ModusPonens(toEval, contrapos)
	if err != nil {
		return nil, err
	}
	final2, err := kernel.ModusPonens(final1, kernel.FromEvalAxiom(existsRenamed))
	if err != nil {
		return nil, err
	}
	return deduction.Deduction(h, final2)
}

// ChoiceToExist proves Imply(Exists(x,A), Exists(x,B)) given a proof b of B
// that depends on the open assumption a of A: applying Deduction discharges
// a to get A=>B, which is then generalized over x and pushed through the
// existential quantifiers by existsMonotone.
func ChoiceToExist(a, b *kernel.Proof, x propterm.Variable) (*kernel.Proof, error) {
	d, err := deduction.Deduction(a, b)
	if err != nil {
		return nil, err
	}
	log.V(2).Infof("theorem: ChoiceToExist: generalizing %s over %s", d.Prop(), x)
	forallImp := kernel.Generalization(d, x)
	return existsMonotone(forallImp, x)
}
