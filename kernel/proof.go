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

// Package kernel implements the closed proof kernel: the fixed set of
// primitive inference rules and axioms (Axiom1..5, ModusPonens,
// Generalization, Assumption, ToEvalAxiom, FromEvalAxiom) from which every
// Proof object is built. Every *Proof's constructors live in this package
// so that no caller can forge a proof with an unsupported derivation step;
// derived theorems and the Deduction meta-rule consume Proof only through
// the exported accessor methods below.
package kernel

import (
	log "github.com/golang/glog"

	"github.com/ColorlessBoy/first-order-logic/propterm"
)

// Kind discriminates the ten ways a Proof can have been built. Deduction
// switches on this exhaustively instead of the source project's
// runtime class-name dispatch.
type Kind int

const (
	// KindAssumption: the proof stands for its own conclusion.
	KindAssumption Kind = iota
	// KindAxiom1: p1 => (p2 => p1).
	KindAxiom1
	// KindAxiom2: (p1=>(p2=>p3)) => ((p1=>p2)=>(p1=>p3)).
	KindAxiom2
	// KindAxiom3: (!p1=>!p2) => ((!p1=>p2)=>p1).
	KindAxiom3
	// KindAxiom4: forall x, p => p[x->y].
	KindAxiom4
	// KindAxiom5: (forall x, p1=>p2) => (p1=>forall x, p2).
	KindAxiom5
	// KindModusPonens: from a and a=>c, conclude c.
	KindModusPonens
	// KindGeneralization: from a, conclude forall x, a.
	KindGeneralization
	// KindToEvalAxiom: p => p.Eval().
	KindToEvalAxiom
	// KindFromEvalAxiom: p.Eval() => p.
	KindFromEvalAxiom
)

func (k Kind) String() string {
	switch k {
	case KindAssumption:
		return "Assumption"
	case KindAxiom1:
		return "Axiom1"
	case KindAxiom2:
		return "Axiom2"
	case KindAxiom3:
		return "Axiom3"
	case KindAxiom4:
		return "Axiom4"
	case KindAxiom5:
		return "Axiom5"
	case KindModusPonens:
		return "ModusPonens"
	case KindGeneralization:
		return "Generalization"
	case KindToEvalAxiom:
		return "ToEvalAxiom"
	case KindFromEvalAxiom:
		return "FromEvalAxiom"
	default:
		return "Unknown"
	}
}

// Proof is a node in the proof DAG: a conclusion Prop plus the (ordered,
// duplicate-free) set of open Assumption nodes it depends on. Two proofs
// are equal iff their conclusions are structurally equal; the assumption
// set does not enter equality, since the kernel cares about what was
// proved, not how.
//
// Proof's fields are unexported: the only way to build one is through this
// package's constructors, which is what keeps the kernel closed. Deduction
// and the theorem library inspect a *Proof's shape through the As*
// accessor methods below, never by constructing one directly.
type Proof struct {
	kind       Kind
	prop       propterm.Prop
	assumption []*Proof

	// mpAntecedent/mpImplication are populated only for KindModusPonens.
	mpAntecedent, mpImplication *Proof

	// genSub/genVar are populated only for KindGeneralization.
	genSub *Proof
	genVar propterm.Variable
}

// Kind reports how this proof was built.
func (p *Proof) Kind() Kind { return p.kind }

// Prop returns the proved conclusion.
func (p *Proof) Prop() propterm.Prop { return p.prop }

// Assumptions returns the open assumptions this proof depends on, in
// construction order, with no duplicates (by Assumption identity).
func (p *Proof) Assumptions() []*Proof {
	out := make([]*Proof, len(p.assumption))
	copy(out, p.assumption)
	return out
}

// DependsOn reports whether a is among p's open assumptions, compared by
// Assumption identity (the same *Proof pointer), not by conclusion.
func (p *Proof) DependsOn(a *Proof) bool {
	for _, x := range p.assumption {
		if x == a {
			return true
		}
	}
	return false
}

// Equals reports whether p and q prove structurally equal conclusions.
// Assumption sets are not considered.
func (p *Proof) Equals(q *Proof) bool {
	return p.prop.Equals(q.prop)
}

func (p *Proof) String() string {
	return "Proof(" + p.prop.String() + ")"
}

// AsModusPonens reports the antecedent and implication sub-proofs if p was
// built by ModusPonens.
func (p *Proof) AsModusPonens() (antecedent, implication *Proof, ok bool) {
	if p.kind != KindModusPonens {
		return nil, nil, false
	}
	return p.mpAntecedent, p.mpImplication, true
}

// AsGeneralization reports the sub-proof and bound variable if p was built
// by Generalization.
func (p *Proof) AsGeneralization() (sub *Proof, v propterm.Variable, ok bool) {
	if p.kind != KindGeneralization {
		return nil, propterm.Variable{}, false
	}
	return p.genSub, p.genVar, true
}

func unionAssumptions(as ...[]*Proof) []*Proof {
	var out []*Proof
	seen := make(map[*Proof]bool)
	for _, a := range as {
		for _, x := range a {
			if !seen[x] {
				seen[x] = true
				out = append(out, x)
			}
		}
	}
	return out
}

// Assumption constructs the proof that stands for its own conclusion p. It
// contributes itself to its own assumption set.
func Assumption(p propterm.Prop) *Proof {
	pr := &Proof{kind: KindAssumption, prop: p}
	pr.assumption = []*Proof{pr}
	return pr
}

// Axiom1 constructs a proof of p1 => (p2 => p1).
func Axiom1(p1, p2 propterm.Prop) *Proof {
	return &Proof{
		kind: KindAxiom1,
		prop: propterm.Imply(p1, propterm.Imply(p2, p1)),
	}
}

// Axiom2 constructs a proof of
// (p1=>(p2=>p3)) => ((p1=>p2)=>(p1=>p3)).
func Axiom2(p1, p2, p3 propterm.Prop) *Proof {
	lhs := propterm.Imply(p1, propterm.Imply(p2, p3))
	rhs := propterm.Imply(propterm.Imply(p1, p2), propterm.Imply(p1, p3))
	return &Proof{kind: KindAxiom2, prop: propterm.Imply(lhs, rhs)}
}

// Axiom3 constructs a proof of
// (!p1=>!p2) => ((!p1=>p2)=>p1).
func Axiom3(p1, p2 propterm.Prop) *Proof {
	lhs := propterm.Imply(propterm.Not(p1), propterm.Not(p2))
	rhs := propterm.Imply(propterm.Imply(propterm.Not(p1), p2), p1)
	return &Proof{kind: KindAxiom3, prop: propterm.Imply(lhs, rhs)}
}

// Axiom4 constructs a proof of forall x, p => p[x -> y]. It fails if y is
// bound in p, which would let the instantiation capture a variable.
func Axiom4(p propterm.Prop, x, y propterm.Variable) (*Proof, error) {
	if p.IsBounded(y) {
		err := &RuleError{
			Kind:    BoundCapture,
			Rule:    "Axiom4",
			Message: y.String() + " is bound in " + p.String(),
		}
		log.V(1).Infof("kernel: %v", err)
		return nil, err
	}
	lhs := propterm.Forall(x, p)
	rhs := p.Substitute(x, y)
	return &Proof{kind: KindAxiom4, prop: propterm.Imply(lhs, rhs)}, nil
}

// Axiom5 constructs a proof of
// (forall x, p1=>p2) => (p1=>forall x, p2).
// It fails if x is free in p1, which would let the quantifier escape its
// scope.
func Axiom5(p1, p2 propterm.Prop, x propterm.Variable) (*Proof, error) {
	if p1.IsFree(x) {
		err := &RuleError{
			Kind:    FreeVarViolation,
			Rule:    "Axiom5",
			Message: x.String() + " is free in " + p1.String(),
		}
		log.V(1).Infof("kernel: %v", err)
		return nil, err
	}
	lhs := propterm.Forall(x, propterm.Imply(p1, p2))
	rhs := propterm.Imply(p1, propterm.Forall(x, p2))
	return &Proof{kind: KindAxiom5, prop: propterm.Imply(lhs, rhs)}, nil
}

// ModusPonens constructs a proof of c from a proof of a and a proof of
// a=>c. It fails if b does not prove a literal implication, or if a's
// conclusion does not match b's antecedent.
func ModusPonens(a, b *Proof) (*Proof, error) {
	lhs, rhs, ok := propterm.ImplyParts(b.prop)
	if !ok {
		err := &RuleError{
			Kind:    NotImply,
			Rule:    "ModusPonens",
			Message: "second proof must conclude an implication, got " + b.prop.String(),
		}
		log.V(1).Infof("kernel: %v", err)
		return nil, err
	}
	if !a.prop.Equals(lhs) {
		err := &RuleError{
			Kind:    AntecedentMismatch,
			Rule:    "ModusPonens",
			Message: "antecedent " + a.prop.String() + " does not match " + lhs.String(),
		}
		log.V(1).Infof("kernel: %v", err)
		return nil, err
	}
	return &Proof{
		kind:          KindModusPonens,
		prop:          rhs,
		assumption:    unionAssumptions(a.assumption, b.assumption),
		mpAntecedent:  a,
		mpImplication: b,
	}, nil
}

// Generalization constructs a proof of forall x, a.prop from a proof of
// a.prop. There is no side condition at the kernel level; the Bernays
// restriction is enforced by Deduction when it recurses over a
// Generalization step, not here.
func Generalization(a *Proof, x propterm.Variable) *Proof {
	return &Proof{
		kind:       KindGeneralization,
		prop:       propterm.Forall(x, a.prop),
		assumption: append([]*Proof(nil), a.assumption...),
		genSub:     a,
		genVar:     x,
	}
}

// ToEvalAxiom constructs a proof of p => p.Eval().
func ToEvalAxiom(p propterm.Prop) *Proof {
	return &Proof{kind: KindToEvalAxiom, prop: propterm.Imply(p, p.Eval())}
}

// FromEvalAxiom constructs a proof of p.Eval() => p.
func FromEvalAxiom(p propterm.Prop) *Proof {
	return &Proof{kind: KindFromEvalAxiom, prop: propterm.Imply(p.Eval(), p)}
}
