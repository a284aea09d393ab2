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

// Package deduction implements the Deduction Theorem: given a proof of c
// from an open assumption a (among others), it builds a proof of a=>c with
// a discharged. This is the single meta-rule that lets the theorem package
// work in a natural-deduction style (Assumption + ModusPonens) while still
// bottoming out in the closed kernel.
package deduction

import (
	log "github.com/golang/glog"

	"github.com/ColorlessBoy/first-order-logic/kernel"
	"github.com/ColorlessBoy/first-order-logic/propterm"
)

// reflexive builds p=>p from raw axioms, duplicated here (rather than
// imported from theorem) to avoid an import cycle: the theorem package
// itself imports deduction.
func reflexive(p propterm.Prop) *kernel.Proof {
	x1 := kernel.Axiom1(p, propterm.Imply(p, p))
	x2 := kernel.Axiom2(p, propterm.Imply(p, p), p)
	x3, err := kernel.ModusPonens(x1, x2)
	if err != nil {
		panic("deduction: reflexive: " + err.Error())
	}
	x4 := kernel.Axiom1(p, p)
	x5, err := kernel.ModusPonens(x4, x3)
	if err != nil {
		panic("deduction: reflexive: " + err.Error())
	}
	return x5
}

// Deduction builds a proof of a.Prop()=>p.Prop() from a proof p that may
// depend on the open assumption a, discharging a. It recurses over the
// shape of p:
//
//   - p is (the same proof object as) a: conclude a=>a via reflexive.
//   - p does not depend on a, or p is an axiom/assumption/eval-axiom leaf
//     other than a itself: conclude a.Prop()=>p.Prop() via Axiom1.
//   - p is ModusPonens(x, y): recurse on both operands and recombine via
//     Axiom2.
//   - p is Generalization(q, v): recurse on q, so long as v is not free in
//     a.Prop() (the Bernays-Tarski restriction); recombine via Axiom5.
//
// Any other shape is rejected with an UnknownProofKind error; this only
// happens if a new kernel.Kind is added without updating Deduction.
func Deduction(a, p *kernel.Proof) (*kernel.Proof, error) {
	if p == a {
		return reflexive(a.Prop()), nil
	}

	if !p.DependsOn(a) {
		return kernel.ModusPonens(p, kernel.Axiom1(p.Prop(), a.Prop()))
	}

	if x, y, ok := p.AsModusPonens(); ok {
		dx, err := Deduction(a, x)
		if err != nil {
			return nil, err
		}
		dy, err := Deduction(a, y)
		if err != nil {
			return nil, err
		}
		ax2 := kernel.Axiom2(a.Prop(), x.Prop(), p.Prop())
		step, err := kernel.ModusPonens(dy, ax2)
		if err != nil {
			return nil, err
		}
		return kernel.ModusPonens(dx, step)
	}

	if sub, v, ok := p.AsGeneralization(); ok {
		if a.Prop().IsFree(v) {
			err := &kernel.RuleError{
				Kind:    kernel.FreeVarViolation,
				Rule:    "Deduction",
				Message: v.String() + " is free in " + a.Prop().String(),
			}
			log.V(1).Infof("deduction: %v", err)
			return nil, err
		}
		dsub, err := Deduction(a, sub)
		if err != nil {
			return nil, err
		}
		gen := kernel.Generalization(dsub, v)
		ax5, err := kernel.Axiom5(a.Prop(), sub.Prop(), v)
		if err != nil {
			return nil, err
		}
		return kernel.ModusPonens(gen, ax5)
	}

	switch p.Kind() {
	case kernel.KindAssumption, kernel.KindAxiom1, kernel.KindAxiom2, kernel.KindAxiom3,
		kernel.KindAxiom4, kernel.KindAxiom5, kernel.KindToEvalAxiom, kernel.KindFromEvalAxiom:
		return kernel.ModusPonens(p, kernel.Axiom1(p.Prop(), a.Prop()))
	default:
		err := &kernel.RuleError{
			Kind:    kernel.UnknownProofKind,
			Rule:    "Deduction",
			Message: "do not know how to discharge a proof of this shape",
		}
		log.V(1).Infof("deduction: %v", err)
		return nil, err
	}
}
