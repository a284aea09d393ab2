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

// Package completeness implements a constructive proof of Kalmár's
// completeness theorem for propositional tautologies: given a Prop that is
// a tautology under classical truth tables (treating Forall-headed
// subformulas as opaque atoms, since this procedure reasons about boolean
// structure only, not quantification), it builds a closed kernel.Proof of
// it. If the formula is not a tautology, it fails with a NotATautology
// RuleError instead of looping or panicking.
package completeness

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/golang/glog"
	"go.uber.org/multierr"

	"github.com/ColorlessBoy/first-order-logic/deduction"
	"github.com/ColorlessBoy/first-order-logic/kernel"
	"github.com/ColorlessBoy/first-order-logic/propterm"
	"github.com/ColorlessBoy/first-order-logic/theorem"
)

// MaxVariables bounds how many distinct propositional atoms Complete will
// branch over; the procedure is exponential in this count, so it is a
// package-level knob rather than a hard-coded constant.
var MaxVariables = 12

// assignment records, for one atom under one branch of the case split, the
// proof standing for that atom's assumed truth value.
type assignment struct {
	proof *kernel.Proof
	truth bool
}

// collectAtoms gathers the distinct Var and Forall subformulas of phi, in
// first-occurrence order, descending through Not/Imply directly and
// through every extended form via its single-step Eval().
func collectAtoms(phi propterm.Prop) []propterm.Prop {
	seen := make(map[string]bool)
	var atoms []propterm.Prop
	var walk func(p propterm.Prop)
	walk = func(p propterm.Prop) {
		switch p.Kind() {
		case propterm.KindVar, propterm.KindForall:
			key := p.String()
			if !seen[key] {
				seen[key] = true
				atoms = append(atoms, p)
			}
		case propterm.KindNot:
			child, _ := propterm.NotChild(p)
			walk(child)
		case propterm.KindImply:
			l, r, _ := propterm.ImplyParts(p)
			walk(l)
			walk(r)
		default:
			walk(p.Eval())
		}
	}
	walk(phi)
	return atoms
}

// evalCore proves psi if it is true under assigned, or Not(psi) if it is
// false, returning which. assigned must cover every atom collectAtoms
// found in psi.
func evalCore(psi propterm.Prop, assigned map[string]assignment) (*kernel.Proof, bool, error) {
	switch psi.Kind() {
	case propterm.KindVar, propterm.KindForall:
		e, ok := assigned[psi.String()]
		if !ok {
			return nil, false, &kernel.RuleError{Kind: kernel.UnknownProofKind, Rule: "Complete", Message: "no assignment for atom " + psi.String()}
		}
		return e.proof, e.truth, nil

	case propterm.KindNot:
		child, _ := propterm.NotChild(psi)
		sp, st, err := evalCore(child, assigned)
		if err != nil {
			return nil, false, err
		}
		if st {
			proof, err := kernel.ModusPonens(sp, theorem.DoubleNotIntro(child))
			return proof, false, err
		}
		return sp, true, nil

	case propterm.KindImply:
		l, r, _ := propterm.ImplyParts(psi)
		pl, tl, err := evalCore(l, assigned)
		if err != nil {
			return nil, false, err
		}
		pr, tr, err := evalCore(r, assigned)
		if err != nil {
			return nil, false, err
		}
		switch {
		case !tl:
			proof, err := kernel.ModusPonens(pl, theorem.ExFalso(l, r))
			return proof, true, err
		case tr:
			proof, err := kernel.ModusPonens(pr, kernel.Axiom1(r, l))
			return proof, true, err
		default:
			h := kernel.Assumption(propterm.Imply(l, r))
			s1, err := kernel.ModusPonens(pl, h)
			if err != nil {
				return nil, false, err
			}
			step, err := kernel.ModusPonens(pr, theorem.ExFalso(r, propterm.Not(psi)))
			if err != nil {
				return nil, false, err
			}
			s2, err := kernel.ModusPonens(s1, step)
			if err != nil {
				return nil, false, err
			}
			d1, err := deduction.Deduction(h, s2)
			if err != nil {
				return nil, false, err
			}
			proof, err := kernel.ModusPonens(d1, theorem.SelfNegation(psi))
			return proof, false, err
		}

	default:
		evalForm := psi.Eval()
		sp, st, err := evalCore(evalForm, assigned)
		if err != nil {
			return nil, false, err
		}
		if st {
			proof, err := kernel.ModusPonens(sp, kernel.FromEvalAxiom(psi))
			return proof, true, err
		}
		contrapos, err := kernel.ModusPonens(kernel.ToEvalAxiom(psi), theorem.NotToNotIntro(psi, evalForm))
		if err != nil {
			return nil, false, err
		}
		proof, err := kernel.ModusPonens(sp, contrapos)
		return proof, false, err
	}
}

func withAssignment(assigned map[string]assignment, key string, a assignment) map[string]assignment {
	out := make(map[string]assignment, len(assigned)+1)
	for k, v := range assigned {
		out[k] = v
	}
	out[key] = a
	return out
}

func proveBranch(phi propterm.Prop, atoms []propterm.Prop, assigned map[string]assignment) (*kernel.Proof, error) {
	if len(atoms) == 0 {
		proof, truth, err := evalCore(phi, assigned)
		if err != nil {
			return nil, err
		}
		if !truth {
			var literals []string
			for _, e := range assigned {
				literals = append(literals, e.proof.Prop().String())
			}
			sort.Strings(literals)
			return nil, &kernel.RuleError{
				Kind:    kernel.NotATautology,
				Rule:    "Complete",
				Message: "not a tautology: " + phi.String() + " is false under the assignment {" + strings.Join(literals, ", ") + "}",
			}
		}
		return proof, nil
	}

	a := atoms[0]
	rest := atoms[1:]
	log.V(2).Infof("completeness: branching on %s (%d atoms remaining)", a, len(rest))

	hPlus := kernel.Assumption(a)
	proofPlus, errPlus := proveBranch(phi, rest, withAssignment(assigned, a.String(), assignment{hPlus, true}))

	hMinus := kernel.Assumption(propterm.Not(a))
	proofMinus, errMinus := proveBranch(phi, rest, withAssignment(assigned, a.String(), assignment{hMinus, false}))

	if errPlus != nil || errMinus != nil {
		return nil, multierr.Append(errPlus, errMinus)
	}

	d1, err := deduction.Deduction(hPlus, proofPlus)
	if err != nil {
		return nil, err
	}
	d2, err := deduction.Deduction(hMinus, proofMinus)
	if err != nil {
		return nil, err
	}
	step, err := kernel.ModusPonens(d1, theorem.Contradiction(a, phi))
	if err != nil {
		return nil, err
	}
	result, err := kernel.ModusPonens(d2, step)
	if err != nil {
		return nil, err
	}
	log.V(2).Infof("completeness: discharged %s", a)
	return result, nil
}

// Complete proves phi if it is a classical propositional tautology
// (Forall-headed subformulas treated as opaque atoms), or fails with a
// NotATautology RuleError.
func Complete(phi propterm.Prop) (*kernel.Proof, error) {
	atoms := collectAtoms(phi)
	if len(atoms) > MaxVariables {
		err := &kernel.RuleError{
			Kind:    kernel.NotATautology,
			Rule:    "Complete",
			Message: fmt.Sprintf("formula has %d distinct atoms, exceeds MaxVariables=%d", len(atoms), MaxVariables),
		}
		log.V(1).Infof("completeness: %v", err)
		return nil, err
	}
	proof, err := proveBranch(phi, atoms, map[string]assignment{})
	if err != nil {
		log.V(1).Infof("completeness: %v", err)
		return nil, err
	}
	return proof, nil
}
