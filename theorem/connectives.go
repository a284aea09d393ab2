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

// AndIntro proves a=>(b=>And(a,b)).
func AndIntro(a, b propterm.Prop) *kernel.Proof {
	ha := kernel.Assumption(a)
	hb := kernel.Assumption(b)
	hc := kernel.Assumption(propterm.Imply(a, propterm.Not(b)))

	s1, err := kernel.ModusPonens(ha, hc)
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	d1, err := deduction.Deduction(hc, s1)
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	notB2, err := kernel.ModusPonens(hb, DoubleNotIntro(b))
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	nti := NotToNotIntro(hc.Prop(), propterm.Not(b))
	s2, err := kernel.ModusPonens(d1, nti)
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	s3, err := kernel.ModusPonens(notB2, s2)
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	and := propterm.And(a, b)
	s4, err := kernel.ModusPonens(s3, kernel.FromEvalAxiom(and))
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	d2, err := deduction.Deduction(hb, s4)
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	result, err := deduction.Deduction(ha, d2)
	if err != nil {
		panic("theorem: AndIntro: " + err.Error())
	}
	return result
}

// AndElim proves And(a,b)=>b.
func AndElim(a, b propterm.Prop) *kernel.Proof {
	and := propterm.And(a, b)
	h := kernel.Assumption(and)
	s1, err := kernel.ModusPonens(h, kernel.ToEvalAxiom(and))
	if err != nil {
		panic("theorem: AndElim: " + err.Error())
	}
	ax1 := kernel.Axiom1(propterm.Not(b), a)
	nti := NotToNotIntro(propterm.Not(b), propterm.Imply(a, propterm.Not(b)))
	s2, err := kernel.ModusPonens(ax1, nti)
	if err != nil {
		panic("theorem: AndElim: " + err.Error())
	}
	s3, err := kernel.ModusPonens(s1, s2)
	if err != nil {
		panic("theorem: AndElim: " + err.Error())
	}
	s4, err := kernel.ModusPonens(s3, DoubleNotElim(b))
	if err != nil {
		panic("theorem: AndElim: " + err.Error())
	}
	result, err := deduction.Deduction(h, s4)
	if err != nil {
		panic("theorem: AndElim: " + err.Error())
	}
	return result
}

// AndElimLeft proves And(a,b)=>a.
func AndElimLeft(a, b propterm.Prop) *kernel.Proof {
	and := propterm.And(a, b)
	h := kernel.Assumption(and)
	s1, err := kernel.ModusPonens(h, kernel.ToEvalAxiom(and))
	if err != nil {
		panic("theorem: AndElimLeft: " + err.Error())
	}
	exf := ExFalso(a, propterm.Not(b))
	nti := NotToNotIntro(propterm.Not(a), propterm.Imply(a, propterm.Not(b)))
	s2, err := kernel.ModusPonens(exf, nti)
	if err != nil {
		panic("theorem: AndElimLeft: " + err.Error())
	}
	s3, err := kernel.ModusPonens(s1, s2)
	if err != nil {
		panic("theorem: AndElimLeft: " + err.Error())
	}
	s4, err := kernel.ModusPonens(s3, DoubleNotElim(a))
	if err != nil {
		panic("theorem: AndElimLeft: " + err.Error())
	}
	result, err := deduction.Deduction(h, s4)
	if err != nil {
		panic("theorem: AndElimLeft: " + err.Error())
	}
	return result
}

// OrIntroLeft proves a=>Or(a,b).
func OrIntroLeft(a, b propterm.Prop) *kernel.Proof {
	evalForm, err := ImplyExchange(ExFalso(a, b))
	if err != nil {
		panic("theorem: OrIntroLeft: " + err.Error())
	}
	or := propterm.Or(a, b)
	result, err := Transitive(evalForm, kernel.FromEvalAxiom(or))
	if err != nil {
		panic("theorem: OrIntroLeft: " + err.Error())
	}
	return result
}

// OrIntroRight proves b=>Or(a,b).
func OrIntroRight(a, b propterm.Prop) *kernel.Proof {
	or := propterm.Or(a, b)
	evalForm := kernel.Axiom1(b, propterm.Not(a))
	result, err := Transitive(evalForm, kernel.FromEvalAxiom(or))
	if err != nil {
		panic("theorem: OrIntroRight: " + err.Error())
	}
	return result
}

// OrElim proves (a=>c) => ((b=>c) => (Or(a,b)=>c)): case analysis on a
// disjunction.
func OrElim(a, b, c propterm.Prop) *kernel.Proof {
	h1 := kernel.Assumption(propterm.Imply(a, c))
	h2 := kernel.Assumption(propterm.Imply(b, c))
	or := propterm.Or(a, b)
	hor := kernel.Assumption(or)

	s1, err := kernel.ModusPonens(hor, kernel.ToEvalAxiom(or))
	if err != nil {
		panic("theorem: OrElim: " + err.Error())
	}
	notAToC, err := Transitive(s1, h2)
	if err != nil {
		panic("theorem: OrElim: " + err.Error())
	}
	step, err := kernel.ModusPonens(h1, Contradiction(a, c))
	if err != nil {
		panic("theorem: OrElim: " + err.Error())
	}
	result, err := kernel.ModusPonens(notAToC, step)
	if err != nil {
		panic("theorem: OrElim: " + err.Error())
	}
	d1, err := deduction.Deduction(hor, result)
	if err != nil {
		panic("theorem: OrElim: " + err.Error())
	}
	d2, err := deduction.Deduction(h2, d1)
	if err != nil {
		panic("theorem: OrElim: " + err.Error())
	}
	final, err := deduction.Deduction(h1, d2)
	if err != nil {
		panic("theorem: OrElim: " + err.Error())
	}
	return final
}

// IffIntro proves (a=>b) => ((b=>a) => Iff(a,b)).
func IffIntro(a, b propterm.Prop) *kernel.Proof {
	h1 := kernel.Assumption(propterm.Imply(a, b))
	h2 := kernel.Assumption(propterm.Imply(b, a))

	ai := AndIntro(propterm.Imply(a, b), propterm.Imply(b, a))
	s1, err := kernel.ModusPonens(h1, ai)
	if err != nil {
		panic("theorem: IffIntro: " + err.Error())
	}
	s2, err := kernel.ModusPonens(h2, s1)
	if err != nil {
		panic("theorem: IffIntro: " + err.Error())
	}
	and := propterm.And(propterm.Imply(a, b), propterm.Imply(b, a))
	s3, err := kernel.ModusPonens(s2, kernel.ToEvalAxiom(and))
	if err != nil {
		panic("theorem: IffIntro: " + err.Error())
	}
	iff := propterm.Iff(a, b)
	s4, err := kernel.ModusPonens(s3, kernel.FromEvalAxiom(iff))
	if err != nil {
		panic("theorem: IffIntro: " + err.Error())
	}
	d1, err := deduction.Deduction(h2, s4)
	if err != nil {
		panic("theorem: IffIntro: " + err.Error())
	}
	result, err := deduction.Deduction(h1, d1)
	if err != nil {
		panic("theorem: IffIntro: " + err.Error())
	}
	return result
}

// IffElimLeft proves Iff(a,b) => (a=>b).
func IffElimLeft(a, b propterm.Prop) *kernel.Proof {
	iff := propterm.Iff(a, b)
	h := kernel.Assumption(iff)
	s1, err := kernel.ModusPonens(h, kernel.ToEvalAxiom(iff))
	if err != nil {
		panic("theorem: IffElimLeft: " + err.Error())
	}
	and := propterm.And(propterm.Imply(a, b), propterm.Imply(b, a))
	s2, err := kernel.ModusPonens(s1, kernel.FromEvalAxiom(and))
	if err != nil {
		panic("theorem: IffElimLeft: " + err.Error())
	}
	s3, err := kernel.ModusPonens(s2, AndElimLeft(propterm.Imply(a, b), propterm.Imply(b, a)))
	if err != nil {
		panic("theorem: IffElimLeft: " + err.Error())
	}
	result, err := deduction.Deduction(h, s3)
	if err != nil {
		panic("theorem: IffElimLeft: " + err.Error())
	}
	return result
}

// IffElimRight proves Iff(a,b) => (b=>a).
func IffElimRight(a, b propterm.Prop) *kernel.Proof {
	iff := propterm.Iff(a, b)
	h := kernel.Assumption(iff)
	s1, err := kernel.ModusPonens(h, kernel.ToEvalAxiom(iff))
	if err != nil {
		panic("theorem: IffElimRight: " + err.Error())
	}
	and := propterm.And(propterm.Imply(a, b), propterm.Imply(b, a))
	s2, err := kernel.ModusPonens(s1, kernel.FromEvalAxiom(and))
	if err != nil {
		panic("theorem: IffElimRight: " + err.Error())
	}
	s3, err := kernel.ModusPonens(s2, AndElim(propterm.Imply(a, b), propterm.Imply(b, a)))
	if err != nil {
		panic("theorem: IffElimRight: " + err.Error())
	}
	result, err := deduction.Deduction(h, s3)
	if err != nil {
		panic("theorem: IffElimRight: " + err.Error())
	}
	return result
}

// IffExchange proves Iff(a,b) => Iff(b,a).
func IffExchange(a, b propterm.Prop) *kernel.Proof {
	h := kernel.Assumption(propterm.Iff(a, b))
	ab, err := kernel.ModusPonens(h, IffElimLeft(a, b))
	if err != nil {
		panic("theorem: IffExchange: " + err.Error())
	}
	ba, err := kernel.ModusPonens(h, IffElimRight(a, b))
	if err != nil {
		panic("theorem: IffExchange: " + err.Error())
	}
	ii := IffIntro(b, a)
	s1, err := kernel.ModusPonens(ba, ii)
	if err != nil {
		panic("theorem: IffExchange: " + err.Error())
	}
	s2, err := kernel.ModusPonens(ab, s1)
	if err != nil {
		panic("theorem: IffExchange: " + err.Error())
	}
	result, err := deduction.Deduction(h, s2)
	if err != nil {
		panic("theorem: IffExchange: " + err.Error())
	}
	return result
}
