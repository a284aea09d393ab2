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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ColorlessBoy/first-order-logic/kernel"
	"github.com/ColorlessBoy/first-order-logic/propterm"
)

var (
	va = propterm.NewVariable("a")
	vb = propterm.NewVariable("b")
	vc = propterm.NewVariable("c")
	vx = propterm.NewVariable("x")
)

var propComparer = cmp.Comparer(func(a, b propterm.Prop) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
})

func checkConclusion(t *testing.T, got *kernel.Proof, want propterm.Prop) {
	t.Helper()
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
	if len(got.Assumptions()) != 0 {
		t.Errorf("expected no open assumptions, got %v", got.Assumptions())
	}
}

func TestReflexive(t *testing.T) {
	p := propterm.Var(va)
	got := Reflexive(p)
	checkConclusion(t, got, propterm.Imply(p, p))
}

func TestTransitive(t *testing.T) {
	a, b, c := propterm.Var(va), propterm.Var(vb), propterm.Var(vc)
	ab := kernel.Assumption(propterm.Imply(a, b))
	bc := kernel.Assumption(propterm.Imply(b, c))
	got, err := Transitive(ab, bc)
	if err != nil {
		t.Fatalf("Transitive: %v", err)
	}
	want := propterm.Imply(a, c)
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
	if !got.DependsOn(ab) || !got.DependsOn(bc) {
		t.Errorf("expected both premises to remain open assumptions")
	}
}

func TestTransitiveRejectsMismatch(t *testing.T) {
	a, b, c, x := propterm.Var(va), propterm.Var(vb), propterm.Var(vc), propterm.Var(vx)
	ab := kernel.Assumption(propterm.Imply(a, b))
	xc := kernel.Assumption(propterm.Imply(x, c))
	if _, err := Transitive(ab, xc); err == nil {
		t.Fatal("expected middle-term mismatch to be rejected")
	}
}

func TestImplyExchange(t *testing.T) {
	a, b, c := propterm.Var(va), propterm.Var(vb), propterm.Var(vc)
	proof := kernel.Assumption(propterm.Imply(a, propterm.Imply(b, c)))
	got, err := ImplyExchange(proof)
	if err != nil {
		t.Fatalf("ImplyExchange: %v", err)
	}
	want := propterm.Imply(b, propterm.Imply(a, c))
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubleNotElim(t *testing.T) {
	p := propterm.Var(va)
	got := DoubleNotElim(p)
	checkConclusion(t, got, propterm.Imply(propterm.Not(propterm.Not(p)), p))
}

func TestDoubleNotIntro(t *testing.T) {
	p := propterm.Var(va)
	got := DoubleNotIntro(p)
	checkConclusion(t, got, propterm.Imply(p, propterm.Not(propterm.Not(p))))
}

func TestNotToNotElim(t *testing.T) {
	a, b := propterm.Var(va), propterm.Var(vb)
	got := NotToNotElim(a, b)
	want := propterm.Imply(propterm.Imply(propterm.Not(a), propterm.Not(b)), propterm.Imply(b, a))
	checkConclusion(t, got, want)
}

func TestNotToNotIntro(t *testing.T) {
	a, b := propterm.Var(va), propterm.Var(vb)
	got := NotToNotIntro(a, b)
	want := propterm.Imply(propterm.Imply(a, b), propterm.Imply(propterm.Not(b), propterm.Not(a)))
	checkConclusion(t, got, want)
}

func TestContradiction(t *testing.T) {
	a, b := propterm.Var(va), propterm.Var(vb)
	got := Contradiction(a, b)
	want := propterm.Imply(
		propterm.Imply(a, b),
		propterm.Imply(propterm.Imply(propterm.Not(a), b), b),
	)
	checkConclusion(t, got, want)
}

func TestExFalso(t *testing.T) {
	a, x := propterm.Var(va), propterm.Var(vx)
	got := ExFalso(a, x)
	want := propterm.Imply(propterm.Not(a), propterm.Imply(a, x))
	checkConclusion(t, got, want)
}

func TestSelfNegation(t *testing.T) {
	x := propterm.Var(vx)
	got := SelfNegation(x)
	want := propterm.Imply(propterm.Imply(x, propterm.Not(x)), propterm.Not(x))
	checkConclusion(t, got, want)
}
