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

// universalClosure nests Forall around p, one free variable at a time, in
// the same order Replacement itself uses (FreeVars().Elements(), which is
// sorted), so tests can state the expected closure without depending on
// Replacement's internals.
func universalClosure(p propterm.Prop) propterm.Prop {
	names := p.FreeVars().Elements()
	closed := p
	for i := len(names) - 1; i >= 0; i-- {
		closed = propterm.Forall(propterm.NewVariable(names[i]), closed)
	}
	return closed
}

func TestReplacementNoOccurrence(t *testing.T) {
	sub := propterm.Var(vx)
	rep := propterm.Var(vy)
	q := propterm.Var(va)

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q))
	checkConclusion(t, got, want)
}

func TestReplacementExactMatch(t *testing.T) {
	sub := propterm.Var(vx)
	rep := propterm.Var(vy)

	got, err := Replacement(sub, rep, sub)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(sub, rep))
	checkConclusion(t, got, want)
}

func TestReplacementUnderNot(t *testing.T) {
	sub := propterm.Var(vx)
	rep := propterm.Var(vy)
	q := propterm.Not(sub)

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q.Replacement(sub, rep)))
	checkConclusion(t, got, want)
}

func TestReplacementUnderImply(t *testing.T) {
	sub := propterm.Var(vx)
	rep := propterm.Var(vy)
	q := propterm.Imply(sub, propterm.Var(va))

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q.Replacement(sub, rep)))
	checkConclusion(t, got, want)
}

func TestReplacementUnderAnd(t *testing.T) {
	sub := propterm.Var(vx)
	rep := propterm.Var(vy)
	q := propterm.And(sub, propterm.Var(va))

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q.Replacement(sub, rep)))
	checkConclusion(t, got, want)
}

func TestReplacementUnderOr(t *testing.T) {
	sub := propterm.Var(vx)
	rep := propterm.Var(vy)
	q := propterm.Or(propterm.Var(va), sub)

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q.Replacement(sub, rep)))
	checkConclusion(t, got, want)
}

func TestReplacementUnderIff(t *testing.T) {
	sub := propterm.Var(vx)
	rep := propterm.Var(vy)
	q := propterm.Iff(sub, propterm.Var(va))

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q.Replacement(sub, rep)))
	checkConclusion(t, got, want)
}

func TestReplacementUnderForall(t *testing.T) {
	sub := propterm.Var(va)
	rep := propterm.Var(vb)
	q := propterm.Forall(vx, sub)

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q.Replacement(sub, rep)))
	checkConclusion(t, got, want)
}

func TestReplacementUnderExists(t *testing.T) {
	sub := propterm.Var(va)
	rep := propterm.Var(vb)
	q := propterm.Exists(vx, sub)

	got, err := Replacement(sub, rep, q)
	if err != nil {
		t.Fatalf("Replacement: %v", err)
	}
	closed := universalClosure(propterm.Iff(sub, rep))
	want := propterm.Imply(closed, propterm.Iff(q, q.Replacement(sub, rep)))
	checkConclusion(t, got, want)
}

func TestExistRenameVar(t *testing.T) {
	p := propterm.Var(vx)
	got, err := ExistRenameVar(vx, vy, p)
	if err != nil {
		t.Fatalf("ExistRenameVar: %v", err)
	}
	want := propterm.Imply(propterm.Exists(vx, p), propterm.Exists(vy, p.Substitute(vx, vy)))
	checkConclusion(t, got, want)
}

// TestChoiceToExist covers the (∃x A) ⇒ (∃x B) contract: b is a proof of B
// depending on the open assumption a of A (and on a second, independent
// open assumption ab that must survive discharge).
func TestChoiceToExist(t *testing.T) {
	bigA := propterm.Var(vx)
	bigB := propterm.Var(va)

	a := kernel.Assumption(bigA)
	ab := kernel.Assumption(propterm.Imply(bigA, bigB))
	b, err := kernel.ModusPonens(a, ab)
	if err != nil {
		t.Fatalf("ModusPonens: %v", err)
	}

	got, err := ChoiceToExist(a, b, vx)
	if err != nil {
		t.Fatalf("ChoiceToExist: %v", err)
	}

	want := propterm.Imply(propterm.Exists(vx, bigA), propterm.Exists(vx, bigB))
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
	if got.DependsOn(a) {
		t.Errorf("expected a to be discharged")
	}
	if !got.DependsOn(ab) {
		t.Errorf("expected ab to remain an open assumption")
	}
}
