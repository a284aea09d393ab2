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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	va = NewVariable("a")
	vb = NewVariable("b")
	vx = NewVariable("x")
	vy = NewVariable("y")
)

// propComparer lets go-cmp compare Prop values through the package's own
// structural-equality rule instead of reflecting over unexported fields.
var propComparer = cmp.Comparer(func(a, b Prop) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
})

func TestCoreFreeBoundVars(t *testing.T) {
	p := Imply(Var(va), Forall(vx, Var(vx)))

	if !p.IsFree(va) {
		t.Errorf("expected %s free in %s", va, p)
	}
	if p.IsFree(vx) {
		t.Errorf("did not expect %s free in %s", vx, p)
	}
	if !p.IsBounded(vx) {
		t.Errorf("expected %s bound in %s", vx, p)
	}
}

func TestForallRemovesFreeVar(t *testing.T) {
	p := Forall(vx, Var(vx))
	if p.IsFree(vx) {
		t.Errorf("x must not be free in forall x, x")
	}
	if !p.IsBounded(vx) {
		t.Errorf("x must be bound in forall x, x")
	}
}

func TestSubstituteIdentity(t *testing.T) {
	tests := []Prop{
		Var(va),
		Not(Var(va)),
		Imply(Var(va), Var(vb)),
		Forall(vx, Imply(Var(vx), Var(va))),
		And(Var(va), Var(vb)),
		Or(Var(va), Var(vb)),
		Iff(Var(va), Var(vb)),
		Exists(vx, Var(vx)),
	}
	for _, p := range tests {
		got := p.Substitute(va, va)
		if diff := cmp.Diff(p, got, propComparer); diff != "" {
			t.Errorf("Substitute(x,x) changed %s (-want +got):\n%s", p, diff)
		}
	}
}

func TestSubstituteForallRebinds(t *testing.T) {
	p := Forall(vx, Var(vx))
	got := p.Substitute(vx, vy)
	want := Forall(vy, Var(vy))
	if diff := cmp.Diff(want, got, propComparer); diff != "" {
		t.Errorf("Substitute(x,y) on forall x,x mismatch (-want +got):\n%s", diff)
	}
}

func TestEvalCore(t *testing.T) {
	p := Imply(Var(va), Var(vb))
	if diff := cmp.Diff(p, p.Eval(), propComparer); diff != "" {
		t.Errorf("Eval() on core prop must be identity (-want +got):\n%s", diff)
	}
}

func TestEvalExtended(t *testing.T) {
	and := And(Var(va), Var(vb))
	want := Not(Imply(Var(va), Not(Var(vb))))
	if diff := cmp.Diff(want, and.Eval(), propComparer); diff != "" {
		t.Errorf("And.Eval() mismatch (-want +got):\n%s", diff)
	}

	or := Or(Var(va), Var(vb))
	wantOr := Imply(Not(Var(va)), Var(vb))
	if diff := cmp.Diff(wantOr, or.Eval(), propComparer); diff != "" {
		t.Errorf("Or.Eval() mismatch (-want +got):\n%s", diff)
	}

	ex := Exists(vx, Var(vx))
	wantEx := Not(Forall(vx, Not(Var(vx))))
	if diff := cmp.Diff(wantEx, ex.Eval(), propComparer); diff != "" {
		t.Errorf("Exists.Eval() mismatch (-want +got):\n%s", diff)
	}

	iff := Iff(Var(va), Var(vb))
	wantIff := Not(Imply(Imply(Var(va), Var(vb)), Not(Imply(Var(vb), Var(va)))))
	if diff := cmp.Diff(wantIff, iff.Eval(), propComparer); diff != "" {
		t.Errorf("Iff.Eval() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtendedNotEqualToExpansion(t *testing.T) {
	and := And(Var(va), Var(vb))
	expansion := and.Eval()
	if and.Equals(expansion) {
		t.Errorf("extended form must not equal its own expansion")
	}
	if expansion.Equals(and) {
		t.Errorf("expansion must not equal the extended form")
	}
}

func TestExtendedEqualsBySingleStepExpansion(t *testing.T) {
	a1 := And(Var(va), Var(vb))
	a2 := And(Var(va), Var(vb))
	if !a1.Equals(a2) {
		t.Errorf("expected structurally identical And props to be equal")
	}

	different := And(Var(va), Var(va))
	if a1.Equals(different) {
		t.Errorf("did not expect %s to equal %s", a1, different)
	}
}

func TestReplacementRebuildsIffNotExpansion(t *testing.T) {
	p := Iff(Var(va), Var(va))
	got := p.Replacement(Var(vb), Var(vb))
	if got.Kind() != KindIff {
		t.Errorf("Replacement on a non-matching subtree must rebuild the same extended kind, got Kind()=%v", got.Kind())
	}
}

func TestReplacementSubstitutesMatch(t *testing.T) {
	p := Imply(Var(va), Var(vb))
	got := p.Replacement(Var(va), Var(vx))
	want := Imply(Var(vx), Var(vb))
	if diff := cmp.Diff(want, got, propComparer); diff != "" {
		t.Errorf("Replacement mismatch (-want +got):\n%s", diff)
	}
}
