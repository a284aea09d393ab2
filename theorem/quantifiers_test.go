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

var vy = propterm.NewVariable("y")

func TestForallExchange(t *testing.T) {
	p := propterm.Var(va)
	got, err := ForallExchange(vx, vy, p)
	if err != nil {
		t.Fatalf("ForallExchange: %v", err)
	}
	want := propterm.Imply(
		propterm.Forall(vx, propterm.Forall(vy, p)),
		propterm.Forall(vy, propterm.Forall(vx, p)),
	)
	checkConclusion(t, got, want)
}

func TestExistIntro(t *testing.T) {
	p := propterm.Imply(propterm.Var(vx), propterm.Var(va))
	got, err := ExistIntro(vx, vy, p)
	if err != nil {
		t.Fatalf("ExistIntro: %v", err)
	}
	want := propterm.Imply(p.Substitute(vx, vy), propterm.Exists(vx, p))
	checkConclusion(t, got, want)
}

func TestExistIntroRejectsBoundCapture(t *testing.T) {
	p := propterm.Forall(vy, propterm.Var(vx))
	if _, err := ExistIntro(vx, vy, p); err == nil {
		t.Fatal("expected rejection when the witness is bound inside p")
	}
}

func TestNotFreeVarForallIntro(t *testing.T) {
	a := propterm.Var(va)
	h := kernel.Assumption(a)
	body := propterm.Var(vx)
	proof, err := kernel.ModusPonens(h, kernel.Assumption(propterm.Imply(a, body)))
	if err != nil {
		t.Fatalf("ModusPonens: %v", err)
	}
	got, err := NotFreeVarForallIntro(h, proof, vx)
	if err != nil {
		t.Fatalf("NotFreeVarForallIntro: %v", err)
	}
	want := propterm.Imply(a, propterm.Forall(vx, body))
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
	if got.DependsOn(h) {
		t.Errorf("expected h to be discharged")
	}
}

func TestNotFreeVarExistElim(t *testing.T) {
	p := propterm.Var(vx)
	a := propterm.Var(va)
	px := kernel.Assumption(propterm.Imply(p, a))
	got, err := NotFreeVarExistElim(px, vx)
	if err != nil {
		t.Fatalf("NotFreeVarExistElim: %v", err)
	}
	want := propterm.Imply(propterm.Exists(vx, p), a)
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
}

func TestForallImplyToImplyForall(t *testing.T) {
	p1 := propterm.Var(va)
	p2 := propterm.Var(vx)
	proof := kernel.Assumption(propterm.Forall(vx, propterm.Imply(p1, p2)))
	got, err := ForallImplyToImplyForall(proof, vx)
	if err != nil {
		t.Fatalf("ForallImplyToImplyForall: %v", err)
	}
	want := propterm.Imply(p1, propterm.Forall(vx, p2))
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
}

func TestForallImplyToImplyForallRejectsNonForall(t *testing.T) {
	p1, p2 := propterm.Var(va), propterm.Var(vx)
	proof := kernel.Assumption(propterm.Imply(p1, p2))
	if _, err := ForallImplyToImplyForall(proof, vx); err == nil {
		t.Fatal("expected rejection of a non-Forall premise")
	}
}

func TestForallImplyToImplyExist(t *testing.T) {
	p1 := propterm.Var(vx)
	p2 := propterm.Var(va)
	proof := kernel.Assumption(propterm.Forall(vx, propterm.Imply(p1, p2)))
	got, err := ForallImplyToImplyExist(proof, vx)
	if err != nil {
		t.Fatalf("ForallImplyToImplyExist: %v", err)
	}
	want := propterm.Imply(propterm.Exists(vx, p1), p2)
	if diff := cmp.Diff(want, got.Prop(), propComparer); diff != "" {
		t.Errorf("conclusion mismatch (-want +got):\n%s", diff)
	}
}

func TestNotForallToExistNot(t *testing.T) {
	p := propterm.Var(vx)
	got, err := NotForallToExistNot(vx, p)
	if err != nil {
		t.Fatalf("NotForallToExistNot: %v", err)
	}
	want := propterm.Imply(
		propterm.Not(propterm.Forall(vx, p)),
		propterm.Exists(vx, propterm.Not(p)),
	)
	checkConclusion(t, got, want)
}

func TestNotExistToForallNot(t *testing.T) {
	p := propterm.Var(vx)
	got, err := NotExistToForallNot(vx, p)
	if err != nil {
		t.Fatalf("NotExistToForallNot: %v", err)
	}
	want := propterm.Imply(
		propterm.Not(propterm.Exists(vx, p)),
		propterm.Forall(vx, propterm.Not(p)),
	)
	checkConclusion(t, got, want)
}
