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
	"fmt"

	"bitbucket.org/creachadair/stringset"
)

// varProp is a variable occurrence treated as a 0-ary proposition.
type varProp struct {
	v Variable
}

// Var constructs the proposition consisting of a bare variable occurrence.
func Var(v Variable) Prop {
	return varProp{v: v}
}

func (p varProp) Kind() Kind { return KindVar }

func (p varProp) FreeVars() stringset.Set  { return stringset.New(p.v.Name()) }
func (p varProp) BoundVars() stringset.Set { return stringset.New() }

func (p varProp) IsFree(x Variable) bool    { return p.v.Equals(x) }
func (p varProp) IsBounded(x Variable) bool { return false }

func (p varProp) Substitute(x, y Variable) Prop {
	if p.v.Equals(x) {
		return Var(y)
	}
	return p
}

func (p varProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return p
}

func (p varProp) Eval() Prop { return p }

func (p varProp) Equals(other Prop) bool { return eq(p, other) }

func (p varProp) String() string { return p.v.String() }

// VarOf reports the variable of p if p is a bare variable occurrence.
func VarOf(p Prop) (Variable, bool) {
	vp, ok := p.(varProp)
	if !ok {
		return Variable{}, false
	}
	return vp.v, true
}

// notProp is logical negation.
type notProp struct {
	child Prop
}

// Not constructs the negation of p.
func Not(p Prop) Prop {
	return notProp{child: p}
}

func (p notProp) Kind() Kind { return KindNot }

func (p notProp) FreeVars() stringset.Set  { return p.child.FreeVars() }
func (p notProp) BoundVars() stringset.Set { return p.child.BoundVars() }

func (p notProp) IsFree(x Variable) bool    { return p.child.IsFree(x) }
func (p notProp) IsBounded(x Variable) bool { return p.child.IsBounded(x) }

func (p notProp) Substitute(x, y Variable) Prop {
	if p.IsFree(x) || p.IsBounded(x) {
		return Not(p.child.Substitute(x, y))
	}
	return p
}

func (p notProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return Not(p.child.Replacement(sub, rep))
}

func (p notProp) Eval() Prop { return p }

func (p notProp) Equals(other Prop) bool { return eq(p, other) }

func (p notProp) String() string { return "!(" + p.child.String() + ")" }

// NotChild reports the negated child of p if p is a negation.
func NotChild(p Prop) (Prop, bool) {
	np, ok := p.(notProp)
	if !ok {
		return nil, false
	}
	return np.child, true
}

// implyProp is material implication.
type implyProp struct {
	lhs, rhs Prop
}

// Imply constructs the implication lhs => rhs.
func Imply(lhs, rhs Prop) Prop {
	return implyProp{lhs: lhs, rhs: rhs}
}

func (p implyProp) Kind() Kind { return KindImply }

func (p implyProp) FreeVars() stringset.Set {
	return p.lhs.FreeVars().Union(p.rhs.FreeVars())
}
func (p implyProp) BoundVars() stringset.Set {
	return p.lhs.BoundVars().Union(p.rhs.BoundVars())
}

func (p implyProp) IsFree(x Variable) bool {
	return p.lhs.IsFree(x) || p.rhs.IsFree(x)
}
func (p implyProp) IsBounded(x Variable) bool {
	return p.lhs.IsBounded(x) || p.rhs.IsBounded(x)
}

func (p implyProp) Substitute(x, y Variable) Prop {
	if p.IsFree(x) || p.IsBounded(x) {
		return Imply(p.lhs.Substitute(x, y), p.rhs.Substitute(x, y))
	}
	return p
}

func (p implyProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return Imply(p.lhs.Replacement(sub, rep), p.rhs.Replacement(sub, rep))
}

func (p implyProp) Eval() Prop { return p }

func (p implyProp) Equals(other Prop) bool { return eq(p, other) }

func (p implyProp) String() string {
	return "(" + p.lhs.String() + "=>" + p.rhs.String() + ")"
}

// ImplyParts reports the antecedent and consequent of p if p is literally
// an implication (not an extended form whose expansion happens to be one).
func ImplyParts(p Prop) (lhs, rhs Prop, ok bool) {
	ip, ok := p.(implyProp)
	if !ok {
		return nil, nil, false
	}
	return ip.lhs, ip.rhs, true
}

// forallProp is universal quantification.
type forallProp struct {
	v    Variable
	body Prop
}

// Forall constructs the universal closure of body over v.
func Forall(v Variable, body Prop) Prop {
	return forallProp{v: v, body: body}
}

func (p forallProp) Kind() Kind { return KindForall }

func (p forallProp) FreeVars() stringset.Set {
	return p.body.FreeVars().Diff(stringset.New(p.v.Name()))
}
func (p forallProp) BoundVars() stringset.Set {
	return p.body.BoundVars().Union(stringset.New(p.v.Name()))
}

func (p forallProp) IsFree(x Variable) bool {
	return !p.v.Equals(x) && p.body.IsFree(x)
}
func (p forallProp) IsBounded(x Variable) bool {
	return p.v.Equals(x) || p.body.IsBounded(x)
}

func (p forallProp) Substitute(x, y Variable) Prop {
	if !p.IsFree(x) && !p.IsBounded(x) {
		return p
	}
	if p.v.Equals(x) {
		return Forall(y, p.body.Substitute(x, y))
	}
	return Forall(p.v, p.body.Substitute(x, y))
}

func (p forallProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return Forall(p.v, p.body.Replacement(sub, rep))
}

func (p forallProp) Eval() Prop { return p }

func (p forallProp) Equals(other Prop) bool { return eq(p, other) }

func (p forallProp) String() string {
	return fmt.Sprintf("(forall %s, %s)", p.v, p.body)
}

// ForallParts reports the bound variable and body of p if p is literally a
// universal quantification.
func ForallParts(p Prop) (v Variable, body Prop, ok bool) {
	fp, ok := p.(forallProp)
	if !ok {
		return Variable{}, nil, false
	}
	return fp.v, fp.body, true
}
