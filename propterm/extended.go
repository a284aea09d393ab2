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

import "bitbucket.org/creachadair/stringset"

// andProp, orProp, iffProp and existsProp are the four extended ("alias")
// forms. Each stores the eagerly computed single-step core expansion
// alongside its own shape, per the source project's AliasProp design
// (spec.md §9): the expansion is what Eval and Equals consult, while
// Substitute/Replacement/String operate on the alias's own children so
// that proof-term displays stay compact.

type andProp struct {
	left, right Prop
	expand      Prop
}

// And constructs the conjunction of p and q, semantically
// !(p => !q).
func And(p, q Prop) Prop {
	return andProp{left: p, right: q, expand: Not(Imply(p, Not(q)))}
}

func (p andProp) Kind() Kind                 { return KindAnd }
func (p andProp) expansion() Prop            { return p.expand }
func (p andProp) FreeVars() stringset.Set    { return p.left.FreeVars().Union(p.right.FreeVars()) }
func (p andProp) BoundVars() stringset.Set   { return p.left.BoundVars().Union(p.right.BoundVars()) }
func (p andProp) IsFree(x Variable) bool     { return p.left.IsFree(x) || p.right.IsFree(x) }
func (p andProp) IsBounded(x Variable) bool  { return p.left.IsBounded(x) || p.right.IsBounded(x) }
func (p andProp) Eval() Prop                 { return p.expand }
func (p andProp) Equals(other Prop) bool     { return eq(p, other) }
func (p andProp) String() string             { return "(" + p.left.String() + "/\\" + p.right.String() + ")" }

func (p andProp) Substitute(x, y Variable) Prop {
	if !p.IsFree(x) && !p.IsBounded(x) {
		return p
	}
	return And(p.left.Substitute(x, y), p.right.Substitute(x, y))
}

func (p andProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return And(p.left.Replacement(sub, rep), p.right.Replacement(sub, rep))
}

// AndParts reports the two conjuncts of p if p is literally an And node.
func AndParts(p Prop) (left, right Prop, ok bool) {
	ap, ok := p.(andProp)
	if !ok {
		return nil, nil, false
	}
	return ap.left, ap.right, true
}

type orProp struct {
	left, right Prop
	expand      Prop
}

// Or constructs the disjunction of p and q, semantically !p => q.
func Or(p, q Prop) Prop {
	return orProp{left: p, right: q, expand: Imply(Not(p), q)}
}

func (p orProp) Kind() Kind                 { return KindOr }
func (p orProp) expansion() Prop            { return p.expand }
func (p orProp) FreeVars() stringset.Set    { return p.left.FreeVars().Union(p.right.FreeVars()) }
func (p orProp) BoundVars() stringset.Set   { return p.left.BoundVars().Union(p.right.BoundVars()) }
func (p orProp) IsFree(x Variable) bool     { return p.left.IsFree(x) || p.right.IsFree(x) }
func (p orProp) IsBounded(x Variable) bool  { return p.left.IsBounded(x) || p.right.IsBounded(x) }
func (p orProp) Eval() Prop                 { return p.expand }
func (p orProp) Equals(other Prop) bool     { return eq(p, other) }
func (p orProp) String() string             { return "(" + p.left.String() + "\\/" + p.right.String() + ")" }

func (p orProp) Substitute(x, y Variable) Prop {
	if !p.IsFree(x) && !p.IsBounded(x) {
		return p
	}
	return Or(p.left.Substitute(x, y), p.right.Substitute(x, y))
}

func (p orProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return Or(p.left.Replacement(sub, rep), p.right.Replacement(sub, rep))
}

// OrParts reports the two disjuncts of p if p is literally an Or node.
func OrParts(p Prop) (left, right Prop, ok bool) {
	op, ok := p.(orProp)
	if !ok {
		return nil, nil, false
	}
	return op.left, op.right, true
}

type iffProp struct {
	left, right Prop
	expand      Prop
}

// Iff constructs the biconditional of p and q. Its single-step expansion
// is And(Imply(p,q), Imply(q,p)) -- itself an extended form -- so Eval
// recurses one further step to reach the core.
func Iff(p, q Prop) Prop {
	and := And(Imply(p, q), Imply(q, p))
	return iffProp{left: p, right: q, expand: and.Eval()}
}

func (p iffProp) Kind() Kind                 { return KindIff }
func (p iffProp) expansion() Prop            { return p.expand }
func (p iffProp) FreeVars() stringset.Set    { return p.left.FreeVars().Union(p.right.FreeVars()) }
func (p iffProp) BoundVars() stringset.Set   { return p.left.BoundVars().Union(p.right.BoundVars()) }
func (p iffProp) IsFree(x Variable) bool     { return p.left.IsFree(x) || p.right.IsFree(x) }
func (p iffProp) IsBounded(x Variable) bool  { return p.left.IsBounded(x) || p.right.IsBounded(x) }
func (p iffProp) Eval() Prop                 { return p.expand }
func (p iffProp) Equals(other Prop) bool     { return eq(p, other) }
func (p iffProp) String() string             { return "(" + p.left.String() + "<=>" + p.right.String() + ")" }

func (p iffProp) Substitute(x, y Variable) Prop {
	if !p.IsFree(x) && !p.IsBounded(x) {
		return p
	}
	return Iff(p.left.Substitute(x, y), p.right.Substitute(x, y))
}

func (p iffProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return Iff(p.left.Replacement(sub, rep), p.right.Replacement(sub, rep))
}

// IffParts reports the two sides of p if p is literally an Iff node.
func IffParts(p Prop) (left, right Prop, ok bool) {
	ip, ok := p.(iffProp)
	if !ok {
		return nil, nil, false
	}
	return ip.left, ip.right, true
}

type existsProp struct {
	v      Variable
	body   Prop
	expand Prop
}

// Exists constructs the existential closure of body over v, semantically
// !(forall v, !body).
func Exists(v Variable, body Prop) Prop {
	return existsProp{v: v, body: body, expand: Not(Forall(v, Not(body)))}
}

func (p existsProp) Kind() Kind      { return KindExists }
func (p existsProp) expansion() Prop { return p.expand }
func (p existsProp) FreeVars() stringset.Set {
	return p.body.FreeVars().Diff(stringset.New(p.v.Name()))
}
func (p existsProp) BoundVars() stringset.Set {
	return p.body.BoundVars().Union(stringset.New(p.v.Name()))
}
func (p existsProp) IsFree(x Variable) bool {
	return !p.v.Equals(x) && p.body.IsFree(x)
}
func (p existsProp) IsBounded(x Variable) bool {
	return p.v.Equals(x) || p.body.IsBounded(x)
}
func (p existsProp) Eval() Prop             { return p.expand }
func (p existsProp) Equals(other Prop) bool { return eq(p, other) }
func (p existsProp) String() string {
	return "(exists " + p.v.String() + "," + p.body.String() + ")"
}

func (p existsProp) Substitute(x, y Variable) Prop {
	if !p.IsFree(x) && !p.IsBounded(x) {
		return p
	}
	if p.v.Equals(x) {
		return Exists(y, p.body.Substitute(x, y))
	}
	return Exists(p.v, p.body.Substitute(x, y))
}

func (p existsProp) Replacement(sub, rep Prop) Prop {
	if eq(p, sub) {
		return rep
	}
	return Exists(p.v, p.body.Replacement(sub, rep))
}

// ExistsParts reports the bound variable and body of p if p is literally
// an Exists node.
func ExistsParts(p Prop) (v Variable, body Prop, ok bool) {
	ep, ok := p.(existsProp)
	if !ok {
		return Variable{}, nil, false
	}
	return ep.v, ep.body, true
}
