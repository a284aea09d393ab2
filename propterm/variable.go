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

// Package propterm implements the term and proposition representation for
// the first-order proof kernel: named variables and the eight-shape Prop
// AST (four core connectives plus their four extended aliases), each
// reporting its free and bound variable sets, which are computed from the
// node's children on every request rather than stored on the node.
package propterm

// Variable is a named identifier. Equality and ordering are by name; a
// Variable is immutable once constructed.
type Variable struct {
	name string
}

// NewVariable constructs a Variable with the given name.
func NewVariable(name string) Variable {
	return Variable{name: name}
}

// Name returns the variable's name.
func (v Variable) Name() string {
	return v.name
}

// Equals reports whether v and o have the same name.
func (v Variable) Equals(o Variable) bool {
	return v.name == o.name
}

// Less orders variables by name, giving a total order usable for
// deterministic iteration over variable sets.
func (v Variable) Less(o Variable) bool {
	return v.name < o.name
}

// String returns the variable's name.
func (v Variable) String() string {
	return v.name
}
