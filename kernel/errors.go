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

package kernel

import "fmt"

// RuleErrorKind enumerates the ways a kernel constructor can reject its
// inputs. Category groups these into a coarser taxonomy (TypeMisuse,
// PreconditionViolation, NotATautology).
type RuleErrorKind int

const (
	// NotImply: ModusPonens's second operand does not prove an Imply.
	NotImply RuleErrorKind = iota
	// AntecedentMismatch: ModusPonens's first operand's conclusion does
	// not match the antecedent of the second operand's conclusion.
	AntecedentMismatch
	// BoundCapture: Axiom4's y is bound in p.
	BoundCapture
	// FreeVarViolation: Axiom5's x is free in p1, or Deduction recursed
	// into a Generalization whose variable is free in the assumption.
	FreeVarViolation
	// UnknownProofKind: Deduction was asked to recurse over a proof shape
	// it does not know how to handle.
	UnknownProofKind
	// NotATautology: Completeness could not discharge every assumption.
	NotATautology
)

func (k RuleErrorKind) String() string {
	switch k {
	case NotImply:
		return "NotImply"
	case AntecedentMismatch:
		return "AntecedentMismatch"
	case BoundCapture:
		return "BoundCapture"
	case FreeVarViolation:
		return "FreeVarViolation"
	case UnknownProofKind:
		return "UnknownProofKind"
	case NotATautology:
		return "NotATautology"
	default:
		return "Unknown"
	}
}

// Category groups a RuleErrorKind into the coarser taxonomy above.
type Category int

const (
	// TypeMisuse: a constructor was fed a value that is not the required
	// node kind.
	TypeMisuse Category = iota
	// PreconditionViolation: a capture or free-variable side condition
	// was broken.
	PreconditionViolation
	// NotATautologyCategory: Completeness could not close every
	// assumption.
	NotATautologyCategory
)

// Category reports which of spec §7's coarse categories k belongs to.
func (k RuleErrorKind) Category() Category {
	switch k {
	case NotImply, AntecedentMismatch:
		return TypeMisuse
	case NotATautology:
		return NotATautologyCategory
	default:
		return PreconditionViolation
	}
}

// RuleError is returned synchronously by every kernel/theorem/completeness
// constructor that rejects its inputs. No partial or dangling proof is
// ever returned alongside a RuleError.
type RuleError struct {
	Kind    RuleErrorKind
	Rule    string // name of the failing constructor, e.g. "Axiom4"
	Message string
	Cause   error // optional wrapped cause, e.g. from multierr aggregation
}

func (e *RuleError) Error() string {
	if e.Rule == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

// Unwrap lets errors.Is/errors.As see through to an aggregated cause.
func (e *RuleError) Unwrap() error {
	return e.Cause
}
