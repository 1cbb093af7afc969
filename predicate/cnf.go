// Copyright 2026 The Quill Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package predicate

import "github.com/quilldb/quill/expr"

// ToCNF rewrites e into conjunctive normal form: first pushing negations
// inward via De Morgan's laws (negation normal form), then distributing ∨
// over ∧ until no And appears beneath an Or. It performs no implication or
// quantifier handling — this algebra has neither.
//
// Termination: pushNegations strictly reduces negation depth each step;
// distribute strictly reduces the nesting depth of an And found under an
// Or each step. Both loops are bounded by the size of e, so ToCNF always
// terminates.
func ToCNF(e expr.Expression) expr.Expression {
	return distribute(pushNegations(e))
}

// pushNegations rewrites e into negation normal form: NOT only ever
// applies directly to an atom (a comparison, IsNull, attribute, or
// literal), never to an And/Or/Not.
func pushNegations(e expr.Expression) expr.Expression {
	switch v := e.(type) {
	case *expr.Logical:
		left, right := pushNegations(v.Left), pushNegations(v.Right)
		if left == v.Left && right == v.Right {
			return v
		}
		return &expr.Logical{Op: v.Op, Left: left, Right: right}
	case *expr.Not:
		return pushNegationInto(v.Child)
	default:
		return e
	}
}

// pushNegationInto returns the negation normal form of NOT(child).
func pushNegationInto(child expr.Expression) expr.Expression {
	switch v := child.(type) {
	case *expr.Not:
		// ¬¬x = x
		return pushNegations(v.Child)
	case *expr.Logical:
		// De Morgan: ¬(a∧b) = ¬a∨¬b, ¬(a∨b) = ¬a∧¬b
		negLeft := pushNegationInto(v.Left)
		negRight := pushNegationInto(v.Right)
		if v.Op == expr.OpAnd {
			return &expr.Logical{Op: expr.OpOr, Left: negLeft, Right: negRight}
		}
		return &expr.Logical{Op: expr.OpAnd, Left: negLeft, Right: negRight}
	case *expr.Comparison:
		return &expr.Comparison{Op: v.Op.Negated(), Left: v.Left, Right: v.Right}
	case *expr.IsNull:
		return &expr.IsNull{Child: v.Child, Negated: !v.Negated}
	default:
		return expr.NewNot(pushNegations(child))
	}
}

// distribute rewrites a negation-normal-form expression into CNF by
// distributing ∨ over ∧ until no And appears beneath an Or.
func distribute(e expr.Expression) expr.Expression {
	l, ok := e.(*expr.Logical)
	if !ok {
		return e
	}
	left, right := distribute(l.Left), distribute(l.Right)
	if l.Op == expr.OpAnd {
		if left == l.Left && right == l.Right {
			return l
		}
		return &expr.Logical{Op: expr.OpAnd, Left: left, Right: right}
	}

	// Or: distribute over either side's top-level And, then re-distribute
	// the result since distributing can expose a new And-under-Or nesting.
	if la, ok := left.(*expr.Logical); ok && la.Op == expr.OpAnd {
		return distribute(&expr.Logical{
			Op:    expr.OpAnd,
			Left:  &expr.Logical{Op: expr.OpOr, Left: la.Left, Right: right},
			Right: &expr.Logical{Op: expr.OpOr, Left: la.Right, Right: right},
		})
	}
	if ra, ok := right.(*expr.Logical); ok && ra.Op == expr.OpAnd {
		return distribute(&expr.Logical{
			Op:    expr.OpAnd,
			Left:  &expr.Logical{Op: expr.OpOr, Left: left, Right: ra.Left},
			Right: &expr.Logical{Op: expr.OpOr, Left: left, Right: ra.Right},
		})
	}
	if left == l.Left && right == l.Right {
		return l
	}
	return &expr.Logical{Op: expr.OpOr, Left: left, Right: right}
}

// IsCNF reports whether e contains no And beneath an Or, the invariant the
// optimizer's CNF testable property checks after a full run.
func IsCNF(e expr.Expression) bool {
	l, ok := e.(*expr.Logical)
	if !ok {
		return true
	}
	if l.Op == expr.OpAnd {
		return IsCNF(l.Left) && IsCNF(l.Right)
	}
	return !containsAnd(l.Left) && !containsAnd(l.Right) && IsCNF(l.Left) && IsCNF(l.Right)
}

func containsAnd(e expr.Expression) bool {
	l, ok := e.(*expr.Logical)
	if !ok {
		return false
	}
	if l.Op == expr.OpAnd {
		return true
	}
	return containsAnd(l.Left) || containsAnd(l.Right)
}
