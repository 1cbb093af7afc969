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

// Package predicate provides the conjunction/disjunction split, CNF
// conversion, and reference-set helpers the optimizer ruleset shares
// across several rules (CNFConversion, PushFiltersThrough*).
package predicate

import "github.com/quilldb/quill/expr"

// SplitConjunction flattens a right- or left-leaning tree of ANDs into its
// leaf conjuncts, in left-to-right order. A non-And expression is returned
// as a single-element slice.
func SplitConjunction(e expr.Expression) []expr.Expression {
	l, ok := e.(*expr.Logical)
	if !ok || l.Op != expr.OpAnd {
		return []expr.Expression{e}
	}
	return append(SplitConjunction(l.Left), SplitConjunction(l.Right)...)
}

// SplitDisjunction is SplitConjunction's Or analogue.
func SplitDisjunction(e expr.Expression) []expr.Expression {
	l, ok := e.(*expr.Logical)
	if !ok || l.Op != expr.OpOr {
		return []expr.Expression{e}
	}
	return append(SplitDisjunction(l.Left), SplitDisjunction(l.Right)...)
}

// JoinConjunction folds conjuncts back into a single And tree, left to
// right. Returns nil for an empty input.
func JoinConjunction(conjuncts []expr.Expression) expr.Expression {
	var out expr.Expression
	for _, c := range conjuncts {
		out = expr.And(out, c)
	}
	return out
}

// JoinDisjunction is JoinConjunction's Or analogue.
func JoinDisjunction(disjuncts []expr.Expression) expr.Expression {
	var out expr.Expression
	for _, d := range disjuncts {
		if out == nil {
			out = d
			continue
		}
		out = expr.NewOr(out, d)
	}
	return out
}
