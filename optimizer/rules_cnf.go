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

package optimizer

import (
	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/plan"
	"github.com/quilldb/quill/predicate"
)

// CNFConversion rewrites every Filter's condition into conjunctive normal
// form via predicate.ToCNF (De Morgan's laws pushing negations inward,
// then distributing ∨ over ∧).
var CNFConversion = Rule{
	Name: "CNFConversion",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		f, ok := p.(*plan.Filter)
		if !ok {
			return p, false, nil
		}
		cnf := predicate.ToCNF(f.Condition)
		if cnf.Equal(f.Condition) {
			return p, false, nil
		}
		return plan.NewFilter(f.Child, cnf), true, nil
	},
}

// EliminateCommonPredicates rewrites p∧p to p, p∨p to p (both by
// structural equality), and If(c, v, v) to Coalesce(c, v). The Coalesce
// evaluates to c whenever c is non-null and to v only when c is null.
var EliminateCommonPredicates = exprRule("EliminateCommonPredicates", func(e expr.Expression) (expr.Expression, bool, error) {
	switch v := e.(type) {
	case *expr.Logical:
		if v.Left.Equal(v.Right) {
			return v.Left, true, nil
		}
		return e, false, nil
	case *expr.If:
		if v.Yes.Equal(v.No) {
			return expr.NewCoalesce(v.Cond, v.Yes), true, nil
		}
		return e, false, nil
	default:
		return e, false, nil
	}
})
