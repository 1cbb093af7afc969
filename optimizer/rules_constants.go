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
)

// FoldConstants replaces any foldable subexpression with a literal of its
// evaluated value, preserving type and nullability (a Literal's type and
// nullability come straight from the folded expression's own DataType and
// the evaluated value's nilness).
var FoldConstants = exprRule("FoldConstants", func(e expr.Expression) (expr.Expression, bool, error) {
	if _, ok := e.(*expr.Literal); ok {
		return e, false, nil
	}
	if !e.Foldable() {
		return e, false, nil
	}
	v, err := e.Eval()
	if err != nil {
		return nil, false, err
	}
	return expr.NewLiteral(v, e.DataType()), true, nil
})

// FoldConstantFilters rewrites Filter(p, TRUE) to p, and Filter(p, FALSE)
// to an EmptyRelation carrying p's output schema.
var FoldConstantFilters = Rule{
	Name: "FoldConstantFilters",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		f, ok := p.(*plan.Filter)
		if !ok {
			return p, false, nil
		}
		if expr.IsTrue(f.Condition) {
			return f.Child, true, nil
		}
		if expr.IsFalse(f.Condition) {
			return plan.NewEmptyRelation(f.Child.Output()), true, nil
		}
		return p, false, nil
	},
}

// FoldLogicalPredicates applies Boolean-algebra identities: TRUE∨x=TRUE,
// FALSE∧x=FALSE, ¬TRUE=FALSE, ¬FALSE=TRUE, x∧x=x, x∨x=x (same by
// structural equality), If(TRUE,y,_)=y, If(FALSE,_,n)=n.
var FoldLogicalPredicates = exprRule("FoldLogicalPredicates", func(e expr.Expression) (expr.Expression, bool, error) {
	switch v := e.(type) {
	case *expr.Logical:
		if v.Op == expr.OpOr {
			if expr.IsTrue(v.Left) || expr.IsTrue(v.Right) {
				return expr.NewLiteral(true, v.DataType()), true, nil
			}
			if expr.IsFalse(v.Left) {
				return v.Right, true, nil
			}
			if expr.IsFalse(v.Right) {
				return v.Left, true, nil
			}
		} else {
			if expr.IsFalse(v.Left) || expr.IsFalse(v.Right) {
				return expr.NewLiteral(false, v.DataType()), true, nil
			}
			if expr.IsTrue(v.Left) {
				return v.Right, true, nil
			}
			if expr.IsTrue(v.Right) {
				return v.Left, true, nil
			}
		}
		if v.Left.Equal(v.Right) {
			return v.Left, true, nil
		}
		return e, false, nil
	case *expr.Not:
		if expr.IsTrue(v.Child) {
			return expr.NewLiteral(false, v.DataType()), true, nil
		}
		if expr.IsFalse(v.Child) {
			return expr.NewLiteral(true, v.DataType()), true, nil
		}
		return e, false, nil
	case *expr.If:
		if expr.IsTrue(v.Cond) {
			return v.Yes, true, nil
		}
		if expr.IsFalse(v.Cond) {
			return v.No, true, nil
		}
		return e, false, nil
	default:
		return e, false, nil
	}
})
