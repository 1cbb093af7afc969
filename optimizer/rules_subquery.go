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
	"github.com/quilldb/quill/treeutil"
)

// EliminateSubqueries drops Subquery wrappers once name resolution against
// the outer query no longer needs the qualifier they installed, stripping
// that qualifier from any AttributeRef still carrying it within the
// subquery's own subtree.
var EliminateSubqueries = Rule{
	Name: "EliminateSubqueries",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		s, ok := p.(*plan.Subquery)
		if !ok {
			return p, false, nil
		}
		stripped, err := stripQualifier(s.Child, s.Alias)
		if err != nil {
			return nil, false, err
		}
		return stripped, true, nil
	},
}

// stripQualifier removes qualifier from every AttributeRef carrying it,
// anywhere in p's owned expressions, recursively through the whole
// subtree.
func stripQualifier(p plan.LogicalPlan, qualifier string) (plan.LogicalPlan, error) {
	return treeutil.TransformUp(p, func(node plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		exprs := node.Expressions()
		if len(exprs) == 0 {
			return node, false, nil
		}
		newExprs := make([]expr.Expression, len(exprs))
		changed := false
		for i, e := range exprs {
			if e == nil {
				newExprs[i] = nil
				continue
			}
			ne, err := treeutil.TransformUp(e, func(ex expr.Expression) (expr.Expression, bool, error) {
				ref, ok := ex.(*expr.AttributeRef)
				if !ok || ref.Qualifier != qualifier {
					return ex, false, nil
				}
				return ref.WithQualifier(""), true, nil
			})
			if err != nil {
				return nil, false, err
			}
			newExprs[i] = ne
			if ne != e {
				changed = true
			}
		}
		if !changed {
			return node, false, nil
		}
		next, err := node.WithExpressions(newExprs...)
		if err != nil {
			return nil, false, err
		}
		return next, true, nil
	})
}
