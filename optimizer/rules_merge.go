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

// MergeFilters collapses Filter(Filter(p, a), b) into a single
// Filter(p, a∧b).
var MergeFilters = Rule{
	Name: "MergeFilters",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		outer, ok := p.(*plan.Filter)
		if !ok {
			return p, false, nil
		}
		inner, ok := outer.Child.(*plan.Filter)
		if !ok {
			return p, false, nil
		}
		return plan.NewFilter(inner.Child, expr.NewAnd(inner.Condition, outer.Condition)), true, nil
	},
}

// MergeProjects collapses a Project directly above another Project by
// inlining the inner project's aliases (by id) into the outer project
// list, and eliminates a Project whose list is exactly the child's own
// output (same attributes, same order, by id).
var MergeProjects = Rule{
	Name: "MergeProjects",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		proj, ok := p.(*plan.Project)
		if !ok {
			return p, false, nil
		}
		if outputMatches(proj) {
			return proj.Child, true, nil
		}
		inner, ok := proj.Child.(*plan.Project)
		if !ok {
			return p, false, nil
		}
		bindings := aliasBindings(inner.List)
		newList := make([]expr.Expression, len(proj.List))
		for i, e := range proj.List {
			newList[i] = inlineAttributeRefs(e, bindings)
		}
		return plan.NewProject(inner.Child, newList), true, nil
	},
}

// outputMatches reports whether proj's projection list is exactly an
// identity projection over its child's output: the same attributes, in
// the same order, by id.
func outputMatches(proj *plan.Project) bool {
	childOutput := proj.Child.Output()
	if len(proj.List) != len(childOutput) {
		return false
	}
	for i, e := range proj.List {
		ref, ok := e.(*expr.AttributeRef)
		if !ok || ref.ID() != childOutput[i].ID() {
			return false
		}
	}
	return true
}

// aliasBindings maps each identifiable projection-list element's id to
// the expression it computes, for MergeProjects' inlining step.
func aliasBindings(list []expr.Expression) map[int64]expr.Expression {
	out := make(map[int64]expr.Expression, len(list))
	for _, e := range list {
		switch v := e.(type) {
		case *expr.Alias:
			out[v.AliasID] = v.Child
		case *expr.AttributeRef:
			out[v.AttrID] = v
		}
	}
	return out
}

// inlineAttributeRefs substitutes every AttributeRef in e whose id has a
// binding with that binding's defining expression.
func inlineAttributeRefs(e expr.Expression, bindings map[int64]expr.Expression) expr.Expression {
	switch v := e.(type) {
	case *expr.AttributeRef:
		if bound, ok := bindings[v.ID()]; ok {
			return bound
		}
		return e
	case *expr.Alias:
		return &expr.Alias{AliasID: v.AliasID, AliasName: v.AliasName, Child: inlineAttributeRefs(v.Child, bindings)}
	default:
		children := e.Children()
		if len(children) == 0 {
			return e
		}
		newChildren := make([]expr.Expression, len(children))
		changed := false
		for i, c := range children {
			newChildren[i] = inlineAttributeRefs(c, bindings)
			if newChildren[i] != c {
				changed = true
			}
		}
		if !changed {
			return e
		}
		next, err := e.WithChildren(newChildren...)
		if err != nil {
			return e
		}
		return next
	}
}

// ReduceLimits collapses Limit(Limit(p, n), m) into Limit(p, If(n<m, n,
// m)) rather than eagerly computing the min: both bounds are foldable, so
// the subsequent FoldConstants pass reduces the If to whichever literal
// is smaller (see DESIGN.md's resolution of this open question).
var ReduceLimits = Rule{
	Name: "ReduceLimits",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		outer, ok := p.(*plan.Limit)
		if !ok {
			return p, false, nil
		}
		inner, ok := outer.Child.(*plan.Limit)
		if !ok {
			return p, false, nil
		}
		n, m := inner.N, outer.N
		bound := expr.NewIf(expr.NewLessThan(n, m), n, m)
		return plan.NewLimit(inner.Child, bound), true, nil
	},
}
