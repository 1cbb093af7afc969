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

// PushFiltersThroughProjects rewrites Filter(c, Project(p, list)), when
// every list element is pure, into Project(list, Filter(inline(c), p)):
// the condition is rewritten first, substituting each AttributeRef that
// names a project-list alias with the expression that alias computes, so
// the pushed filter can evaluate directly against p's own attributes.
var PushFiltersThroughProjects = Rule{
	Name: "PushFiltersThroughProjects",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		f, ok := p.(*plan.Filter)
		if !ok {
			return p, false, nil
		}
		proj, ok := f.Child.(*plan.Project)
		if !ok {
			return p, false, nil
		}
		for _, e := range proj.List {
			if !expr.IsPure(e) {
				return p, false, nil
			}
		}
		bindings := aliasBindings(proj.List)
		inlined := inlineAttributeRefs(f.Condition, bindings)
		return plan.NewProject(plan.NewFilter(proj.Child, inlined), proj.List), true, nil
	},
}

// PushFiltersThroughJoins splits an inner join's overlying filter into
// conjuncts and partitions them by reference set: conjuncts whose
// reference set is a subset of one side's output become a Filter on that
// side's child; the remainder is ANDed into the join condition itself.
var PushFiltersThroughJoins = Rule{
	Name: "PushFiltersThroughJoins",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		f, ok := p.(*plan.Filter)
		if !ok {
			return p, false, nil
		}
		j, ok := f.Child.(*plan.Join)
		if !ok || j.Kind != plan.InnerJoin {
			return p, false, nil
		}
		conjuncts := predicate.SplitConjunction(f.Condition)
		leftIDs := predicate.OutputIDSet(j.Left.Output())
		rightIDs := predicate.OutputIDSet(j.Right.Output())
		onlyLeft, onlyRight, remainder := predicate.Partition(conjuncts, leftIDs, rightIDs)
		if len(onlyLeft) == 0 && len(onlyRight) == 0 {
			return p, false, nil
		}

		newLeft := j.Left
		if len(onlyLeft) > 0 {
			newLeft = plan.NewFilter(j.Left, predicate.JoinConjunction(onlyLeft))
		}
		newRight := j.Right
		if len(onlyRight) > 0 {
			newRight = plan.NewFilter(j.Right, predicate.JoinConjunction(onlyRight))
		}
		newCond := j.Condition
		if len(remainder) > 0 {
			newCond = expr.And(newCond, predicate.JoinConjunction(remainder))
		}
		return plan.NewJoin(j.Kind, newLeft, newRight, newCond), true, nil
	},
}

// PushFiltersThroughAggregates pushes the conjuncts of a Filter over an
// Aggregate that reference no aggregation attribute down below the
// Aggregate, expanding any grouping-alias reference back to the original
// grouping expression it stands in for. Conjuncts that do reference an
// aggregate result stay above. Requires every aggregate function to be
// pure (duplicating an impure one across pre-grouping rows would not be
// equivalent to evaluating it once per group).
var PushFiltersThroughAggregates = Rule{
	Name: "PushFiltersThroughAggregates",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		f, ok := p.(*plan.Filter)
		if !ok {
			return p, false, nil
		}
		agg, ok := f.Child.(*plan.Aggregate)
		if !ok {
			return p, false, nil
		}
		for _, a := range agg.Aggregates {
			if !expr.IsPure(a.Child) {
				return p, false, nil
			}
		}

		aggIDs := make([]int64, len(agg.Aggregates))
		for i, a := range agg.Aggregates {
			aggIDs[i] = a.AliasID
		}
		aggSet := expr.NewIDSet(aggIDs...)

		groupBindings := make(map[int64]expr.Expression, len(agg.Grouping))
		for _, g := range agg.Grouping {
			groupBindings[g.AliasID] = g.Child
		}

		conjuncts := predicate.SplitConjunction(f.Condition)
		var pushable, remaining []expr.Expression
		for _, c := range conjuncts {
			if referencesAny(c.References(), aggSet) {
				remaining = append(remaining, c)
			} else {
				pushable = append(pushable, c)
			}
		}
		if len(pushable) == 0 {
			return p, false, nil
		}

		expanded := make([]expr.Expression, len(pushable))
		for i, c := range pushable {
			expanded[i] = inlineAttributeRefs(c, groupBindings)
		}

		newChild := plan.NewFilter(agg.Child, predicate.JoinConjunction(expanded))
		newAgg := plan.NewAggregate(newChild, agg.Grouping, agg.Aggregates)
		if len(remaining) == 0 {
			return newAgg, true, nil
		}
		return plan.NewFilter(newAgg, predicate.JoinConjunction(remaining)), true, nil
	},
}

// referencesAny reports whether refs and ids share any member.
func referencesAny(refs, ids expr.IDSet) bool {
	for id := range ids {
		if refs.Contains(id) {
			return true
		}
	}
	return false
}

// PushProjectsThroughLimits rewrites Project(list, Limit(p, n)) into
// Limit(Project(list, p), n) — safe because projection is row-wise and
// never changes which rows exist, only their shape.
var PushProjectsThroughLimits = Rule{
	Name: "PushProjectsThroughLimits",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		proj, ok := p.(*plan.Project)
		if !ok {
			return p, false, nil
		}
		lim, ok := proj.Child.(*plan.Limit)
		if !ok {
			return p, false, nil
		}
		return plan.NewLimit(plan.NewProject(lim.Child, proj.List), lim.N), true, nil
	},
}

// PushLimitsThroughUnions rewrites Limit(Union(l, r), n) into
// Limit(Union(Limit(l, n), Limit(r, n)), n), guarded so it doesn't refire
// once both branches are already bounded by n (see alreadyLimited).
var PushLimitsThroughUnions = Rule{
	Name: "PushLimitsThroughUnions",
	Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
		lim, ok := p.(*plan.Limit)
		if !ok {
			return p, false, nil
		}
		union, ok := lim.Child.(*plan.SetOp)
		if !ok || union.Kind != plan.Union {
			return p, false, nil
		}
		if alreadyLimited(union.Left, lim.N) && alreadyLimited(union.Right, lim.N) {
			return p, false, nil
		}
		newUnion := plan.NewUnion(
			plan.NewLimit(union.Left, lim.N),
			plan.NewLimit(union.Right, lim.N),
		)
		return plan.NewLimit(newUnion, lim.N), true, nil
	},
}

// alreadyLimited reports whether branch is already a Limit bounded by n:
// its bound equals n, or both bounds are foldable and the branch's bound
// evaluates to no more than n.
func alreadyLimited(branch plan.LogicalPlan, n expr.Expression) bool {
	l, ok := branch.(*plan.Limit)
	if !ok {
		return false
	}
	if l.N.Equal(n) {
		return true
	}
	if !l.N.Foldable() || !n.Foldable() {
		return false
	}
	within, err := expr.NewLessThanOrEqual(l.N, n).Eval()
	return err == nil && within == true
}
