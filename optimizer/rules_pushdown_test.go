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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/plan"
	"github.com/quilldb/quill/types"
)

func TestPushFiltersThroughProjectsInlinesPureList(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	alias := expr.NewAlias("b", expr.NewPlus(a, expr.NewLiteral(int64(1), types.IntType)))
	proj := plan.NewProject(rel, []expr.Expression{alias})
	f := plan.NewFilter(proj, expr.NewLessThan(alias.ToAttribute(), expr.NewLiteral(int64(10), types.IntType)))

	out, changed, err := PushFiltersThroughProjects.Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	rewritten := out.(*plan.Project)
	pushed := rewritten.Child.(*plan.Filter)
	want := expr.NewLessThan(expr.NewPlus(a, expr.NewLiteral(int64(1), types.IntType)), expr.NewLiteral(int64(10), types.IntType))
	require.True(t, pushed.Condition.Equal(want))
}

// impureWrapper wraps an Expression and reports itself as impure, standing
// in for a nondeterministic function call this module doesn't otherwise
// model, solely to exercise PushFiltersThroughProjects' purity guard.
type impureWrapper struct {
	expr.Expression
}

func (impureWrapper) Pure() bool { return false }

func TestPushFiltersThroughProjectsSkipsImpureList(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	proj := plan.NewProject(rel, []expr.Expression{impureWrapper{a}})
	f := plan.NewFilter(proj, expr.NewLiteral(true, types.BooleanType))

	out, changed, err := PushFiltersThroughProjects.Apply(f)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, plan.LogicalPlan(f), out)
}

// Filter(Join(L[a,b], R[c], Inner, None), (a=c) AND (b>0)) rewrites to
// Join(Filter(L, b>0), R, Inner, a=c).
func TestPushFiltersThroughJoinsSplitsConjuncts(t *testing.T) {
	a, b, c := col("a"), col("b"), col("c")
	left := plan.NewLocalRelation(nil, []*expr.AttributeRef{a, b})
	right := plan.NewLocalRelation(nil, []*expr.AttributeRef{c})
	join := plan.NewJoin(plan.InnerJoin, left, right, nil)

	zero := expr.NewLiteral(int64(0), types.IntType)
	cond := expr.NewAnd(expr.NewEquals(a, c), expr.NewLessThan(zero, b))
	f := plan.NewFilter(join, cond)

	out, changed, err := PushFiltersThroughJoins.Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	rewritten := out.(*plan.Join)
	leftFilter := rewritten.Left.(*plan.Filter)
	require.True(t, leftFilter.Condition.Equal(expr.NewLessThan(zero, b)))
	require.Equal(t, plan.LogicalPlan(right), rewritten.Right)
	require.True(t, rewritten.Condition.Equal(expr.NewEquals(a, c)))
}

func TestPushFiltersThroughJoinsIgnoresOuterJoins(t *testing.T) {
	a, c := col("a"), col("c")
	left := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	right := plan.NewLocalRelation(nil, []*expr.AttributeRef{c})
	join := plan.NewJoin(plan.LeftOuterJoin, left, right, expr.NewEquals(a, c))
	f := plan.NewFilter(join, expr.NewEquals(a, expr.NewLiteral(int64(1), types.IntType)))

	out, changed, err := PushFiltersThroughJoins.Apply(f)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, plan.LogicalPlan(f), out)
}

func TestPushFiltersThroughAggregatesPushesGroupOnlyConjuncts(t *testing.T) {
	a, b := col("a"), col("b")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a, b})
	grouping := expr.NewGroupingAlias("a", a)
	sumExpr := expr.NewAggregationAlias("s", b)
	agg := plan.NewAggregate(rel, []*expr.GroupingAlias{grouping}, []*expr.AggregationAlias{sumExpr})

	groupCond := expr.NewEquals(grouping.ToAttribute(), expr.NewLiteral(int64(1), types.IntType))
	aggCond := expr.NewLessThan(expr.NewLiteral(int64(5), types.IntType), sumExpr.ToAttribute())
	f := plan.NewFilter(agg, expr.NewAnd(groupCond, aggCond))

	out, changed, err := PushFiltersThroughAggregates.Apply(f)
	require.NoError(t, err)
	require.True(t, changed)

	outer := out.(*plan.Filter)
	require.True(t, outer.Condition.Equal(aggCond))
	newAgg := outer.Child.(*plan.Aggregate)
	pushed := newAgg.Child.(*plan.Filter)
	require.True(t, pushed.Condition.Equal(expr.NewEquals(a, expr.NewLiteral(int64(1), types.IntType))))
}

func TestPushProjectsThroughLimitsReorders(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	lim := plan.NewLimit(rel, expr.NewLiteral(int64(5), types.IntType))
	proj := plan.NewProject(lim, []expr.Expression{a})

	out, changed, err := PushProjectsThroughLimits.Apply(proj)
	require.NoError(t, err)
	require.True(t, changed)

	rewritten := out.(*plan.Limit)
	innerProj := rewritten.Child.(*plan.Project)
	require.Equal(t, plan.LogicalPlan(rel), innerProj.Child)
}

// Limit(Union(Limit(L,5), Limit(R,5)), 3) optimizes all the way down to
// Limit(Union(Limit(L,3), Limit(R,3)), 3) via PushLimitsThroughUnions
// folding in with ReduceLimits and constant folding.
func TestOptimizePushesLimitIntoUnionBranches(t *testing.T) {
	a := col("a")
	left := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	right := left.NewInstance()
	five := expr.NewLiteral(int64(5), types.IntType)
	union := plan.NewUnion(plan.NewLimit(left, five), plan.NewLimit(right, five))
	three := expr.NewLiteral(int64(3), types.IntType)
	outer := plan.NewLimit(union, three)

	exec := NewExecutor(DefaultBatches()...)
	out, err := exec.Optimize(outer)
	require.NoError(t, err)

	top := out.(*plan.Limit)
	require.True(t, top.N.Equal(three))
	innerUnion := top.Child.(*plan.SetOp)
	require.Equal(t, plan.Union, innerUnion.Kind)
	for _, branch := range []plan.LogicalPlan{innerUnion.Left, innerUnion.Right} {
		l := branch.(*plan.Limit)
		require.True(t, l.N.Equal(three), "expected folded bound 3, got %s", l.N)
	}
}

func TestAlreadyLimitedGuardsAgainstRefiring(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	n := expr.NewLiteral(int64(3), types.IntType)
	union := plan.NewUnion(plan.NewLimit(rel, n), plan.NewLimit(rel.NewInstance(), n))
	lim := plan.NewLimit(union, n)

	out, changed, err := PushLimitsThroughUnions.Apply(lim)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, plan.LogicalPlan(lim), out)
}
