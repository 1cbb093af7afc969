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

package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/types"
)

func relation(cols ...*expr.AttributeRef) *LocalRelation {
	return NewLocalRelation(nil, cols)
}

func TestFilterOutputPassesThroughChild(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	rel := relation(a)
	f := NewFilter(rel, expr.NewEquals(a, expr.NewLiteral(int64(1), types.IntType)))
	require.Equal(t, rel.Output(), f.Output())
}

func TestFilterStrictlyTypedRejectsNonBoolean(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	rel := relation(a)
	f := NewFilter(rel, a)
	_, err := f.StrictlyTyped()
	require.Error(t, err)
}

func TestFilterWithExpressionsCount(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	rel := relation(a)
	f := NewFilter(rel, expr.NewIsNull(a))
	_, err := f.WithExpressions()
	require.Error(t, err)
}

func TestProjectOutputFromAliasAndAttributeRef(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	alias := expr.NewAlias("b", expr.NewLiteral(int64(1), types.IntType))
	p := NewProject(relation(a), []expr.Expression{a, alias})

	out := p.Output()
	require.Len(t, out, 2)
	require.Equal(t, a.ID(), out[0].ID())
	require.Equal(t, alias.AliasID, out[1].ID())
	require.Equal(t, "b", out[1].Name())
}

func TestProjectOutputFromGroupingAndAggregationAlias(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	grouping := expr.NewGroupingAlias("g", a)
	agg := expr.NewAggregationAlias("s", a)
	p := NewProject(relation(a), []expr.Expression{grouping, agg})

	out := p.Output()
	require.Len(t, out, 2)
	require.Equal(t, grouping.AliasID, out[0].ID())
	require.Equal(t, "g", out[0].Name())
	require.Equal(t, agg.AliasID, out[1].ID())
	require.Equal(t, "s", out[1].Name())
}

func TestProjectRejectsEmptyList(t *testing.T) {
	p := NewProject(relation(), nil)
	_, err := p.StrictlyTyped()
	require.Error(t, err)
}

func TestLimitRequiresFoldableIntegral(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	rel := relation(a)

	good := NewLimit(rel, expr.NewLiteral(int64(10), types.IntType))
	_, err := good.StrictlyTyped()
	require.NoError(t, err)

	bad := NewLimit(rel, a)
	_, err = bad.StrictlyTyped()
	require.Error(t, err)
}

func TestJoinOutputNullabilityByKind(t *testing.T) {
	l := expr.NewAttributeRef("l", types.IntType, false)
	r := expr.NewAttributeRef("r", types.IntType, false)
	left, right := relation(l), relation(r)
	cond := expr.NewEquals(l, r)

	inner := NewJoin(InnerJoin, left, right, cond)
	out := inner.Output()
	require.Len(t, out, 2)
	require.False(t, out[0].Nullable())
	require.False(t, out[1].Nullable())

	leftOuter := NewJoin(LeftOuterJoin, left, right, cond)
	out = leftOuter.Output()
	require.False(t, out[0].Nullable())
	require.True(t, out[1].Nullable())

	semi := NewJoin(LeftSemiJoin, left, right, cond)
	require.Equal(t, left.Output(), semi.Output())
}

func TestJoinStrictlyTypedRejectsNonBooleanCondition(t *testing.T) {
	l := expr.NewAttributeRef("l", types.IntType, false)
	r := expr.NewAttributeRef("r", types.IntType, false)
	j := NewJoin(InnerJoin, relation(l), relation(r), l)
	_, err := j.StrictlyTyped()
	require.Error(t, err)
}

func TestAggregateOutputOrdersGroupingBeforeAggregates(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	grouping := expr.NewGroupingAlias("g", a)
	agg := expr.NewAggregationAlias("cnt", expr.NewLiteral(int64(1), types.IntType))

	aggPlan := NewAggregate(relation(a), []*expr.GroupingAlias{grouping}, []*expr.AggregationAlias{agg})
	out := aggPlan.Output()
	require.Len(t, out, 2)
	require.Equal(t, grouping.AliasID, out[0].ID())
	require.Equal(t, agg.AliasID, out[1].ID())
}

func TestAggregateWithExpressionsRoundTrips(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	grouping := expr.NewGroupingAlias("g", a)
	agg := expr.NewAggregationAlias("cnt", expr.NewLiteral(int64(1), types.IntType))
	aggPlan := NewAggregate(relation(a), []*expr.GroupingAlias{grouping}, []*expr.AggregationAlias{agg})

	next, err := aggPlan.WithExpressions(aggPlan.Expressions()...)
	require.NoError(t, err)
	require.True(t, aggPlan.Equal(next))
}

func TestAggregateStrictlyTypedPreservesWrapperTypes(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	grouping := expr.NewGroupingAlias("g", expr.NewCast(a, types.LongType))
	agg := expr.NewAggregationAlias("cnt", expr.NewLiteral(int64(1), types.IntType))
	aggPlan := NewAggregate(relation(a), []*expr.GroupingAlias{grouping}, []*expr.AggregationAlias{agg})

	typed, err := aggPlan.StrictlyTyped()
	require.NoError(t, err)
	out := typed.Output()
	require.Len(t, out, 2)
}

func TestSetOpUnionOutputNullableIfEither(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	b := expr.NewAttributeRef("a", types.IntType, true)
	u := NewUnion(relation(a), relation(b))
	out := u.Output()
	require.True(t, out[0].Nullable())
}

func TestSetOpExceptOutputIsLeftOnly(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	b := expr.NewAttributeRef("a", types.IntType, true)
	e := NewExcept(relation(a), relation(b))
	require.Equal(t, relation(a).Output(), e.Output())
}

func TestSetOpStrictlyTypedInsertsWideningCast(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	b := expr.NewAttributeRef("a", types.LongType, false)
	u := NewUnion(relation(a), relation(b))

	typed, err := u.StrictlyTyped()
	require.NoError(t, err)
	out := typed.Output()
	require.True(t, out[0].DataType().Equal(types.LongType))
}

func TestSetOpStrictlyTypedRejectsColumnCountMismatch(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	b := expr.NewAttributeRef("b", types.IntType, false)
	c := expr.NewAttributeRef("c", types.IntType, false)
	u := NewUnion(relation(a), relation(b, c))
	_, err := u.StrictlyTyped()
	require.Error(t, err)
}

func TestDisjointOutputs(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	b := expr.NewAttributeRef("b", types.IntType, false)
	require.True(t, DisjointOutputs([]*expr.AttributeRef{a}, []*expr.AttributeRef{b}))
	require.False(t, DisjointOutputs([]*expr.AttributeRef{a}, []*expr.AttributeRef{a}))
}

func TestSameOutput(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	require.True(t, SameOutput([]*expr.AttributeRef{a}, []*expr.AttributeRef{a}))
	require.False(t, SameOutput([]*expr.AttributeRef{a}, nil))
}

func TestLocalRelationNewInstanceFreshensIDs(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	rel := relation(a)
	fresh := rel.NewInstance().(*LocalRelation)
	require.NotEqual(t, rel.Columns[0].ID(), fresh.Columns[0].ID())
	require.Equal(t, rel.Columns[0].Name(), fresh.Columns[0].Name())
}

func TestTreeStringRendersNestedOperators(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	rel := relation(a)
	f := NewFilter(rel, expr.NewIsNotNull(a))
	d := NewDistinct(f)

	rendered := TreeString(d)
	require.Equal(t,
		"Distinct\n"+
			" └─ Filter("+a.String()+" IS NOT NULL)\n"+
			"     └─ LocalRelation("+a.String()+")\n",
		rendered)
}

func TestEmptyRelationIsResolvedAndHasFixedSchema(t *testing.T) {
	a := expr.NewAttributeRef("a", types.IntType, false)
	e := NewEmptyRelation([]*expr.AttributeRef{a})
	require.True(t, e.Resolved())
	require.Equal(t, []*expr.AttributeRef{a}, e.Output())
}
