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

func TestMergeFiltersCollapsesDirectNesting(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	one := expr.NewLiteral(int64(1), types.IntType)
	ten := expr.NewLiteral(int64(10), types.IntType)
	inner := plan.NewFilter(rel, expr.NewGreaterThan(a, one))
	outer := plan.NewFilter(inner, expr.NewLessThan(a, ten))

	out, changed, err := MergeFilters.Apply(outer)
	require.NoError(t, err)
	require.True(t, changed)

	merged := out.(*plan.Filter)
	require.Equal(t, plan.LogicalPlan(rel), merged.Child)
	require.True(t, merged.Condition.Equal(expr.NewAnd(expr.NewGreaterThan(a, one), expr.NewLessThan(a, ten))))
}

func TestMergeFiltersIgnoresSingleFilter(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	f := plan.NewFilter(rel, expr.NewGreaterThan(a, expr.NewLiteral(int64(1), types.IntType)))

	out, changed, err := MergeFilters.Apply(f)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, plan.LogicalPlan(f), out)
}

func TestMergeProjectsInlinesInnerAliasByID(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	one := expr.NewLiteral(int64(1), types.IntType)
	x := expr.NewAlias("x", expr.NewPlus(a, one))
	innerProj := plan.NewProject(rel, []expr.Expression{x})
	y := expr.NewAlias("y", x.ToAttribute())
	outerProj := plan.NewProject(innerProj, []expr.Expression{y})

	out, changed, err := MergeProjects.Apply(outerProj)
	require.NoError(t, err)
	require.True(t, changed)

	merged := out.(*plan.Project)
	require.Equal(t, plan.LogicalPlan(rel), merged.Child)
	alias := merged.List[0].(*expr.Alias)
	require.Equal(t, "y", alias.AliasName)
	require.True(t, alias.Child.Equal(expr.NewPlus(a, one)))
}

func TestMergeProjectsEliminatesIdentityProjection(t *testing.T) {
	a, b := col("a"), col("b")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a, b})
	proj := plan.NewProject(rel, []expr.Expression{a, b})

	out, changed, err := MergeProjects.Apply(proj)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, plan.LogicalPlan(rel), out)
}

func TestMergeProjectsIgnoresReorderedIdentity(t *testing.T) {
	a, b := col("a"), col("b")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a, b})
	proj := plan.NewProject(rel, []expr.Expression{b, a})

	out, changed, err := MergeProjects.Apply(proj)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, plan.LogicalPlan(proj), out)
}

func TestReduceLimitsBuildsConditionalBound(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	five := expr.NewLiteral(int64(5), types.IntType)
	three := expr.NewLiteral(int64(3), types.IntType)
	inner := plan.NewLimit(rel, five)
	outer := plan.NewLimit(inner, three)

	out, changed, err := ReduceLimits.Apply(outer)
	require.NoError(t, err)
	require.True(t, changed)

	merged := out.(*plan.Limit)
	require.Equal(t, plan.LogicalPlan(rel), merged.Child)
	want := expr.NewIf(expr.NewLessThan(five, three), five, three)
	require.True(t, merged.N.Equal(want))
}

func TestReduceLimitsIgnoresSingleLimit(t *testing.T) {
	a := col("a")
	rel := plan.NewLocalRelation(nil, []*expr.AttributeRef{a})
	lim := plan.NewLimit(rel, expr.NewLiteral(int64(5), types.IntType))

	out, changed, err := ReduceLimits.Apply(lim)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, plan.LogicalPlan(lim), out)
}
