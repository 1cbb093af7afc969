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

func applyToFilter(t *testing.T, rule Rule, cond expr.Expression) (*plan.Filter, bool) {
	t.Helper()
	rel := plan.NewLocalRelation(nil, nil)
	f := plan.NewFilter(rel, cond)
	out, changed, err := rule.Apply(f)
	require.NoError(t, err)
	if !changed {
		return f, false
	}
	rewritten, ok := out.(*plan.Filter)
	require.True(t, ok, "expected *plan.Filter, got %T", out)
	return rewritten, true
}

func TestReduceNegationsDoubleNotCancels(t *testing.T) {
	a := col("a")
	cond := expr.NewNot(expr.NewNot(a))
	out, changed := applyToFilter(t, ReduceNegations, cond)
	require.True(t, changed)
	require.True(t, out.Condition.Equal(a))
}

func TestReduceNegationsFlipsComparison(t *testing.T) {
	a := col("a")
	one := expr.NewLiteral(int64(1), types.IntType)
	cond := expr.NewNot(expr.NewEquals(a, one))
	out, changed := applyToFilter(t, ReduceNegations, cond)
	require.True(t, changed)
	require.True(t, out.Condition.Equal(expr.NewNotEquals(a, one)))
}

func TestReduceNegationsFlipsIfCondition(t *testing.T) {
	// The condition negates a bare boolean column: a negated comparison
	// would be rewritten to its flipped operator first (the rule runs
	// bottom-up), leaving no Not for the If identity to remove.
	flag := expr.NewAttributeRef("flag", types.BooleanType, false)
	one := expr.NewLiteral(int64(1), types.IntType)
	two := expr.NewLiteral(int64(2), types.IntType)
	iff := expr.NewIf(expr.NewNot(flag), one, two)
	proj := plan.NewProject(plan.NewLocalRelation(nil, nil), []expr.Expression{iff})

	out, changed, err := ReduceNegations.Apply(proj)
	require.NoError(t, err)
	require.True(t, changed)

	rewritten := out.(*plan.Project)
	want := expr.NewIf(flag, two, one)
	require.True(t, rewritten.List[0].Equal(want))
}

func TestReduceNegationsRewritesIsNull(t *testing.T) {
	a := col("a")
	cond := expr.NewNot(expr.NewIsNull(a))
	out, changed := applyToFilter(t, ReduceNegations, cond)
	require.True(t, changed)
	require.True(t, out.Condition.Equal(expr.NewIsNotNull(a)))
}

func TestReduceNegationsCollapsesStructuralAndToFalse(t *testing.T) {
	a := col("a")
	cond := expr.NewAnd(a, expr.NewNot(a))
	out, changed := applyToFilter(t, ReduceNegations, cond)
	require.True(t, changed)
	require.True(t, out.Condition.Equal(expr.NewLiteral(false, types.BooleanType)))
}

func TestReduceNegationsCollapsesStructuralOrToTrue(t *testing.T) {
	a := col("a")
	cond := expr.NewOr(expr.NewNot(a), a)
	out, changed := applyToFilter(t, ReduceNegations, cond)
	require.True(t, changed)
	require.True(t, out.Condition.Equal(expr.NewLiteral(true, types.BooleanType)))
}
