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

package expr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quilldb/quill/types"
)

func TestLiteralFolding(t *testing.T) {
	lit := NewLiteral(int64(42), types.IntType)
	require.True(t, lit.Foldable())
	require.False(t, lit.Nullable())

	v, err := lit.Eval()
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
}

func TestLiteralNullability(t *testing.T) {
	lit := NewLiteral(nil, types.IntType)
	require.True(t, lit.Nullable())
	require.True(t, IsNullLiteral(lit))
}

func TestIsTrueIsFalse(t *testing.T) {
	require.True(t, IsTrue(NewLiteral(true, types.BooleanType)))
	require.False(t, IsTrue(NewLiteral(false, types.BooleanType)))
	require.True(t, IsFalse(NewLiteral(false, types.BooleanType)))
	require.False(t, IsFalse(NewLiteral(int64(1), types.IntType)))
}

func TestAttributeRefIdentityByID(t *testing.T) {
	a := NewAttributeRef("x", types.IntType, false)
	b := NewAttributeRefWithID(a.ID(), "renamed", types.IntType, false)
	require.True(t, a.Equal(b))
	require.Equal(t, a.ID(), b.ID())
}

func TestAttributeRefWithQualifierAndNullable(t *testing.T) {
	a := NewAttributeRef("x", types.IntType, false)
	q := a.WithQualifier("t")
	require.Equal(t, "t", q.Qualifier)
	require.Equal(t, a.ID(), q.ID())

	n := a.WithNullable(true)
	require.True(t, n.Nullable())
	require.False(t, a.Nullable(), "WithNullable must not mutate the receiver")
}

func TestAttributeRefUnresolvedEval(t *testing.T) {
	a := NewAttributeRef("x", types.IntType, false)
	_, err := a.Eval()
	require.Error(t, err)
}

func TestAliasToAttributePreservesID(t *testing.T) {
	child := NewLiteral(int64(1), types.IntType)
	alias := NewAlias("one", child)
	attr := alias.ToAttribute()
	require.Equal(t, alias.AliasID, attr.ID())
	require.Equal(t, "one", attr.Name())
}

func TestIDSetOperations(t *testing.T) {
	s := NewIDSet(1, 2, 3)
	other := NewIDSet(3, 4)
	union := s.Union(other)

	require.True(t, union.Contains(1))
	require.True(t, union.Contains(4))
	require.False(t, s.Contains(4))
	require.True(t, NewIDSet(1, 2).SubsetOf(s))
	require.False(t, NewIDSet(1, 9).SubsetOf(s))
	require.True(t, IDSet{}.Empty())
	require.False(t, s.Empty())
}

func TestLogicalThreeValuedEval(t *testing.T) {
	T := NewLiteral(true, types.BooleanType)
	F := NewLiteral(false, types.BooleanType)
	N := NewLiteral(nil, types.BooleanType)

	cases := []struct {
		name string
		e    *Logical
		want interface{}
	}{
		{"AND(true,null)=null", NewAnd(T, N), nil},
		{"AND(false,null)=false", NewAnd(F, N), false},
		{"OR(true,null)=true", NewOr(T, N), true},
		{"OR(false,null)=null", NewOr(F, N), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := c.e.Eval()
			require.NoError(t, err)
			require.Equal(t, c.want, v)
		})
	}
}

func TestNotEval(t *testing.T) {
	n := NewNot(NewLiteral(true, types.BooleanType))
	v, err := n.Eval()
	require.NoError(t, err)
	require.Equal(t, false, v)

	nullNot := NewNot(NewLiteral(nil, types.BooleanType))
	v, err = nullNot.Eval()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestAndHelperFoldsNilOperand(t *testing.T) {
	a := NewLiteral(true, types.BooleanType)
	require.Equal(t, Expression(a), And(nil, a))
	require.Equal(t, Expression(a), And(a, nil))
	require.IsType(t, &Logical{}, And(a, a))
}

func TestComparisonOpFlipAndNegated(t *testing.T) {
	require.Equal(t, OpGt, OpLt.Flip())
	require.Equal(t, OpGt, OpLtEq.Negated())
	require.Equal(t, OpEq, OpNotEq.Negated())
}

func TestComparisonEval(t *testing.T) {
	c := NewLessThan(NewLiteral(int64(1), types.IntType), NewLiteral(int64(2), types.IntType))
	v, err := c.Eval()
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestComparisonEvalNullPropagates(t *testing.T) {
	c := NewEquals(NewLiteral(nil, types.IntType), NewLiteral(int64(2), types.IntType))
	v, err := c.Eval()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestIsNullNegatedFlag(t *testing.T) {
	isNull := NewIsNull(NewLiteral(nil, types.IntType))
	isNotNull := NewIsNotNull(NewLiteral(nil, types.IntType))

	v, err := isNull.Eval()
	require.NoError(t, err)
	require.Equal(t, true, v)

	v, err = isNotNull.Eval()
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestIfEvalSelectsBranch(t *testing.T) {
	i := NewIf(NewLiteral(true, types.BooleanType), NewLiteral(int64(1), types.IntType), NewLiteral(int64(2), types.IntType))
	v, err := i.Eval()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestIfEvalNullCondition(t *testing.T) {
	i := NewIf(NewLiteral(nil, types.BooleanType), NewLiteral(int64(1), types.IntType), NewLiteral(int64(2), types.IntType))
	v, err := i.Eval()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestIfDataTypeWidensBranches(t *testing.T) {
	i := NewIf(NewLiteral(true, types.BooleanType), NewLiteral(int64(1), types.IntType), NewLiteral(int64(2), types.LongType))
	require.True(t, i.DataType().Equal(types.LongType))
}

func TestCoalesceEvalFirstNonNull(t *testing.T) {
	c := NewCoalesce(NewLiteral(nil, types.IntType), NewLiteral(nil, types.IntType), NewLiteral(int64(7), types.IntType))
	v, err := c.Eval()
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestCoalesceAllNull(t *testing.T) {
	c := NewCoalesce(NewLiteral(nil, types.IntType), NewLiteral(nil, types.IntType))
	v, err := c.Eval()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestCastDropsNoOpConversion(t *testing.T) {
	lit := NewLiteral(int64(1), types.IntType)
	cast := NewCast(lit, types.IntType)
	v, err := cast.Eval()
	require.NoError(t, err)
	require.Equal(t, int64(1), v)
}

func TestCastWidensIntToString(t *testing.T) {
	cast := NewCast(NewLiteral(int64(42), types.IntType), types.StringType)
	v, err := cast.Eval()
	require.NoError(t, err)
	require.Equal(t, "42", v)
}

func TestPromoteDataTypeNoOpWhenAlreadyTarget(t *testing.T) {
	lit := NewLiteral(int64(1), types.IntType)
	require.Equal(t, Expression(lit), PromoteDataType(lit, types.IntType))
}

func TestPromoteDataTypeInsertsCast(t *testing.T) {
	lit := NewLiteral(int64(1), types.IntType)
	promoted := PromoteDataType(lit, types.LongType)
	cast, ok := promoted.(*Cast)
	require.True(t, ok)
	require.True(t, cast.Target.Equal(types.LongType))
}
