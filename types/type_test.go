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

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveEqualAndSQLName(t *testing.T) {
	require.True(t, IntType.Equal(IntType))
	require.False(t, IntType.Equal(LongType))
	require.Equal(t, "INT", IntType.SQLName())
	require.Equal(t, "BIGINT", LongType.SQLName())
}

func TestIsNumericAndIsIntegral(t *testing.T) {
	require.True(t, IsNumeric(IntType))
	require.True(t, IsNumeric(DoubleType))
	require.False(t, IsNumeric(BooleanType))
	require.False(t, IsNumeric(StringType))

	require.True(t, IsIntegral(LongType))
	require.False(t, IsIntegral(DoubleType))
}

func TestNarrowerThan(t *testing.T) {
	require.True(t, NarrowerThan(ByteType, IntType))
	require.False(t, NarrowerThan(IntType, ByteType))
	require.False(t, NarrowerThan(IntType, IntType))
	require.False(t, NarrowerThan(BooleanType, IntType))
}

func TestWidestCommutative(t *testing.T) {
	w1, err1 := Widest(IntType, LongType)
	require.NoError(t, err1)
	w2, err2 := Widest(LongType, IntType)
	require.NoError(t, err2)
	require.True(t, w1.Equal(w2))
	require.True(t, w1.Equal(LongType))
}

func TestWidestAssociative(t *testing.T) {
	bc, err := Widest(ByteType, ShortType)
	require.NoError(t, err)
	left, err := Widest(bc, IntType)
	require.NoError(t, err)

	ab, err := Widest(ShortType, IntType)
	require.NoError(t, err)
	right, err := Widest(ByteType, ab)
	require.NoError(t, err)

	require.True(t, left.Equal(right))
	require.True(t, left.Equal(IntType))
}

func TestWidestSameTypeIsIdentity(t *testing.T) {
	w, err := Widest(IntType, IntType)
	require.NoError(t, err)
	require.True(t, w.Equal(IntType))
}

func TestWidestNoCommonType(t *testing.T) {
	_, err := Widest(BooleanType, IntType)
	require.Error(t, err)
}

func TestStructTypeEquality(t *testing.T) {
	s1 := StructType{Fields: []StructField{{Name: "a", Type: IntType, Nullable: false}}}
	s2 := StructType{Fields: []StructField{{Name: "a", Type: IntType, Nullable: false}}}
	s3 := StructType{Fields: []StructField{{Name: "b", Type: IntType, Nullable: false}}}

	require.True(t, s1.Equal(s2))
	require.False(t, s1.Equal(s3))
	require.Equal(t, Struct, s1.Kind())
}
