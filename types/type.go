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

// Package types implements the closed data type lattice: primitive scalar
// types, struct types, and the numeric widening order used for implicit
// casts during strict typing.
package types

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrNoCommonType is returned by Widest when two types have no common
// widening target (e.g. Boolean and Int).
var ErrNoCommonType = errors.NewKind("types %s and %s have no common widening type")

// Kind identifies a member of the closed data type set.
type Kind int

const (
	Boolean Kind = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	String
	Struct
)

// Type is implemented by every member of the data type lattice.
type Type interface {
	Kind() Kind
	// SQLName is the type's canonical SQL name (TINYINT, VARCHAR, ...).
	SQLName() string
	// Equal reports structural equality.
	Equal(other Type) bool
	String() string
}

// Primitive is every scalar type except Struct.
type Primitive struct {
	kind Kind
}

func (p Primitive) Kind() Kind { return p.kind }

func (p Primitive) SQLName() string {
	switch p.kind {
	case Boolean:
		return "BOOLEAN"
	case Byte:
		return "TINYINT"
	case Short:
		return "SMALLINT"
	case Int:
		return "INT"
	case Long:
		return "BIGINT"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case String:
		return "VARCHAR"
	default:
		return "UNKNOWN"
	}
}

func (p Primitive) String() string { return p.SQLName() }

func (p Primitive) Equal(other Type) bool {
	o, ok := other.(Primitive)
	return ok && o.kind == p.kind
}

// Singletons for the primitive members of the lattice.
var (
	BooleanType = Primitive{Boolean}
	ByteType    = Primitive{Byte}
	ShortType   = Primitive{Short}
	IntType     = Primitive{Int}
	LongType    = Primitive{Long}
	FloatType   = Primitive{Float}
	DoubleType  = Primitive{Double}
	StringType  = Primitive{String}
)

// StructField is one named, typed, nullable member of a StructType.
type StructField struct {
	Name     string
	Type     Type
	Nullable bool
}

// StructType is a composite of named, typed, nullable fields.
type StructType struct {
	Fields []StructField
}

func (s StructType) Kind() Kind      { return Struct }
func (s StructType) SQLName() string { return "STRUCT" }

func (s StructType) String() string {
	return fmt.Sprintf("STRUCT<%d fields>", len(s.Fields))
}

func (s StructType) Equal(other Type) bool {
	o, ok := other.(StructType)
	if !ok || len(o.Fields) != len(s.Fields) {
		return false
	}
	for i, f := range s.Fields {
		of := o.Fields[i]
		if f.Name != of.Name || f.Nullable != of.Nullable || !f.Type.Equal(of.Type) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether t is one of the integral or fractional kinds.
func IsNumeric(t Type) bool {
	switch t.Kind() {
	case Byte, Short, Int, Long, Float, Double:
		return true
	default:
		return false
	}
}

// IsIntegral reports whether t is one of Byte, Short, Int, Long.
func IsIntegral(t Type) bool {
	switch t.Kind() {
	case Byte, Short, Int, Long:
		return true
	default:
		return false
	}
}

// numericOrder gives the strict widening order Byte < Short < Int < Long <
// Float < Double. Lower is narrower.
var numericOrder = map[Kind]int{
	Byte:   0,
	Short:  1,
	Int:    2,
	Long:   3,
	Float:  4,
	Double: 5,
}

// NarrowerThan reports whether a is strictly narrower than b on the numeric
// widening lattice. Non-numeric types are never narrower than anything.
func NarrowerThan(a, b Type) bool {
	if !IsNumeric(a) || !IsNumeric(b) {
		return false
	}
	return numericOrder[a.Kind()] < numericOrder[b.Kind()]
}

// Widest returns the least upper bound of a and b on the widening lattice,
// or ErrNoCommonType if the two types are incomparable (e.g. Boolean vs.
// Int, or either side is a Struct).
func Widest(a, b Type) (Type, error) {
	if a.Equal(b) {
		return a, nil
	}
	if IsNumeric(a) && IsNumeric(b) {
		if numericOrder[a.Kind()] >= numericOrder[b.Kind()] {
			return a, nil
		}
		return b, nil
	}
	return nil, ErrNoCommonType.New(a, b)
}
