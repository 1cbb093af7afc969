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
	"fmt"

	"github.com/quilldb/quill/types"
)

// Literal is a constant value of a known type. It is always foldable and is
// nullable iff its value is nil.
type Literal struct {
	Value interface{}
	Type  types.Type
}

// NewLiteral builds a Literal expression.
func NewLiteral(value interface{}, t types.Type) *Literal {
	return &Literal{Value: value, Type: t}
}

func (l *Literal) Children() []Expression { return nil }

func (l *Literal) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, ErrChildCount.New("Literal", 0, len(children))
	}
	return l, nil
}

func (l *Literal) DataType() types.Type { return l.Type }
func (l *Literal) Nullable() bool       { return l.Value == nil }
func (l *Literal) Foldable() bool       { return true }
func (l *Literal) References() IDSet    { return IDSet{} }
func (l *Literal) Resolved() bool       { return true }

func (l *Literal) StrictlyTyped() (Expression, error) { return l, nil }

func (l *Literal) Eval() (interface{}, error) { return l.Value, nil }

func (l *Literal) Equal(other Expression) bool {
	o, ok := other.(*Literal)
	return ok && o.Value == l.Value && l.Type.Equal(o.Type)
}

func (l *Literal) String() string {
	if l.Value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", l.Value)
}

// IsTrue reports whether e is the Boolean literal TRUE.
func IsTrue(e Expression) bool {
	l, ok := e.(*Literal)
	return ok && l.Type.Equal(types.BooleanType) && l.Value == true
}

// IsFalse reports whether e is the Boolean literal FALSE.
func IsFalse(e Expression) bool {
	l, ok := e.(*Literal)
	return ok && l.Type.Equal(types.BooleanType) && l.Value == false
}

// IsNullLiteral reports whether e is a Literal with a nil value.
func IsNullLiteral(e Expression) bool {
	l, ok := e.(*Literal)
	return ok && l.Value == nil
}
