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
	"github.com/spf13/cast"
)

// Cast converts its child to Target. Narrowing is disallowed unless
// explicit (a user-written Cast always succeeds at the type level, even
// narrowing); widening is the only cast the strict-typing pass inserts
// implicitly.
type Cast struct {
	Child  Expression
	Target types.Type
}

// NewCast builds a Cast expression.
func NewCast(child Expression, target types.Type) *Cast {
	return &Cast{Child: child, Target: target}
}

// PromoteDataType returns e unchanged if its type already matches t, or a
// Cast to t otherwise. This is the helper that inserts implicit widening
// casts throughout strict typing.
func PromoteDataType(e Expression, t types.Type) Expression {
	if e.DataType().Equal(t) {
		return e
	}
	return NewCast(e, t)
}

func (c *Cast) Children() []Expression { return []Expression{c.Child} }

func (c *Cast) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Cast", 1, len(children))
	}
	return &Cast{Child: children[0], Target: c.Target}, nil
}

func (c *Cast) DataType() types.Type { return c.Target }
func (c *Cast) Nullable() bool       { return c.Child.Nullable() }
func (c *Cast) Foldable() bool       { return c.Child.Foldable() }
func (c *Cast) References() IDSet    { return c.Child.References() }
func (c *Cast) Resolved() bool       { return c.Child.Resolved() }

func (c *Cast) StrictlyTyped() (Expression, error) {
	child, err := c.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == c.Child {
		return c, nil
	}
	return &Cast{Child: child, Target: c.Target}, nil
}

func (c *Cast) Eval() (interface{}, error) {
	v, err := c.Child.Eval()
	if err != nil {
		return nil, err
	}
	return convertValue(v, c.Child.DataType(), c.Target)
}

func (c *Cast) Equal(other Expression) bool {
	o, ok := other.(*Cast)
	return ok && c.Target.Equal(o.Target) && c.Child.Equal(o.Child)
}

func (c *Cast) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Child, c.Target.SQLName())
}

// convertValue performs the planning-time constant-folding conversion for a
// Cast whose child is foldable. It covers the numeric widening lattice plus
// the degenerate same-type case; anything else is left to the physical
// engine.
func convertValue(v interface{}, from, to types.Type) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if from.Equal(to) {
		return v, nil
	}
	switch to.Kind() {
	case types.Byte, types.Short, types.Int, types.Long:
		n, err := cast.ToInt64E(v)
		if err != nil {
			return nil, ErrNotANumber.New(v)
		}
		return n, nil
	case types.Float, types.Double:
		return toFloat64(v)
	case types.String:
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, ErrNotANumber.New(v)
		}
		return s, nil
	default:
		return v, nil
	}
}
