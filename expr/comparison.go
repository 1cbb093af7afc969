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

// ComparisonOp identifies a binary comparison operator. Operands are
// implicitly widened to a common numeric/ordered type.
type ComparisonOp int

const (
	OpEq ComparisonOp = iota
	OpNotEq
	OpLt
	OpLtEq
	OpGt
	OpGtEq
)

func (op ComparisonOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNotEq:
		return "<>"
	case OpLt:
		return "<"
	case OpLtEq:
		return "<="
	case OpGt:
		return ">"
	case OpGtEq:
		return ">="
	default:
		return "?"
	}
}

// Flip returns the operator obtained by swapping operand order (a op b =
// b Flip(op) a), used by ReduceNegations' comparison-flip identities.
func (op ComparisonOp) Flip() ComparisonOp {
	switch op {
	case OpLt:
		return OpGt
	case OpLtEq:
		return OpGtEq
	case OpGt:
		return OpLt
	case OpGtEq:
		return OpLtEq
	default:
		return op
	}
}

// Negated returns the operator whose result is always the logical negation
// of op: ¬(a=b)=a≠b, ¬(a<b)=a≥b, etc.
func (op ComparisonOp) Negated() ComparisonOp {
	switch op {
	case OpEq:
		return OpNotEq
	case OpNotEq:
		return OpEq
	case OpLt:
		return OpGtEq
	case OpLtEq:
		return OpGt
	case OpGt:
		return OpLtEq
	case OpGtEq:
		return OpLt
	default:
		return op
	}
}

// Comparison is a Boolean-valued binary comparison.
type Comparison struct {
	Op          ComparisonOp
	Left, Right Expression
}

func NewEquals(l, r Expression) *Comparison   { return &Comparison{Op: OpEq, Left: l, Right: r} }
func NewNotEquals(l, r Expression) *Comparison { return &Comparison{Op: OpNotEq, Left: l, Right: r} }
func NewLessThan(l, r Expression) *Comparison { return &Comparison{Op: OpLt, Left: l, Right: r} }
func NewLessThanOrEqual(l, r Expression) *Comparison {
	return &Comparison{Op: OpLtEq, Left: l, Right: r}
}
func NewGreaterThan(l, r Expression) *Comparison { return &Comparison{Op: OpGt, Left: l, Right: r} }
func NewGreaterThanOrEqual(l, r Expression) *Comparison {
	return &Comparison{Op: OpGtEq, Left: l, Right: r}
}

func (c *Comparison) Children() []Expression { return []Expression{c.Left, c.Right} }

func (c *Comparison) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 2 {
		return nil, ErrChildCount.New("Comparison", 2, len(children))
	}
	return &Comparison{Op: c.Op, Left: children[0], Right: children[1]}, nil
}

func (c *Comparison) DataType() types.Type { return types.BooleanType }
func (c *Comparison) Nullable() bool       { return childrenNullable(c.Left, c.Right) }
func (c *Comparison) Foldable() bool       { return childrenFoldable(c.Left, c.Right) }
func (c *Comparison) References() IDSet    { return unionReferences(c.Left, c.Right) }
func (c *Comparison) Resolved() bool       { return childrenResolved(c.Left, c.Right) }

func (c *Comparison) StrictlyTyped() (Expression, error) {
	left, err := c.Left.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	right, err := c.Right.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	// Operands of the same type (VARCHAR = VARCHAR, BOOLEAN = BOOLEAN)
	// compare directly; mixed types must widen to a common numeric type.
	if !left.DataType().Equal(right.DataType()) {
		left, right, _, err = strictlyTypeNumericBinary(left, right, "comparison")
		if err != nil {
			return nil, err
		}
	}
	if left == c.Left && right == c.Right {
		return c, nil
	}
	return &Comparison{Op: c.Op, Left: left, Right: right}, nil
}

func (c *Comparison) Eval() (interface{}, error) {
	lv, err := c.Left.Eval()
	if err != nil {
		return nil, err
	}
	rv, err := c.Right.Eval()
	if err != nil {
		return nil, err
	}
	if lv == nil || rv == nil {
		return nil, nil
	}
	l, err := toFloat64(lv)
	if err != nil {
		return nil, err
	}
	r, err := toFloat64(rv)
	if err != nil {
		return nil, err
	}
	switch c.Op {
	case OpEq:
		return l == r, nil
	case OpNotEq:
		return l != r, nil
	case OpLt:
		return l < r, nil
	case OpLtEq:
		return l <= r, nil
	case OpGt:
		return l > r, nil
	case OpGtEq:
		return l >= r, nil
	default:
		return nil, nil
	}
}

func (c *Comparison) Equal(other Expression) bool {
	o, ok := other.(*Comparison)
	return ok && o.Op == c.Op && c.Left.Equal(o.Left) && c.Right.Equal(o.Right)
}

func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left, c.Op, c.Right)
}

// IsNull tests its child for nullity. Negated toggles it between IsNull and
// IsNotNull semantics; ReduceNegations' ¬IsNull(x)=IsNotNull(x) identity is
// simply flipping this field rather than swapping node types.
type IsNull struct {
	Child   Expression
	Negated bool
}

func NewIsNull(child Expression) *IsNull    { return &IsNull{Child: child} }
func NewIsNotNull(child Expression) *IsNull { return &IsNull{Child: child, Negated: true} }

func (n *IsNull) Children() []Expression { return []Expression{n.Child} }

func (n *IsNull) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("IsNull", 1, len(children))
	}
	return &IsNull{Child: children[0], Negated: n.Negated}, nil
}

func (n *IsNull) DataType() types.Type { return types.BooleanType }
func (n *IsNull) Nullable() bool       { return false }
func (n *IsNull) Foldable() bool       { return n.Child.Foldable() }
func (n *IsNull) References() IDSet    { return n.Child.References() }
func (n *IsNull) Resolved() bool       { return n.Child.Resolved() }

func (n *IsNull) StrictlyTyped() (Expression, error) {
	child, err := n.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == n.Child {
		return n, nil
	}
	return &IsNull{Child: child, Negated: n.Negated}, nil
}

func (n *IsNull) Eval() (interface{}, error) {
	v, err := n.Child.Eval()
	if err != nil {
		return nil, err
	}
	isNull := v == nil
	if n.Negated {
		return !isNull, nil
	}
	return isNull, nil
}

func (n *IsNull) Equal(other Expression) bool {
	o, ok := other.(*IsNull)
	return ok && o.Negated == n.Negated && n.Child.Equal(o.Child)
}

func (n *IsNull) String() string {
	if n.Negated {
		return fmt.Sprintf("%s IS NOT NULL", n.Child)
	}
	return fmt.Sprintf("%s IS NULL", n.Child)
}
