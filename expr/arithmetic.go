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

	"github.com/quilldb/quill/qerr"
	"github.com/quilldb/quill/types"
)

// ArithmeticOp identifies a binary arithmetic operator.
type ArithmeticOp int

const (
	OpPlus ArithmeticOp = iota
	OpMinus
	OpMultiply
	OpDivide
)

func (op ArithmeticOp) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Arithmetic is a binary numeric operator. Its result type is the widest of
// its operand types; it is nullable if either operand is nullable, or
// always nullable for Divide (division by zero yields null).
type Arithmetic struct {
	Op          ArithmeticOp
	Left, Right Expression
}

func NewPlus(l, r Expression) *Arithmetic     { return &Arithmetic{Op: OpPlus, Left: l, Right: r} }
func NewMinus(l, r Expression) *Arithmetic    { return &Arithmetic{Op: OpMinus, Left: l, Right: r} }
func NewMultiply(l, r Expression) *Arithmetic { return &Arithmetic{Op: OpMultiply, Left: l, Right: r} }
func NewDivide(l, r Expression) *Arithmetic   { return &Arithmetic{Op: OpDivide, Left: l, Right: r} }

func (a *Arithmetic) Children() []Expression { return []Expression{a.Left, a.Right} }

func (a *Arithmetic) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 2 {
		return nil, ErrChildCount.New("Arithmetic", 2, len(children))
	}
	return &Arithmetic{Op: a.Op, Left: children[0], Right: children[1]}, nil
}

func (a *Arithmetic) DataType() types.Type {
	t, err := types.Widest(a.Left.DataType(), a.Right.DataType())
	if err != nil {
		return a.Left.DataType()
	}
	return t
}

func (a *Arithmetic) Nullable() bool {
	return a.Op == OpDivide || childrenNullable(a.Left, a.Right)
}

func (a *Arithmetic) Foldable() bool    { return childrenFoldable(a.Left, a.Right) }
func (a *Arithmetic) References() IDSet { return unionReferences(a.Left, a.Right) }
func (a *Arithmetic) Resolved() bool    { return childrenResolved(a.Left, a.Right) }

func (a *Arithmetic) StrictlyTyped() (Expression, error) {
	left, right, _, err := strictlyTypeNumericBinary(a.Left, a.Right, "arithmetic")
	if err != nil {
		return nil, err
	}
	if left == a.Left && right == a.Right {
		return a, nil
	}
	return &Arithmetic{Op: a.Op, Left: left, Right: right}, nil
}

func (a *Arithmetic) Eval() (interface{}, error) {
	lv, err := a.Left.Eval()
	if err != nil {
		return nil, err
	}
	rv, err := a.Right.Eval()
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

	var result float64
	switch a.Op {
	case OpPlus:
		result = l + r
	case OpMinus:
		result = l - r
	case OpMultiply:
		result = l * r
	case OpDivide:
		if r == 0 {
			return nil, nil
		}
		result = l / r
	}

	if types.IsIntegral(a.DataType()) {
		return int64(result), nil
	}
	return result, nil
}

func (a *Arithmetic) Equal(other Expression) bool {
	o, ok := other.(*Arithmetic)
	return ok && o.Op == a.Op && a.Left.Equal(o.Left) && a.Right.Equal(o.Right)
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left, a.Op, a.Right)
}

// Negate is unary arithmetic negation.
type Negate struct {
	Child Expression
}

func NewNegate(child Expression) *Negate { return &Negate{Child: child} }

func (n *Negate) Children() []Expression { return []Expression{n.Child} }

func (n *Negate) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Negate", 1, len(children))
	}
	return &Negate{Child: children[0]}, nil
}

func (n *Negate) DataType() types.Type { return n.Child.DataType() }
func (n *Negate) Nullable() bool       { return n.Child.Nullable() }
func (n *Negate) Foldable() bool       { return n.Child.Foldable() }
func (n *Negate) References() IDSet    { return n.Child.References() }
func (n *Negate) Resolved() bool       { return n.Child.Resolved() }

func (n *Negate) StrictlyTyped() (Expression, error) {
	child, err := n.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if !types.IsNumeric(child.DataType()) {
		return nil, qerr.ErrTypeMismatch.New("Negate", "numeric", child, child.DataType())
	}
	if child == n.Child {
		return n, nil
	}
	return &Negate{Child: child}, nil
}

func (n *Negate) Eval() (interface{}, error) {
	v, err := n.Child.Eval()
	if err != nil || v == nil {
		return nil, err
	}
	f, err := toFloat64(v)
	if err != nil {
		return nil, err
	}
	if types.IsIntegral(n.DataType()) {
		return int64(-f), nil
	}
	return -f, nil
}

func (n *Negate) Equal(other Expression) bool {
	o, ok := other.(*Negate)
	return ok && n.Child.Equal(o.Child)
}

func (n *Negate) String() string { return fmt.Sprintf("-%s", n.Child) }

// strictlyTypeNumericBinary is the shared strict-typing helper for any
// binary operator that requires both operands to widen to a common numeric
// type (Arithmetic, ordered Comparison).
func strictlyTypeNumericBinary(left, right Expression, opKind string) (Expression, Expression, types.Type, error) {
	l, err := left.StrictlyTyped()
	if err != nil {
		return nil, nil, nil, err
	}
	r, err := right.StrictlyTyped()
	if err != nil {
		return nil, nil, nil, err
	}
	if !types.IsNumeric(l.DataType()) || !types.IsNumeric(r.DataType()) {
		return nil, nil, nil, qerr.ErrTypeMismatch.New(opKind, "numeric", r, r.DataType())
	}
	widest, err := types.Widest(l.DataType(), r.DataType())
	if err != nil {
		return nil, nil, nil, qerr.ErrTypeMismatch.New(opKind, "comparable numeric types", r, r.DataType())
	}
	return PromoteDataType(l, widest), PromoteDataType(r, widest), widest, nil
}
