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

// LogicalOp identifies And or Or.
type LogicalOp int

const (
	OpAnd LogicalOp = iota
	OpOr
)

func (op LogicalOp) String() string {
	if op == OpAnd {
		return "AND"
	}
	return "OR"
}

// Logical is a three-valued Boolean And/Or. Three-valued truth tables:
// AND(true, null)=null, AND(false, *)=false, OR(true, *)=true,
// OR(false, null)=null.
type Logical struct {
	Op          LogicalOp
	Left, Right Expression
}

func NewAnd(l, r Expression) *Logical { return &Logical{Op: OpAnd, Left: l, Right: r} }
func NewOr(l, r Expression) *Logical  { return &Logical{Op: OpOr, Left: l, Right: r} }

func (l *Logical) Children() []Expression { return []Expression{l.Left, l.Right} }

func (l *Logical) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 2 {
		return nil, ErrChildCount.New("Logical", 2, len(children))
	}
	return &Logical{Op: l.Op, Left: children[0], Right: children[1]}, nil
}

func (l *Logical) DataType() types.Type { return types.BooleanType }
func (l *Logical) Nullable() bool       { return childrenNullable(l.Left, l.Right) }
func (l *Logical) Foldable() bool       { return childrenFoldable(l.Left, l.Right) }
func (l *Logical) References() IDSet    { return unionReferences(l.Left, l.Right) }
func (l *Logical) Resolved() bool       { return childrenResolved(l.Left, l.Right) }

func (l *Logical) StrictlyTyped() (Expression, error) {
	left, err := l.Left.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	right, err := l.Right.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if !left.DataType().Equal(types.BooleanType) {
		return nil, qerr.ErrTypeMismatch.New(l.Op, "BOOLEAN", left, left.DataType())
	}
	if !right.DataType().Equal(types.BooleanType) {
		return nil, qerr.ErrTypeMismatch.New(l.Op, "BOOLEAN", right, right.DataType())
	}
	if left == l.Left && right == l.Right {
		return l, nil
	}
	return &Logical{Op: l.Op, Left: left, Right: right}, nil
}

func (l *Logical) Eval() (interface{}, error) {
	lv, err := l.Left.Eval()
	if err != nil {
		return nil, err
	}
	rv, err := l.Right.Eval()
	if err != nil {
		return nil, err
	}
	if l.Op == OpAnd {
		if lv == false || rv == false {
			return false, nil
		}
		if lv == nil || rv == nil {
			return nil, nil
		}
		return true, nil
	}
	// OR
	if lv == true || rv == true {
		return true, nil
	}
	if lv == nil || rv == nil {
		return nil, nil
	}
	return false, nil
}

func (l *Logical) Equal(other Expression) bool {
	o, ok := other.(*Logical)
	return ok && o.Op == l.Op && l.Left.Equal(o.Left) && l.Right.Equal(o.Right)
}

func (l *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left, l.Op, l.Right)
}

// And builds a conjunction, folding away a nil operand (used by callers
// building up a predicate incrementally, e.g. MergeFilters).
func And(l, r Expression) Expression {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	return NewAnd(l, r)
}

// Not is Boolean negation: NOT(null)=null.
type Not struct {
	Child Expression
}

func NewNot(child Expression) *Not { return &Not{Child: child} }

func (n *Not) Children() []Expression { return []Expression{n.Child} }

func (n *Not) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Not", 1, len(children))
	}
	return &Not{Child: children[0]}, nil
}

func (n *Not) DataType() types.Type { return types.BooleanType }
func (n *Not) Nullable() bool       { return n.Child.Nullable() }
func (n *Not) Foldable() bool       { return n.Child.Foldable() }
func (n *Not) References() IDSet    { return n.Child.References() }
func (n *Not) Resolved() bool       { return n.Child.Resolved() }

func (n *Not) StrictlyTyped() (Expression, error) {
	child, err := n.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if !child.DataType().Equal(types.BooleanType) {
		return nil, qerr.ErrTypeMismatch.New("NOT", "BOOLEAN", child, child.DataType())
	}
	if child == n.Child {
		return n, nil
	}
	return &Not{Child: child}, nil
}

func (n *Not) Eval() (interface{}, error) {
	v, err := n.Child.Eval()
	if err != nil || v == nil {
		return nil, err
	}
	return !v.(bool), nil
}

func (n *Not) Equal(other Expression) bool {
	o, ok := other.(*Not)
	return ok && n.Child.Equal(o.Child)
}

func (n *Not) String() string { return fmt.Sprintf("(NOT %s)", n.Child) }
