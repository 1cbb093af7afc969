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

package plan

import (
	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/types"
)

// SetOpKind identifies Union, Intersect, or Except.
type SetOpKind int

const (
	Union SetOpKind = iota
	Intersect
	Except
)

func (k SetOpKind) String() string {
	switch k {
	case Union:
		return "Union"
	case Intersect:
		return "Intersect"
	default:
		return "Except"
	}
}

// SetOp is a binary set operator over two branches with aligned schemas.
// Output is the column-wise zip of both branches' output: nullable if
// either is nullable for Union, nullable iff both are nullable for
// Intersect, and exactly the left branch's output for Except.
type SetOp struct {
	Kind        SetOpKind
	Left, Right LogicalPlan
}

func NewUnion(l, r LogicalPlan) *SetOp     { return &SetOp{Kind: Union, Left: l, Right: r} }
func NewIntersect(l, r LogicalPlan) *SetOp { return &SetOp{Kind: Intersect, Left: l, Right: r} }
func NewExcept(l, r LogicalPlan) *SetOp    { return &SetOp{Kind: Except, Left: l, Right: r} }

func (s *SetOp) Children() []LogicalPlan { return []LogicalPlan{s.Left, s.Right} }

func (s *SetOp) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 2 {
		return nil, ErrChildCount.New("SetOp", 2, len(children))
	}
	return &SetOp{Kind: s.Kind, Left: children[0], Right: children[1]}, nil
}

func (s *SetOp) Output() []*expr.AttributeRef {
	left, right := s.Left.Output(), s.Right.Output()
	if s.Kind == Except {
		return left
	}
	out := make([]*expr.AttributeRef, len(left))
	for i, l := range left {
		r := right[i]
		switch s.Kind {
		case Union:
			out[i] = l.WithNullable(l.Nullable() || r.Nullable())
		case Intersect:
			out[i] = l.WithNullable(l.Nullable() && r.Nullable())
		}
	}
	return out
}

func (s *SetOp) Expressions() []expr.Expression { return nil }

func (s *SetOp) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 0 {
		return nil, ErrExprCount.New("SetOp", 0, len(exprs))
	}
	return s, nil
}

func (s *SetOp) Resolved() bool {
	return childrenResolved(s.Left, s.Right)
}

// StrictlyTyped enforces the set-operator alignment invariant: branches
// must have the same number of columns and the same column names in order;
// a column-wise widest type is computed and casts inserted into whichever
// branch doesn't already match.
func (s *SetOp) StrictlyTyped() (LogicalPlan, error) {
	left, err := s.Left.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	right, err := s.Right.StrictlyTyped()
	if err != nil {
		return nil, err
	}

	lOut, rOut := left.Output(), right.Output()
	if len(lOut) != len(rOut) {
		return nil, ErrMismatchedBranches.New(s.Kind, len(lOut), len(rOut))
	}

	leftCasts := make([]expr.Expression, len(lOut))
	rightCasts := make([]expr.Expression, len(rOut))
	needsLeftProject, needsRightProject := false, false
	for i := range lOut {
		if lOut[i].Name() != rOut[i].Name() {
			return nil, ErrMismatchedColumnName.New(s.Kind, i, lOut[i].Name(), rOut[i].Name())
		}
		widest, err := types.Widest(lOut[i].DataType(), rOut[i].DataType())
		if err != nil {
			return nil, err
		}
		leftCasts[i] = promoteBranchColumn(lOut[i], widest)
		rightCasts[i] = promoteBranchColumn(rOut[i], widest)
		if leftCasts[i] != expr.Expression(lOut[i]) {
			needsLeftProject = true
		}
		if rightCasts[i] != expr.Expression(rOut[i]) {
			needsRightProject = true
		}
	}

	if needsLeftProject {
		left = NewProject(left, leftCasts)
	}
	if needsRightProject {
		right = NewProject(right, rightCasts)
	}
	if left == s.Left && right == s.Right {
		return s, nil
	}
	return &SetOp{Kind: s.Kind, Left: left, Right: right}, nil
}

// promoteBranchColumn widens a branch column to the column-wise widest
// type. An inserted cast is re-aliased under the column's own name and ID
// so the branch's output schema still lines up by name and stays
// referentially the same attribute.
func promoteBranchColumn(a *expr.AttributeRef, widest types.Type) expr.Expression {
	promoted := expr.PromoteDataType(a, widest)
	if promoted == expr.Expression(a) {
		return a
	}
	return expr.NewAliasWithID(a.ID(), a.Name(), promoted)
}

func (s *SetOp) Equal(other LogicalPlan) bool {
	o, ok := other.(*SetOp)
	return ok && o.Kind == s.Kind && s.Left.Equal(o.Left) && s.Right.Equal(o.Right)
}

func (s *SetOp) String() string { return s.Kind.String() }
