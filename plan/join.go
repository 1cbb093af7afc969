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
	"fmt"

	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/qerr"
	"github.com/quilldb/quill/types"
)

// JoinKind identifies the join variant, which determines output nullability
// and which side(s) survive in the output schema.
type JoinKind int

const (
	InnerJoin JoinKind = iota
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
	LeftSemiJoin
)

func (k JoinKind) String() string {
	switch k {
	case InnerJoin:
		return "InnerJoin"
	case LeftOuterJoin:
		return "LeftOuterJoin"
	case RightOuterJoin:
		return "RightOuterJoin"
	case FullOuterJoin:
		return "FullOuterJoin"
	default:
		return "LeftSemiJoin"
	}
}

// Join combines Left and Right rows matching Condition. Output depends on
// Kind: Inner/LeftOuter/RightOuter/FullOuter zip both sides' columns (with
// the non-preserved side forced nullable per outer-join side), while
// LeftSemi carries only the left side's columns (it tests existence,
// never materializes the right side).
//
// Construction requires Left and Right to have disjoint output attribute
// IDs (see DisjointOutputs); self-joins must freshen one side via
// MultiInstanceRelation.NewInstance first.
type Join struct {
	Kind        JoinKind
	Left, Right LogicalPlan
	Condition   expr.Expression
}

// NewJoin builds a Join. It does not itself enforce DisjointOutputs;
// callers (the parser/analyzer layer, external to this package) are
// responsible for freshening self-join operands before construction.
func NewJoin(kind JoinKind, left, right LogicalPlan, condition expr.Expression) *Join {
	return &Join{Kind: kind, Left: left, Right: right, Condition: condition}
}

func (j *Join) Children() []LogicalPlan { return []LogicalPlan{j.Left, j.Right} }

func (j *Join) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 2 {
		return nil, ErrChildCount.New("Join", 2, len(children))
	}
	return &Join{Kind: j.Kind, Left: children[0], Right: children[1], Condition: j.Condition}, nil
}

func (j *Join) Output() []*expr.AttributeRef {
	left := j.Left.Output()
	if j.Kind == LeftSemiJoin {
		return left
	}
	right := j.Right.Output()
	out := make([]*expr.AttributeRef, 0, len(left)+len(right))
	for _, a := range left {
		if j.Kind == RightOuterJoin || j.Kind == FullOuterJoin {
			a = a.WithNullable(true)
		}
		out = append(out, a)
	}
	for _, a := range right {
		if j.Kind == LeftOuterJoin || j.Kind == FullOuterJoin {
			a = a.WithNullable(true)
		}
		out = append(out, a)
	}
	return out
}

// Expressions returns Condition as a single-element slice, or nil when
// Condition is absent (a cross join carries none). A nil Condition owns
// no expressions for the rules executor to rewrite.
func (j *Join) Expressions() []expr.Expression {
	if j.Condition == nil {
		return nil
	}
	return []expr.Expression{j.Condition}
}

func (j *Join) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if j.Condition == nil {
		if len(exprs) != 0 {
			return nil, ErrExprCount.New("Join", 0, len(exprs))
		}
		return j, nil
	}
	if len(exprs) != 1 {
		return nil, ErrExprCount.New("Join", 1, len(exprs))
	}
	return &Join{Kind: j.Kind, Left: j.Left, Right: j.Right, Condition: exprs[0]}, nil
}

func (j *Join) Resolved() bool {
	return childrenResolved(j.Left, j.Right) && (j.Condition == nil || j.Condition.Resolved())
}

func (j *Join) StrictlyTyped() (LogicalPlan, error) {
	left, err := j.Left.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	right, err := j.Right.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if j.Condition == nil {
		if left == j.Left && right == j.Right {
			return j, nil
		}
		return &Join{Kind: j.Kind, Left: left, Right: right}, nil
	}
	cond, err := j.Condition.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if !cond.DataType().Equal(types.BooleanType) {
		return nil, qerr.ErrTypeCheck.New(fmt.Sprintf("join condition %s must be BOOLEAN, got %s", cond, cond.DataType()))
	}
	if left == j.Left && right == j.Right && cond == j.Condition {
		return j, nil
	}
	return &Join{Kind: j.Kind, Left: left, Right: right, Condition: cond}, nil
}

func (j *Join) Equal(other LogicalPlan) bool {
	o, ok := other.(*Join)
	if !ok || o.Kind != j.Kind || !j.Left.Equal(o.Left) || !j.Right.Equal(o.Right) {
		return false
	}
	if j.Condition == nil || o.Condition == nil {
		return j.Condition == nil && o.Condition == nil
	}
	return j.Condition.Equal(o.Condition)
}

func (j *Join) String() string {
	if j.Condition == nil {
		return fmt.Sprintf("%s()", j.Kind)
	}
	return fmt.Sprintf("%s(%s)", j.Kind, j.Condition)
}
