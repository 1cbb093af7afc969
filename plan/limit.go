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
	"github.com/quilldb/quill/types"
)

// Limit caps child to at most N rows. N must strict-type to a foldable
// integral literal (implicit widening from a smaller integral literal is
// allowed).
type Limit struct {
	Child LogicalPlan
	N     expr.Expression
}

// NewLimit builds a Limit over child with bound n.
func NewLimit(child LogicalPlan, n expr.Expression) *Limit {
	return &Limit{Child: child, N: n}
}

func (l *Limit) Children() []LogicalPlan { return []LogicalPlan{l.Child} }

func (l *Limit) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Limit", 1, len(children))
	}
	return &Limit{Child: children[0], N: l.N}, nil
}

func (l *Limit) Output() []*expr.AttributeRef { return l.Child.Output() }

func (l *Limit) Expressions() []expr.Expression { return []expr.Expression{l.N} }

func (l *Limit) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 1 {
		return nil, ErrExprCount.New("Limit", 1, len(exprs))
	}
	return &Limit{Child: l.Child, N: exprs[0]}, nil
}

func (l *Limit) Resolved() bool {
	return l.Child.Resolved() && l.N.Resolved()
}

func (l *Limit) StrictlyTyped() (LogicalPlan, error) {
	child, err := l.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	n, err := l.N.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if !n.Foldable() || !types.IsIntegral(n.DataType()) {
		return nil, ErrNotFoldableLimit.New(n)
	}
	if child == l.Child && n == l.N {
		return l, nil
	}
	return &Limit{Child: child, N: n}, nil
}

func (l *Limit) Equal(other LogicalPlan) bool {
	o, ok := other.(*Limit)
	return ok && l.Child.Equal(o.Child) && l.N.Equal(o.N)
}

func (l *Limit) String() string {
	return fmt.Sprintf("Limit(%s)", l.N)
}
