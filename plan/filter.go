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

// Filter keeps child rows for which Condition is true. Output is passed
// through unchanged from the child.
type Filter struct {
	Child     LogicalPlan
	Condition expr.Expression
}

// NewFilter builds a Filter over child with the given condition.
func NewFilter(child LogicalPlan, condition expr.Expression) *Filter {
	return &Filter{Child: child, Condition: condition}
}

func (f *Filter) Children() []LogicalPlan { return []LogicalPlan{f.Child} }

func (f *Filter) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Filter", 1, len(children))
	}
	return &Filter{Child: children[0], Condition: f.Condition}, nil
}

func (f *Filter) Output() []*expr.AttributeRef { return f.Child.Output() }

func (f *Filter) Expressions() []expr.Expression { return []expr.Expression{f.Condition} }

func (f *Filter) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 1 {
		return nil, ErrExprCount.New("Filter", 1, len(exprs))
	}
	return &Filter{Child: f.Child, Condition: exprs[0]}, nil
}

func (f *Filter) Resolved() bool {
	return f.Child.Resolved() && f.Condition.Resolved()
}

func (f *Filter) StrictlyTyped() (LogicalPlan, error) {
	child, err := f.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	cond, err := f.Condition.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if !cond.DataType().Equal(types.BooleanType) {
		return nil, qerr.ErrTypeCheck.New(fmt.Sprintf("filter condition %s must be BOOLEAN, got %s", cond, cond.DataType()))
	}
	if child == f.Child && cond == f.Condition {
		return f, nil
	}
	return &Filter{Child: child, Condition: cond}, nil
}

func (f *Filter) Equal(other LogicalPlan) bool {
	o, ok := other.(*Filter)
	return ok && f.Child.Equal(o.Child) && f.Condition.Equal(o.Condition)
}

func (f *Filter) String() string {
	return fmt.Sprintf("Filter(%s)", f.Condition)
}
