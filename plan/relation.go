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
	"strings"

	"github.com/quilldb/quill/expr"
)

// LocalRelation is a leaf relation holding literal rows. It is a
// MultiInstanceRelation: NewInstance re-freshens its output attribute IDs
// so it can appear twice in the same plan (a self-join) without violating
// the deduplication invariant.
type LocalRelation struct {
	Rows    [][]interface{}
	Columns []*expr.AttributeRef
}

// NewLocalRelation builds a LocalRelation over the given rows and output
// schema.
func NewLocalRelation(rows [][]interface{}, output []*expr.AttributeRef) *LocalRelation {
	return &LocalRelation{Rows: rows, Columns: output}
}

func (l *LocalRelation) Children() []LogicalPlan { return nil }

func (l *LocalRelation) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 0 {
		return nil, ErrChildCount.New("LocalRelation", 0, len(children))
	}
	return l, nil
}

func (l *LocalRelation) Output() []*expr.AttributeRef { return l.Columns }
func (l *LocalRelation) Expressions() []expr.Expression { return nil }

func (l *LocalRelation) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 0 {
		return nil, ErrExprCount.New("LocalRelation", 0, len(exprs))
	}
	return l, nil
}

func (l *LocalRelation) Resolved() bool {
	for _, c := range l.Columns {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

func (l *LocalRelation) StrictlyTyped() (LogicalPlan, error) { return l, nil }

func (l *LocalRelation) Equal(other LogicalPlan) bool {
	o, ok := other.(*LocalRelation)
	if !ok || len(o.Columns) != len(l.Columns) {
		return false
	}
	for i, c := range l.Columns {
		if !c.Equal(o.Columns[i]) {
			return false
		}
	}
	return len(l.Rows) == len(o.Rows)
}

// NewInstance returns a copy of l whose output attributes carry fresh
// Expression IDs, so the same relation literal can appear on both sides of
// a self-join.
func (l *LocalRelation) NewInstance() LogicalPlan {
	cols := make([]*expr.AttributeRef, len(l.Columns))
	for i, c := range l.Columns {
		cols[i] = expr.NewAttributeRef(c.Name(), c.DataType(), c.Nullable())
	}
	return &LocalRelation{Rows: l.Rows, Columns: cols}
}

func (l *LocalRelation) String() string {
	names := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		names[i] = c.String()
	}
	return fmt.Sprintf("LocalRelation(%s)", strings.Join(names, ", "))
}

// SingleRowRelation is the constant one-row, zero-column source used to
// plan expressions with no FROM clause.
type SingleRowRelation struct{}

func NewSingleRowRelation() *SingleRowRelation { return &SingleRowRelation{} }

func (s *SingleRowRelation) Children() []LogicalPlan { return nil }

func (s *SingleRowRelation) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 0 {
		return nil, ErrChildCount.New("SingleRowRelation", 0, len(children))
	}
	return s, nil
}

func (s *SingleRowRelation) Output() []*expr.AttributeRef   { return nil }
func (s *SingleRowRelation) Expressions() []expr.Expression { return nil }

func (s *SingleRowRelation) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 0 {
		return nil, ErrExprCount.New("SingleRowRelation", 0, len(exprs))
	}
	return s, nil
}

func (s *SingleRowRelation) Resolved() bool                       { return true }
func (s *SingleRowRelation) StrictlyTyped() (LogicalPlan, error) { return s, nil }

func (s *SingleRowRelation) Equal(other LogicalPlan) bool {
	_, ok := other.(*SingleRowRelation)
	return ok
}

func (s *SingleRowRelation) String() string { return "SingleRowRelation" }

// EmptyRelation is a zero-row relation with a fixed output schema, the
// result FoldConstantFilters substitutes for an always-false Filter.
type EmptyRelation struct {
	Columns []*expr.AttributeRef
}

func NewEmptyRelation(output []*expr.AttributeRef) *EmptyRelation {
	return &EmptyRelation{Columns: output}
}

func (e *EmptyRelation) Children() []LogicalPlan { return nil }

func (e *EmptyRelation) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 0 {
		return nil, ErrChildCount.New("EmptyRelation", 0, len(children))
	}
	return e, nil
}

func (e *EmptyRelation) Output() []*expr.AttributeRef   { return e.Columns }
func (e *EmptyRelation) Expressions() []expr.Expression { return nil }

func (e *EmptyRelation) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 0 {
		return nil, ErrExprCount.New("EmptyRelation", 0, len(exprs))
	}
	return e, nil
}

func (e *EmptyRelation) Resolved() bool                       { return true }
func (e *EmptyRelation) StrictlyTyped() (LogicalPlan, error) { return e, nil }

func (e *EmptyRelation) Equal(other LogicalPlan) bool {
	o, ok := other.(*EmptyRelation)
	if !ok || len(o.Columns) != len(e.Columns) {
		return false
	}
	for i, c := range e.Columns {
		if !c.Equal(o.Columns[i]) {
			return false
		}
	}
	return true
}

func (e *EmptyRelation) String() string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = c.String()
	}
	return fmt.Sprintf("EmptyRelation(%s)", strings.Join(names, ", "))
}
