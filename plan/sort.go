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

// Sort orders child rows by Order, passing output through unchanged.
type Sort struct {
	Child LogicalPlan
	Order []*expr.SortOrder
}

// NewSort builds a Sort over child with the given order list.
func NewSort(child LogicalPlan, order []*expr.SortOrder) *Sort {
	return &Sort{Child: child, Order: order}
}

func (s *Sort) Children() []LogicalPlan { return []LogicalPlan{s.Child} }

func (s *Sort) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Sort", 1, len(children))
	}
	return &Sort{Child: children[0], Order: s.Order}, nil
}

func (s *Sort) Output() []*expr.AttributeRef { return s.Child.Output() }

func (s *Sort) Expressions() []expr.Expression {
	out := make([]expr.Expression, len(s.Order))
	for i, o := range s.Order {
		out[i] = o
	}
	return out
}

func (s *Sort) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != len(s.Order) {
		return nil, ErrExprCount.New("Sort", len(s.Order), len(exprs))
	}
	order := make([]*expr.SortOrder, len(exprs))
	for i, e := range exprs {
		so, ok := e.(*expr.SortOrder)
		if !ok {
			return nil, ErrExprCount.New("Sort expects SortOrder expressions", len(s.Order), len(exprs))
		}
		order[i] = so
	}
	return &Sort{Child: s.Child, Order: order}, nil
}

func (s *Sort) Resolved() bool {
	if !s.Child.Resolved() {
		return false
	}
	for _, o := range s.Order {
		if !o.Resolved() {
			return false
		}
	}
	return true
}

func (s *Sort) StrictlyTyped() (LogicalPlan, error) {
	child, err := s.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	newOrder := make([]*expr.SortOrder, len(s.Order))
	changed := child != s.Child
	for i, o := range s.Order {
		ne, err := o.StrictlyTyped()
		if err != nil {
			return nil, err
		}
		no := ne.(*expr.SortOrder)
		newOrder[i] = no
		if no != o {
			changed = true
		}
	}
	if !changed {
		return s, nil
	}
	return &Sort{Child: child, Order: newOrder}, nil
}

func (s *Sort) Equal(other LogicalPlan) bool {
	o, ok := other.(*Sort)
	if !ok || len(o.Order) != len(s.Order) || !s.Child.Equal(o.Child) {
		return false
	}
	for i, order := range s.Order {
		if !order.Equal(o.Order[i]) {
			return false
		}
	}
	return true
}

func (s *Sort) String() string {
	parts := make([]string, len(s.Order))
	for i, o := range s.Order {
		parts[i] = o.String()
	}
	return fmt.Sprintf("Sort(%s)", strings.Join(parts, ", "))
}

// Distinct removes duplicate rows from child.
type Distinct struct {
	Child LogicalPlan
}

func NewDistinct(child LogicalPlan) *Distinct { return &Distinct{Child: child} }

func (d *Distinct) Children() []LogicalPlan { return []LogicalPlan{d.Child} }

func (d *Distinct) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Distinct", 1, len(children))
	}
	return &Distinct{Child: children[0]}, nil
}

func (d *Distinct) Output() []*expr.AttributeRef   { return d.Child.Output() }
func (d *Distinct) Expressions() []expr.Expression { return nil }

func (d *Distinct) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 0 {
		return nil, ErrExprCount.New("Distinct", 0, len(exprs))
	}
	return d, nil
}

func (d *Distinct) Resolved() bool { return d.Child.Resolved() }

func (d *Distinct) StrictlyTyped() (LogicalPlan, error) {
	child, err := d.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == d.Child {
		return d, nil
	}
	return &Distinct{Child: child}, nil
}

func (d *Distinct) Equal(other LogicalPlan) bool {
	o, ok := other.(*Distinct)
	return ok && d.Child.Equal(o.Child)
}

func (d *Distinct) String() string { return "Distinct" }
