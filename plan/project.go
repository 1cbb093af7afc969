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

// Project computes a new output from List, one attribute per list element
// via Expression.toAttribute-equivalent semantics. List must be non-empty.
type Project struct {
	Child LogicalPlan
	List  []expr.Expression
}

// NewProject builds a Project over child with the given projection list.
func NewProject(child LogicalPlan, list []expr.Expression) *Project {
	return &Project{Child: child, List: list}
}

func (p *Project) Children() []LogicalPlan { return []LogicalPlan{p.Child} }

func (p *Project) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Project", 1, len(children))
	}
	return &Project{Child: children[0], List: p.List}, nil
}

func (p *Project) Expressions() []expr.Expression { return p.List }

func (p *Project) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != len(p.List) {
		return nil, ErrExprCount.New("Project", len(p.List), len(exprs))
	}
	return &Project{Child: p.Child, List: exprs}, nil
}

// Output projects each list element to an attribute: AttributeRefs pass
// through unchanged, everything else (an Alias, a bare arithmetic
// expression) is converted via its own toAttribute-equivalent.
func (p *Project) Output() []*expr.AttributeRef {
	out := make([]*expr.AttributeRef, len(p.List))
	for i, e := range p.List {
		out[i] = toOutputAttribute(e)
	}
	return out
}

// toOutputAttribute converts a projection-list element into the attribute
// its consumers see: an existing AttributeRef passes through, an
// Identifiable (Alias, GroupingAlias, AggregationAlias) yields an
// AttributeRef carrying its own ID, and anything else (a bare literal or
// computed expression with no name) is surfaced under its own String().
func toOutputAttribute(e expr.Expression) *expr.AttributeRef {
	switch v := e.(type) {
	case *expr.AttributeRef:
		return v
	case *expr.Alias:
		return v.ToAttribute()
	case *expr.GroupingAlias:
		return v.ToAttribute()
	case *expr.AggregationAlias:
		return v.ToAttribute()
	case expr.Identifiable:
		return expr.NewAttributeRefWithID(v.ID(), e.String(), e.DataType(), e.Nullable())
	default:
		return expr.NewAttributeRef(e.String(), e.DataType(), e.Nullable())
	}
}

func (p *Project) Resolved() bool {
	return p.Child.Resolved() && expressionsResolved(p.List...)
}

func (p *Project) StrictlyTyped() (LogicalPlan, error) {
	if len(p.List) == 0 {
		return nil, ErrEmptyProjectList.New()
	}
	child, err := p.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	newList := make([]expr.Expression, len(p.List))
	changed := child != p.Child
	for i, e := range p.List {
		ne, err := e.StrictlyTyped()
		if err != nil {
			return nil, err
		}
		newList[i] = ne
		if ne != e {
			changed = true
		}
	}
	if !changed {
		return p, nil
	}
	return &Project{Child: child, List: newList}, nil
}

func (p *Project) Equal(other LogicalPlan) bool {
	o, ok := other.(*Project)
	if !ok || len(o.List) != len(p.List) || !p.Child.Equal(o.Child) {
		return false
	}
	for i, e := range p.List {
		if !e.Equal(o.List[i]) {
			return false
		}
	}
	return true
}

func (p *Project) String() string {
	parts := make([]string, len(p.List))
	for i, e := range p.List {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Project(%s)", strings.Join(parts, ", "))
}
