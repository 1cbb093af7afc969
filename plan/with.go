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

// CTE names one common table expression bound by a With node.
type CTE struct {
	Name  string
	Query LogicalPlan
}

// With binds zero or more CTEs in scope for Child's resolution. Like
// Subquery it is bookkeeping only. EliminateSubqueries removes Subquery
// nodes only, and no rule in the optimizer ruleset removes a With, so the
// wrapper is still present in the optimized plan.
type With struct {
	CTEs  []CTE
	Child LogicalPlan
}

// NewWith binds ctes in scope for child.
func NewWith(ctes []CTE, child LogicalPlan) *With {
	return &With{CTEs: ctes, Child: child}
}

// Children returns each CTE's query followed by Child, so tree rewrites
// reach into CTE bodies as well as the main query.
func (w *With) Children() []LogicalPlan {
	out := make([]LogicalPlan, 0, len(w.CTEs)+1)
	for _, c := range w.CTEs {
		out = append(out, c.Query)
	}
	return append(out, w.Child)
}

func (w *With) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	want := len(w.CTEs) + 1
	if len(children) != want {
		return nil, ErrChildCount.New("With", want, len(children))
	}
	ctes := make([]CTE, len(w.CTEs))
	for i, c := range w.CTEs {
		ctes[i] = CTE{Name: c.Name, Query: children[i]}
	}
	return &With{CTEs: ctes, Child: children[len(children)-1]}, nil
}

func (w *With) Output() []*expr.AttributeRef { return w.Child.Output() }

func (w *With) Expressions() []expr.Expression { return nil }

func (w *With) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 0 {
		return nil, ErrExprCount.New("With", 0, len(exprs))
	}
	return w, nil
}

func (w *With) Resolved() bool {
	for _, c := range w.CTEs {
		if !c.Query.Resolved() {
			return false
		}
	}
	return w.Child.Resolved()
}

func (w *With) StrictlyTyped() (LogicalPlan, error) {
	changed := false
	ctes := make([]CTE, len(w.CTEs))
	for i, c := range w.CTEs {
		q, err := c.Query.StrictlyTyped()
		if err != nil {
			return nil, err
		}
		ctes[i] = CTE{Name: c.Name, Query: q}
		if q != c.Query {
			changed = true
		}
	}
	child, err := w.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child != w.Child {
		changed = true
	}
	if !changed {
		return w, nil
	}
	return &With{CTEs: ctes, Child: child}, nil
}

func (w *With) Equal(other LogicalPlan) bool {
	o, ok := other.(*With)
	if !ok || len(w.CTEs) != len(o.CTEs) || !w.Child.Equal(o.Child) {
		return false
	}
	for i, c := range w.CTEs {
		if c.Name != o.CTEs[i].Name || !c.Query.Equal(o.CTEs[i].Query) {
			return false
		}
	}
	return true
}

func (w *With) String() string {
	names := make([]string, len(w.CTEs))
	for i, c := range w.CTEs {
		names[i] = c.Name
	}
	return fmt.Sprintf("With(%s)", strings.Join(names, ", "))
}
