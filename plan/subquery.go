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
)

// Subquery wraps Child as a derived table named Alias, qualifying every
// output attribute so unqualified references resolve unambiguously. It is
// a bookkeeping node only: EliminateSubqueries removes it once name
// resolution against the outer query is complete, stripping the
// qualifier it installed.
type Subquery struct {
	Child LogicalPlan
	Alias string
}

// NewSubquery wraps child under the given derived-table alias.
func NewSubquery(child LogicalPlan, alias string) *Subquery {
	return &Subquery{Child: child, Alias: alias}
}

func (s *Subquery) Children() []LogicalPlan { return []LogicalPlan{s.Child} }

func (s *Subquery) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Subquery", 1, len(children))
	}
	return &Subquery{Child: children[0], Alias: s.Alias}, nil
}

func (s *Subquery) Output() []*expr.AttributeRef {
	child := s.Child.Output()
	out := make([]*expr.AttributeRef, len(child))
	for i, a := range child {
		out[i] = a.WithQualifier(s.Alias)
	}
	return out
}

func (s *Subquery) Expressions() []expr.Expression { return nil }

func (s *Subquery) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	if len(exprs) != 0 {
		return nil, ErrExprCount.New("Subquery", 0, len(exprs))
	}
	return s, nil
}

func (s *Subquery) Resolved() bool { return s.Child.Resolved() }

func (s *Subquery) StrictlyTyped() (LogicalPlan, error) {
	child, err := s.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == s.Child {
		return s, nil
	}
	return &Subquery{Child: child, Alias: s.Alias}, nil
}

func (s *Subquery) Equal(other LogicalPlan) bool {
	o, ok := other.(*Subquery)
	return ok && s.Alias == o.Alias && s.Child.Equal(o.Child)
}

func (s *Subquery) String() string {
	return fmt.Sprintf("Subquery(%s)", s.Alias)
}
