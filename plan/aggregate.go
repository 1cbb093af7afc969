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

// Aggregate groups Child by Grouping and computes Aggregates per group.
// Grouping elements are GroupingAlias-wrapped, Aggregates elements are
// AggregationAlias-wrapped; Output is the concatenation of both, in that
// order, matching how a SELECT's grouping columns precede its aggregate
// columns positionally once the analyzer has resolved both lists.
type Aggregate struct {
	Child      LogicalPlan
	Grouping   []*expr.GroupingAlias
	Aggregates []*expr.AggregationAlias
}

// NewAggregate builds an Aggregate over child with the given grouping and
// aggregate-function lists.
func NewAggregate(child LogicalPlan, grouping []*expr.GroupingAlias, aggregates []*expr.AggregationAlias) *Aggregate {
	return &Aggregate{Child: child, Grouping: grouping, Aggregates: aggregates}
}

func (a *Aggregate) Children() []LogicalPlan { return []LogicalPlan{a.Child} }

func (a *Aggregate) WithChildren(children ...LogicalPlan) (LogicalPlan, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Aggregate", 1, len(children))
	}
	return &Aggregate{Child: children[0], Grouping: a.Grouping, Aggregates: a.Aggregates}, nil
}

func (a *Aggregate) Output() []*expr.AttributeRef {
	out := make([]*expr.AttributeRef, 0, len(a.Grouping)+len(a.Aggregates))
	for _, g := range a.Grouping {
		out = append(out, g.ToAttribute())
	}
	for _, agg := range a.Aggregates {
		out = append(out, agg.ToAttribute())
	}
	return out
}

func (a *Aggregate) Expressions() []expr.Expression {
	out := make([]expr.Expression, 0, len(a.Grouping)+len(a.Aggregates))
	for _, g := range a.Grouping {
		out = append(out, g)
	}
	for _, agg := range a.Aggregates {
		out = append(out, agg)
	}
	return out
}

func (a *Aggregate) WithExpressions(exprs ...expr.Expression) (LogicalPlan, error) {
	want := len(a.Grouping) + len(a.Aggregates)
	if len(exprs) != want {
		return nil, ErrExprCount.New("Aggregate", want, len(exprs))
	}
	grouping := make([]*expr.GroupingAlias, len(a.Grouping))
	for i := range a.Grouping {
		g, ok := exprs[i].(*expr.GroupingAlias)
		if !ok {
			return nil, ErrExprCount.New("Aggregate expects GroupingAlias expressions in grouping position", want, len(exprs))
		}
		grouping[i] = g
	}
	aggregates := make([]*expr.AggregationAlias, len(a.Aggregates))
	for i := range a.Aggregates {
		agg, ok := exprs[len(a.Grouping)+i].(*expr.AggregationAlias)
		if !ok {
			return nil, ErrExprCount.New("Aggregate expects AggregationAlias expressions in aggregate position", want, len(exprs))
		}
		aggregates[i] = agg
	}
	return &Aggregate{Child: a.Child, Grouping: grouping, Aggregates: aggregates}, nil
}

func (a *Aggregate) Resolved() bool {
	if !a.Child.Resolved() {
		return false
	}
	for _, g := range a.Grouping {
		if !g.Resolved() {
			return false
		}
	}
	for _, agg := range a.Aggregates {
		if !agg.Resolved() {
			return false
		}
	}
	return true
}

func (a *Aggregate) StrictlyTyped() (LogicalPlan, error) {
	child, err := a.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	changed := child != a.Child
	grouping := make([]*expr.GroupingAlias, len(a.Grouping))
	for i, g := range a.Grouping {
		ne, err := g.StrictlyTyped()
		if err != nil {
			return nil, err
		}
		ng := ne.(*expr.GroupingAlias)
		grouping[i] = ng
		if ng != g {
			changed = true
		}
	}
	aggregates := make([]*expr.AggregationAlias, len(a.Aggregates))
	for i, agg := range a.Aggregates {
		ne, err := agg.StrictlyTyped()
		if err != nil {
			return nil, err
		}
		nagg := ne.(*expr.AggregationAlias)
		aggregates[i] = nagg
		if nagg != agg {
			changed = true
		}
	}
	if !changed {
		return a, nil
	}
	return &Aggregate{Child: child, Grouping: grouping, Aggregates: aggregates}, nil
}

func (a *Aggregate) Equal(other LogicalPlan) bool {
	o, ok := other.(*Aggregate)
	if !ok || !a.Child.Equal(o.Child) || len(a.Grouping) != len(o.Grouping) || len(a.Aggregates) != len(o.Aggregates) {
		return false
	}
	for i, g := range a.Grouping {
		if !g.Equal(o.Grouping[i]) {
			return false
		}
	}
	for i, agg := range a.Aggregates {
		if !agg.Equal(o.Aggregates[i]) {
			return false
		}
	}
	return true
}

func (a *Aggregate) String() string {
	groupParts := make([]string, len(a.Grouping))
	for i, g := range a.Grouping {
		groupParts[i] = g.String()
	}
	aggParts := make([]string, len(a.Aggregates))
	for i, agg := range a.Aggregates {
		aggParts[i] = agg.String()
	}
	return fmt.Sprintf("Aggregate(group=[%s], agg=[%s])", strings.Join(groupParts, ", "), strings.Join(aggParts, ", "))
}
