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

package expr

import (
	"fmt"

	"github.com/quilldb/quill/types"
)

// Alias renames its child expression's output column, carrying its own
// Expression ID so later references to the alias (by ID) are stable across
// further rewrites of the child.
type Alias struct {
	AliasID   int64
	AliasName string
	Child     Expression
}

// NewAlias builds an Alias with a fresh Expression ID.
func NewAlias(name string, child Expression) *Alias {
	return &Alias{AliasID: NextID(), AliasName: name, Child: child}
}

// NewAliasWithID builds an Alias carrying a caller-specified ID, used when
// an optimizer rule must preserve a previously assigned identity (e.g.
// MergeProjects inlining an inner alias into an outer one).
func NewAliasWithID(id int64, name string, child Expression) *Alias {
	return &Alias{AliasID: id, AliasName: name, Child: child}
}

func (a *Alias) ID() int64    { return a.AliasID }
func (a *Alias) Name() string { return a.AliasName }

func (a *Alias) Children() []Expression { return []Expression{a.Child} }

func (a *Alias) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("Alias", 1, len(children))
	}
	return &Alias{AliasID: a.AliasID, AliasName: a.AliasName, Child: children[0]}, nil
}

func (a *Alias) DataType() types.Type { return a.Child.DataType() }
func (a *Alias) Nullable() bool       { return a.Child.Nullable() }
func (a *Alias) Foldable() bool       { return a.Child.Foldable() }
func (a *Alias) References() IDSet    { return a.Child.References() }
func (a *Alias) Resolved() bool       { return a.Child.Resolved() }

func (a *Alias) StrictlyTyped() (Expression, error) {
	child, err := a.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == a.Child {
		return a, nil
	}
	return &Alias{AliasID: a.AliasID, AliasName: a.AliasName, Child: child}, nil
}

func (a *Alias) Eval() (interface{}, error) { return a.Child.Eval() }

func (a *Alias) Equal(other Expression) bool {
	o, ok := other.(*Alias)
	return ok && o.AliasID == a.AliasID && o.AliasName == a.AliasName && a.Child.Equal(o.Child)
}

// ToAttribute yields the AttributeRef a's consumers should see: same ID,
// name, type and nullability as the alias itself.
func (a *Alias) ToAttribute() *AttributeRef {
	return NewAttributeRefWithID(a.AliasID, a.AliasName, a.DataType(), a.Nullable())
}

func (a *Alias) String() string {
	return fmt.Sprintf("%s AS %s#%d", a.Child, a.AliasName, a.AliasID)
}

// AliasOrigin identifies why the analyzer emitted a GroupingAlias or
// AggregationAlias placeholder.
type AliasOrigin int

const (
	OriginGrouping AliasOrigin = iota
	OriginAggregation
)

// GroupingAlias is an analyzer-emitted placeholder standing in for one of an
// Aggregate's grouping expressions; it behaves exactly like an Alias but is
// tagged so pushdown rules can tell it apart from an ordinary projection
// alias.
type GroupingAlias struct {
	*Alias
}

// NewGroupingAlias wraps child (the original grouping expression) as a
// GroupingAlias with a fresh ID.
func NewGroupingAlias(name string, child Expression) *GroupingAlias {
	return &GroupingAlias{Alias: NewAlias(name, child)}
}

func (g *GroupingAlias) Origin() AliasOrigin { return OriginGrouping }

func (g *GroupingAlias) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("GroupingAlias", 1, len(children))
	}
	return &GroupingAlias{Alias: &Alias{AliasID: g.AliasID, AliasName: g.AliasName, Child: children[0]}}, nil
}

func (g *GroupingAlias) Equal(other Expression) bool {
	o, ok := other.(*GroupingAlias)
	return ok && g.Alias.Equal(o.Alias)
}

// StrictlyTyped is overridden so the result stays a *GroupingAlias rather
// than unwrapping to the embedded *Alias.
func (g *GroupingAlias) StrictlyTyped() (Expression, error) {
	child, err := g.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == g.Child {
		return g, nil
	}
	return &GroupingAlias{Alias: &Alias{AliasID: g.AliasID, AliasName: g.AliasName, Child: child}}, nil
}

// AggregationAlias is the analogous placeholder for an Aggregate's
// aggregate function outputs.
type AggregationAlias struct {
	*Alias
}

// NewAggregationAlias wraps child (the aggregate function call) as an
// AggregationAlias with a fresh ID.
func NewAggregationAlias(name string, child Expression) *AggregationAlias {
	return &AggregationAlias{Alias: NewAlias(name, child)}
}

func (g *AggregationAlias) Origin() AliasOrigin { return OriginAggregation }

func (g *AggregationAlias) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("AggregationAlias", 1, len(children))
	}
	return &AggregationAlias{Alias: &Alias{AliasID: g.AliasID, AliasName: g.AliasName, Child: children[0]}}, nil
}

func (g *AggregationAlias) Equal(other Expression) bool {
	o, ok := other.(*AggregationAlias)
	return ok && g.Alias.Equal(o.Alias)
}

// StrictlyTyped is overridden so the result stays an *AggregationAlias
// rather than unwrapping to the embedded *Alias.
func (g *AggregationAlias) StrictlyTyped() (Expression, error) {
	child, err := g.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == g.Child {
		return g, nil
	}
	return &AggregationAlias{Alias: &Alias{AliasID: g.AliasID, AliasName: g.AliasName, Child: child}}, nil
}
