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

// AttributeRef is a leaf expression naming one column of a plan's output by
// ID. Equality by ID (sameByID) is the referential check that survives
// renaming and lets pushdown rules track a column through aliasing.
type AttributeRef struct {
	AttrID       int64
	AttrName     string
	AttrType     types.Type
	AttrNullable bool
	// Qualifier is the originating table/subquery alias, if any. Stripped
	// by EliminateSubqueries.
	Qualifier string
}

// NewAttributeRef builds an AttributeRef with a fresh Expression ID.
func NewAttributeRef(name string, t types.Type, nullable bool) *AttributeRef {
	return &AttributeRef{AttrID: NextID(), AttrName: name, AttrType: t, AttrNullable: nullable}
}

// NewAttributeRefWithID builds an AttributeRef carrying a caller-specified
// ID, used when re-binding an existing attribute (e.g. toAttribute on an
// Alias).
func NewAttributeRefWithID(id int64, name string, t types.Type, nullable bool) *AttributeRef {
	return &AttributeRef{AttrID: id, AttrName: name, AttrType: t, AttrNullable: nullable}
}

func (a *AttributeRef) ID() int64   { return a.AttrID }
func (a *AttributeRef) Name() string { return a.AttrName }

func (a *AttributeRef) Children() []Expression { return nil }

func (a *AttributeRef) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, ErrChildCount.New("AttributeRef", 0, len(children))
	}
	return a, nil
}

func (a *AttributeRef) DataType() types.Type { return a.AttrType }
func (a *AttributeRef) Nullable() bool       { return a.AttrNullable }
func (a *AttributeRef) Foldable() bool       { return false }
func (a *AttributeRef) References() IDSet    { return NewIDSet(a.AttrID) }
func (a *AttributeRef) Resolved() bool       { return a.AttrType != nil }

func (a *AttributeRef) StrictlyTyped() (Expression, error) { return a, nil }

func (a *AttributeRef) Eval() (interface{}, error) {
	return nil, ErrUnresolvedExpression.New(a.String())
}

func (a *AttributeRef) Equal(other Expression) bool {
	o, ok := other.(*AttributeRef)
	return ok && o.AttrID == a.AttrID
}

// WithQualifier returns a copy of a with Qualifier set, used when binding
// a plan output to a Subquery alias and reversed by EliminateSubqueries.
func (a *AttributeRef) WithQualifier(qualifier string) *AttributeRef {
	cp := *a
	cp.Qualifier = qualifier
	return &cp
}

// WithNullable returns a copy of a with Nullable forced, used by outer join
// output computation.
func (a *AttributeRef) WithNullable(nullable bool) *AttributeRef {
	if a.AttrNullable == nullable {
		return a
	}
	cp := *a
	cp.AttrNullable = nullable
	return &cp
}

func (a *AttributeRef) String() string {
	if a.Qualifier != "" {
		return fmt.Sprintf("%s.%s#%d", a.Qualifier, a.AttrName, a.AttrID)
	}
	return fmt.Sprintf("%s#%d", a.AttrName, a.AttrID)
}
