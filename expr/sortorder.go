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

// SortDirection is Asc or Desc.
type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

func (d SortDirection) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// SortOrder pairs a child expression with its sort direction; it only ever
// appears within a Sort operator's order list.
type SortOrder struct {
	Child     Expression
	Direction SortDirection
}

func NewSortOrder(child Expression, dir SortDirection) *SortOrder {
	return &SortOrder{Child: child, Direction: dir}
}

func (s *SortOrder) Children() []Expression { return []Expression{s.Child} }

func (s *SortOrder) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 1 {
		return nil, ErrChildCount.New("SortOrder", 1, len(children))
	}
	return &SortOrder{Child: children[0], Direction: s.Direction}, nil
}

func (s *SortOrder) DataType() types.Type { return s.Child.DataType() }
func (s *SortOrder) Nullable() bool       { return s.Child.Nullable() }
func (s *SortOrder) Foldable() bool       { return s.Child.Foldable() }
func (s *SortOrder) References() IDSet    { return s.Child.References() }
func (s *SortOrder) Resolved() bool       { return s.Child.Resolved() }

func (s *SortOrder) StrictlyTyped() (Expression, error) {
	child, err := s.Child.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if child == s.Child {
		return s, nil
	}
	return &SortOrder{Child: child, Direction: s.Direction}, nil
}

func (s *SortOrder) Eval() (interface{}, error) { return s.Child.Eval() }

func (s *SortOrder) Equal(other Expression) bool {
	o, ok := other.(*SortOrder)
	return ok && o.Direction == s.Direction && s.Child.Equal(o.Child)
}

func (s *SortOrder) String() string {
	return fmt.Sprintf("%s %s", s.Child, s.Direction)
}
