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

	"github.com/quilldb/quill/qerr"
	"github.com/quilldb/quill/types"
)

// If is a conditional expression: cond must widen to Boolean, and the
// result type is the widest of Yes and No. A null condition yields null.
type If struct {
	Cond, Yes, No Expression
}

func NewIf(cond, yes, no Expression) *If { return &If{Cond: cond, Yes: yes, No: no} }

func (i *If) Children() []Expression { return []Expression{i.Cond, i.Yes, i.No} }

func (i *If) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 3 {
		return nil, ErrChildCount.New("If", 3, len(children))
	}
	return &If{Cond: children[0], Yes: children[1], No: children[2]}, nil
}

func (i *If) DataType() types.Type {
	t, err := types.Widest(i.Yes.DataType(), i.No.DataType())
	if err != nil {
		return i.Yes.DataType()
	}
	return t
}

func (i *If) Nullable() bool       { return i.Cond.Nullable() || childrenNullable(i.Yes, i.No) }
func (i *If) Foldable() bool       { return childrenFoldable(i.Cond, i.Yes, i.No) }
func (i *If) References() IDSet    { return unionReferences(i.Cond, i.Yes, i.No) }
func (i *If) Resolved() bool       { return childrenResolved(i.Cond, i.Yes, i.No) }

func (i *If) StrictlyTyped() (Expression, error) {
	cond, err := i.Cond.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	if !cond.DataType().Equal(types.BooleanType) {
		return nil, qerr.ErrTypeMismatch.New("If condition", "BOOLEAN", cond, cond.DataType())
	}
	yes, err := i.Yes.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	no, err := i.No.StrictlyTyped()
	if err != nil {
		return nil, err
	}
	widest, err := types.Widest(yes.DataType(), no.DataType())
	if err != nil {
		return nil, qerr.ErrTypeMismatch.New("If branches", "common type", no, no.DataType())
	}
	yes, no = PromoteDataType(yes, widest), PromoteDataType(no, widest)
	if cond == i.Cond && yes == i.Yes && no == i.No {
		return i, nil
	}
	return &If{Cond: cond, Yes: yes, No: no}, nil
}

func (i *If) Eval() (interface{}, error) {
	cv, err := i.Cond.Eval()
	if err != nil {
		return nil, err
	}
	if cv == nil {
		return nil, nil
	}
	if cv.(bool) {
		return i.Yes.Eval()
	}
	return i.No.Eval()
}

func (i *If) Equal(other Expression) bool {
	o, ok := other.(*If)
	return ok && i.Cond.Equal(o.Cond) && i.Yes.Equal(o.Yes) && i.No.Equal(o.No)
}

func (i *If) String() string {
	return fmt.Sprintf("IF(%s, %s, %s)", i.Cond, i.Yes, i.No)
}

// Coalesce returns its first non-null argument, or null if all are null.
type Coalesce struct {
	Args []Expression
}

func NewCoalesce(args ...Expression) *Coalesce { return &Coalesce{Args: args} }

func (c *Coalesce) Children() []Expression { return c.Args }

func (c *Coalesce) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != len(c.Args) {
		return nil, ErrChildCount.New("Coalesce", len(c.Args), len(children))
	}
	return &Coalesce{Args: children}, nil
}

func (c *Coalesce) DataType() types.Type {
	if len(c.Args) == 0 {
		return types.StringType
	}
	t := c.Args[0].DataType()
	for _, a := range c.Args[1:] {
		if widened, err := types.Widest(t, a.DataType()); err == nil {
			t = widened
		}
	}
	return t
}

func (c *Coalesce) Nullable() bool {
	for _, a := range c.Args {
		if !a.Nullable() {
			return false
		}
	}
	return true
}

func (c *Coalesce) Foldable() bool    { return childrenFoldable(c.Args...) }
func (c *Coalesce) References() IDSet { return unionReferences(c.Args...) }
func (c *Coalesce) Resolved() bool    { return childrenResolved(c.Args...) }

func (c *Coalesce) StrictlyTyped() (Expression, error) {
	newArgs := make([]Expression, len(c.Args))
	changed := false
	for i, a := range c.Args {
		na, err := a.StrictlyTyped()
		if err != nil {
			return nil, err
		}
		newArgs[i] = na
		if na != a {
			changed = true
		}
	}
	if !changed {
		return c, nil
	}
	return &Coalesce{Args: newArgs}, nil
}

func (c *Coalesce) Eval() (interface{}, error) {
	for _, a := range c.Args {
		v, err := a.Eval()
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}

func (c *Coalesce) Equal(other Expression) bool {
	o, ok := other.(*Coalesce)
	if !ok || len(o.Args) != len(c.Args) {
		return false
	}
	for i, a := range c.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (c *Coalesce) String() string {
	s := "COALESCE("
	for i, a := range c.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}
