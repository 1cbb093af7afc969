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

package optimizer

import (
	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/types"
)

// ReduceAliases collapses a chain of aliases: Alias(Alias(x, _), n)
// becomes Alias(x, n) — the outer alias keeps its own id and name, the
// inner alias's name is discarded since nothing can reference it (the
// inner alias's id, if referenced elsewhere, would already have been
// resolved against the inner Alias node before this rule fires; this
// mirrors MergeProjects' own inlining-by-id discipline).
var ReduceAliases = exprRule("ReduceAliases", func(e expr.Expression) (expr.Expression, bool, error) {
	outer, ok := e.(*expr.Alias)
	if !ok {
		return e, false, nil
	}
	inner, ok := outer.Child.(*expr.Alias)
	if !ok {
		return e, false, nil
	}
	return expr.NewAliasWithID(outer.AliasID, outer.AliasName, inner.Child), true, nil
})

// ReduceCasts drops a Cast whose child's type already matches the target,
// and collapses Cast(Cast(e, u), t) to Cast(e, t) when that collapse is
// safe. Per the open question on double-cast collapse, the conservative
// resolution (see DESIGN.md) only performs the collapse when u is at
// least as wide as t on the numeric lattice — so the outer cast can only
// ever narrow or hold steady relative to what the inner cast already
// produced, never silently skip a wider intermediate than intended.
var ReduceCasts = exprRule("ReduceCasts", func(e expr.Expression) (expr.Expression, bool, error) {
	c, ok := e.(*expr.Cast)
	if !ok {
		return e, false, nil
	}
	if c.Child.DataType().Equal(c.Target) {
		return c.Child, true, nil
	}
	inner, ok := c.Child.(*expr.Cast)
	if !ok {
		return e, false, nil
	}
	u := inner.Target
	if u.Equal(c.Target) || types.NarrowerThan(c.Target, u) {
		return expr.NewCast(inner.Child, c.Target), true, nil
	}
	return e, false, nil
})
