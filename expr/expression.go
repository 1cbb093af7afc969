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

// Package expr is the expression algebra: literals, attribute references,
// arithmetic, comparisons, logical predicates, casts, and the analyzer
// placeholders the aggregate planner emits. Every Expression is an
// immutable tree node with structural equality and a strict-typing pass
// that inserts implicit widening casts.
package expr

import "github.com/quilldb/quill/types"

// Expression is an immutable node in an expression tree. Every variant in
// this package implements it.
type Expression interface {
	// Children returns the expression's direct child expressions, in
	// evaluation order. Leaf expressions (Literal, AttributeRef) return nil.
	Children() []Expression

	// WithChildren returns a copy of the expression with its children
	// replaced; len(children) must equal len(Children()).
	WithChildren(children ...Expression) (Expression, error)

	// DataType is the expression's result type.
	DataType() types.Type

	// Nullable reports whether the expression can evaluate to null.
	Nullable() bool

	// Foldable reports whether the expression is evaluable at plan time:
	// true iff every child is foldable and the operator is pure. Foldability
	// is hereditary and excludes any attribute reference.
	Foldable() bool

	// References returns the set of attribute IDs the expression reads,
	// transitively through its children.
	References() IDSet

	// Resolved reports whether the expression and every descendant is
	// resolved (every attribute reference binds to a concrete ID and type).
	Resolved() bool

	// StrictlyTyped returns a version of the expression with any required
	// implicit casts inserted, or a TypeMismatch failure (see qerr) if no
	// such version exists.
	StrictlyTyped() (Expression, error)

	// Eval evaluates a foldable expression to a constant Go value. It must
	// only be called on expressions for which Foldable() is true; it is a
	// planning-time constant-folding helper, not a row execution engine.
	Eval() (interface{}, error)

	// Equal reports structural equality.
	Equal(other Expression) bool

	String() string
}

// Identifiable is implemented by expressions that carry a globally unique
// Expression ID: attribute references, aliases, and the analyzer's
// grouping/aggregation placeholders. ID-based equality (sameByID) is what
// lets the optimizer track a column through renames and casts.
type Identifiable interface {
	Expression
	ID() int64
}

// Pure reports whether e is deterministic and side-effect-free. Every
// expression variant in this package is pure; the hook exists so a future
// non-deterministic function expression (RAND(), NOW()) can opt out without
// changing the Foldable/pushdown contract of everything else.
type Pure interface {
	Pure() bool
}

// IsPure reports whether e is pure, defaulting to true for expressions that
// don't implement Pure explicitly.
func IsPure(e Expression) bool {
	if p, ok := e.(Pure); ok {
		return p.Pure()
	}
	return true
}

// childrenFoldable reports whether every expression in children is
// foldable; used by each variant's Foldable() implementation.
func childrenFoldable(children ...Expression) bool {
	for _, c := range children {
		if !c.Foldable() {
			return false
		}
	}
	return true
}

// childrenNullable reports whether any expression in children is nullable.
func childrenNullable(children ...Expression) bool {
	for _, c := range children {
		if c.Nullable() {
			return true
		}
	}
	return false
}

// childrenResolved reports whether every expression in children is resolved.
func childrenResolved(children ...Expression) bool {
	for _, c := range children {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

// unionReferences merges the reference sets of children.
func unionReferences(children ...Expression) IDSet {
	out := IDSet{}
	for _, c := range children {
		out = out.Union(c.References())
	}
	return out
}

// sameByID reports whether a and b are both Identifiable and share an ID,
// the referential identity check that survives renaming.
func sameByID(a, b Expression) bool {
	ia, ok := a.(Identifiable)
	if !ok {
		return false
	}
	ib, ok := b.(Identifiable)
	if !ok {
		return false
	}
	return ia.ID() == ib.ID()
}
