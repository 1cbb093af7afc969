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

// Package plan implements the logical plan algebra: relations and
// operators forming an immutable tree, each computing its output schema
// and a strictly-typed form. A physical execution engine, catalog, and SQL
// parser are external collaborators; this package only represents and
// rewrites resolved logical plans.
package plan

import (
	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/treeutil"
)

// LogicalPlan is an immutable node in a logical query plan tree.
type LogicalPlan interface {
	// Children returns the plan's direct child plans.
	Children() []LogicalPlan

	// WithChildren returns a copy of the plan with its children replaced;
	// len(children) must equal len(Children()).
	WithChildren(children ...LogicalPlan) (LogicalPlan, error)

	// Output is the plan's ordered output schema.
	Output() []*expr.AttributeRef

	// Expressions returns the expressions the plan itself owns directly
	// (a Filter's condition, a Project's list, ...), not those of its
	// children. Used by expression-level rewrite passes.
	Expressions() []expr.Expression

	// WithExpressions returns a copy of the plan with its own expressions
	// replaced, in the same order Expressions() reported them.
	WithExpressions(exprs ...expr.Expression) (LogicalPlan, error)

	// Resolved reports whether the plan and every descendant, and every
	// expression it owns, is resolved.
	Resolved() bool

	// StrictlyTyped returns a version of the plan with implicit casts
	// inserted where needed, or a TypeCheck failure.
	StrictlyTyped() (LogicalPlan, error)

	// Equal reports structural equality.
	Equal(other LogicalPlan) bool

	String() string
}

// MultiInstanceRelation is implemented by relations that can be
// re-freshened with new attribute IDs, supporting self-joins without an
// attribute-ID collision between the two sides.
type MultiInstanceRelation interface {
	LogicalPlan
	// NewInstance returns a structurally identical plan whose output
	// attributes (and, recursively, any nested multi-instance relations)
	// carry freshly minted Expression IDs.
	NewInstance() LogicalPlan
}

// TreeString renders p and its descendants as a box-drawing tree, one
// node label per line.
func TreeString(p LogicalPlan) string {
	return treeutil.RenderTree(p, func(n LogicalPlan) string { return n.String() })
}

// childrenResolved reports whether every plan in children is resolved.
func childrenResolved(children ...LogicalPlan) bool {
	for _, c := range children {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

// expressionsResolved reports whether every expression in exprs is resolved.
func expressionsResolved(exprs ...expr.Expression) bool {
	for _, e := range exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// SameOutput reports whether a and b name the same attributes, in the same
// order, by ID.
func SameOutput(a, b []*expr.AttributeRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID() != b[i].ID() {
			return false
		}
	}
	return true
}

// outputIDSet builds the reference set of a plan's output attributes, used
// by the deduplication invariant check between binary operator children.
func outputIDSet(output []*expr.AttributeRef) expr.IDSet {
	ids := make([]int64, len(output))
	for i, a := range output {
		ids[i] = a.ID()
	}
	return expr.NewIDSet(ids...)
}

// DisjointOutputs reports whether l and r's output attribute ID sets are
// disjoint, the invariant binary operators must hold before construction.
func DisjointOutputs(l, r []*expr.AttributeRef) bool {
	lSet := outputIDSet(l)
	for _, a := range r {
		if lSet.Contains(a.ID()) {
			return false
		}
	}
	return true
}
