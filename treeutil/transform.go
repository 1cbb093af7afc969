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

// Package treeutil is the generic tree-rewrite framework shared by the
// expression and logical plan algebras. Every node type satisfying
// Rewritable gets TransformDown/TransformUp/Collect/Exists/ForAll/Size/
// Depth for free, with no reflection involved.
package treeutil

// Rewritable is satisfied by any node in a tree-shaped value: it can report
// its direct children and rebuild itself with replacement children.
// expr.Expression and plan.LogicalPlan both implement this shape.
type Rewritable[T any] interface {
	Children() []T
	WithChildren(children ...T) (T, error)
}

// Rule is a partial function from a node to a (possibly) rewritten node. A
// rule that does not match simply returns its input unchanged with changed
// set to false; rule application itself never fails except for a genuine
// invariant violation.
type Rule[T any] func(T) (node T, changed bool, err error)

// TransformDown applies rule to n, then recurses into the (possibly
// rewritten) node's children top-down. If nothing in the subtree changed,
// the original n is returned so callers can detect convergence by identity.
func TransformDown[T Rewritable[T]](n T, rule Rule[T]) (T, error) {
	out, _, err := transformDown(n, rule)
	return out, err
}

func transformDown[T Rewritable[T]](n T, rule Rule[T]) (T, bool, error) {
	cur, changed, err := rule(n)
	if err != nil {
		var zero T
		return zero, false, err
	}

	children := cur.Children()
	if len(children) == 0 {
		return cur, changed, nil
	}

	newChildren := make([]T, len(children))
	childrenChanged := false
	for i, c := range children {
		nc, cchanged, err := transformDown(c, rule)
		if err != nil {
			var zero T
			return zero, false, err
		}
		newChildren[i] = nc
		if cchanged {
			childrenChanged = true
		}
	}

	if !childrenChanged {
		return cur, changed, nil
	}
	next, err := cur.WithChildren(newChildren...)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return next, true, nil
}

// TransformUp recurses into children first, then applies rule to the
// (possibly rewritten) node. Like TransformDown, an unchanged subtree is
// returned by identity.
func TransformUp[T Rewritable[T]](n T, rule Rule[T]) (T, error) {
	out, _, err := transformUp(n, rule)
	return out, err
}

func transformUp[T Rewritable[T]](n T, rule Rule[T]) (T, bool, error) {
	children := n.Children()
	var cur T = n
	childrenChanged := false

	if len(children) > 0 {
		newChildren := make([]T, len(children))
		for i, c := range children {
			nc, cchanged, err := transformUp(c, rule)
			if err != nil {
				var zero T
				return zero, false, err
			}
			newChildren[i] = nc
			if cchanged {
				childrenChanged = true
			}
		}
		if childrenChanged {
			rebuilt, err := n.WithChildren(newChildren...)
			if err != nil {
				var zero T
				return zero, false, err
			}
			cur = rebuilt
		}
	}

	out, changed, err := rule(cur)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return out, changed || childrenChanged, nil
}
