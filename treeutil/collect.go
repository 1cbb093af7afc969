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

package treeutil

// Collect walks n and every descendant, applying pf to each node and
// accumulating the results for which pf reports a match. Traversal order is
// pre-order (self before children).
func Collect[T Rewritable[T], R any](n T, pf func(T) (R, bool)) []R {
	var out []R
	var walk func(T)
	walk = func(node T) {
		if r, ok := pf(node); ok {
			out = append(out, r)
		}
		for _, c := range node.Children() {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Exists reports whether n or any descendant satisfies pred.
func Exists[T Rewritable[T]](n T, pred func(T) bool) bool {
	if pred(n) {
		return true
	}
	for _, c := range n.Children() {
		if Exists(c, pred) {
			return true
		}
	}
	return false
}

// ForAll reports whether n and every descendant satisfies pred.
func ForAll[T Rewritable[T]](n T, pred func(T) bool) bool {
	if !pred(n) {
		return false
	}
	for _, c := range n.Children() {
		if !ForAll(c, pred) {
			return false
		}
	}
	return true
}

// Size returns 1 + the sum of the sizes of n's children.
func Size[T Rewritable[T]](n T) int {
	size := 1
	for _, c := range n.Children() {
		size += Size(c)
	}
	return size
}

// Depth returns 1 + the maximum depth among n's children, or 1 for a leaf.
func Depth[T Rewritable[T]](n T) int {
	children := n.Children()
	if len(children) == 0 {
		return 1
	}
	max := 0
	for _, c := range children {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return 1 + max
}
