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

package predicate

import "github.com/quilldb/quill/expr"

// OutputIDSet builds the reference set of an attribute list's IDs, used to
// test whether a predicate's References() is a subset of one side's
// output — the reference-set semantics that make alias renaming
// transparent to pushdown, since IDs (not names) are compared.
func OutputIDSet(output []*expr.AttributeRef) expr.IDSet {
	ids := make([]int64, len(output))
	for i, a := range output {
		ids[i] = a.ID()
	}
	return expr.NewIDSet(ids...)
}

// Partition splits conjuncts into three groups by whether their
// References() set is a subset of left, a subset of right, or neither
// (straddling both sides, so it cannot be pushed to either alone). Used by
// PushFiltersThroughJoins.
func Partition(conjuncts []expr.Expression, left, right expr.IDSet) (onlyLeft, onlyRight, remainder []expr.Expression) {
	for _, c := range conjuncts {
		refs := c.References()
		switch {
		case refs.SubsetOf(left):
			onlyLeft = append(onlyLeft, c)
		case refs.SubsetOf(right):
			onlyRight = append(onlyRight, c)
		default:
			remainder = append(remainder, c)
		}
	}
	return
}
