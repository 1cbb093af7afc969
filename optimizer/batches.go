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

// DefaultBatches returns the standard ruleset as a single fixed-point
// batch, in the order the rules are meant to be tried: constant and
// logical folding first so later structural rules see simplified
// expressions, CNF conversion and alias/cast cleanup next, then the
// merge and negation rules, and finally the pushdown rules that relocate
// filters, projects, and limits closer to the leaves.
func DefaultBatches() []Batch {
	return []Batch{
		{
			Name:      "default",
			Condition: FixedPoint,
			Rules: []Rule{
				FoldConstants,
				FoldConstantFilters,
				FoldLogicalPredicates,
				CNFConversion,
				EliminateCommonPredicates,
				ReduceAliases,
				ReduceCasts,
				MergeFilters,
				ReduceLimits,
				ReduceNegations,
				MergeProjects,
				EliminateSubqueries,
				PushFiltersThroughProjects,
				PushFiltersThroughJoins,
				PushFiltersThroughAggregates,
				PushProjectsThroughLimits,
				PushLimitsThroughUnions,
			},
		},
	}
}
