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

package plan

import errors "gopkg.in/src-d/go-errors.v1"

// ErrChildCount is a programmer error: WithChildren was called with the
// wrong number of replacement children for the node's fixed arity.
var ErrChildCount = errors.NewKind("%s expects %d children, got %d")

// ErrExprCount is the WithExpressions analogue of ErrChildCount.
var ErrExprCount = errors.NewKind("%s expects %d expressions, got %d")

// ErrEmptyProjectList is an invariant breach: Project requires a non-empty
// projection list.
var ErrEmptyProjectList = errors.NewKind("project list must not be empty")

// ErrMismatchedBranches is a set-operator (Union/Intersect/Except) strict
// typing failure: branches don't have the same number of columns.
var ErrMismatchedBranches = errors.NewKind("%s branches have differing column counts: %d vs %d")

// ErrMismatchedColumnName is a set-operator strict typing failure: a
// column pair doesn't line up by name across branches.
var ErrMismatchedColumnName = errors.NewKind("%s column %d name mismatch: %q vs %q")

// ErrNotFoldableLimit is Limit's strict typing failure: the limit
// expression must be a foldable integral literal.
var ErrNotFoldableLimit = errors.NewKind("LIMIT expression must be a foldable integral literal, got %s")
