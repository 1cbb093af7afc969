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

import errors "gopkg.in/src-d/go-errors.v1"

// ErrChildCount is a programmer error: WithChildren was called with the
// wrong number of replacement children for the node's fixed arity.
var ErrChildCount = errors.NewKind("%s expects %d children, got %d")

// ErrUnresolvedExpression is raised when an operation that requires a
// resolved expression (DataType, Eval) is invoked on one that isn't.
var ErrUnresolvedExpression = errors.NewKind("expression %s is not resolved")
