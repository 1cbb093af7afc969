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

// Package qerr declares the typed error kinds shared by the expression and
// logical plan packages: a small number of package-level go-errors.v1
// Kinds reused across call sites rather than ad hoc fmt.Errorf values.
package qerr

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrTypeMismatch is returned by Expression.StrictlyTyped when an
	// operand's type cannot be reconciled with what the operator expects.
	ErrTypeMismatch = errors.NewKind("type mismatch: %s expected %s, found %s of type %s")

	// ErrTypeCheck is returned by LogicalPlan.StrictlyTyped for plan-level
	// typing failures (e.g. a non-Boolean filter condition).
	ErrTypeCheck = errors.NewKind("type check failed: %s")

	// ErrUnresolvedPlan is raised when an operation that requires a
	// resolved plan (such as optimization) is invoked on one that isn't.
	ErrUnresolvedPlan = errors.NewKind("invalid operation %s on unresolved plan %s")

	// ErrInvalidArgument signals an invariant breach that is a programmer
	// error, not a recoverable type error (e.g. an empty project list).
	ErrInvalidArgument = errors.NewKind("invalid argument: %s")
)
