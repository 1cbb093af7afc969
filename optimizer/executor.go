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

// Package optimizer implements the rules executor and the concrete
// rewrite ruleset: batches of pure plan-rewrite rules run either once or
// to a fixed point over a resolved logical plan.
package optimizer

import (
	"github.com/sirupsen/logrus"

	"github.com/quilldb/quill/expr"
	"github.com/quilldb/quill/plan"
	"github.com/quilldb/quill/qerr"
	"github.com/quilldb/quill/treeutil"
)

// EndCondition controls when a Batch stops iterating.
type EndCondition int

const (
	// Once applies every rule in the batch exactly one pass.
	Once EndCondition = iota
	// FixedPoint repeats passes until convergence (no rule in the batch
	// changes the plan) or MaxIterations is reached.
	FixedPoint
)

// DefaultMaxIterations is the iteration cap a FixedPoint batch uses when
// it does not specify its own.
const DefaultMaxIterations = 100

// Rule is a single named rewrite: a function from a plan node to a
// (possibly) rewritten node. Apply must never fail for a pattern that
// doesn't match — it simply returns its input with changed=false. Rules
// are applied bottom-up (treeutil.TransformUp) across the whole tree, so
// a rule only needs to describe its local pattern match.
type Rule struct {
	Name  string
	Apply func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error)
}

// Batch is an ordered list of rules sharing one end condition.
type Batch struct {
	Name          string
	Condition     EndCondition
	MaxIterations int
	Rules         []Rule
}

// Executor runs an ordered list of batches over a resolved logical plan.
type Executor struct {
	Batches []Batch
	Logger  *logrus.Logger
}

// NewExecutor builds an Executor over the given batches, using logrus's
// standard logger for the iteration-cap diagnostic.
func NewExecutor(batches ...Batch) *Executor {
	return &Executor{Batches: batches, Logger: logrus.StandardLogger()}
}

// Optimize asserts p is resolved, then runs every batch in declaration
// order, threading the rewritten plan from one batch into the next.
func (e *Executor) Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	if !p.Resolved() {
		return nil, qerr.ErrUnresolvedPlan.New("optimize", p)
	}
	cur := p
	for _, batch := range e.Batches {
		next, err := e.runBatch(batch, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// runBatch repeatedly applies batch's rules, in order, to cur. After each
// full pass it compares the result to the pre-pass plan by sameAs
// (reference equality, since every plan/expression variant is allocated
// behind a pointer and an unchanged rewrite always returns the original
// instance); on FixedPoint, convergence or the iteration cap ends the
// loop, capping emits a diagnostic rather than an error.
func (e *Executor) runBatch(batch Batch, cur plan.LogicalPlan) (plan.LogicalPlan, error) {
	if batch.Condition == Once {
		next := cur
		for _, rule := range batch.Rules {
			rewritten, err := treeutil.TransformUp(next, rule.Apply)
			if err != nil {
				return nil, err
			}
			next = rewritten
		}
		return next, nil
	}

	maxIter := batch.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	iterations := 0
	for ; iterations < maxIter; iterations++ {
		next := cur
		for _, rule := range batch.Rules {
			rewritten, err := treeutil.TransformUp(next, rule.Apply)
			if err != nil {
				return nil, err
			}
			next = rewritten
		}
		if sameAs(next, cur) {
			return next, nil
		}
		cur = next
	}

	e.Logger.WithFields(logrus.Fields{
		"batch":      batch.Name,
		"iterations": iterations,
	}).Warn("optimizer batch reached iteration cap before converging")
	return cur, nil
}

// sameAs is the plan-level identity check: every LogicalPlan variant in
// this module is allocated behind a pointer, so interface equality here
// is a safe, panic-free reference comparison (never a deep struct ==).
func sameAs(a, b plan.LogicalPlan) bool { return a == b }

// exprRule wraps an expression-level rewrite rule as a plan-level Rule:
// it applies exprRule bottom-up to every expression a plan node owns
// directly (Expressions()), substituting the rewritten list back via
// WithExpressions. Combined with the executor's own TransformUp over the
// plan tree, this reaches every expression at every plan node exactly
// once per pass.
func exprRule(name string, rule treeutil.Rule[expr.Expression]) Rule {
	return Rule{
		Name: name,
		Apply: func(p plan.LogicalPlan) (plan.LogicalPlan, bool, error) {
			exprs := p.Expressions()
			if len(exprs) == 0 {
				return p, false, nil
			}
			newExprs := make([]expr.Expression, len(exprs))
			changed := false
			for i, e := range exprs {
				if e == nil {
					newExprs[i] = nil
					continue
				}
				ne, err := treeutil.TransformUp(e, rule)
				if err != nil {
					return nil, false, err
				}
				newExprs[i] = ne
				if ne != e {
					changed = true
				}
			}
			if !changed {
				return p, false, nil
			}
			next, err := p.WithExpressions(newExprs...)
			if err != nil {
				return nil, false, err
			}
			return next, true, nil
		},
	}
}
