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

import "github.com/quilldb/quill/expr"

// ReduceNegations applies De Morgan plus comparison-flip identities at a
// single node, one level at a time (CNFConversion already performs the
// full recursive negation-normal-form push; this rule additionally
// handles the identities CNFConversion doesn't, and keeps firing on
// whatever shape later rules expose): ¬¬x=x; ¬(a op b)=a op.Negated() b;
// If(¬c, y, n)=If(c, n, y); ¬IsNull(x)=IsNotNull(x); a∧¬a=FALSE and
// a∨¬a=TRUE when the non-negated operand matches structurally.
var ReduceNegations = exprRule("ReduceNegations", func(e expr.Expression) (expr.Expression, bool, error) {
	switch v := e.(type) {
	case *expr.Not:
		switch child := v.Child.(type) {
		case *expr.Not:
			return child.Child, true, nil
		case *expr.Comparison:
			return &expr.Comparison{Op: child.Op.Negated(), Left: child.Left, Right: child.Right}, true, nil
		case *expr.IsNull:
			return &expr.IsNull{Child: child.Child, Negated: !child.Negated}, true, nil
		default:
			return e, false, nil
		}
	case *expr.If:
		if not, ok := v.Cond.(*expr.Not); ok {
			return expr.NewIf(not.Child, v.No, v.Yes), true, nil
		}
		return e, false, nil
	case *expr.Logical:
		if isStructuralNegation(v.Left, v.Right) {
			if v.Op == expr.OpAnd {
				return expr.NewLiteral(false, v.DataType()), true, nil
			}
			return expr.NewLiteral(true, v.DataType()), true, nil
		}
		return e, false, nil
	default:
		return e, false, nil
	}
})

// isStructuralNegation reports whether one of l, r is Not of the other,
// by structural equality of the negated operand.
func isStructuralNegation(l, r expr.Expression) bool {
	if n, ok := l.(*expr.Not); ok && n.Child.Equal(r) {
		return true
	}
	if n, ok := r.(*expr.Not); ok && n.Child.Equal(l) {
		return true
	}
	return false
}
