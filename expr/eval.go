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

import (
	"github.com/spf13/cast"
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrNotANumber is a planning-time folding error: a literal operand of a
// numeric operator did not hold a numeric Go value.
var ErrNotANumber = errors.NewKind("value %v is not a number")

// toFloat64 normalizes the handful of Go numeric kinds our literals carry
// into float64 for constant folding. This is purely a planning-time helper
// for FoldConstants; it is not a row evaluation engine.
func toFloat64(v interface{}) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, ErrNotANumber.New(v)
	}
	return f, nil
}
