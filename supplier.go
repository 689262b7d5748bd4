// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fn

// Supplier represents an operation that takes no arguments and produces a
// result.
type Supplier[R any] func() R

// Const returns a supplier that always returns v.
func Const[R any](v R) Supplier[R] {
	return func() R {
		return v
	}
}
