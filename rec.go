// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import "code.hybscloud.com/kont"

// Loop runs a recursive future pipeline. step returns a future of
// Left(nextState) to continue or Right(result) to finish.
//
// Synchronously-ready steps are consumed in place, so a loop over ready
// futures costs O(1) stack regardless of iteration count. Only a pending
// step chains through Bind, and the loop resumes when its producer
// fulfills it.
func Loop[S, A any](initial S, step func(S) *Future[kont.Either[S, A]]) *Future[A] {
	s := initial
	for {
		f, err := protectFuture(step, s)
		if err != nil {
			return Faulted[A](err)
		}
		if !f.Valid() {
			return Faulted[A](ErrInvalidFuture)
		}
		if !f.Ready() {
			return Bind(f, func(e kont.Either[S, A]) *Future[A] {
				if left, ok := e.GetLeft(); ok {
					return Loop(left, step)
				}
				right, _ := e.GetRight()
				return Ready(right)
			})
		}
		e, err := f.Take()
		if err != nil {
			return Faulted[A](err)
		}
		left, ok := e.GetLeft()
		if !ok {
			right, _ := e.GetRight()
			return Ready(right)
		}
		s = left
	}
}
