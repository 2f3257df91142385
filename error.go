// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"errors"
	"fmt"
)

// ErrInvalidFuture reports an operation on a consumed or unlinked future.
// Chaining calls panic with it (affine-protocol violation); Future.Take
// returns it.
var ErrInvalidFuture = errors.New("fut: invalid future")

// ErrAlreadyFulfilled reports fulfilling a consumed promise.
// Promise.Fulfill and Promise.Fail panic with it; the Try variants
// return false instead.
var ErrAlreadyFulfilled = errors.New("fut: promise already fulfilled")

// ErrBrokenPromise is the data-plane fault injected when a promise is
// discarded before fulfillment. It flows through the chain like any other
// fault, so Recover stages can handle it.
var ErrBrokenPromise = errors.New("fut: broken promise")

// ErrPipeClosed reports Send on a closed pipe, and is the fault carried
// by futures that can no longer be settled because the pipe closed.
var ErrPipeClosed = errors.New("fut: pipe closed")

// PanicError transports a panic raised inside a pipelined function through
// the fault channel of the chain.
type PanicError struct {
	value any
}

// Value returns the original panic value.
func (e *PanicError) Value() any { return e.value }

func (e *PanicError) Error() string {
	return fmt.Sprintf("fut: continuation panicked: %v", e.value)
}

// Unwrap exposes the panic value to errors.Is/errors.As when it is itself
// an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// protect invokes a pipelined function, converting a panic into a
// *PanicError fault. Every user call made by a continuation goes through
// protect or protectFuture, so the drive loop itself never unwinds.
func protect[U, V any](fn func(U) (V, error), u U) (v V, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{value: p}
		}
	}()
	return fn(u)
}

// protectFuture is protect for future-returning functions (Bind, RecoverBind).
func protectFuture[U, V any](fn func(U) *Future[V], u U) (f *Future[V], err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{value: p}
		}
	}()
	return fn(u), nil
}
