// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Await is the effect operation for awaiting a future inside a kont
// computation. Perform(Await[T]{Future: f}) suspends until f settles;
// the computation resumes with f's value, and a fault short-circuits
// the run (Advance discards the suspension, Exec returns the error).
type Await[T any] struct {
	kont.Phantom[T]
	Future *Future[T]
}

// awaitDispatcher is the structural interface for await operations.
// dispatchAwait is non-blocking: it returns iox.ErrWouldBlock while the
// awaited future is still pending, leaving the future consumable later.
type awaitDispatcher interface {
	dispatchAwait() (kont.Resumed, error)
}

func (a Await[T]) dispatchAwait() (kont.Resumed, error) {
	v, err := a.Future.Take()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// AwaitBind awaits f and passes its value to fn.
// Fuses Perform(Await[T]{Future: f}) + Bind.
func AwaitBind[T, B any](f *Future[T], fn func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await[T]{Future: f}), fn)
}

// ExprAwait awaits f in the Expr world.
func ExprAwait[T any](f *Future[T]) kont.Expr[T] {
	return kont.ExprPerform(Await[T]{Future: f})
}

// ExprAwaitBind awaits f and passes its value to fn (Expr world).
// Fuses ExprPerform(Await[T]{Future: f}) + ExprBind.
func ExprAwaitBind[T, B any](f *Future[T], fn func(T) kont.Expr[B]) kont.Expr[B] {
	return kont.ExprBind(ExprAwait(f), fn)
}

// Step evaluates a computation until the first await suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](m kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(m)
}

// Advance resolves the suspended await non-blockingly.
//
// While the awaited future is pending, Advance returns iox.ErrWouldBlock
// with the suspension unconsumed; retry after fulfilling the promise. A
// faulted future discards the suspension and surfaces the fault as a
// terminal error. On success the computation advances to the next await
// or to completion.
func Advance[R any](susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	aop, ok := susp.Op().(awaitDispatcher)
	if !ok {
		panic("fut: unhandled effect in Advance")
	}
	v, err := aop.dispatchAwait()
	if err != nil {
		var zero R
		if errors.Is(err, iox.ErrWouldBlock) {
			return zero, susp, err
		}
		susp.Discard()
		return zero, nil, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// futureHandler implements kont.Handler for await effects.
// A fault short-circuits with Left. So does an await on a still-pending
// future: a synchronous run cannot make progress on it.
type futureHandler[R any] struct{}

func (futureHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	aop, ok := op.(awaitDispatcher)
	if !ok {
		panic("fut: unhandled effect in futureHandler")
	}
	v, err := aop.dispatchAwait()
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// Exec runs a Cont-world computation to completion, resolving awaits
// inline. Returns the fault of an awaited future, or iox.ErrWouldBlock
// if an awaited future was still pending (a synchronous run cannot wait;
// use Step and Advance to interleave with producers).
func Exec[R any](m kont.Eff[R]) (R, error) {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](m, func(r R) kont.Either[error, R] {
		return kont.Right[error](r)
	})
	return execResult(kont.Handle(wrapped, futureHandler[R]{}))
}

// ExecExpr runs an Expr-world computation to completion, resolving
// awaits inline. Error semantics match Exec.
func ExecExpr[R any](m kont.Expr[R]) (R, error) {
	wrapped := kont.ExprMap(m, func(r R) kont.Either[error, R] {
		return kont.Right[error](r)
	})
	return execResult(kont.HandleExpr(wrapped, futureHandler[R]{}))
}

func execResult[R any](e kont.Either[error, R]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, err
	}
	v, _ := e.GetRight()
	return v, nil
}
