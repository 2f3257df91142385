// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Chaining operations are free generic functions: Go methods cannot
// introduce type parameters, so the result type R of a pipeline stage
// can only appear on a package-level function (the same reason kont's
// Bind/Map/Then are free functions).
//
// Each call consumes the given future, allocates the downstream state,
// and offers the continuation to the upstream state. If the upstream was
// already ready the continuation is driven now, on the calling side;
// otherwise it parks until the producer fulfills.

// Then pipelines fn over the eventual value of f, returning the future
// of fn's result. A fault in f passes through to the result untouched;
// a non-nil error returned by fn (or a panic, captured as *PanicError)
// becomes the result's fault.
func Then[U, V any](f *Future[U], fn func(U) (V, error)) *Future[V] {
	src := f.take()
	dest := newState[V]()
	chain(src, &mapCont[U, V]{fn: fn, dest: dest})
	return &Future[V]{s: dest}
}

// Bind pipelines a future-returning fn over the eventual value of f,
// collapsing the inner future into the result (monadic flatten): the
// result resolves with whatever the inner future eventually carries.
// Returning a nil or consumed future faults the result with
// ErrInvalidFuture.
func Bind[U, V any](f *Future[U], fn func(U) *Future[V]) *Future[V] {
	src := f.take()
	dest := newState[V]()
	chain(src, &bindCont[U, V]{fn: fn, dest: dest})
	return &Future[V]{s: dest}
}

// Recover pipelines fn over the eventual fault of f; a value passes
// through to the result untouched. A non-nil error returned by fn (or a
// panic) becomes the result's fault.
func Recover[T any](f *Future[T], fn func(error) (T, error)) *Future[T] {
	src := f.take()
	dest := newState[T]()
	chain(src, &recoverCont[T]{fn: fn, dest: dest})
	return &Future[T]{s: dest}
}

// RecoverBind is Recover for a future-returning fn: on a fault the
// result attaches to the inner future produced by fn.
func RecoverBind[T any](f *Future[T], fn func(error) *Future[T]) *Future[T] {
	src := f.take()
	dest := newState[T]()
	chain(src, &recoverBindCont[T]{fn: fn, dest: dest})
	return &Future[T]{s: dest}
}

// chain offers k to src and drives it immediately when src was already
// ready (the consumer side closes the open link).
func chain[U any](src *state[U], k continuation) {
	if ready := src.installSlot(k); ready != nil {
		drive(link{k: ready, src: src})
	}
}
