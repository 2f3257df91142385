// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Promise is the producer-side handle of a shared state cell. A promise
// is affine: Fulfill, Fail, and Discard each consume the handle. The
// cell is single-assignment, so a second resolution attempt is an
// affine-protocol violation and panics with ErrAlreadyFulfilled; the Try
// variants return false instead.
//
// A promise that goes out of use without fulfillment must be released
// with Discard so that any attached continuation observes the
// broken-promise fault.
type Promise[T any] struct {
	s *state[T]
}

// Valid reports whether the handle still references its state cell.
func (p *Promise[T]) Valid() bool {
	return p != nil && p.s != nil
}

// Serial returns the serial number of the shared state, or 0 for a
// consumed handle.
func (p *Promise[T]) Serial() Serial {
	if p == nil || p.s == nil {
		return 0
	}
	return p.s.serial
}

// Fulfill writes the value into the cell, drives any attached
// continuation, and consumes the handle. Panics with ErrAlreadyFulfilled
// on a consumed promise.
func (p *Promise[T]) Fulfill(v T) {
	s := p.take()
	s.cell.setValue(v)
	drive(link{k: s.takeSlot(), src: s})
}

// Fail writes the fault into the cell, drives any attached continuation,
// and consumes the handle. Panics with ErrAlreadyFulfilled on a consumed
// promise.
func (p *Promise[T]) Fail(err error) {
	s := p.take()
	s.cell.setFault(err)
	drive(link{k: s.takeSlot(), src: s})
}

// TryFulfill is the non-panicking Fulfill. Reports whether the handle
// was still valid.
func (p *Promise[T]) TryFulfill(v T) bool {
	if p == nil || p.s == nil {
		return false
	}
	p.Fulfill(v)
	return true
}

// TryFail is the non-panicking Fail. Reports whether the handle was
// still valid.
func (p *Promise[T]) TryFail(err error) bool {
	if p == nil || p.s == nil {
		return false
	}
	p.Fail(err)
	return true
}

// Discard drops the promise without fulfilling it, injecting the
// ErrBrokenPromise fault so that any attached continuation observes it.
// Discarding a consumed promise is a no-op.
func (p *Promise[T]) Discard() {
	if p == nil || p.s == nil {
		return
	}
	p.Fail(ErrBrokenPromise)
}

func (p *Promise[T]) take() *state[T] {
	if p == nil || p.s == nil {
		panic(ErrAlreadyFulfilled)
	}
	s := p.s
	p.s = nil
	return s
}
