// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import "code.hybscloud.com/iox"

// Future is the consumer-side handle of a shared state cell. A future is
// affine: Then, Bind, Recover, RecoverBind, and a settled Take each
// consume the handle, after which Valid reports false. A consumed future
// admits no further chaining.
//
// Dropping a valid future without chaining has no observable effect; if
// the paired promise is also discarded before fulfillment the
// broken-promise fault applies.
type Future[T any] struct {
	s *state[T]
}

// Valid reports whether the handle still references its state cell.
func (f *Future[T]) Valid() bool {
	return f != nil && f.s != nil
}

// Ready reports whether the handle is valid and the cell has resolved.
func (f *Future[T]) Ready() bool {
	return f.Valid() && f.s.cell.ready()
}

// Serial returns the serial number of the shared state, or 0 for a
// consumed handle.
func (f *Future[T]) Serial() Serial {
	if f == nil || f.s == nil {
		return 0
	}
	return f.s.serial
}

// Take consumes a settled future, returning its value or fault.
// Non-blocking: returns iox.ErrWouldBlock while the cell is still empty,
// leaving the handle valid for a later Take or chaining call. On a
// consumed handle Take returns ErrInvalidFuture.
func (f *Future[T]) Take() (T, error) {
	var zero T
	if f == nil || f.s == nil {
		return zero, ErrInvalidFuture
	}
	switch f.s.cell.tag {
	case cellEmpty:
		return zero, iox.ErrWouldBlock
	case cellFault:
		err := f.s.cell.err
		f.s = nil
		return zero, err
	}
	v := f.s.cell.val
	f.s = nil
	return v, nil
}

// take consumes the handle for a chaining call. Panics with
// ErrInvalidFuture on a consumed handle (affine-protocol violation).
func (f *Future[T]) take() *state[T] {
	if f == nil || f.s == nil {
		panic(ErrInvalidFuture)
	}
	s := f.s
	f.s = nil
	return s
}

// detach consumes the handle without validity checks; a nil or consumed
// handle yields a nil state. Used by the attach protocol, where an
// invalid inner future becomes an ErrInvalidFuture fault rather than a
// panic.
func (f *Future[T]) detach() *state[T] {
	if f == nil {
		return nil
	}
	s := f.s
	f.s = nil
	return s
}
