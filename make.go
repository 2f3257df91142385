// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Unit is the value carrier for futures that resolve with no payload.
// Fulfilling a Promise[Unit] with Unit{} is the unit fulfillment.
type Unit = struct{}

// pairAlloc holds both handles and the shared state in a single
// allocation; only states created by later chaining calls are separate
// heap objects.
type pairAlloc[T any] struct {
	p Promise[T]
	f Future[T]
	s state[T]
}

// Pair creates a linked (Promise, Future) pair sharing one
// single-assignment state cell.
func Pair[T any]() (*Promise[T], *Future[T]) {
	a := &pairAlloc[T]{}
	a.s.serial = nextSerial()
	a.p.s = &a.s
	a.f.s = &a.s
	return &a.p, &a.f
}

// Ready returns a future already resolved with v.
func Ready[T any](v T) *Future[T] {
	s := newState[T]()
	s.cell.setValue(v)
	return &Future[T]{s: s}
}

// Faulted returns a future already resolved with the fault err.
func Faulted[T any](err error) *Future[T] {
	s := newState[T]()
	s.cell.setFault(err)
	return &Future[T]{s: s}
}
