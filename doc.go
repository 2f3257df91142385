// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fut provides a single-threaded future/promise primitive with
// value pipelining and error recovery.
//
// A producer holds a [Promise] handle and a consumer holds a [Future]
// handle; both share one single-assignment state cell. The consumer
// attaches one continuation, the producer fulfills the cell, and the
// continuation runs inline on whichever side closes the last open link.
// Asynchrony is expressed solely by not yet having fulfilled a promise;
// the package creates no goroutines and never blocks.
//
// # Architecture
//
//   - State cell: single-assignment tagged cell {empty, value, fault}
//     shared by exactly one promise, one future, and at most one
//     destination-holding continuation.
//   - Drive loop: continuations yield (continuation, source-state) links;
//     an iterative trampoline walks links until none remains, so a chain
//     of N synchronously-ready stages costs O(1) stack.
//   - Inner futures: a continuation may itself return a future; the
//     destination is attached to the inner state and resolution
//     propagates transparently (monadic flatten).
//
// # Core API
//
// Handles are affine: every chaining or fulfilling call consumes the
// handle it was given.
//
//   - [Pair]: create a linked (Promise, Future) pair
//   - [Ready], [Faulted]: pre-fulfilled futures
//   - [Then]: pipeline a function over the eventual value
//   - [Bind]: pipeline a future-returning function (flatten)
//   - [Recover], [RecoverBind]: consume the fault channel
//   - [Loop]: recursive pipelines via [code.hybscloud.com/kont.Either]
//   - [Future.Take]: consume a settled value without chaining
//   - [Promise.Fulfill], [Promise.Fail]: resolve the cell
//   - [Promise.Discard]: drop without fulfilling (injects [ErrBrokenPromise])
//
// # Error Handling
//
// Two channels. Data-plane faults flow through the chain: a non-nil error
// returned (or a panic raised) by a Then/Bind function becomes the
// downstream fault, Then passes faults through untouched, and Recover
// consumes them. API misuse (chaining a consumed future, fulfilling a
// consumed promise) is an affine-protocol violation and panics with
// [ErrInvalidFuture] or [ErrAlreadyFulfilled]; [Promise.TryFulfill] and
// [Promise.TryFail] are the non-panicking variants.
//
// # Effect Bridge
//
// bridge.go integrates with [code.hybscloud.com/kont] computations:
// [Await] suspends an effectful computation on a future, [Step] and
// [Advance] evaluate one effect at a time (Advance returns
// [code.hybscloud.com/iox.ErrWouldBlock] while the awaited future is
// pending), and [Exec] runs a computation to completion, short-circuiting
// on faults.
//
// # Pipe
//
// [Pipe] carries values from a producer goroutine onto the consumer's
// goroutine over a bounded lock-free SPSC queue
// ([code.hybscloud.com/lfq]), surfacing each value as a future settled by
// [Receiver.Pump]. All state-cell access stays on the consumer goroutine;
// the cell itself is never shared between threads.
//
// # Example
//
//	p, f := fut.Pair[int]()
//	sum := fut.Then(f, func(x int) (int, error) { return x + 2, nil })
//	p.Fulfill(40)
//	v, _ := sum.Take()
//	// v == 42
package fut
