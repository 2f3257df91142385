// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the bounded capacity of the pipe transport queue.
// 4 keeps the ring buffer within a single cache line while amortizing
// the producer-side cached-index refresh cost.
const pipeCapacity = 4

// Pipe creates a bounded single-producer single-consumer inlet that
// carries values from a producer goroutine onto the consumer's
// goroutine, surfacing each value as a single-assignment future.
//
// The transport is a lock-free SPSC queue from lfq; Send is non-blocking
// and returns iox.ErrWouldBlock on backpressure. Futures handed out by
// Recv are settled exclusively by Pump and Drain on the consumer
// goroutine, so every state cell stays single-threaded.
func Pipe[T any]() (*Sender[T], *Receiver[T]) {
	pair := &pipePair[T]{}
	pair.q.Init(pipeCapacity)
	pair.s.q = &pair.q
	pair.s.closed = &pair.closed
	pair.r.q = &pair.q
	pair.r.closed = &pair.closed
	return &pair.s, &pair.r
}

// pipePair holds both ends, the queue, and the close flag in a single
// allocation; only the ring buffer is a separate heap object.
type pipePair[T any] struct {
	s      Sender[T]
	r      Receiver[T]
	q      lfq.SPSC[T]
	closed atomix.Uint32
}

// Sender is the producer end of a pipe. Safe for use by one goroutine.
type Sender[T any] struct {
	q      *lfq.SPSC[T]
	closed *atomix.Uint32
	slot   T
}

// Send enqueues a value for the consumer. Non-blocking: returns
// iox.ErrWouldBlock when the bounded queue is full, ErrPipeClosed after
// Close.
func (s *Sender[T]) Send(v T) error {
	if s.closed.Load() != 0 {
		return ErrPipeClosed
	}
	s.slot = v
	return s.q.Enqueue(&s.slot)
}

// Close signals that no further values will be sent. Values enqueued
// before Close still reach the consumer; futures that can no longer be
// settled fault with ErrPipeClosed on the next Pump.
func (s *Sender[T]) Close() {
	s.closed.Add(1)
}

// Receiver is the consumer end of a pipe. Safe for use by one goroutine;
// all future settlement happens on this goroutine's Pump and Drain calls.
type Receiver[T any] struct {
	q       *lfq.SPSC[T]
	closed  *atomix.Uint32
	pending []*Promise[T]
}

// Recv returns a future for the next value in arrival order. If a value
// is already queued (and no earlier future is waiting for it) the future
// is ready immediately; on a closed and drained pipe it is faulted with
// ErrPipeClosed; otherwise it parks until a later Pump settles it.
func (r *Receiver[T]) Recv() *Future[T] {
	if len(r.pending) == 0 {
		if v, err := r.q.Dequeue(); err == nil {
			return Ready(v)
		}
		if r.closed.Load() != 0 {
			// Sends happen before Close on the producer side; one more
			// dequeue observes a value racing the close signal.
			if v, err := r.q.Dequeue(); err == nil {
				return Ready(v)
			}
			return Faulted[T](ErrPipeClosed)
		}
	}
	p, f := Pair[T]()
	r.pending = append(r.pending, p)
	return f
}

// Pump settles parked futures from queued values in FIFO order, driving
// their continuations inline on the calling goroutine. After the pipe is
// closed and drained, every remaining parked future faults with
// ErrPipeClosed. Returns the number of futures settled.
func (r *Receiver[T]) Pump() int {
	n := r.pump()
	if len(r.pending) > 0 && r.closed.Load() != 0 {
		// Sends happen before Close on the producer side, so one more
		// pass observes every value enqueued before the close signal.
		n += r.pump()
		for _, p := range r.pending {
			p.Fail(ErrPipeClosed)
			n++
		}
		r.pending = r.pending[:0]
	}
	return n
}

func (r *Receiver[T]) pump() int {
	n := 0
	for len(r.pending) > 0 {
		v, err := r.q.Dequeue()
		if err != nil {
			break
		}
		p := r.pending[0]
		r.pending = r.pending[1:]
		p.Fulfill(v)
		n++
	}
	return n
}

// Drain pumps until every parked future is settled, waiting for the
// producer with adaptive backoff (iox.Backoff). Settlement still happens
// exclusively on the calling goroutine. Returns the number of futures
// settled.
//
// Drain returns only when the producer has supplied enough values or
// closed the pipe.
func (r *Receiver[T]) Drain() int {
	total := 0
	var bo iox.Backoff
	for len(r.pending) > 0 {
		n := r.Pump()
		total += n
		if n == 0 {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return total
}
