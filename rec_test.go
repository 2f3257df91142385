// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"testing"

	"code.hybscloud.com/fut"
	"code.hybscloud.com/kont"
)

func TestLoopReadySteps(t *testing.T) {
	f := fut.Loop(0, func(n int) *fut.Future[kont.Either[int, int]] {
		if n >= 5 {
			return fut.Ready(kont.Right[int, int](n * 10))
		}
		return fut.Ready(kont.Left[int, int](n + 1))
	})
	got, err := f.Take()
	if err != nil {
		t.Fatalf("Take error: %v", err)
	}
	if got != 50 {
		t.Fatalf("got %d, want 50", got)
	}
}

func TestLoopPendingStep(t *testing.T) {
	var promises []*fut.Promise[kont.Either[int, string]]
	f := fut.Loop(0, func(n int) *fut.Future[kont.Either[int, string]] {
		p, f := fut.Pair[kont.Either[int, string]]()
		promises = append(promises, p)
		_ = n
		return f
	})
	if f.Ready() {
		t.Fatal("loop completed before any step was fulfilled")
	}

	promises[0].Fulfill(kont.Left[int, string](1))
	if f.Ready() {
		t.Fatal("loop completed after a continue step")
	}
	promises[1].Fulfill(kont.Right[int, string]("done"))

	got, err := f.Take()
	if err != nil {
		t.Fatalf("Take error: %v", err)
	}
	if got != "done" {
		t.Fatalf("got %q, want %q", got, "done")
	}
}

func TestLoopMixedSteps(t *testing.T) {
	var pending *fut.Promise[kont.Either[int, int]]
	f := fut.Loop(0, func(n int) *fut.Future[kont.Either[int, int]] {
		switch {
		case n == 2 && pending == nil:
			p, f := fut.Pair[kont.Either[int, int]]()
			pending = p
			return f
		case n >= 4:
			return fut.Ready(kont.Right[int, int](n))
		default:
			return fut.Ready(kont.Left[int, int](n + 1))
		}
	})
	if f.Ready() {
		t.Fatal("loop completed before the pending step resolved")
	}
	pending.Fulfill(kont.Left[int, int](3))
	got, err := f.Take()
	if err != nil {
		t.Fatalf("Take error: %v", err)
	}
	if got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestLoopStepFault(t *testing.T) {
	f := fut.Loop(0, func(n int) *fut.Future[kont.Either[int, int]] {
		if n == 3 {
			return fut.Faulted[kont.Either[int, int]](errTest)
		}
		return fut.Ready(kont.Left[int, int](n + 1))
	})
	if _, err := f.Take(); err != errTest {
		t.Fatalf("Take error = %v, want %v", err, errTest)
	}
}

func TestLoopStepPanic(t *testing.T) {
	f := fut.Loop(0, func(n int) *fut.Future[kont.Either[int, int]] {
		panic("step blew up")
	})
	_, err := f.Take()
	pe, ok := err.(*fut.PanicError)
	if !ok {
		t.Fatalf("Take error = %T, want *fut.PanicError", err)
	}
	if pe.Value() != "step blew up" {
		t.Fatalf("panic value = %v", pe.Value())
	}
}

func TestLoopStepInvalidFuture(t *testing.T) {
	f := fut.Loop(0, func(n int) *fut.Future[kont.Either[int, int]] {
		inner := fut.Ready(kont.Left[int, int](n + 1))
		_, _ = inner.Take()
		return inner
	})
	if _, err := f.Take(); err != fut.ErrInvalidFuture {
		t.Fatalf("Take error = %v, want %v", err, fut.ErrInvalidFuture)
	}
}
