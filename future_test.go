// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/fut"
	"code.hybscloud.com/iox"
)

func TestFulfillThenChain(t *testing.T) {
	p, f := fut.Pair[int]()

	if !f.Valid() || f.Ready() {
		t.Fatalf("fresh future: valid=%v ready=%v, want valid and not ready", f.Valid(), f.Ready())
	}

	p.Fulfill(5)

	if !f.Valid() || !f.Ready() {
		t.Fatalf("fulfilled future: valid=%v ready=%v, want valid and ready", f.Valid(), f.Ready())
	}
	if p.Valid() {
		t.Fatal("promise still valid after Fulfill")
	}

	result := -1
	fut.Then(f, func(x int) (fut.Unit, error) {
		result = x
		return fut.Unit{}, nil
	})

	if f.Valid() {
		t.Fatal("future still valid after Then")
	}
	if result != 5 {
		t.Fatalf("result = %d, want 5", result)
	}
}

func TestChainThenFulfill(t *testing.T) {
	p, f := fut.Pair[int]()

	result := -1
	fut.Then(f, func(x int) (fut.Unit, error) {
		result = x
		return fut.Unit{}, nil
	})

	if f.Valid() {
		t.Fatal("future still valid after Then")
	}
	if result != -1 {
		t.Fatalf("continuation ran before fulfillment: result = %d", result)
	}

	p.Fulfill(5)

	if result != 5 {
		t.Fatalf("result = %d, want 5", result)
	}
}

func TestUnitChain(t *testing.T) {
	p, f := fut.Pair[fut.Unit]()

	result := -1
	stage1 := fut.Then(f, func(fut.Unit) (int, error) { return 5, nil })
	stage2 := fut.Then(stage1, func(x int) (int, error) { return 2 * x, nil })
	fut.Then(stage2, func(x int) (fut.Unit, error) {
		result = x
		return fut.Unit{}, nil
	})

	if result != -1 {
		t.Fatalf("chain ran before fulfillment: result = %d", result)
	}

	p.Fulfill(fut.Unit{})

	if result != 10 {
		t.Fatalf("result = %d, want 10", result)
	}
}

func TestReadyChain(t *testing.T) {
	f := fut.Ready(5)
	if !f.Ready() {
		t.Fatal("Ready future not ready")
	}

	result := -1
	fut.Then(f, func(x int) (fut.Unit, error) {
		result = x
		return fut.Unit{}, nil
	})
	if result != 5 {
		t.Fatalf("result = %d, want 5", result)
	}
	if f.Valid() {
		t.Fatal("future still valid after Then")
	}
}

func TestTake(t *testing.T) {
	p, f := fut.Pair[string]()

	if _, err := f.Take(); !errors.Is(err, iox.ErrWouldBlock) {
		t.Fatalf("Take on pending = %v, want iox.ErrWouldBlock", err)
	}
	if !f.Valid() {
		t.Fatal("pending Take consumed the handle")
	}

	p.Fulfill("hello")

	v, err := f.Take()
	if err != nil || v != "hello" {
		t.Fatalf("Take = (%q, %v), want (\"hello\", nil)", v, err)
	}
	if f.Valid() {
		t.Fatal("future still valid after settled Take")
	}
	if _, err := f.Take(); !errors.Is(err, fut.ErrInvalidFuture) {
		t.Fatalf("Take on consumed = %v, want ErrInvalidFuture", err)
	}
}

func TestTakeFault(t *testing.T) {
	want := errors.New("boom")
	f := fut.Faulted[int](want)

	if !f.Ready() {
		t.Fatal("Faulted future not ready")
	}
	if _, err := f.Take(); !errors.Is(err, want) {
		t.Fatalf("Take = %v, want %v", err, want)
	}
	if f.Valid() {
		t.Fatal("future still valid after settled Take")
	}
}

func TestSerial(t *testing.T) {
	p, f := fut.Pair[int]()
	if p.Serial() == 0 || p.Serial() != f.Serial() {
		t.Fatalf("pair serials = (%d, %d), want equal and non-zero", p.Serial(), f.Serial())
	}

	p2, f2 := fut.Pair[int]()
	if f2.Serial() == f.Serial() {
		t.Fatalf("distinct pairs share serial %d", f.Serial())
	}

	g := fut.Then(f, func(x int) (int, error) { return x, nil })
	if g.Serial() == 0 || g.Serial() == f2.Serial() {
		t.Fatalf("downstream serial = %d, want fresh non-zero", g.Serial())
	}
	if f.Serial() != 0 {
		t.Fatalf("consumed future serial = %d, want 0", f.Serial())
	}

	p.Fulfill(0)
	p2.Fulfill(0)
	_ = f2
}

func TestMoveInvalidation(t *testing.T) {
	p, f := fut.Pair[int]()

	g := fut.Then(f, func(x int) (int, error) { return x, nil })
	if f.Valid() {
		t.Fatal("upstream future valid after Then")
	}
	if !g.Valid() {
		t.Fatal("downstream future not valid")
	}

	p.Fulfill(1)
	if p.Valid() {
		t.Fatal("promise valid after Fulfill")
	}

	h := fut.Recover(g, func(error) (int, error) { return 0, nil })
	if g.Valid() {
		t.Fatal("upstream future valid after Recover")
	}
	if v, err := h.Take(); v != 1 || err != nil {
		t.Fatalf("Take = (%d, %v), want (1, nil)", v, err)
	}
}

func TestDropWithoutChaining(t *testing.T) {
	// Dropping a valid future without chaining has no observable effect.
	p, _ := fut.Pair[int]()
	p.Fulfill(5)

	// Fulfilling with no consumer must not panic and must consume p.
	if p.Valid() {
		t.Fatal("promise valid after Fulfill")
	}
}
