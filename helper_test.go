// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"errors"
	"testing"
)

// wantPanic runs fn and checks that it panics with the given sentinel
// error (affine-protocol violations panic with the error value).
func wantPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		p := recover()
		if p == nil {
			t.Fatalf("no panic, want %v", want)
		}
		err, ok := p.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic = %v, want %v", p, want)
		}
	}()
	fn()
}
