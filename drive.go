// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// drive is the iterative trampoline that walks links until none remains.
// Each drive call produces the next link without recursing, so a chain
// of N synchronously-ready continuations consumes O(1) stack (one frame
// per user function call) instead of O(N).
//
// A link is terminal when the just-driven continuation parked itself on
// a pending source, or when the destination has no continuation attached
// yet; both return the zero link.
func drive(lk link) {
	for lk.k != nil {
		lk = lk.k.drive(lk.src)
	}
}
