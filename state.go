// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// node is the type-erased view of a shared state carried through links.
// Continuations recover the concrete *state[T] by type assertion when
// driven, keeping the drive loop itself untyped.
type node interface {
	stateNode()
}

// state is the cell shared between one promise, one future, and at most
// one continuation holding it as destination. Invariants:
//
//   - slot is non-nil only while the cell is empty; a continuation
//     offered to a ready state is handed back to the caller to drive.
//   - each state admits at most one lifetime attachment (single consumer).
//
// The single-threaded contract makes concurrent access impossible by
// construction; a synchronized variant would serialize exactly write,
// installSlot, and takeSlot under one exclusive region per state.
type state[T any] struct {
	cell   cell[T]
	slot   continuation
	serial Serial
}

func newState[T any]() *state[T] {
	return &state[T]{serial: nextSerial()}
}

func (s *state[T]) stateNode() {}

// installSlot offers a continuation to this state. If the cell is
// already ready, the continuation is returned and the caller must drive
// it now against this state; otherwise it parks in the slot and nil is
// returned. Precondition: s.slot == nil (single consumer).
func (s *state[T]) installSlot(k continuation) continuation {
	if s.cell.ready() {
		return k
	}
	s.slot = k
	return nil
}

// takeSlot moves the parked continuation out, leaving the slot empty.
func (s *state[T]) takeSlot() continuation {
	k := s.slot
	s.slot = nil
	return k
}
