// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// link is the unit of work carried between iterations of the drive loop:
// a continuation paired with the source state it reads from. The zero
// link terminates the loop.
type link struct {
	k   continuation
	src node
}

// continuation is a user function bound to a destination state, driven
// once its source resolves. drive reads the source cell, writes the
// destination (or attaches it to an inner future), and returns the next
// link — it never recurses into further continuations.
//
// Each continuation holds one strong reference to its destination for
// its whole lifetime and transfers that reference into the returned
// link, so the destination cannot dangle between dispatch and the
// downstream drive.
type continuation interface {
	drive(src node) link
}

// settled builds the link following a write to dest: the parked
// downstream continuation, if any, driven against dest.
func settled[T any](dest *state[T]) link {
	return link{k: dest.takeSlot(), src: dest}
}

// attach wires the outer destination dest to the inner state produced by
// a future-returning user function. A nil inner state (the user returned
// a consumed or nil future) faults the destination with ErrInvalidFuture;
// a ready inner state is copied through immediately; otherwise an
// attachCont parks on the inner state and work resumes when its producer
// fulfills it.
func attach[T any](inner, dest *state[T]) link {
	if inner == nil {
		dest.cell.setFault(ErrInvalidFuture)
		return settled(dest)
	}
	if inner.cell.ready() {
		dest.cell = inner.cell
		return settled(dest)
	}
	// Inner cell is empty here, so the shuttle parks until fulfillment.
	inner.slot = &attachCont[T]{dest: dest}
	return link{}
}

// mapCont applies fn to the source value and writes the result into
// dest. Faults pass through untouched.
type mapCont[U, V any] struct {
	fn   func(U) (V, error)
	dest *state[V]
}

func (c *mapCont[U, V]) drive(src node) link {
	s := src.(*state[U])
	dest := c.dest
	c.dest = nil
	switch s.cell.tag {
	case cellValue:
		if v, err := protect(c.fn, s.cell.val); err != nil {
			dest.cell.setFault(err)
		} else {
			dest.cell.setValue(v)
		}
	case cellFault:
		dest.cell.setFault(s.cell.err)
	}
	return settled(dest)
}

// bindCont applies a future-returning fn to the source value and
// attaches dest to the inner future's state (monadic flatten). Faults
// pass through untouched.
type bindCont[U, V any] struct {
	fn   func(U) *Future[V]
	dest *state[V]
}

func (c *bindCont[U, V]) drive(src node) link {
	s := src.(*state[U])
	dest := c.dest
	c.dest = nil
	if s.cell.tag == cellFault {
		dest.cell.setFault(s.cell.err)
		return settled(dest)
	}
	inner, err := protectFuture(c.fn, s.cell.val)
	if err != nil {
		dest.cell.setFault(err)
		return settled(dest)
	}
	return attach(inner.detach(), dest)
}

// recoverCont applies fn to the source fault and writes the result into
// dest. Values pass through untouched.
type recoverCont[T any] struct {
	fn   func(error) (T, error)
	dest *state[T]
}

func (c *recoverCont[T]) drive(src node) link {
	s := src.(*state[T])
	dest := c.dest
	c.dest = nil
	switch s.cell.tag {
	case cellValue:
		dest.cell.setValue(s.cell.val)
	case cellFault:
		if v, err := protect(c.fn, s.cell.err); err != nil {
			dest.cell.setFault(err)
		} else {
			dest.cell.setValue(v)
		}
	}
	return settled(dest)
}

// recoverBindCont applies a future-returning fn to the source fault and
// attaches dest to the inner future's state. Values pass through
// untouched.
type recoverBindCont[T any] struct {
	fn   func(error) *Future[T]
	dest *state[T]
}

func (c *recoverBindCont[T]) drive(src node) link {
	s := src.(*state[T])
	dest := c.dest
	c.dest = nil
	if s.cell.tag == cellValue {
		dest.cell.setValue(s.cell.val)
		return settled(dest)
	}
	inner, err := protectFuture(c.fn, s.cell.err)
	if err != nil {
		dest.cell.setFault(err)
		return settled(dest)
	}
	return attach(inner.detach(), dest)
}

// attachCont is the shuttle installed by attach: it copies the inner
// source cell into dest verbatim once the inner future resolves.
type attachCont[T any] struct {
	dest *state[T]
}

func (c *attachCont[T]) drive(src node) link {
	s := src.(*state[T])
	dest := c.dest
	c.dest = nil
	dest.cell = s.cell
	return settled(dest)
}
