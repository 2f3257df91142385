// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// cellTag discriminates the three states of a value cell.
type cellTag uint8

const (
	cellEmpty cellTag = iota
	cellValue
	cellFault
)

// cell is the single-assignment variant holding {empty, value, fault}.
// The tag transitions away from cellEmpty at most once; once non-empty
// the cell is terminal. The fault branch carries Go's error interface,
// which transports any user error or recovered panic intact through the
// chain (inspect with errors.Is/errors.As).
//
// Writes are guarded by program invariants, not runtime checks: every
// call site owns the cell exclusively and writes only while empty.
type cell[T any] struct {
	tag cellTag
	val T
	err error
}

// ready reports whether the cell left the empty state.
func (c *cell[T]) ready() bool {
	return c.tag != cellEmpty
}

// setValue writes the value branch. Precondition: c.tag == cellEmpty.
func (c *cell[T]) setValue(v T) {
	c.val = v
	c.tag = cellValue
}

// setFault writes the fault branch. Precondition: c.tag == cellEmpty.
func (c *cell[T]) setFault(err error) {
	c.err = err
	c.tag = cellFault
}
