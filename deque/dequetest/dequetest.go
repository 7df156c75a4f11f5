// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package dequetest holds helpers for testing code built on package deque.
package dequetest

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/blockdeque/deque"
)

// CheckInvariants asserts the structural invariants of d: the element count
// agrees with Size and the bound, every block holds one contiguous run, and
// with more than one block every block but the head and tail is full, the
// head's run reaches the last slot and the tail's run starts at slot 0.
func CheckInvariants[T comparable](c *gc.C, d *deque.Deque[T]) {
	c.Assert(d.Size() <= d.CapacityBound(), jc.IsTrue,
		gc.Commentf("size %d exceeds bound %d", d.Size(), d.CapacityBound()))

	walked := 0
	for range d.All() {
		walked++
	}
	c.Assert(walked, gc.Equals, d.Size())

	blocks := d.BlockCount()
	c.Assert(blocks == 0, gc.Equals, d.Size() == 0,
		gc.Commentf("%d blocks holding %d elements", blocks, d.Size()))

	occupied := 0
	for n := 0; n < blocks; n++ {
		slots, ok := d.Block(n)
		c.Assert(ok, jc.IsTrue)
		c.Assert(slots, gc.HasLen, d.SegmentCapacity())

		lo, hi := occupiedRun(c, slots, n)
		c.Assert(hi > lo, jc.IsTrue, gc.Commentf("block %d is empty", n))
		if n > 0 {
			c.Check(lo, gc.Equals, 0, gc.Commentf("block %d of %d has a gap at the front", n, blocks))
		}
		if n < blocks-1 {
			c.Check(hi, gc.Equals, len(slots), gc.Commentf("block %d of %d has a gap at the back", n, blocks))
		}
		occupied += hi - lo
	}
	c.Assert(occupied, gc.Equals, d.Size())

	_, ok := d.Block(blocks)
	c.Assert(ok, jc.IsFalse)
}

// occupiedRun returns the bounds of the single run of occupied slots.
func occupiedRun[T any](c *gc.C, slots []deque.Slot[T], n int) (int, int) {
	lo := 0
	for lo < len(slots) && !slots[lo].Occupied {
		lo++
	}
	hi := lo
	for hi < len(slots) && slots[hi].Occupied {
		hi++
	}
	for i := hi; i < len(slots); i++ {
		c.Assert(slots[i].Occupied, jc.IsFalse, gc.Commentf("block %d has a gap at slot %d", n, hi))
	}
	return lo, hi
}
