// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import (
	"github.com/juju/errors"
)

type direction int

const (
	forward direction = iota
	backward
)

// Cursor walks the elements of a Deque in one direction and can remove the
// element it last returned. Any change to the deque other than through the
// cursor's own Remove invalidates it.
type Cursor[T comparable] struct {
	d   *Deque[T]
	dir direction

	// blk and idx locate the element the next call to Next returns.
	// blk is noBlock once the cursor has run out of elements.
	blk int
	idx int

	// lastBlk and lastIdx locate the element last returned by Next.
	// lastBlk is noBlock when there is nothing to remove.
	lastBlk int
	lastIdx int
}

// Iterator returns a cursor positioned before the first element.
func (d *Deque[T]) Iterator() *Cursor[T] {
	it := &Cursor[T]{d: d, dir: forward, blk: d.chain.head, lastBlk: noBlock}
	if it.blk != noBlock {
		it.idx = d.chain.at(it.blk).lo
	}
	return it
}

// DescendingIterator always fails: walking the deque from back to front is
// not offered.
func (d *Deque[T]) DescendingIterator() (*Cursor[T], error) {
	return nil, errors.NotSupportedf("descending iterator")
}

// descendingCursor returns a cursor positioned after the last element that
// walks towards the front.
func (d *Deque[T]) descendingCursor() *Cursor[T] {
	it := &Cursor[T]{d: d, dir: backward, blk: d.chain.tail, lastBlk: noBlock}
	if it.blk != noBlock {
		it.idx = d.chain.at(it.blk).hi - 1
	}
	return it
}

// HasNext reports whether Next has an element to return.
func (it *Cursor[T]) HasNext() bool {
	return it.blk != noBlock
}

// Next returns the next element, or Exhausted once there are none left.
func (it *Cursor[T]) Next() (T, error) {
	if it.blk == noBlock {
		var zero T
		return zero, errors.Trace(Exhausted)
	}
	e := it.d.chain.at(it.blk).slots[it.idx]
	it.lastBlk, it.lastIdx = it.blk, it.idx
	if it.dir == forward {
		it.idx++
		it.settleForward()
	} else {
		it.idx--
		it.settleBackward()
	}
	return e, nil
}

// settleForward moves a position that has run off the end of its block to
// the start of the following block.
func (it *Cursor[T]) settleForward() {
	if it.blk == noBlock {
		return
	}
	b := it.d.chain.at(it.blk)
	if it.idx < b.hi {
		return
	}
	it.blk = b.next
	if it.blk != noBlock {
		it.idx = it.d.chain.at(it.blk).lo
	}
}

// settleBackward moves a position that has run off the start of its block
// to the end of the preceding block.
func (it *Cursor[T]) settleBackward() {
	if it.blk == noBlock {
		return
	}
	b := it.d.chain.at(it.blk)
	if it.idx >= b.lo {
		return
	}
	it.blk = b.prev
	if it.blk != noBlock {
		it.idx = it.d.chain.at(it.blk).hi - 1
	}
}

// Remove deletes the element last returned by Next. The elements beyond it,
// in the direction of travel, each shift one slot back towards the gap, so
// the next call to Next returns the element that would have followed.
func (it *Cursor[T]) Remove() error {
	if it.lastBlk == noBlock {
		return errors.Annotate(IllegalState, "no element to remove")
	}
	blk, idx := it.lastBlk, it.lastIdx
	it.lastBlk = noBlock

	var retired int
	if it.dir == forward {
		retired = it.d.compactForward(blk, idx)
	} else {
		retired = it.d.compactBackward(blk, idx)
	}

	// The element that followed the removed one now sits in its slot.
	it.blk, it.idx = blk, idx
	if retired == blk {
		it.blk = noBlock
	}
	if it.dir == forward {
		it.settleForward()
	} else {
		it.settleBackward()
	}
	return nil
}

// compactForward removes the element at slot idx of block blk by shifting
// every later element one slot towards the front. The slot vacated at the
// back is cleared, and the tail block is retired if that emptied it. It
// returns the index of the retired block, or noBlock.
func (d *Deque[T]) compactForward(blk, idx int) int {
	c := &d.chain
	for {
		b := c.at(blk)
		copy(b.slots[idx:b.hi-1], b.slots[idx+1:b.hi])
		if b.next == noBlock {
			b.hi--
			b.vacate(b.hi)
			break
		}
		nb := c.at(b.next)
		b.slots[b.hi-1] = nb.slots[nb.lo]
		blk, idx = b.next, nb.lo
	}
	d.size--
	if c.retireIfEmpty(blk) {
		return blk
	}
	return noBlock
}

// compactBackward removes the element at slot idx of block blk by shifting
// every earlier element one slot towards the back. The slot vacated at the
// front is cleared, and the head block is retired if that emptied it. It
// returns the index of the retired block, or noBlock.
func (d *Deque[T]) compactBackward(blk, idx int) int {
	c := &d.chain
	for {
		b := c.at(blk)
		copy(b.slots[b.lo+1:idx+1], b.slots[b.lo:idx])
		if b.prev == noBlock {
			b.vacate(b.lo)
			b.lo++
			break
		}
		pb := c.at(b.prev)
		b.slots[b.lo] = pb.slots[pb.hi-1]
		blk, idx = b.prev, pb.hi-1
	}
	d.size--
	if c.retireIfEmpty(blk) {
		return blk
	}
	return noBlock
}
