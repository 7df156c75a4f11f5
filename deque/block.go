// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

// noBlock is the arena index used for a missing neighbour, and for an empty
// chain's head and tail.
const noBlock = -1

// block is a fixed capacity segment of the deque. The occupied slots are
// always the contiguous run [lo, hi); everything outside that run holds the
// zero value of T.
type block[T any] struct {
	slots []T
	lo    int
	hi    int

	// prev and next are arena indices of the neighbouring blocks.
	prev int
	next int
}

func (b *block[T]) len() int {
	return b.hi - b.lo
}

func (b *block[T]) isFull() bool {
	return b.hi-b.lo == len(b.slots)
}

func (b *block[T]) isEmpty() bool {
	return b.hi == b.lo
}

// vacate resets slot i so the block does not keep the element reachable.
func (b *block[T]) vacate(i int) {
	var zero T
	b.slots[i] = zero
}

// anchorLeft moves the occupied run so that it starts at slot 0.
func (b *block[T]) anchorLeft() {
	if b.lo == 0 {
		return
	}
	n := copy(b.slots, b.slots[b.lo:b.hi])
	clear(b.slots[n:b.hi])
	b.lo, b.hi = 0, n
}

// anchorRight moves the occupied run so that it ends at the last slot.
func (b *block[T]) anchorRight() {
	end := len(b.slots)
	if b.hi == end {
		return
	}
	start := end - b.len()
	copy(b.slots[start:], b.slots[b.lo:b.hi])
	clear(b.slots[b.lo:start])
	b.lo, b.hi = start, end
}

// reset empties the block and detaches it from its neighbours, ready to be
// handed out again by the arena.
func (b *block[T]) reset() {
	clear(b.slots)
	b.lo, b.hi = 0, 0
	b.prev, b.next = noBlock, noBlock
}
