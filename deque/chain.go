// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import (
	"github.com/gammazero/deque"
)

// chain is the doubly linked list of blocks backing a Deque. Blocks live in
// an arena and refer to each other by index; retired blocks are parked on a
// free list and handed out again before the arena grows.
type chain[T any] struct {
	blocks  []block[T]
	free    *deque.Deque[int]
	segment int
	head    int
	tail    int
	logger  Logger
}

func newChain[T any](segment int, logger Logger) chain[T] {
	return chain[T]{
		free:    deque.New[int](),
		segment: segment,
		head:    noBlock,
		tail:    noBlock,
		logger:  logger,
	}
}

// at returns the block stored at arena index i. The pointer is only valid
// until the next allocation.
func (c *chain[T]) at(i int) *block[T] {
	return &c.blocks[i]
}

func (c *chain[T]) empty() bool {
	return c.head == noBlock
}

func (c *chain[T]) single() bool {
	return c.head == c.tail
}

// alloc returns the index of an unlinked, empty block.
func (c *chain[T]) alloc() int {
	if c.free.Len() > 0 {
		return c.free.PopBack()
	}
	c.blocks = append(c.blocks, block[T]{
		slots: make([]T, c.segment),
		prev:  noBlock,
		next:  noBlock,
	})
	return len(c.blocks) - 1
}

// pushHead links a new empty head block whose run grows leftwards from the
// last slot.
func (c *chain[T]) pushHead() {
	i := c.alloc()
	b := c.at(i)
	b.lo, b.hi = c.segment, c.segment
	b.next = c.head
	if c.head == noBlock {
		c.tail = i
	} else {
		c.at(c.head).prev = i
	}
	c.head = i
	c.logger.Tracef("allocated head block %d", i)
}

// pushTail links a new empty tail block whose run grows rightwards from
// slot 0.
func (c *chain[T]) pushTail() {
	i := c.alloc()
	b := c.at(i)
	b.prev = c.tail
	if c.tail == noBlock {
		c.head = i
	} else {
		c.at(c.tail).next = i
	}
	c.tail = i
	c.logger.Tracef("allocated tail block %d", i)
}

// retire unlinks block i and returns it to the free list.
func (c *chain[T]) retire(i int) {
	b := c.at(i)
	if b.prev == noBlock {
		c.head = b.next
	} else {
		c.at(b.prev).next = b.next
	}
	if b.next == noBlock {
		c.tail = b.prev
	} else {
		c.at(b.next).prev = b.prev
	}
	b.reset()
	c.free.PushBack(i)
	c.logger.Tracef("retired block %d", i)
}

// retireIfEmpty retires block i when its last element has gone and reports
// whether it did so.
func (c *chain[T]) retireIfEmpty(i int) bool {
	if !c.at(i).isEmpty() {
		return false
	}
	c.retire(i)
	return true
}

// nth returns the arena index of the n-th block in chain order.
func (c *chain[T]) nth(n int) (int, bool) {
	if n < 0 {
		return noBlock, false
	}
	i := c.head
	for ; i != noBlock && n > 0; n-- {
		i = c.at(i).next
	}
	return i, i != noBlock
}

func (c *chain[T]) count() int {
	n := 0
	for i := c.head; i != noBlock; i = c.at(i).next {
		n++
	}
	return n
}

// reset drops every block, including the parked ones.
func (c *chain[T]) reset() {
	c.blocks = nil
	c.free.Clear()
	c.head, c.tail = noBlock, noBlock
}
