// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import (
	"fmt"
	"iter"
	"slices"

	"github.com/juju/errors"
)

// Deque is a bounded double-ended queue built from a chain of fixed size
// blocks. It is not safe for concurrent use.
//
// Elements may not be nil. The deque never holds more than its capacity
// bound; insertions past the bound either fail with CapacityExceeded or,
// for the Offer variants, report false.
type Deque[T comparable] struct {
	chain         chain[T]
	capacityBound int
	size          int
	logger        Logger
}

// New returns an empty Deque configured by config.
func New[T comparable](config Config) (*Deque[T], error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	log := config.logger()
	return &Deque[T]{
		chain:         newChain[T](config.SegmentCapacity, log),
		capacityBound: config.CapacityBound,
		logger:        log,
	}, nil
}

// NewDefault returns an empty Deque with the default capacity bound and
// segment capacity.
func NewDefault[T comparable]() *Deque[T] {
	d, err := New[T](DefaultConfig())
	if err != nil {
		panic(err)
	}
	return d
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.size
}

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// CapacityBound returns the maximum number of elements the deque may hold.
func (d *Deque[T]) CapacityBound() int {
	return d.capacityBound
}

// SegmentCapacity returns the number of slots in each block.
func (d *Deque[T]) SegmentCapacity() int {
	return d.chain.segment
}

// checkInsert decides whether e may be inserted. Nil elements are rejected
// before the capacity is considered.
func (d *Deque[T]) checkInsert(e T, end string) error {
	if isAbsent(e) {
		return errors.Annotatef(InvalidElement, "adding nil %T at the %s", e, end)
	}
	if d.size >= d.capacityBound {
		d.logger.Debugf("rejecting insertion at the %s: %d of %d slots used", end, d.size, d.capacityBound)
		return errors.Annotatef(CapacityExceeded, "adding at the %s with %d elements", end, d.size)
	}
	return nil
}

// AddFirst inserts e at the front of the deque.
func (d *Deque[T]) AddFirst(e T) error {
	if err := d.checkInsert(e, "front"); err != nil {
		return errors.Trace(err)
	}
	d.insertFirst(e)
	return nil
}

// AddLast inserts e at the back of the deque.
func (d *Deque[T]) AddLast(e T) error {
	if err := d.checkInsert(e, "back"); err != nil {
		return errors.Trace(err)
	}
	d.insertLast(e)
	return nil
}

// OfferFirst inserts e at the front of the deque if there is room, and
// reports whether it did. A nil element is still an error.
func (d *Deque[T]) OfferFirst(e T) (bool, error) {
	err := d.AddFirst(e)
	if errors.Is(err, CapacityExceeded) {
		return false, nil
	}
	return err == nil, errors.Trace(err)
}

// OfferLast inserts e at the back of the deque if there is room, and
// reports whether it did. A nil element is still an error.
func (d *Deque[T]) OfferLast(e T) (bool, error) {
	err := d.AddLast(e)
	if errors.Is(err, CapacityExceeded) {
		return false, nil
	}
	return err == nil, errors.Trace(err)
}

func (d *Deque[T]) insertFirst(e T) {
	c := &d.chain
	if c.empty() {
		c.pushHead()
	}
	// With a single block, first and last insertions share it. Keeping the
	// run against the far edge stops them from leaving a gap between them.
	if c.single() {
		c.at(c.head).anchorRight()
	}
	if c.at(c.head).isFull() {
		c.pushHead()
	}
	b := c.at(c.head)
	b.lo--
	b.slots[b.lo] = e
	d.size++
}

func (d *Deque[T]) insertLast(e T) {
	c := &d.chain
	if c.empty() {
		c.pushTail()
	}
	if c.single() {
		c.at(c.tail).anchorLeft()
	}
	if c.at(c.tail).isFull() {
		c.pushTail()
	}
	b := c.at(c.tail)
	b.slots[b.hi] = e
	b.hi++
	d.size++
}

// PollFirst removes and returns the first element. The second result is
// false if the deque is empty.
func (d *Deque[T]) PollFirst() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	c := &d.chain
	head := c.head
	b := c.at(head)
	e := b.slots[b.lo]
	b.vacate(b.lo)
	b.lo++
	d.size--
	c.retireIfEmpty(head)
	return e, true
}

// PollLast removes and returns the last element. The second result is
// false if the deque is empty.
func (d *Deque[T]) PollLast() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	c := &d.chain
	tail := c.tail
	b := c.at(tail)
	b.hi--
	e := b.slots[b.hi]
	b.vacate(b.hi)
	d.size--
	c.retireIfEmpty(tail)
	return e, true
}

// RemoveFirst removes and returns the first element, failing with
// EmptyContainer if there is none.
func (d *Deque[T]) RemoveFirst() (T, error) {
	e, ok := d.PollFirst()
	if !ok {
		return e, errors.Annotate(EmptyContainer, "removing first element")
	}
	return e, nil
}

// RemoveLast removes and returns the last element, failing with
// EmptyContainer if there is none.
func (d *Deque[T]) RemoveLast() (T, error) {
	e, ok := d.PollLast()
	if !ok {
		return e, errors.Annotate(EmptyContainer, "removing last element")
	}
	return e, nil
}

// PeekFirst returns the first element without removing it. The second
// result is false if the deque is empty.
func (d *Deque[T]) PeekFirst() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	b := d.chain.at(d.chain.head)
	return b.slots[b.lo], true
}

// PeekLast returns the last element without removing it. The second
// result is false if the deque is empty.
func (d *Deque[T]) PeekLast() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	b := d.chain.at(d.chain.tail)
	return b.slots[b.hi-1], true
}

// GetFirst returns the first element, failing with EmptyContainer if there
// is none.
func (d *Deque[T]) GetFirst() (T, error) {
	e, ok := d.PeekFirst()
	if !ok {
		return e, errors.Annotate(EmptyContainer, "getting first element")
	}
	return e, nil
}

// GetLast returns the last element, failing with EmptyContainer if there
// is none.
func (d *Deque[T]) GetLast() (T, error) {
	e, ok := d.PeekLast()
	if !ok {
		return e, errors.Annotate(EmptyContainer, "getting last element")
	}
	return e, nil
}

// RemoveFirstOccurrence removes the first element equal to v and reports
// whether one was found.
func (d *Deque[T]) RemoveFirstOccurrence(v T) bool {
	return removeOccurrence(d.Iterator(), v)
}

// RemoveLastOccurrence removes the last element equal to v and reports
// whether one was found.
func (d *Deque[T]) RemoveLastOccurrence(v T) bool {
	return removeOccurrence(d.descendingCursor(), v)
}

func removeOccurrence[T comparable](it *Cursor[T], v T) bool {
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return false
		}
		if e == v {
			return it.Remove() == nil
		}
	}
	return false
}

// Contains reports whether any element is equal to v.
func (d *Deque[T]) Contains(v T) bool {
	for e := range d.All() {
		if e == v {
			return true
		}
	}
	return false
}

// Add is AddLast.
func (d *Deque[T]) Add(e T) error {
	return d.AddLast(e)
}

// Offer is OfferLast.
func (d *Deque[T]) Offer(e T) (bool, error) {
	return d.OfferLast(e)
}

// Push is AddFirst.
func (d *Deque[T]) Push(e T) error {
	return d.AddFirst(e)
}

// Pop is RemoveFirst.
func (d *Deque[T]) Pop() (T, error) {
	return d.RemoveFirst()
}

// Remove is RemoveFirst.
func (d *Deque[T]) Remove() (T, error) {
	return d.RemoveFirst()
}

// RemoveValue is RemoveFirstOccurrence.
func (d *Deque[T]) RemoveValue(v T) bool {
	return d.RemoveFirstOccurrence(v)
}

// Poll is PollFirst.
func (d *Deque[T]) Poll() (T, bool) {
	return d.PollFirst()
}

// Element is GetFirst.
func (d *Deque[T]) Element() (T, error) {
	return d.GetFirst()
}

// Peek is PeekFirst.
func (d *Deque[T]) Peek() (T, bool) {
	return d.PeekFirst()
}

// AddAll appends elems at the back in order and reports whether the deque
// changed. Either every element is added or, if any is nil or there is not
// enough room for all of them, none is.
func (d *Deque[T]) AddAll(elems ...T) (bool, error) {
	for i, e := range elems {
		if isAbsent(e) {
			return false, errors.Annotatef(InvalidElement, "adding nil %T at index %d", e, i)
		}
	}
	if free := d.capacityBound - d.size; len(elems) > free {
		d.logger.Debugf("rejecting %d elements with room for %d", len(elems), free)
		return false, errors.Annotatef(CapacityExceeded, "adding %d elements with room for %d", len(elems), free)
	}
	for _, e := range elems {
		d.insertLast(e)
	}
	return len(elems) > 0, nil
}

// AddSeq appends every element of seq at the back, with the same all or
// nothing behaviour as AddAll.
func (d *Deque[T]) AddSeq(seq iter.Seq[T]) (bool, error) {
	changed, err := d.AddAll(slices.Collect(seq)...)
	return changed, errors.Trace(err)
}

// Clear removes every element and releases all blocks.
func (d *Deque[T]) Clear() {
	d.chain.reset()
	d.size = 0
}

// All returns an iterator over the elements from front to back. The deque
// must not be modified while the iteration is in progress.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := &d.chain
		for i := c.head; i != noBlock; i = c.at(i).next {
			for j := c.at(i).lo; j < c.at(i).hi; j++ {
				if !yield(c.at(i).slots[j]) {
					return
				}
			}
		}
	}
}

// Slice returns the elements from front to back in a new slice.
func (d *Deque[T]) Slice() []T {
	out := make([]T, 0, d.size)
	for e := range d.All() {
		out = append(out, e)
	}
	return out
}

// String renders the elements from front to back.
func (d *Deque[T]) String() string {
	return fmt.Sprint(d.Slice())
}

// Slot is one raw position of a block, as reported by Block.
type Slot[T any] struct {
	Value    T
	Occupied bool
}

// Block returns a copy of the raw slots of the n-th block in chain order,
// counting from zero at the front. The second result is false if there is no
// such block. It exposes the internal layout and is meant for inspection
// only.
func (d *Deque[T]) Block(n int) ([]Slot[T], bool) {
	i, ok := d.chain.nth(n)
	if !ok {
		return nil, false
	}
	b := d.chain.at(i)
	out := make([]Slot[T], len(b.slots))
	for j, v := range b.slots {
		out[j] = Slot[T]{Value: v, Occupied: j >= b.lo && j < b.hi}
	}
	return out, true
}

// BlockCount returns the number of blocks in the chain.
func (d *Deque[T]) BlockCount() int {
	return d.chain.count()
}
