// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package deque provides a bounded double-ended queue stored as a doubly
// linked chain of fixed size blocks.
//
// Blocks are allocated at either end as the deque grows and retired as soon
// as they are emptied. While the chain has more than one block, every block
// between the head and the tail is full, so the elements are dense apart from
// the two ends. Blocks refer to their neighbours by index into an arena owned
// by the deque, and retired blocks are reused before the arena grows.
//
// Elements are compared with ==. Nil elements are rejected with
// InvalidElement.
package deque
