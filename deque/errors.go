// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package deque

import (
	"reflect"

	"github.com/juju/errors"
)

const (
	// InvalidElement is returned when an insertion is given a nil element.
	// A nil slot means "empty", so nil can never be stored.
	InvalidElement = errors.ConstError("invalid element")

	// CapacityExceeded is returned when an insertion would take the deque
	// past its capacity bound.
	CapacityExceeded = errors.ConstError("capacity exceeded")

	// EmptyContainer is returned when an element is requested from an
	// empty deque by an operation that does not report absence itself.
	EmptyContainer = errors.ConstError("deque is empty")

	// Exhausted is returned when a cursor is advanced past the last element.
	Exhausted = errors.ConstError("iteration exhausted")

	// IllegalState is returned when a cursor is asked to remove an element
	// it has not returned, or has already removed.
	IllegalState = errors.ConstError("illegal cursor state")
)

// isAbsent reports whether e is a nil value: a nil interface, or a nil
// pointer, channel, map, slice or function.
func isAbsent[T any](e T) bool {
	v := any(e)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
