// File: core/placement/placement.go
// Package placement constructs and destroys values inside storage the caller
// already owns.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deque blocks and inline control blocks keep their values in preallocated
// slots. Construct writes a value into a slot; Destroy runs the value's
// disposal hook and zeroes the slot without giving the storage back.

package placement

import (
	"reflect"

	"github.com/momentics/hioload-mem/api"
)

// Construct stores v in slot and returns slot.
func Construct[T any](slot *T, v T) *T {
	*slot = v
	return slot
}

// ConstructWith zeroes slot and lets init build the value in place.
// A nil init leaves the zero value.
func ConstructWith[T any](slot *T, init func(*T)) *T {
	var zero T
	*slot = zero
	if init != nil {
		init(slot)
	}
	return slot
}

// Destroy runs the disposal hook of the value at slot, then zeroes the slot.
// The hook is looked up on *T first, then on T. When T is itself a pointer
// type the slot does not own the pointee: only the slot is zeroed.
func Destroy[T any](slot *T) {
	if slot == nil {
		return
	}
	dispose(slot)
	var zero T
	*slot = zero
}

// DestroyRange destroys every element of s, last to first.
func DestroyRange[T any](s []T) {
	for i := len(s) - 1; i >= 0; i-- {
		Destroy(&s[i])
	}
}

func dispose[T any](slot *T) {
	if d, ok := any(slot).(api.Disposable); ok {
		d.Dispose()
		return
	}
	if reflect.TypeFor[T]().Kind() == reflect.Pointer {
		return
	}
	if d, ok := any(*slot).(api.Disposable); ok && !nilPointer(d) {
		d.Dispose()
	}
}

// nilPointer reports a nil pointer stored in a non-nil interface, which is
// what an empty slot of pointer type looks like.
func nilPointer(d api.Disposable) bool {
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
