// File: unique/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package unique

import (
	"fmt"
	"unsafe"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/placement"
)

// Array is the sole owner of a run of T. Elements are destroyed last to
// first. A run of length zero, nil or not, counts as empty.
type Array[T any] struct {
	_    noCopy
	data []T
}

// NewArray adopts s. A nil or zero-length s yields an empty handle.
func NewArray[T any](s []T) Array[T] {
	return Array[T]{data: s}
}

// MakeArray allocates n zero-valued elements.
func MakeArray[T any](n int) (Array[T], error) {
	if n < 0 {
		return Array[T]{}, fmt.Errorf("unique: array length %d: %w", n, api.ErrInvalidArgument)
	}
	return Array[T]{data: make([]T, n)}, nil
}

// At returns a pointer to element i. Bounds are the caller's contract.
func (a *Array[T]) At(i int) *T { return &a.data[i] }

// Len returns the number of owned elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Slice exposes the owned elements without giving up ownership.
func (a *Array[T]) Slice() []T { return a.data }

// Empty reports whether the handle owns no elements.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// Release gives up ownership and returns the elements undestroyed.
func (a *Array[T]) Release() []T {
	s := a.data
	a.data = nil
	return s
}

// Reset destroys the owned elements and adopts s. Resetting to the run
// already owned does nothing.
func (a *Array[T]) Reset(s []T) {
	old := a.data
	if sameRun(old, s) {
		return
	}
	a.data = s
	if len(old) != 0 {
		placement.DestroyRange(old)
		observer.Emit(api.EventDestroy, api.KindUniqueArray)
	}
}

// Close destroys the owned elements and empties the handle.
func (a *Array[T]) Close() { a.Reset(nil) }

// Move transfers ownership to the returned handle and empties a.
func (a *Array[T]) Move() Array[T] {
	return Array[T]{data: a.Release()}
}

// MoveFrom destroys the elements a owns and takes over src's elements.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if src == a {
		return
	}
	a.Reset(src.Release())
}

// Swap exchanges the owned runs.
func (a *Array[T]) Swap(o *Array[T]) {
	a.data, o.data = o.data, a.data
}

// sameRun reports whether a and b are the same non-empty run. Zero-length
// runs share no elements, so they never match.
func sameRun[T any](a, b []T) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}
