// File: unique/unique.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package unique

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/placement"
	"github.com/momentics/hioload-mem/internal/observe"
)

var observer observe.Slot

// SetObserver installs the observer notified on every destruction.
// nil restores the default, which discards events.
func SetObserver(o api.Observer) { observer.Set(o) }

// noCopy is recognised by vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Unique is the sole owner of a *T.
type Unique[T any] struct {
	_   noCopy
	ptr *T
}

// New adopts p. A nil p yields an empty handle.
func New[T any](p *T) Unique[T] {
	return Unique[T]{ptr: p}
}

// Make allocates a T holding v.
func Make[T any](v T) Unique[T] {
	return Unique[T]{ptr: placement.Construct(new(T), v)}
}

// MakeWith allocates a T and builds it in place with init.
func MakeWith[T any](init func(*T)) Unique[T] {
	return Unique[T]{ptr: placement.ConstructWith(new(T), init)}
}

// Get returns the owned pointer without giving up ownership.
func (u *Unique[T]) Get() *T { return u.ptr }

// Empty reports whether the handle owns nothing.
func (u *Unique[T]) Empty() bool { return u.ptr == nil }

// Release gives up ownership and returns the pointer. The value is not
// destroyed.
func (u *Unique[T]) Release() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset destroys the owned value, if any, and adopts p. Resetting to the
// pointer already owned does nothing.
func (u *Unique[T]) Reset(p *T) {
	old := u.ptr
	if old == p {
		return
	}
	u.ptr = p
	if old != nil {
		placement.Destroy(old)
		observer.Emit(api.EventDestroy, api.KindUnique)
	}
}

// Close destroys the owned value and empties the handle.
func (u *Unique[T]) Close() { u.Reset(nil) }

// Move transfers ownership to the returned handle and empties u.
func (u *Unique[T]) Move() Unique[T] {
	return Unique[T]{ptr: u.Release()}
}

// MoveFrom destroys the value u owns and takes over src's value.
func (u *Unique[T]) MoveFrom(src *Unique[T]) {
	if src == u {
		return
	}
	u.Reset(src.Release())
}

// Swap exchanges the owned pointers.
func (u *Unique[T]) Swap(o *Unique[T]) {
	u.ptr, o.ptr = o.ptr, u.ptr
}
