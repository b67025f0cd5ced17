// File: shared/shared.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shared

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/placement"
	"github.com/momentics/hioload-mem/internal/observe"
)

var observer observe.Slot

// SetObserver installs the observer notified on block construction, value
// destruction and block release. nil restores the discarding default.
func SetObserver(o api.Observer) { observer.Set(o) }

// noCopy is recognised by vet's copylocks check. Use Clone to share.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Shared is one reference to a reference-counted value. The zero value is
// empty.
type Shared[T any] struct {
	_   noCopy
	ptr *T
	cb  controlBlock
}

// New takes shared ownership of p with a separate control block.
// A nil p yields an empty handle and allocates nothing.
func New[T any](p *T) Shared[T] {
	if p == nil {
		return Shared[T]{}
	}
	return Shared[T]{ptr: p, cb: newSeparate(p)}
}

// Make allocates v together with its control block.
func Make[T any](v T) Shared[T] {
	b := newInline[T]()
	return Shared[T]{ptr: placement.Construct(&b.value, v), cb: b}
}

// MakeWith allocates the control block and builds the value in place.
func MakeWith[T any](init func(*T)) Shared[T] {
	b := newInline[T]()
	return Shared[T]{ptr: placement.ConstructWith(&b.value, init), cb: b}
}

// Get returns the shared pointer, nil when empty.
func (s *Shared[T]) Get() *T { return s.ptr }

// Empty reports whether the handle refers to nothing.
func (s *Shared[T]) Empty() bool { return s.ptr == nil }

// UseCount returns the number of handles sharing the value, 0 when empty.
func (s *Shared[T]) UseCount() int64 {
	if s.cb == nil {
		return 0
	}
	return s.cb.count()
}

// Unique reports whether s is the only handle to its value.
func (s *Shared[T]) Unique() bool { return s.UseCount() == 1 }

// State classifies the handle. A live handle never observes
// api.StateDestroyed.
func (s *Shared[T]) State() api.HandleState {
	switch n := s.UseCount(); {
	case n == 0:
		return api.StateEmpty
	case n == 1:
		return api.StateUnshared
	default:
		return api.StateShared
	}
}

// Clone returns a new handle to the same value.
func (s *Shared[T]) Clone() Shared[T] {
	if s.cb != nil {
		s.cb.acquire()
	}
	return Shared[T]{ptr: s.ptr, cb: s.cb}
}

// Move transfers the reference to the returned handle and empties s.
// The count is unchanged.
func (s *Shared[T]) Move() Shared[T] {
	ptr, cb := s.ptr, s.cb
	s.ptr, s.cb = nil, nil
	return Shared[T]{ptr: ptr, cb: cb}
}

// Reset empties s and drops its reference. The handle is emptied before the
// count is decremented.
func (s *Shared[T]) Reset() {
	cb := s.cb
	s.ptr, s.cb = nil, nil
	if cb != nil {
		drop(cb)
	}
}

// Close is Reset.
func (s *Shared[T]) Close() { s.Reset() }

// Assign makes s share o's value, dropping s's previous reference.
func (s *Shared[T]) Assign(o *Shared[T]) {
	if s == o || s.cb == o.cb {
		return
	}
	if o.cb != nil {
		o.cb.acquire()
	}
	old := s.cb
	s.ptr, s.cb = o.ptr, o.cb
	if old != nil {
		drop(old)
	}
}

// MoveAssign takes over o's reference and drops s's previous one.
func (s *Shared[T]) MoveAssign(o *Shared[T]) {
	if s == o {
		return
	}
	tmp := o.Move()
	s.Swap(&tmp)
	tmp.Reset()
}

// Swap exchanges the references held by s and o.
func (s *Shared[T]) Swap(o *Shared[T]) {
	s.ptr, o.ptr = o.ptr, s.ptr
	s.cb, o.cb = o.cb, s.cb
}
