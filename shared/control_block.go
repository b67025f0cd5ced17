// File: shared/control_block.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shared

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/placement"
)

// controlBlock tracks shared ownership of one value.
type controlBlock interface {
	acquire()
	// release drops one reference and reports the 1->0 transition.
	release() bool
	count() int64
	// destroy runs the value's destructor.
	destroy()
	// deleteThis releases the block's own storage. Always runs after destroy.
	deleteThis()
}

// drop releases one reference; the caller that takes the count to zero
// destroys the value and then the block.
func drop(cb controlBlock) {
	if cb.release() {
		cb.destroy()
		cb.deleteThis()
	}
}

// counter keeps the reference count away from the value's cache line.
type counter struct {
	refs atomic.Int64
	_    cpu.CacheLinePad
}

func (c *counter) acquire()      { c.refs.Add(1) }
func (c *counter) release() bool { return c.refs.Add(-1) == 0 }
func (c *counter) count() int64  { return c.refs.Load() }

// separateBlock refers to a value allocated elsewhere.
type separateBlock[T any] struct {
	counter
	ptr *T
}

func newSeparate[T any](p *T) *separateBlock[T] {
	b := &separateBlock[T]{ptr: p}
	b.refs.Store(1)
	observer.Emit(api.EventConstruct, api.KindSeparate)
	return b
}

func (b *separateBlock[T]) destroy() {
	placement.Destroy(b.ptr)
	observer.Emit(api.EventDestroy, api.KindSeparate)
}

func (b *separateBlock[T]) deleteThis() {
	b.ptr = nil
	observer.Emit(api.EventRelease, api.KindSeparate)
}

// inlineBlock embeds the value; the handle points into the block.
type inlineBlock[T any] struct {
	counter
	value T
}

func newInline[T any]() *inlineBlock[T] {
	b := &inlineBlock[T]{}
	b.refs.Store(1)
	observer.Emit(api.EventConstruct, api.KindInline)
	return b
}

// destroy runs the destructor in place; the storage stays with the block
// until deleteThis.
func (b *inlineBlock[T]) destroy() {
	placement.Destroy(&b.value)
	observer.Emit(api.EventDestroy, api.KindInline)
}

func (b *inlineBlock[T]) deleteThis() {
	observer.Emit(api.EventRelease, api.KindInline)
}

var (
	_ controlBlock = (*separateBlock[int])(nil)
	_ controlBlock = (*inlineBlock[int])(nil)
)
