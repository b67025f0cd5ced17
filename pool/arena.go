// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/concurrency"
	"github.com/momentics/hioload-mem/internal/observe"
)

// DefaultSpareBlocks is the spare list capacity used by NewArena.
const DefaultSpareBlocks = 64

// Arena hands out zeroed *B chunks and takes them back for reuse.
type Arena[B any] struct {
	name     string
	kind     api.Kind
	spare    atomic.Pointer[concurrency.LockFreeQueue[*B]]
	overflow *SyncPool[*B]
	observer observe.Slot
	log      atomic.Pointer[zerolog.Logger]

	totalAlloc atomic.Int64
	totalReuse atomic.Int64
	totalFree  atomic.Int64
}

// NewArena creates an arena with DefaultSpareBlocks spare slots.
func NewArena[B any](name string) *Arena[B] {
	return NewArenaWithLimit[B](name, DefaultSpareBlocks)
}

// NewArenaWithLimit creates an arena whose spare list holds up to spare
// chunks, rounded up to a power of two, minimum 2.
func NewArenaWithLimit[B any](name string, spare int) *Arena[B] {
	a := &Arena[B]{
		name:     name,
		kind:     api.KindDequeBlock,
		overflow: NewSyncPool[*B](nil),
	}
	a.spare.Store(concurrency.NewLockFreeQueue[*B](spare))
	nop := zerolog.Nop()
	a.log.Store(&nop)
	return a
}

// Name returns the arena name given at creation.
func (a *Arena[B]) Name() string { return a.name }

// SetObserver installs the observer for this arena's chunk events. nil
// restores the discarding default.
func (a *Arena[B]) SetObserver(o api.Observer) { a.observer.Set(o) }

// SetLogger replaces the arena logger.
func (a *Arena[B]) SetLogger(l zerolog.Logger) {
	l = l.With().Str("arena", a.name).Logger()
	a.log.Store(&l)
}

// Get returns a zeroed chunk.
func (a *Arena[B]) Get() *B {
	if b, ok := a.spare.Load().Dequeue(); ok {
		a.totalReuse.Add(1)
		a.observer.Emit(api.EventBlockReuse, a.kind)
		return b
	}
	if b, ok := a.overflow.TryGet(); ok && b != nil {
		a.totalReuse.Add(1)
		a.observer.Emit(api.EventBlockReuse, a.kind)
		return b
	}
	a.totalAlloc.Add(1)
	a.observer.Emit(api.EventBlockAlloc, a.kind)
	return new(B)
}

// Put zeroes b and keeps it for reuse. b must not be used afterwards.
// Put(nil) is a no-op.
func (a *Arena[B]) Put(b *B) {
	if b == nil {
		return
	}
	var zero B
	*b = zero
	a.totalFree.Add(1)
	a.observer.Emit(api.EventBlockFree, a.kind)
	a.park(b)
}

// park stores b in the current spare list, or the overflow pool when it is
// full. A list swapped out by SetSpareLimit while b was being enqueued is
// emptied into its successor so no chunk is left behind in it.
func (a *Arena[B]) park(b *B) {
	q := a.spare.Load()
	if !q.Enqueue(b) {
		a.overflow.Put(b)
		return
	}
	if a.spare.Load() != q {
		a.rescue(q)
	}
}

// rescue moves every chunk of a retired spare list back into the arena.
func (a *Arena[B]) rescue(q *concurrency.LockFreeQueue[*B]) int {
	n := 0
	for {
		b, ok := q.Dequeue()
		if !ok {
			return n
		}
		a.park(b)
		n++
	}
}

// SetSpareLimit replaces the spare list with one of capacity n. Parked
// chunks move to the new list; those that no longer fit go to the overflow
// pool. A Put racing the swap parks its chunk in the new list as well.
func (a *Arena[B]) SetSpareLimit(n int) {
	next := concurrency.NewLockFreeQueue[*B](n)
	prev := a.spare.Swap(next)
	moved := a.rescue(prev)
	a.log.Load().Debug().
		Int("limit", next.Cap()).
		Int("moved", moved).
		Msg("[pool] spare limit changed")
}

// SpareLimit returns the current spare list capacity.
func (a *Arena[B]) SpareLimit() int { return a.spare.Load().Cap() }

// Drain drops every parked chunk and returns how many were dropped. The
// overflow pool is left to the garbage collector.
func (a *Arena[B]) Drain() int {
	q := a.spare.Load()
	n := 0
	for {
		if _, ok := q.Dequeue(); !ok {
			break
		}
		n++
	}
	a.log.Load().Debug().Int("dropped", n).Msg("[pool] drained")
	return n
}

// Stats returns a snapshot of the arena counters.
func (a *Arena[B]) Stats() api.ArenaStats {
	alloc := a.totalAlloc.Load()
	reuse := a.totalReuse.Load()
	free := a.totalFree.Load()
	return api.ArenaStats{
		TotalAlloc: alloc,
		TotalReuse: reuse,
		TotalFree:  free,
		Spare:      int64(a.spare.Load().Len()),
		InUse:      alloc + reuse - free,
	}
}

var _ api.BlockAllocator[[8]int] = (*Arena[[8]int])(nil)
