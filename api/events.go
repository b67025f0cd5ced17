// File: api/events.go
// Package api defines lifecycle event types for hioload-mem.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Event is a lifecycle transition reported by handles, arenas and deques.
type Event uint8

const (
	EventConstruct  Event = iota + 1 // control block created
	EventDestroy                     // owned value destroyed
	EventRelease                     // control block storage released
	EventBlockAlloc                  // chunk created from scratch
	EventBlockReuse                  // chunk served from a spare tier
	EventBlockFree                   // chunk given back
	EventMapGrow                     // deque block map doubled
)

func (e Event) String() string {
	switch e {
	case EventConstruct:
		return "construct"
	case EventDestroy:
		return "destroy"
	case EventRelease:
		return "release"
	case EventBlockAlloc:
		return "block_alloc"
	case EventBlockReuse:
		return "block_reuse"
	case EventBlockFree:
		return "block_free"
	case EventMapGrow:
		return "map_grow"
	default:
		return "unknown"
	}
}

// Observer receives lifecycle events. Implementations must be safe for
// concurrent use: shared handles report from whichever goroutine drops the
// last reference.
type Observer interface {
	Observe(ev Event, kind Kind)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) Observe(Event, Kind) {}
