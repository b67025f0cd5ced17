// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

// Kind names the owner that produced a lifecycle event.
type Kind string

const (
	KindSeparate    Kind = "separate"
	KindInline      Kind = "inline"
	KindUnique      Kind = "unique"
	KindUniqueArray Kind = "unique_array"
	KindDequeBlock  Kind = "deque_block"
	KindDequeMap    Kind = "deque_map"
)

// HandleState enumerates the lifecycle of a shared value.
type HandleState int

const (
	StateEmpty HandleState = iota
	StateUnshared
	StateShared
	StateDestroyed
)

func (s HandleState) String() string {
	switch s {
	case StateUnshared:
		return "unshared"
	case StateShared:
		return "shared"
	case StateDestroyed:
		return "destroyed"
	default:
		return "empty"
	}
}
