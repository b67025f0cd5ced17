// Package api
// Author: momentics <momentics@gmail.com>
//
// Disposal hook and fixed-size chunk allocation contracts.
// Chunks handed out by a BlockAllocator are zeroed and owned by the caller
// until they are given back with Put.

package api

// Disposable is implemented by values that must run cleanup when their
// owner destroys them. Dispose is called exactly once per constructed value.
type Disposable interface {
	Dispose()
}

// BlockAllocator hands out fixed-size chunks of type B.
type BlockAllocator[B any] interface {
	// Get returns a zeroed chunk.
	Get() *B

	// Put returns a chunk for reuse; it must not be used afterwards.
	Put(b *B)

	// Stats exposes allocation/reuse counters for observability.
	Stats() ArenaStats
}

// ArenaStats aggregates chunk allocation/reuse stats.
type ArenaStats struct {
	TotalAlloc int64 // chunks created from scratch
	TotalReuse int64 // chunks served from the spare list or overflow pool
	TotalFree  int64 // chunks given back
	Spare      int64 // chunks currently parked in the spare list
	InUse      int64 // chunks handed out and not yet returned
}
