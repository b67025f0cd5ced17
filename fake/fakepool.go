// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// Allocator is a trivial api.BlockAllocator that never reuses chunks and
// remembers which chunks are outstanding.
type Allocator[B any] struct {
	mu          sync.Mutex
	outstanding map[*B]struct{}
	gets, puts  int64
}

// NewAllocator creates an empty allocator.
func NewAllocator[B any]() *Allocator[B] {
	return &Allocator[B]{outstanding: make(map[*B]struct{})}
}

func (a *Allocator[B]) Get() *B {
	b := new(B)
	a.mu.Lock()
	a.outstanding[b] = struct{}{}
	a.gets++
	a.mu.Unlock()
	return b
}

// Put panics on a chunk this allocator did not hand out or already got back.
func (a *Allocator[B]) Put(b *B) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.outstanding[b]; !ok {
		panic("fake: put of unknown or already returned block")
	}
	delete(a.outstanding, b)
	a.puts++
}

// Outstanding returns the number of chunks not yet returned.
func (a *Allocator[B]) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.outstanding)
}

func (a *Allocator[B]) Stats() api.ArenaStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return api.ArenaStats{
		TotalAlloc: a.gets,
		TotalFree:  a.puts,
		InUse:      a.gets - a.puts,
	}
}

var _ api.BlockAllocator[[8]int] = (*Allocator[[8]int])(nil)
