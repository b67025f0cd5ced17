// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// SyncPool wraps sync.Pool for generic usage.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function. A nil creator
// leaves the pool without a fallback; Get then returns the zero T when empty.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	p := &sync.Pool{}
	if creator != nil {
		p.New = func() any { return creator() }
	}
	return &SyncPool[T]{pool: p}
}

func (sp *SyncPool[T]) Get() T {
	v, _ := sp.TryGet()
	return v
}

// TryGet returns a pooled object, reporting false when the pool had nothing
// and no creator is set.
func (sp *SyncPool[T]) TryGet() (T, bool) {
	v := sp.pool.Get()
	if v == nil {
		var zero T
		return zero, false
	}
	return v.(T), true
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var _ api.ObjectPool[[]byte] = (*SyncPool[[]byte])(nil)
