// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake observer, allocator and disposable values for testing.

package fake

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// Record is one observed event.
type Record struct {
	Event api.Event
	Kind  api.Kind
}

// Observer records every event it receives. Safe for concurrent use.
type Observer struct {
	mu      sync.Mutex
	records []Record
}

// NewObserver creates an empty recording observer.
func NewObserver() *Observer {
	return &Observer{}
}

func (o *Observer) Observe(ev api.Event, kind api.Kind) {
	o.mu.Lock()
	o.records = append(o.records, Record{Event: ev, Kind: kind})
	o.mu.Unlock()
}

// Records returns a copy of everything observed so far.
func (o *Observer) Records() []Record {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Record, len(o.records))
	copy(out, o.records)
	return out
}

// Count returns how many times ev was observed for kind.
func (o *Observer) Count(ev api.Event, kind api.Kind) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, r := range o.records {
		if r.Event == ev && r.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets all records.
func (o *Observer) Reset() {
	o.mu.Lock()
	o.records = o.records[:0]
	o.mu.Unlock()
}

var _ api.Observer = (*Observer)(nil)
