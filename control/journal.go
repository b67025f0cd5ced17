// control/journal.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO of recent lifecycle events for post-mortem inspection.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-mem/api"
)

// JournalEntry is one recorded event.
type JournalEntry struct {
	Seq   uint64
	At    time.Time
	Event api.Event
	Kind  api.Kind
}

// Journal keeps the last N entries; older ones are evicted first.
type Journal struct {
	mu      sync.Mutex
	q       *queue.Queue
	limit   int
	seq     uint64
	evicted uint64
}

// NewJournal creates a journal holding up to limit entries, minimum 1.
func NewJournal(limit int) *Journal {
	if limit < 1 {
		limit = 1
	}
	return &Journal{q: queue.New(), limit: limit}
}

// Record appends an entry, evicting the oldest when full.
func (j *Journal) Record(ev api.Event, kind api.Kind) {
	now := time.Now()
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.q.Length() == j.limit {
		j.q.Remove()
		j.evicted++
	}
	j.seq++
	j.q.Add(JournalEntry{Seq: j.seq, At: now, Event: ev, Kind: kind})
}

// Snapshot returns the entries oldest first.
func (j *Journal) Snapshot() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]JournalEntry, j.q.Length())
	for i := range out {
		out[i] = j.q.Get(i).(JournalEntry)
	}
	return out
}

// Len returns the number of entries held.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}

// Evicted returns how many entries were dropped to make room.
func (j *Journal) Evicted() uint64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.evicted
}
