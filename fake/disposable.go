// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "sync/atomic"

// Counter tracks how many Tracked values are alive.
type Counter struct {
	live     atomic.Int64
	disposed atomic.Int64
}

// Live returns constructed minus disposed.
func (c *Counter) Live() int64 { return c.live.Load() }

// Disposed returns the total number of Dispose calls.
func (c *Counter) Disposed() int64 { return c.disposed.Load() }

// Tracked is a value whose construction and disposal are counted.
type Tracked struct {
	ID      int
	counter *Counter
}

// NewTracked constructs a Tracked registered with c.
func NewTracked(c *Counter, id int) Tracked {
	c.live.Add(1)
	return Tracked{ID: id, counter: c}
}

// Init builds a Tracked in place; suitable for MakeWith/Emplace calls.
func (c *Counter) Init(id int) func(*Tracked) {
	return func(t *Tracked) {
		c.live.Add(1)
		t.ID, t.counter = id, c
	}
}

func (t *Tracked) Dispose() {
	if t.counter == nil {
		return
	}
	t.counter.live.Add(-1)
	t.counter.disposed.Add(1)
}
