// Package observe holds the process-wide observer slot used by the handle
// packages.
// Author: momentics <momentics@gmail.com>

package observe

import (
	"sync/atomic"

	"github.com/momentics/hioload-mem/api"
)

type holder struct{ o api.Observer }

// Slot is an atomically replaceable api.Observer. The zero Slot discards
// events.
type Slot struct {
	p atomic.Pointer[holder]
}

// Set installs o. A nil o restores the discarding default.
func (s *Slot) Set(o api.Observer) {
	if o == nil {
		s.p.Store(nil)
		return
	}
	s.p.Store(&holder{o: o})
}

// Get returns the installed observer or api.NopObserver.
func (s *Slot) Get() api.Observer {
	if h := s.p.Load(); h != nil {
		return h.o
	}
	return api.NopObserver{}
}

// Emit forwards one event to the installed observer.
func (s *Slot) Emit(ev api.Event, kind api.Kind) {
	if h := s.p.Load(); h != nil {
		h.o.Observe(ev, kind)
	}
}
