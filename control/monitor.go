// control/monitor.go
// Author: momentics <momentics@gmail.com>
//
// Monitor turns lifecycle events into counters, journal entries and trace
// logs.

package control

import (
	"github.com/rs/zerolog"

	"github.com/momentics/hioload-mem/api"
)

// Monitor is an api.Observer. Nil metrics or journal disable that output.
type Monitor struct {
	metrics *MetricsRegistry
	journal *Journal
	log     zerolog.Logger
}

var _ api.Observer = (*Monitor)(nil)

// NewMonitor creates a monitor feeding mr and j.
func NewMonitor(mr *MetricsRegistry, j *Journal, log zerolog.Logger) *Monitor {
	return &Monitor{metrics: mr, journal: j, log: log}
}

// EventCounterName returns the counter name used for ev/kind.
func EventCounterName(ev api.Event, kind api.Kind) string {
	return `events_total{event="` + ev.String() + `",kind="` + string(kind) + `"}`
}

// Observe records one event.
func (m *Monitor) Observe(ev api.Event, kind api.Kind) {
	if m.metrics != nil {
		m.metrics.Inc(EventCounterName(ev, kind))
	}
	if m.journal != nil {
		m.journal.Record(ev, kind)
	}
	m.log.Trace().
		Stringer("event", ev).
		Str("kind", string(kind)).
		Msg("[monitor] lifecycle event")
}

// Journal returns the journal, nil when disabled.
func (m *Monitor) Journal() *Journal { return m.journal }
