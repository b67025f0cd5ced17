// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector backed by a VictoriaMetrics set.
// Counters and gauges are created on first use and exported in Prometheus
// text format; free-form values set with Set appear only in snapshots.

package control

import (
	"io"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

// MetricsRegistry holds named counters, gauges and free-form values.
type MetricsRegistry struct {
	set    *metrics.Set
	prefix string

	mu       sync.RWMutex
	counters map[string]*metrics.Counter
	gauges   map[string]*metrics.Gauge
	values   map[string]any
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry. Every metric name is
// prefixed with prefix and an underscore, unless prefix is empty.
func NewMetricsRegistry(prefix string) *MetricsRegistry {
	return &MetricsRegistry{
		set:      metrics.NewSet(),
		prefix:   prefix,
		counters: make(map[string]*metrics.Counter),
		gauges:   make(map[string]*metrics.Gauge),
		values:   make(map[string]any),
	}
}

func (mr *MetricsRegistry) fullName(name string) string {
	if mr.prefix == "" {
		return name
	}
	return mr.prefix + "_" + name
}

// Counter returns the counter called name, creating it on first use.
// name may carry Prometheus labels, e.g. `events_total{kind="inline"}`.
func (mr *MetricsRegistry) Counter(name string) *metrics.Counter {
	full := mr.fullName(name)
	mr.mu.RLock()
	c, ok := mr.counters[full]
	mr.mu.RUnlock()
	if ok {
		return c
	}

	mr.mu.Lock()
	defer mr.mu.Unlock()
	if c, ok = mr.counters[full]; !ok {
		c = mr.set.GetOrCreateCounter(full)
		mr.counters[full] = c
		mr.updated = time.Now()
	}
	return c
}

// Inc increments the counter called name.
func (mr *MetricsRegistry) Inc(name string) {
	mr.Counter(name).Inc()
}

// Gauge registers fn as the gauge called name. A second registration under
// the same name keeps the first fn.
func (mr *MetricsRegistry) Gauge(name string, fn func() float64) {
	full := mr.fullName(name)
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if _, ok := mr.gauges[full]; ok {
		return
	}
	mr.gauges[full] = mr.set.GetOrCreateGauge(full, fn)
	mr.updated = time.Now()
}

// Set sets or updates a free-form value.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.values[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Updated returns the time of the last registration or Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// GetSnapshot returns free-form values, counter values and gauge readings
// keyed by full metric name.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.values)+len(mr.counters)+len(mr.gauges))
	for k, v := range mr.values {
		out[k] = v
	}
	for k, c := range mr.counters {
		out[k] = c.Get()
	}
	for k, g := range mr.gauges {
		out[k] = g.Get()
	}
	return out
}

// WritePrometheus writes counters and gauges in Prometheus text format.
func (mr *MetricsRegistry) WritePrometheus(w io.Writer) {
	mr.set.WritePrometheus(w)
}

// Reset drops every counter and gauge.
func (mr *MetricsRegistry) Reset() {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.set.UnregisterAllMetrics()
	clear(mr.counters)
	clear(mr.gauges)
	mr.updated = time.Now()
}
