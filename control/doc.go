// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, metrics, lifecycle journal and debug introspection for
// hioload-mem runtimes.
//
// Provides concurrent-safe primitives including:
//   - Typed configuration loaded from YAML, .env files and the environment
//   - A config store with snapshot reads and reload listeners
//   - VictoriaMetrics counters and gauges exported in Prometheus format
//   - A bounded journal of recent lifecycle events
//   - A Monitor that turns handle, arena and deque events into all of the above
//   - Debug probes and platform probes
//
// Platform probes are build-tag-partitioned.
package control
