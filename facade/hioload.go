// File: facade/hioload.go
// Unified facade layer for hioload-mem.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime wires configuration, metrics, the lifecycle journal, debug probes
// and block arenas together, and installs its Monitor as the observer of the
// handle and deque packages. Arenas and deques are created through generic
// functions because Go methods cannot take type parameters.

package facade

import (
	"os"
	"regexp"
	"sync"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-mem/adapters"
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/control"
	"github.com/momentics/hioload-mem/deque"
	"github.com/momentics/hioload-mem/pool"
	"github.com/momentics/hioload-mem/shared"
	"github.com/momentics/hioload-mem/unique"
)

// managedArena is the type-erased view of a pool.Arena kept by the Runtime.
type managedArena interface {
	Name() string
	SetSpareLimit(n int)
	Drain() int
	Stats() api.ArenaStats
	SetObserver(o api.Observer)
}

// Runtime is the main facade type.
// It implements api.GracefulShutdown to allow unified shutdown logic.
type Runtime struct {
	log     zerolog.Logger
	store   *control.ConfigStore
	metrics *control.MetricsRegistry // nil when metrics are disabled
	probes  *control.DebugProbes     // nil when debug is disabled
	journal *control.Journal         // nil when debug is disabled
	monitor *control.Monitor
	control *adapters.ControlAdapter

	mu     sync.Mutex
	arenas map[string]managedArena
	spare  int
	closed bool
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*Runtime)(nil)

// New builds a Runtime logging JSON to stderr. A nil cfg uses
// control.DefaultConfig.
func New(cfg *control.Config) (*Runtime, error) {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	log, err := control.NewLogger(os.Stderr, cfg.Log.Level, "hioload-mem")
	if err != nil {
		return nil, err
	}
	return NewWithLogger(cfg, log)
}

// NewWithLogger builds a Runtime that logs to log.
func NewWithLogger(cfg *control.Config, log zerolog.Logger) (*Runtime, error) {
	if cfg == nil {
		cfg = control.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runtime{
		log:    log,
		store:  control.NewConfigStore(cfg),
		arenas: make(map[string]managedArena),
		spare:  cfg.Arena.SpareBlocks,
	}
	if cfg.Metrics.Enabled {
		r.metrics = control.NewMetricsRegistry(cfg.Metrics.Prefix)
	}
	if cfg.Debug.Enabled {
		r.probes = control.NewDebugProbes()
		r.journal = control.NewJournal(cfg.Debug.JournalSize)
		control.RegisterPlatformProbes(r.probes)
		r.probes.RegisterProbe("journal", func() any {
			return map[string]any{
				"len":     r.journal.Len(),
				"evicted": r.journal.Evicted(),
			}
		})
	}
	r.monitor = control.NewMonitor(r.metrics, r.journal, log)
	r.control = adapters.WrapControl(r.store, r.metrics, r.probes)
	r.store.OnReload(r.reload)

	unique.SetObserver(r.monitor)
	shared.SetObserver(r.monitor)
	deque.SetObserver(r.monitor)

	r.log.Info().
		Int("spare_blocks", cfg.Arena.SpareBlocks).
		Bool("metrics", cfg.Metrics.Enabled).
		Bool("debug", cfg.Debug.Enabled).
		Msg("[facade] runtime started")
	return r, nil
}

// reload pushes a changed spare limit to every arena.
func (r *Runtime) reload() {
	spare := r.store.Config().Arena.SpareBlocks
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || spare == r.spare {
		return
	}
	r.spare = spare
	for _, a := range r.arenas {
		a.SetSpareLimit(spare)
	}
	r.log.Info().Int("spare_blocks", spare).Msg("[facade] arena spare limit reloaded")
}

var arenaNameRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// NewArena creates a deque block arena registered with rt: it reports to
// rt's monitor, follows the configured spare limit and exposes its stats as
// the probe "arena.<name>" and as gauges.
func NewArena[T any](rt *Runtime, name string) (*pool.Arena[deque.Block[T]], error) {
	if !arenaNameRe.MatchString(name) {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "invalid arena name").WithContext("arena", name)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.closed {
		return nil, api.NewError(api.ErrCodeClosed, "runtime is shut down").WithContext("arena", name)
	}
	if _, ok := rt.arenas[name]; ok {
		return nil, api.NewError(api.ErrCodeAlreadyExists, "arena already registered").WithContext("arena", name)
	}

	a := pool.NewArenaWithLimit[deque.Block[T]](name, rt.spare)
	a.SetObserver(rt.monitor)
	a.SetLogger(rt.log)
	rt.arenas[name] = a

	if rt.probes != nil {
		rt.probes.RegisterProbe("arena."+name, func() any { return a.Stats() })
	}
	if rt.metrics != nil {
		label := `{arena="` + name + `"}`
		rt.metrics.Gauge("arena_spare_blocks"+label, func() float64 { return float64(a.Stats().Spare) })
		rt.metrics.Gauge("arena_in_use_blocks"+label, func() float64 { return float64(a.Stats().InUse) })
	}
	rt.log.Debug().Str("arena", name).Int("spare_limit", a.SpareLimit()).Msg("[facade] arena registered")
	return a, nil
}

// NewDeque creates a deque drawing blocks from a (the heap when nil) and
// logging through rt.
func NewDeque[T any](rt *Runtime, a *pool.Arena[deque.Block[T]]) *deque.Deque[T] {
	var d *deque.Deque[T]
	if a == nil {
		d = deque.New[T]()
	} else {
		d = deque.NewWithArena[T](a)
	}
	d.SetLogger(rt.log)
	return d
}

// Control returns the Control interface for dynamic config and metrics.
func (r *Runtime) Control() api.Control { return r.control }

// Debug returns the probe registry, nil when debug is disabled.
func (r *Runtime) Debug() api.Debug {
	if r.probes == nil {
		return nil
	}
	return r.probes
}

// Config returns the current typed configuration.
func (r *Runtime) Config() control.Config { return r.store.Config() }

// Stats merges metrics and probe output.
func (r *Runtime) Stats() map[string]any { return r.control.Stats() }

// Logger returns the runtime logger.
func (r *Runtime) Logger() zerolog.Logger { return r.log }

// Metrics returns the metrics registry, nil when metrics are disabled.
func (r *Runtime) Metrics() *control.MetricsRegistry { return r.metrics }

// Monitor returns the observer installed by the runtime.
func (r *Runtime) Monitor() *control.Monitor { return r.monitor }

// Journal returns the lifecycle journal, nil when debug is disabled.
func (r *Runtime) Journal() *control.Journal { return r.journal }

// Shutdown drains every arena and restores the discarding observers.
// Deques still holding blocks may keep using their arenas. Calling Shutdown
// more than once is a no-op.
func (r *Runtime) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	dropped := 0
	for _, a := range r.arenas {
		dropped += a.Drain()
		a.SetObserver(nil)
	}
	unique.SetObserver(nil)
	shared.SetObserver(nil)
	deque.SetObserver(nil)

	r.log.Info().
		Int("arenas", len(r.arenas)).
		Int("dropped_blocks", dropped).
		Msg("[facade] runtime shut down")
	return nil
}
