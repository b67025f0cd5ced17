// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/control"
)

type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

var _ api.Control = (*ControlAdapter)(nil)

// NewControlAdapter builds an adapter over fresh primitives with default
// configuration and platform probes.
func NewControlAdapter() *ControlAdapter {
	cfg := control.DefaultConfig()
	adapter := WrapControl(
		control.NewConfigStore(cfg),
		control.NewMetricsRegistry(cfg.Metrics.Prefix),
		control.NewDebugProbes(),
	)
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

// WrapControl exposes existing primitives as api.Control. A nil metrics
// registry or probe set contributes nothing to Stats.
func WrapControl(cs *control.ConfigStore, mr *control.MetricsRegistry, dp *control.DebugProbes) *ControlAdapter {
	return &ControlAdapter{config: cs, metrics: mr, debug: dp}
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	return c.config.SetConfig(cfg)
}

// Stats merges metrics with probe output; probe keys get a "debug." prefix.
func (c *ControlAdapter) Stats() map[string]any {
	combined := make(map[string]any)
	if c.metrics != nil {
		for k, v := range c.metrics.GetSnapshot() {
			combined[k] = v
		}
	}
	if c.debug != nil {
		for k, v := range c.debug.DumpState() {
			combined["debug."+k] = v
		}
	}
	return combined
}

// OnReload registers fn with the store and with the process-wide hooks.
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}

func (c *ControlAdapter) SetMetric(key string, value any) {
	if c.metrics != nil {
		c.metrics.Set(key, value)
	}
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	if c.debug != nil {
		c.debug.RegisterProbe(name, fn)
	}
}
