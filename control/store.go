// control/store.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and reload propagation.

package control

import (
	"sync"
)

// ConfigStore holds the typed Config next to a free-form key/value map.
// Known dotted keys in the map stay in sync with the typed Config.
type ConfigStore struct {
	mu        sync.RWMutex
	typed     Config
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a store from cfg, or DefaultConfig when nil.
func NewConfigStore(cfg *Config) *ConfigStore {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &ConfigStore{
		typed:  *cfg,
		config: cfg.Flatten(),
	}
}

// Config returns a copy of the typed configuration.
func (cs *ConfigStore) Config() Config {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.typed
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig merges new values and notifies listeners. Known keys are
// validated first; on error nothing is applied.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) error {
	cs.mu.Lock()
	next := cs.typed
	if err := next.apply(newCfg); err != nil {
		cs.mu.Unlock()
		return err
	}
	if err := next.Validate(); err != nil {
		cs.mu.Unlock()
		return err
	}
	cs.typed = next
	for k, v := range newCfg {
		cs.config[k] = v
	}
	for k, v := range next.Flatten() {
		cs.config[k] = v
	}
	listeners := cs.listeners
	cs.mu.Unlock()

	dispatchReload(listeners)
	return nil
}

// Update replaces the typed configuration and notifies listeners.
func (cs *ConfigStore) Update(cfg *Config) error {
	return cs.SetConfig(cfg.Flatten())
}

// OnReload registers a listener called after every successful change.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload runs listeners in registration order on the caller's
// goroutine, outside the store lock so they may read the store.
func dispatchReload(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
