// control/hotreload.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide reload hooks, for components that are not bound to a single
// ConfigStore.

package control

import "sync"

var (
	hooksMu     sync.Mutex
	reloadHooks []func()
)

// RegisterReloadHook adds a new component reload listener.
func RegisterReloadHook(fn func()) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reloadHooks = append(reloadHooks, fn)
}

func hooks() []func() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	return append([]func(){}, reloadHooks...)
}

// TriggerHotReload dispatches all reload hooks asynchronously.
func TriggerHotReload() {
	for _, fn := range hooks() {
		go fn()
	}
}

// TriggerHotReloadSync invokes all reload hooks synchronously.
func TriggerHotReloadSync() {
	for _, fn := range hooks() {
		fn()
	}
}

// ResetReloadHooks drops every registered hook.
func ResetReloadHooks() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reloadHooks = nil
}
