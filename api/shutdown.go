// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown releases everything a component still owns.
type GracefulShutdown interface {
	// Shutdown drains pooled storage and detaches observers.
	// Calling it more than once is a no-op.
	Shutdown() error
}
