// control/logger.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-mem/api"
)

// NewLogger returns a zerolog logger writing JSON to w (stderr when nil)
// at the named level, tagged with component.
func NewLogger(w io.Writer, level, component string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: log level: %v", api.ErrInvalidArgument, err)
	}
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("component", component).
		Logger(), nil
}

// NopLogger returns a logger that discards everything.
func NopLogger() zerolog.Logger { return zerolog.Nop() }
