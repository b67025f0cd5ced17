package facade_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/control"
	"github.com/momentics/hioload-mem/facade"
	"github.com/momentics/hioload-mem/fake"
	"github.com/momentics/hioload-mem/shared"
	"github.com/momentics/hioload-mem/unique"
)

func newRuntime(t *testing.T, cfg *control.Config) *facade.Runtime {
	t.Helper()
	rt, err := facade.NewWithLogger(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rt.Shutdown() })
	return rt
}

// TestRuntime_FullLifecycle tests handles, arenas and deques through one runtime.
func TestRuntime_FullLifecycle(t *testing.T) {
	rt := newRuntime(t, nil)

	a, err := facade.NewArena[int](rt, "ints")
	require.NoError(t, err)
	d := facade.NewDeque(rt, a)
	for i := range 100 {
		d.PushFront(i)
		d.PushBack(i)
	}
	assert.Equal(t, 200, d.Len())

	s := shared.Make(5)
	c := s.Clone()
	c.Reset()
	s.Reset()

	u := unique.Make("x")
	u.Close()

	d.Close()
	assert.Zero(t, a.Stats().InUse)

	stats := rt.Stats()
	assert.EqualValues(t, 1, stats["hioload_mem_"+control.EventCounterName(api.EventDestroy, api.KindInline)])
	assert.EqualValues(t, 1, stats["hioload_mem_"+control.EventCounterName(api.EventDestroy, api.KindUnique)])
	assert.Positive(t, stats["hioload_mem_"+control.EventCounterName(api.EventMapGrow, api.KindDequeMap)])
	assert.Contains(t, stats, "debug.arena.ints")
	assert.Contains(t, stats, "debug.journal")
	assert.Positive(t, rt.Journal().Len())

	require.NoError(t, rt.Shutdown())
	require.NoError(t, rt.Shutdown(), "shutdown is idempotent")
	assert.Zero(t, a.Stats().Spare, "arenas are drained")
}

// TestRuntime_ArenaRegistration tests the arena name rules.
func TestRuntime_ArenaRegistration(t *testing.T) {
	rt := newRuntime(t, nil)

	_, err := facade.NewArena[int](rt, "a")
	require.NoError(t, err)
	_, err = facade.NewArena[string](rt, "a")
	assert.ErrorIs(t, err, api.ErrAlreadyExists)
	_, err = facade.NewArena[int](rt, `bad"name`)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	require.NoError(t, rt.Shutdown())
	_, err = facade.NewArena[int](rt, "late")
	assert.ErrorIs(t, err, api.ErrClosed)
}

// TestRuntime_Reload tests that a spare limit change reaches every arena.
func TestRuntime_Reload(t *testing.T) {
	defer control.ResetReloadHooks()
	rt := newRuntime(t, nil)
	a, err := facade.NewArena[int](rt, "reload")
	require.NoError(t, err)
	assert.Equal(t, 64, a.SpareLimit())

	require.NoError(t, rt.Control().SetConfig(map[string]any{control.KeySpareBlocks: 8}))
	assert.Equal(t, 8, a.SpareLimit())
	assert.Equal(t, 8, rt.Config().Arena.SpareBlocks)

	err = rt.Control().SetConfig(map[string]any{control.KeySpareBlocks: 0})
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
	assert.Equal(t, 8, a.SpareLimit())
}

// TestRuntime_Disabled tests a runtime without metrics or debug.
func TestRuntime_Disabled(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.Metrics.Enabled = false
	cfg.Debug.Enabled = false
	rt := newRuntime(t, cfg)

	assert.Nil(t, rt.Journal())
	assert.Nil(t, rt.Debug())
	a, err := facade.NewArena[int](rt, "quiet")
	require.NoError(t, err)
	d := facade.NewDeque(rt, a)
	d.PushBack(1)
	d.Close()
	assert.Empty(t, rt.Stats())
}

// TestRuntime_InvalidConfig tests that bad settings are rejected.
func TestRuntime_InvalidConfig(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.Arena.SpareBlocks = 0
	_, err := facade.NewWithLogger(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	cfg = control.DefaultConfig()
	cfg.Log.Level = "loud"
	_, err = facade.New(cfg)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

// TestRuntime_ShutdownRestoresObservers tests observer detachment.
func TestRuntime_ShutdownRestoresObservers(t *testing.T) {
	var buf bytes.Buffer
	rt, err := facade.NewWithLogger(nil, zerolog.New(&buf))
	require.NoError(t, err)
	require.NoError(t, rt.Shutdown())
	assert.Contains(t, buf.String(), "[facade] runtime shut down")

	obs := fake.NewObserver()
	shared.SetObserver(obs)
	defer shared.SetObserver(nil)
	s := shared.Make(1)
	s.Reset()
	assert.Equal(t, 1, obs.Count(api.EventDestroy, api.KindInline), "runtime no longer owns the slot")
}

// TestRuntime_HeapDeque tests NewDeque without an arena.
func TestRuntime_HeapDeque(t *testing.T) {
	rt := newRuntime(t, nil)
	d := facade.NewDeque[string](rt, nil)
	d.PushBack("a")
	assert.Equal(t, "a", *d.Front())
}
