package unique

import (
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTracked(c *fake.Counter, id int) *fake.Tracked {
	v := fake.NewTracked(c, id)
	return &v
}

// TestUnique_BasicCreation tests that Close destroys the owned value exactly once.
func TestUnique_BasicCreation(t *testing.T) {
	var c fake.Counter
	u := New(newTracked(&c, 1))
	assert.EqualValues(t, 1, c.Live())
	require.NotNil(t, u.Get())
	assert.False(t, u.Empty())

	u.Close()
	assert.EqualValues(t, 0, c.Live())
	assert.True(t, u.Empty())

	u.Close()
	assert.EqualValues(t, 1, c.Disposed(), "second Close must not destroy again")
}

// TestUnique_NilAdoption tests that New(nil) yields an empty handle.
func TestUnique_NilAdoption(t *testing.T) {
	u := New[int](nil)
	assert.True(t, u.Empty())
	assert.Nil(t, u.Get())
}

// TestUnique_Make tests the allocating constructors.
func TestUnique_Make(t *testing.T) {
	u := Make(42)
	require.False(t, u.Empty())
	assert.Equal(t, 42, *u.Get())

	var c fake.Counter
	w := MakeWith(c.Init(7))
	assert.Equal(t, 7, w.Get().ID)
	assert.EqualValues(t, 1, c.Live())
	w.Close()
	assert.EqualValues(t, 0, c.Live())
}

// TestUnique_MoveSemantics tests that Move transfers the exact pointer and empties the source.
func TestUnique_MoveSemantics(t *testing.T) {
	var c fake.Counter
	p := newTracked(&c, 1)
	u1 := New(p)

	u2 := u1.Move()
	assert.Nil(t, u1.Get())
	assert.True(t, u1.Empty())
	assert.Same(t, p, u2.Get())
	assert.EqualValues(t, 1, c.Live())

	u1.Close()
	assert.EqualValues(t, 1, c.Live(), "closing the moved-from handle destroys nothing")
	u2.Close()
	assert.EqualValues(t, 0, c.Live())
	assert.EqualValues(t, 1, c.Disposed())
}

// TestUnique_MoveFrom tests move assignment.
func TestUnique_MoveFrom(t *testing.T) {
	var c fake.Counter
	a := New(newTracked(&c, 1))
	p := newTracked(&c, 2)
	b := New(p)

	a.MoveFrom(&b)
	assert.EqualValues(t, 1, c.Live(), "a's old value must be destroyed")
	assert.Same(t, p, a.Get())
	assert.True(t, b.Empty())

	a.MoveFrom(&a)
	assert.Same(t, p, a.Get(), "self move is a no-op")
	a.Close()
}

// TestUnique_ResetAndRelease tests Reset and Release.
func TestUnique_ResetAndRelease(t *testing.T) {
	var c fake.Counter
	u := New(newTracked(&c, 1))

	u.Reset(newTracked(&c, 2))
	assert.EqualValues(t, 1, c.Live())
	assert.Equal(t, 2, u.Get().ID)

	u.Reset(u.Get())
	assert.EqualValues(t, 1, c.Live(), "resetting to the owned pointer keeps it alive")

	raw := u.Release()
	assert.Nil(t, u.Get())
	assert.EqualValues(t, 1, c.Live(), "Release must not destroy")
	assert.EqualValues(t, 1, c.Disposed())
	raw.Dispose()
	assert.EqualValues(t, 0, c.Live())
}

// TestUnique_Swap tests pointer exchange.
func TestUnique_Swap(t *testing.T) {
	a, b := Make(1), Make(2)
	pa, pb := a.Get(), b.Get()
	a.Swap(&b)
	assert.Same(t, pb, a.Get())
	assert.Same(t, pa, b.Get())
}

// TestUnique_Observer tests that destruction is reported.
func TestUnique_Observer(t *testing.T) {
	obs := fake.NewObserver()
	SetObserver(obs)
	defer SetObserver(nil)

	u := Make(1)
	u.Reset(nil)
	u.Close()
	a, err := MakeArray[int](3)
	require.NoError(t, err)
	a.Close()

	assert.Equal(t, 1, obs.Count(api.EventDestroy, api.KindUnique))
	assert.Equal(t, 1, obs.Count(api.EventDestroy, api.KindUniqueArray))
}
