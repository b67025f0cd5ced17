package unique

import (
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArray_Behavior tests that every element is destroyed on Close.
func TestArray_Behavior(t *testing.T) {
	var c fake.Counter
	s := []fake.Tracked{fake.NewTracked(&c, 0), fake.NewTracked(&c, 1), fake.NewTracked(&c, 2)}
	a := NewArray(s)
	assert.EqualValues(t, 3, c.Live())
	assert.Equal(t, 3, a.Len())

	a.Close()
	assert.EqualValues(t, 0, c.Live())
	assert.True(t, a.Empty())
}

// TestArray_AccessOperator tests indexed access on a counted array.
func TestArray_AccessOperator(t *testing.T) {
	a, err := MakeArray[int](5)
	require.NoError(t, err)
	for i := range 5 {
		*a.At(i) = i * 10
	}
	assert.Equal(t, 30, *a.At(3))
	assert.Equal(t, []int{0, 10, 20, 30, 40}, a.Slice())
}

// TestArray_MakeNegative tests argument validation.
func TestArray_MakeNegative(t *testing.T) {
	a, err := MakeArray[int](-1)
	require.ErrorIs(t, err, api.ErrInvalidArgument)
	assert.True(t, a.Empty())
}

// TestArray_MakeZero tests that zero-length arrays are empty however they were built.
func TestArray_MakeZero(t *testing.T) {
	a, err := MakeArray[int](0)
	require.NoError(t, err)
	assert.True(t, a.Empty())
	assert.Zero(t, a.Len())

	b := NewArray([]int{})
	assert.True(t, b.Empty())
	assert.Equal(t, a.Empty(), b.Empty())
	assert.Equal(t, a.Len(), b.Len())
}

// TestArray_ResetZeroLength tests that Reset adopts a new run even when the
// old and new runs are both zero-length.
func TestArray_ResetZeroLength(t *testing.T) {
	first := make([]int, 0, 4)
	second := make([]int, 0, 8)
	a := NewArray(first)

	a.Reset(second)
	assert.Equal(t, 8, cap(a.Slice()))
	assert.True(t, a.Empty())

	var c fake.Counter
	s := []fake.Tracked{fake.NewTracked(&c, 0)}
	a2 := NewArray(make([]fake.Tracked, 0))
	a2.Reset(s)
	assert.False(t, a2.Empty())
	a2.Reset(s[:0])
	assert.True(t, a2.Empty())
	assert.EqualValues(t, 1, c.Disposed())
}

// TestArray_MoveAndRelease tests ownership transfer for the array form.
func TestArray_MoveAndRelease(t *testing.T) {
	var c fake.Counter
	s := []fake.Tracked{fake.NewTracked(&c, 0), fake.NewTracked(&c, 1)}
	a := NewArray(s)

	b := a.Move()
	assert.True(t, a.Empty())
	assert.Same(t, &s[0], b.At(0))

	raw := b.Release()
	assert.True(t, b.Empty())
	assert.EqualValues(t, 2, c.Live())
	assert.Len(t, raw, 2)
}

// TestArray_Reset tests that Reset destroys the old run but not a re-adopted one.
func TestArray_Reset(t *testing.T) {
	var c fake.Counter
	s := []fake.Tracked{fake.NewTracked(&c, 0)}
	a := NewArray(s)

	a.Reset(s)
	assert.EqualValues(t, 1, c.Live())

	a.Reset([]fake.Tracked{fake.NewTracked(&c, 1), fake.NewTracked(&c, 2)})
	assert.EqualValues(t, 2, c.Live())
	assert.EqualValues(t, 1, c.Disposed())

	var b Array[fake.Tracked]
	b.MoveFrom(&a)
	assert.Equal(t, 2, b.Len())
	b.Swap(&a)
	assert.Equal(t, 2, a.Len())
	assert.True(t, b.Empty())
	a.Close()
	assert.EqualValues(t, 0, c.Live())
}
