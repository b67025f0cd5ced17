package placement

import (
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ptrDisposer struct {
	calls *int
	name  string
}

func (p *ptrDisposer) Dispose() { *p.calls++ }

type valDisposer struct {
	order *[]int
	id    int
}

func (v valDisposer) Dispose() { *v.order = append(*v.order, v.id) }

// TestConstruct tests that Construct writes into the given slot.
func TestConstruct(t *testing.T) {
	var slot int
	p := Construct(&slot, 42)
	require.Same(t, &slot, p)
	assert.Equal(t, 42, slot)
}

// TestConstructWith tests in-place initialisation and the nil init case.
func TestConstructWith(t *testing.T) {
	slot := struct{ a, b int }{a: 7, b: 9}
	ConstructWith(&slot, func(s *struct{ a, b int }) { s.b = 3 })
	assert.Equal(t, 0, slot.a, "slot must be zeroed before init")
	assert.Equal(t, 3, slot.b)

	n := 5
	ConstructWith(&n, nil)
	assert.Zero(t, n)
}

// TestDestroy_PointerReceiver tests that Dispose on *T runs once and the slot is zeroed.
func TestDestroy_PointerReceiver(t *testing.T) {
	calls := 0
	slot := ptrDisposer{calls: &calls, name: "x"}
	Destroy(&slot)
	assert.Equal(t, 1, calls)
	assert.Nil(t, slot.calls)
	assert.Empty(t, slot.name)
}

// TestDestroy_ValueReceiver tests the T-level hook lookup.
func TestDestroy_ValueReceiver(t *testing.T) {
	var order []int
	slot := valDisposer{order: &order, id: 1}
	Destroy(&slot)
	assert.Equal(t, []int{1}, order)
}

// TestDestroy_PointerElement tests that a *T element is only cleared: the pointee is not owned.
func TestDestroy_PointerElement(t *testing.T) {
	calls := 0
	slot := &ptrDisposer{calls: &calls}
	Destroy(&slot)
	assert.Equal(t, 0, calls)
	assert.Nil(t, slot)
}

// TestDestroy_SharedPointerElements tests that two slots aliasing one pointee never dispose it.
func TestDestroy_SharedPointerElements(t *testing.T) {
	calls := 0
	p := &ptrDisposer{calls: &calls}
	s := []*ptrDisposer{p, p}
	DestroyRange(s)
	assert.Equal(t, 0, calls)
	assert.Equal(t, []*ptrDisposer{nil, nil}, s)
}

// TestDestroy_InterfaceElement tests that a Disposable held in an interface slot is disposed once.
func TestDestroy_InterfaceElement(t *testing.T) {
	var order []int
	var slot api.Disposable = valDisposer{order: &order, id: 7}
	Destroy(&slot)
	assert.Equal(t, []int{7}, order)
	assert.Nil(t, slot)
}

// TestDestroy_Nil tests that a nil slot is ignored.
func TestDestroy_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Destroy[int](nil) })
}

// TestDestroyRange_Reverse tests reverse destruction order.
func TestDestroyRange_Reverse(t *testing.T) {
	var order []int
	s := []valDisposer{{&order, 0}, {&order, 1}, {&order, 2}}
	DestroyRange(s)
	assert.Equal(t, []int{2, 1, 0}, order)
	for _, v := range s {
		assert.Nil(t, v.order)
	}
}

// TestDestroy_NilPointerElement tests that an empty pointer slot does not call Dispose.
func TestDestroy_NilPointerElement(t *testing.T) {
	var slot *ptrDisposer
	assert.NotPanics(t, func() { Destroy(&slot) })
}
