// File: deque/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package deque

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/placement"
	"github.com/momentics/hioload-mem/internal/observe"
)

const (
	// BlockSize is the number of slots per block.
	BlockSize = 8
	// MapMin is the initial map capacity.
	MapMin = 8
)

var observer observe.Slot

// SetObserver installs the observer notified on map growth. nil restores the
// discarding default.
func SetObserver(o api.Observer) { observer.Set(o) }

// Block is one fixed-size storage unit.
type Block[T any] [BlockSize]T

// noCopy is recognised by vet's copylocks check. Use Clone or Move.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Deque is a double-ended queue of T. The zero value is an empty deque
// whose blocks come from the heap.
type Deque[T any] struct {
	_ noCopy

	m          []*Block[T]
	frontBlock int
	backBlock  int
	frontPos   int
	backPos    int
	size       int

	alloc api.BlockAllocator[Block[T]]
	log   *zerolog.Logger
}

// New creates an empty deque with heap-allocated blocks.
func New[T any]() *Deque[T] {
	return NewWithArena[T](nil)
}

// NewWithArena creates an empty deque drawing blocks from a. A nil a uses
// the heap.
func NewWithArena[T any](a api.BlockAllocator[Block[T]]) *Deque[T] {
	d := &Deque[T]{alloc: a}
	d.init()
	return d
}

// FromSlice creates a deque holding a copy of s, in order.
func FromSlice[T any](s []T) *Deque[T] {
	d := New[T]()
	for _, v := range s {
		d.PushBack(v)
	}
	return d
}

// SetLogger attaches l; map growth is logged at debug level.
func (d *Deque[T]) SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "deque").Logger()
	d.log = &l
}

func (d *Deque[T]) init() {
	d.m = make([]*Block[T], MapMin)
	d.reset()
}

// reset parks both cursors at the centre, allocating the centre block if
// needed.
func (d *Deque[T]) reset() {
	c := len(d.m) / 2
	d.frontBlock, d.backBlock = c, c
	d.frontPos, d.backPos = BlockSize/2, BlockSize/2
	if d.m[c] == nil {
		d.m[c] = d.newBlock()
	}
}

func (d *Deque[T]) newBlock() *Block[T] {
	if d.alloc != nil {
		return d.alloc.Get()
	}
	return new(Block[T])
}

// grow doubles the map and recentres the live block range. Every block
// pointer, live or retained, keeps its position relative to the others.
func (d *Deque[T]) grow() {
	oldCap := len(d.m)
	newCap := oldCap * 2
	live := d.backBlock - d.frontBlock + 1
	shift := (newCap-live)/2 - d.frontBlock

	m := make([]*Block[T], newCap)
	for i, b := range d.m {
		if b != nil {
			m[i+shift] = b
		}
	}
	d.m = m
	d.frontBlock += shift
	d.backBlock += shift

	observer.Emit(api.EventMapGrow, api.KindDequeMap)
	if d.log != nil {
		d.log.Debug().
			Int("from", oldCap).
			Int("to", newCap).
			Int("size", d.size).
			Msg("[deque] map grown")
	}
}

// reserveBack returns the slot the next back element goes to, making the
// block available without moving the cursors.
func (d *Deque[T]) reserveBack() (blk, pos int) {
	if d.m == nil {
		d.init()
	}
	if d.backPos < BlockSize {
		return d.backBlock, d.backPos
	}
	if d.backBlock+1 == len(d.m) {
		d.grow()
	}
	blk = d.backBlock + 1
	if d.m[blk] == nil {
		d.m[blk] = d.newBlock()
	}
	return blk, 0
}

func (d *Deque[T]) reserveFront() (blk, pos int) {
	if d.m == nil {
		d.init()
	}
	if d.frontPos > 0 {
		return d.frontBlock, d.frontPos - 1
	}
	if d.frontBlock == 0 {
		d.grow()
	}
	blk = d.frontBlock - 1
	if d.m[blk] == nil {
		d.m[blk] = d.newBlock()
	}
	return blk, BlockSize - 1
}

func (d *Deque[T]) commitBack(blk, pos int) {
	d.backBlock, d.backPos = blk, pos+1
	d.size++
}

func (d *Deque[T]) commitFront(blk, pos int) {
	d.frontBlock, d.frontPos = blk, pos
	d.size++
}

// PushBack appends v.
func (d *Deque[T]) PushBack(v T) {
	blk, pos := d.reserveBack()
	placement.Construct(&d.m[blk][pos], v)
	d.commitBack(blk, pos)
}

// PushFront prepends v.
func (d *Deque[T]) PushFront(v T) {
	blk, pos := d.reserveFront()
	placement.Construct(&d.m[blk][pos], v)
	d.commitFront(blk, pos)
}

// EmplaceBack appends a zero T, lets init build it in place and returns it.
func (d *Deque[T]) EmplaceBack(init func(*T)) *T {
	blk, pos := d.reserveBack()
	p := placement.ConstructWith(&d.m[blk][pos], init)
	d.commitBack(blk, pos)
	return p
}

// EmplaceFront prepends a zero T, lets init build it in place and returns
// it.
func (d *Deque[T]) EmplaceFront(init func(*T)) *T {
	blk, pos := d.reserveFront()
	p := placement.ConstructWith(&d.m[blk][pos], init)
	d.commitFront(blk, pos)
	return p
}

// PopBack destroys the last element. No-op when empty.
func (d *Deque[T]) PopBack() {
	if d.size == 0 {
		return
	}
	if d.backPos == 0 {
		d.backBlock--
		d.backPos = BlockSize
	}
	d.backPos--
	placement.Destroy(&d.m[d.backBlock][d.backPos])
	d.size--
	if d.size == 0 {
		d.reset()
	}
}

// PopFront destroys the first element. No-op when empty.
func (d *Deque[T]) PopFront() {
	if d.size == 0 {
		return
	}
	placement.Destroy(&d.m[d.frontBlock][d.frontPos])
	d.frontPos++
	d.size--
	if d.size == 0 {
		d.reset()
		return
	}
	if d.frontPos == BlockSize {
		d.frontBlock++
		d.frontPos = 0
	}
}

// At returns a pointer to element i. i is not checked.
func (d *Deque[T]) At(i int) *T {
	k := d.frontPos + i
	return &d.m[d.frontBlock+k/BlockSize][k%BlockSize]
}

// Get returns element i. i is not checked.
func (d *Deque[T]) Get(i int) T { return *d.At(i) }

// Set overwrites element i. i is not checked. The replaced value is not
// disposed; destroy it first through At if it owns resources.
func (d *Deque[T]) Set(i int, v T) { *d.At(i) = v }

// Front returns the first element. The deque must not be empty.
func (d *Deque[T]) Front() *T { return &d.m[d.frontBlock][d.frontPos] }

// Back returns the last element. The deque must not be empty.
func (d *Deque[T]) Back() *T { return d.At(d.size - 1) }

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// MapCap returns the map capacity, 0 before the first use of a zero Deque.
func (d *Deque[T]) MapCap() int { return len(d.m) }

// Blocks returns the number of blocks held, live or retained.
func (d *Deque[T]) Blocks() int {
	n := 0
	for _, b := range d.m {
		if b != nil {
			n++
		}
	}
	return n
}

func (d *Deque[T]) destroyAll() {
	for i := 0; i < d.size; i++ {
		placement.Destroy(d.At(i))
	}
	d.size = 0
}

// Clear destroys every element. Blocks are kept for reuse.
func (d *Deque[T]) Clear() {
	if d.m == nil {
		return
	}
	d.destroyAll()
	d.reset()
}

// Close destroys every element and gives every block back to the
// allocator. The deque is empty and usable afterwards.
func (d *Deque[T]) Close() {
	if d.m == nil {
		return
	}
	d.destroyAll()
	for i, b := range d.m {
		if b == nil {
			continue
		}
		if d.alloc != nil {
			d.alloc.Put(b)
		}
		d.m[i] = nil
	}
	d.m = nil
	d.frontBlock, d.backBlock, d.frontPos, d.backPos = 0, 0, 0, 0
}

// Clone returns a deep copy with the same block layout, drawing blocks from
// the same allocator. Elements are copied by assignment.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{alloc: d.alloc, log: d.log}
	if d.m == nil {
		return c
	}
	c.m = make([]*Block[T], len(d.m))
	c.frontBlock, c.backBlock = d.frontBlock, d.backBlock
	c.frontPos, c.backPos = d.frontPos, d.backPos
	for b := d.frontBlock; b <= d.backBlock; b++ {
		c.m[b] = c.newBlock()
	}
	for i := 0; i < d.size; i++ {
		placement.Construct(c.At(i), *d.At(i))
		c.size++
	}
	return c
}

// Move transfers the contents to a new deque. d is left empty, as if newly
// declared, and keeps its allocator.
func (d *Deque[T]) Move() *Deque[T] {
	n := &Deque[T]{alloc: d.alloc, log: d.log}
	n.swapState(d)
	return n
}

// Swap exchanges the contents and allocators of d and o.
func (d *Deque[T]) Swap(o *Deque[T]) {
	if d == o {
		return
	}
	d.swapState(o)
	d.alloc, o.alloc = o.alloc, d.alloc
}

func (d *Deque[T]) swapState(o *Deque[T]) {
	d.m, o.m = o.m, d.m
	d.frontBlock, o.frontBlock = o.frontBlock, d.frontBlock
	d.backBlock, o.backBlock = o.backBlock, d.backBlock
	d.frontPos, o.frontPos = o.frontPos, d.frontPos
	d.backPos, o.backPos = o.backPos, d.backPos
	d.size, o.size = o.size, d.size
}

// Assign replaces the contents of d with a copy of src. The previous
// contents are closed.
func (d *Deque[T]) Assign(src *Deque[T]) {
	if d == src {
		return
	}
	tmp := src.Clone()
	d.Swap(tmp)
	tmp.Close()
}

// MoveAssign replaces the contents of d with those of src, leaving src
// empty. The previous contents are closed.
func (d *Deque[T]) MoveAssign(src *Deque[T]) {
	if d == src {
		return
	}
	tmp := src.Move()
	d.Swap(tmp)
	tmp.Close()
}

// All yields index/element pairs front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, *d.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(*d.At(i)) {
				return
			}
		}
	}
}

// Backward yields index/element pairs back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(i, *d.At(i)) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new slice.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.size)
	for i := range out {
		out[i] = *d.At(i)
	}
	return out
}
