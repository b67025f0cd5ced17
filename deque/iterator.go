// File: deque/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package deque

// Iterator is a random-access position in a Deque. It caches the current
// block and is invalidated when the deque's map grows. Iterators from
// different deques must not be compared.
type Iterator[T any] struct {
	m   []*Block[T]
	blk int
	cur *Block[T]
	off int
}

// Begin returns an iterator at the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	return d.iterAt(d.frontPos)
}

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	return d.iterAt(d.frontPos + d.size)
}

func (d *Deque[T]) iterAt(k int) Iterator[T] {
	it := Iterator[T]{m: d.m, blk: d.frontBlock + k/BlockSize, off: k % BlockSize}
	it.load()
	return it
}

// load refreshes the cached block; positions outside the map cache nil.
func (it *Iterator[T]) load() {
	if it.blk >= 0 && it.blk < len(it.m) {
		it.cur = it.m[it.blk]
		return
	}
	it.cur = nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -((-a - 1) / b) - 1
}

// Value returns the element at the iterator.
func (it Iterator[T]) Value() T { return it.cur[it.off] }

// Ptr returns a pointer to the element at the iterator.
func (it Iterator[T]) Ptr() *T { return &it.cur[it.off] }

// Set overwrites the element at the iterator. The replaced value is not
// disposed.
func (it Iterator[T]) Set(v T) { it.cur[it.off] = v }

// Next moves one element forward.
func (it *Iterator[T]) Next() {
	it.off++
	if it.off == BlockSize {
		it.blk++
		it.off = 0
		it.load()
	}
}

// Prev moves one element back.
func (it *Iterator[T]) Prev() {
	if it.off == 0 {
		it.blk--
		it.off = BlockSize
		it.load()
	}
	it.off--
}

// Advance moves n elements; n may be negative.
func (it *Iterator[T]) Advance(n int) {
	abs := it.off + n
	if abs >= 0 && abs < BlockSize {
		it.off = abs
		return
	}
	delta := floorDiv(abs, BlockSize)
	it.blk += delta
	it.off = abs - delta*BlockSize
	it.load()
}

// Retreat moves n elements back.
func (it *Iterator[T]) Retreat(n int) { it.Advance(-n) }

// Add returns a copy moved n elements.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n elements back.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// At returns the element n positions away.
func (it Iterator[T]) At(n int) T { return it.Add(n).Value() }

func (it Iterator[T]) pos() int { return it.blk*BlockSize + it.off }

// Diff returns the signed distance it - o.
func (it Iterator[T]) Diff(o Iterator[T]) int { return it.pos() - o.pos() }

// Compare returns -1, 0 or +1 as it is before, at or after o.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	switch d := it.Diff(o); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

func (it Iterator[T]) Equal(o Iterator[T]) bool     { return it.pos() == o.pos() }
func (it Iterator[T]) Less(o Iterator[T]) bool      { return it.pos() < o.pos() }
func (it Iterator[T]) LessEq(o Iterator[T]) bool    { return it.pos() <= o.pos() }
func (it Iterator[T]) Greater(o Iterator[T]) bool   { return it.pos() > o.pos() }
func (it Iterator[T]) GreaterEq(o Iterator[T]) bool { return it.pos() >= o.pos() }
