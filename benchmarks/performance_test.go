// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-mem components.

package benchmarks

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-mem/core/concurrency"
	"github.com/momentics/hioload-mem/deque"
	"github.com/momentics/hioload-mem/facade"
	"github.com/momentics/hioload-mem/pool"
	"github.com/momentics/hioload-mem/shared"
)

// BenchmarkArenaGetPut tests block arena reuse under contention.
func BenchmarkArenaGetPut(b *testing.B) {
	a := pool.NewArenaWithLimit[deque.Block[int]]("bench", 1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			a.Put(a.Get())
		}
	})
}

// BenchmarkLockFreeQueueThroughput tests the spare list queue.
func BenchmarkLockFreeQueueThroughput(b *testing.B) {
	q := concurrency.NewLockFreeQueue[int](1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if !q.Enqueue(i) {
				q.Dequeue()
				q.Enqueue(i)
			}
			i++
		}
	})
}

// BenchmarkDequePushPop compares the heap and arena block sources.
func BenchmarkDequePushPop(b *testing.B) {
	for _, tc := range []struct {
		name  string
		arena *pool.Arena[deque.Block[int]]
	}{
		{"heap", nil},
		{"arena", pool.NewArena[deque.Block[int]]("bench")},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var d *deque.Deque[int]
				if tc.arena == nil {
					d = deque.New[int]()
				} else {
					d = deque.NewWithArena[int](tc.arena)
				}
				for j := range 256 {
					d.PushBack(j)
					d.PushFront(j)
				}
				for !d.Empty() {
					d.PopFront()
				}
				d.Close()
			}
		})
	}
}

// BenchmarkDequeIterate tests iterator traversal.
func BenchmarkDequeIterate(b *testing.B) {
	d := deque.New[int]()
	for i := range 4096 {
		d.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for it, end := d.Begin(), d.End(); !it.Equal(end); it.Next() {
			sum += it.Value()
		}
		if sum == 0 {
			b.Fatal("empty traversal")
		}
	}
}

// BenchmarkSharedClone tests refcount traffic on one control block.
func BenchmarkSharedClone(b *testing.B) {
	s := shared.Make(42)
	defer s.Reset()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c := s.Clone()
			c.Reset()
		}
	})
}

// BenchmarkFacadeIntegration tests a deque through a monitored runtime.
func BenchmarkFacadeIntegration(b *testing.B) {
	rt, err := facade.NewWithLogger(nil, zerolog.Nop())
	if err != nil {
		b.Fatal(err)
	}
	defer rt.Shutdown()
	a, err := facade.NewArena[int](rt, "bench")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := facade.NewDeque(rt, a)
		for j := range 128 {
			d.PushBack(j)
		}
		d.Close()
	}
}
