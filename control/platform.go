// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Probes shared by every platform.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

func registerCommonProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.goroutines", func() any {
		return runtime.NumGoroutine()
	})
	dp.RegisterProbe("platform.cache_line_pad", func() any {
		return int(unsafe.Sizeof(cpu.CacheLinePad{}))
	})
	dp.RegisterProbe("platform.heap_alloc", func() any {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return ms.HeapAlloc
	})
}
