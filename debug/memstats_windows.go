//go:build windows

package debug

// Native memory logger enabled when config.Debug is true. The Tk photo
// churn and the camera driver both allocate outside the Go heap, so the
// working set is the number that catches a leak there.

import (
	"log/slog"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// processMemoryCounters matches PROCESS_MEMORY_COUNTERS from psapi.
type processMemoryCounters struct {
	cb                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uintptr
	WorkingSetSize             uintptr
	QuotaPeakPagedPoolUsage    uintptr
	QuotaPagedPoolUsage        uintptr
	QuotaPeakNonPagedPoolUsage uintptr
	QuotaNonPagedPoolUsage     uintptr
	PagefileUsage              uintptr
	PeakPagefileUsage          uintptr
}

var (
	modPsapi                 = windows.NewLazySystemDLL("psapi.dll")
	procGetProcessMemoryInfo = modPsapi.NewProc("GetProcessMemoryInfo")
)

func workingSet() (current, peak uint64, err error) {
	pmc := processMemoryCounters{cb: uint32(unsafe.Sizeof(processMemoryCounters{}))}
	r1, _, callErr := procGetProcessMemoryInfo.Call(
		uintptr(windows.CurrentProcess()),
		uintptr(unsafe.Pointer(&pmc)),
		uintptr(pmc.cb),
	)
	if r1 == 0 {
		return 0, 0, callErr
	}
	return uint64(pmc.WorkingSetSize), uint64(pmc.PeakWorkingSetSize), nil
}

// StartMemLogger launches a goroutine that logs the process working set
// against the Go heap every interval. Query failures are logged once
// and then suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var queryFailed bool
		for range ticker.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, peak, err := workingSet()
			if err != nil && !queryFailed {
				logger.Warn("memlog: working set query failed", slog.String("err", err.Error()))
				queryFailed = true
			}
			logger.Info("native-mem",
				slog.Uint64("rss", rss),
				slog.Uint64("peak_rss", peak),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
