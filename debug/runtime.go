package debug

// Debug runtime metrics logger. Started only when config.Debug is true.
// Emits goroutine count, stack usage and camera pump counters at a
// fixed interval so leaks in the frame path show up early.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/soocke/campip-go/domain/capture"
)

// StartRuntimeLogger launches a ticker that logs goroutine count, stack
// memory and, when stats is non-nil, frame pump counters. Lightweight;
// disable by running without the debug flag.
func StartRuntimeLogger(interval time.Duration, stats capture.StatsSource, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			attrs := []any{
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("heap_alloc", uint64(ms.HeapAlloc)),
			}
			if stats != nil {
				cs := stats.Stats()
				attrs = append(attrs,
					slog.Uint64("captures", cs.Captures),
					slog.Uint64("skipped", cs.Skipped),
					slog.Duration("frame_age", cs.LatestFrameAge),
				)
			}
			logger.Info("runtime-stats", attrs...)
		}
	}()
}
