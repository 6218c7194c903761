package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests    uint64
	errorRequests    uint64
	totalDurationMs  uint64
	settlementsTotal uint64
	settlementErrors uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordSettlement counts one settlement computation and whether it failed.
func (c *Collector) RecordSettlement(ok bool) {
	atomic.AddUint64(&c.settlementsTotal, 1)
	if !ok {
		atomic.AddUint64(&c.settlementErrors, 1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	settlements := atomic.LoadUint64(&c.settlementsTotal)
	settlementErrs := atomic.LoadUint64(&c.settlementErrors)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      errs,
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"settlementsTotal": settlements,
		"settlementErrors": settlementErrs,
	}
}
