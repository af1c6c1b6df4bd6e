package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics. Sinks swallow their I/O errors so that
// logging never fails the caller; the counters are how those failures
// become visible.
type Stats struct {
	// ProcessedTotal counts lines written
	ProcessedTotal uint64
	// FailedTotal counts lines lost to write errors
	FailedTotal uint64
	// SkippedTotal counts lines with nowhere to go (file sink without a path)
	SkippedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// IncrementSkipped atomically increments the skipped counter
func (s *Stats) IncrementSkipped() {
	atomic.AddUint64(&s.SkippedTotal, 1)
}

// Record counts the outcome of a single write.
func (s *Stats) Record(err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
	atomic.StoreUint64(&s.SkippedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed uint64
	Failed    uint64
	Skipped   uint64
}

// Add returns the element-wise sum of two snapshots.
func (s Snapshot) Add(o Snapshot) Snapshot {
	return Snapshot{
		Processed: s.Processed + o.Processed,
		Failed:    s.Failed + o.Failed,
		Skipped:   s.Skipped + o.Skipped,
	}
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: atomic.LoadUint64(&s.ProcessedTotal),
		Failed:    atomic.LoadUint64(&s.FailedTotal),
		Skipped:   atomic.LoadUint64(&s.SkippedTotal),
	}
}
