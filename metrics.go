package intvec

import "sync/atomic"

// MetricsCollector receives events about the backing block.
// Implement this interface to feed an external monitoring system.
type MetricsCollector interface {
	// RecordGrow is called after each reallocation. from and to are the old
	// and new capacity, bulk is true when AppendAll triggered the growth.
	RecordGrow(from, to int, bulk bool)

	// RecordRemove is called after each successful RemoveAt with the number
	// of elements shifted one slot left.
	RecordRemove(shifted int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, bool) {}
func (NoopMetricsCollector) RecordRemove(int)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	GrowCount      atomic.Int64
	BulkGrowCount  atomic.Int64
	SlotsAllocated atomic.Int64
	RemoveCount    atomic.Int64
	ShiftedTotal   atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to int, bulk bool) {
	b.GrowCount.Add(1)
	if bulk {
		b.BulkGrowCount.Add(1)
	}
	b.SlotsAllocated.Add(int64(to))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(shifted int) {
	b.RemoveCount.Add(1)
	b.ShiftedTotal.Add(int64(shifted))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:      b.GrowCount.Load(),
		BulkGrowCount:  b.BulkGrowCount.Load(),
		SlotsAllocated: b.SlotsAllocated.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		ShiftedTotal:   b.ShiftedTotal.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount      int64
	BulkGrowCount  int64
	SlotsAllocated int64
	RemoveCount    int64
	ShiftedTotal   int64
}
