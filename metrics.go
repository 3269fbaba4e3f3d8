package prioq

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordBatchInsert is called after each batch insert operation.
	// count is the number of tuples attempted, failed is the number that were
	// not inserted, duration is the total time taken.
	RecordBatchInsert(count, failed int, duration time.Duration)

	// RecordExtract is called after each top extraction.
	RecordExtract(duration time.Duration, err error)

	// RecordUpdate is called after each priority update.
	RecordUpdate(duration time.Duration, err error)

	// RecordRemove is called after each point removal.
	RecordRemove(duration time.Duration, err error)

	// RecordMerge is called after each merge. moved is the number of elements
	// drained into the destination queue.
	RecordMerge(moved int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatchInsert(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordExtract(time.Duration, error)        {}
func (NoopMetricsCollector) RecordUpdate(time.Duration, error)         {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)         {}
func (NoopMetricsCollector) RecordMerge(int, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	BatchInsertCount  atomic.Int64
	BatchInsertItems  atomic.Int64
	BatchInsertFailed atomic.Int64
	ExtractCount      atomic.Int64
	ExtractErrors     atomic.Int64
	ExtractTotalNanos atomic.Int64
	UpdateCount       atomic.Int64
	UpdateErrors      atomic.Int64
	RemoveCount       atomic.Int64
	RemoveErrors      atomic.Int64
	MergeCount        atomic.Int64
	MergeErrors       atomic.Int64
	MergeMoved        atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (c *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	c.InsertCount.Add(1)
	c.InsertTotalNanos.Add(int64(duration))
	if err != nil {
		c.InsertErrors.Add(1)
	}
}

// RecordBatchInsert implements MetricsCollector.
func (c *BasicMetricsCollector) RecordBatchInsert(count, failed int, _ time.Duration) {
	c.BatchInsertCount.Add(1)
	c.BatchInsertItems.Add(int64(count))
	c.BatchInsertFailed.Add(int64(failed))
}

// RecordExtract implements MetricsCollector.
func (c *BasicMetricsCollector) RecordExtract(duration time.Duration, err error) {
	c.ExtractCount.Add(1)
	c.ExtractTotalNanos.Add(int64(duration))
	if err != nil {
		c.ExtractErrors.Add(1)
	}
}

// RecordUpdate implements MetricsCollector.
func (c *BasicMetricsCollector) RecordUpdate(_ time.Duration, err error) {
	c.UpdateCount.Add(1)
	if err != nil {
		c.UpdateErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (c *BasicMetricsCollector) RecordRemove(_ time.Duration, err error) {
	c.RemoveCount.Add(1)
	if err != nil {
		c.RemoveErrors.Add(1)
	}
}

// RecordMerge implements MetricsCollector.
func (c *BasicMetricsCollector) RecordMerge(moved int, _ time.Duration, err error) {
	c.MergeCount.Add(1)
	c.MergeMoved.Add(int64(moved))
	if err != nil {
		c.MergeErrors.Add(1)
	}
}
