// Package prioq provides an embedded indexed priority queue for Go.
//
// Unlike a textbook binary heap, prioq maintains a position index alongside
// the heap array, so arbitrary-key priority updates and arbitrary-key removal
// run in O(log n) instead of requiring a linear scan. The ordering direction
// (min-heap or max-heap) is fixed at construction and never changes for the
// life of the queue.
//
// # Quick Start
//
//	q := prioq.New[string](prioq.MinHeap)
//
//	_ = q.Insert("order-1", 5.0, "alice")
//	_ = q.Insert("order-2", 1.0, "bob")
//	_ = q.Insert("order-3", 3.0, "carol")
//
//	top, _ := q.ExtractTop() // order-2 (priority 1.0)
//
//	_ = q.UpdatePriority("order-1", 0.5) // resifts in O(log n)
//	_, _ = q.Remove("order-3")           // removal by key, O(log n)
//
// # Concurrency
//
// Queue is not safe for concurrent use. Wrap it in a SafeQueue to serialize
// mutations behind a single lock while allowing read-only operations to run
// concurrently:
//
//	sq := prioq.NewSafe[string](prioq.MaxHeap)
//
// # Observability
//
// State-changing operations emit structured Events to a configurable Emitter
// and report durations to a MetricsCollector. Both default to no-ops:
//
//	q := prioq.New[string](prioq.MinHeap,
//	    prioq.WithLogger(prioq.NewTextLogger(slog.LevelDebug)),
//	    prioq.WithEmitter(prioq.NewLogEmitter(logger)),
//	)
//
// # Persistence
//
// The snapshot package serializes the complete queue state (elements and
// ordering direction; the position index is rebuilt on restore) to a
// self-describing, checksummed binary envelope, optionally compressed, and
// can store it in any blobstore backend.
package prioq
