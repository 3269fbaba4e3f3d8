package prioq

import "time"

type options struct {
	logger   *Logger
	emitter  Emitter
	metrics  MetricsCollector
	capacity int
	now      func() time.Time
}

func defaultOptions() options {
	return options{
		logger:   NoopLogger(),
		emitter:  NoopEmitter{},
		metrics:  NoopMetricsCollector{},
		capacity: 16,
		now:      time.Now,
	}
}

// Option configures queue construction.
//
// Options primarily exist to avoid exploding the constructor surface;
// every option has a safe no-op default.
type Option func(*options)

// WithLogger configures structured logging for queue operations.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEmitter configures the Emitter that receives an Event for every
// state-changing operation. Delivery beyond the Emit call (event bus, log,
// channel fan-out) is the collaborator's concern, not the queue's.
func WithEmitter(e Emitter) Option {
	return func(o *options) {
		if e != nil {
			o.emitter = e
		}
	}
}

// WithMetrics configures operational metrics collection.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithCapacity pre-sizes the heap array and position index.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithClock overrides the clock used to stamp element insertion times.
// Intended for tests that need deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
