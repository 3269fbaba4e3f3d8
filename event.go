package prioq

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// EventKind identifies the state-changing operation that produced an Event.
type EventKind uint8

const (
	// EventInserted is emitted after a successful insert.
	EventInserted EventKind = iota + 1
	// EventExtracted is emitted after a successful top extraction.
	EventExtracted
	// EventUpdated is emitted after a successful priority update.
	EventUpdated
	// EventRemoved is emitted after a successful point removal.
	EventRemoved
	// EventCleared is emitted after the queue is cleared.
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventInserted:
		return "inserted"
	case EventExtracted:
		return "extracted"
	case EventUpdated:
		return "updated"
	case EventRemoved:
		return "removed"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event is a structured notification of a state-changing queue operation,
// intended for external observers auditing queue activity.
//
// Value is the string form of the element key so that Event stays
// non-generic and emitters can be shared across queues of different key
// types. OldPriority is set only for EventUpdated; Count only for
// EventCleared.
type Event struct {
	Kind        EventKind `json:"kind"`
	Value       string    `json:"value,omitempty"`
	Priority    float64   `json:"priority,omitempty"`
	OldPriority float64   `json:"old_priority,omitempty"`
	Owner       string    `json:"owner,omitempty"`
	Count       int       `json:"count,omitempty"`
	Time        time.Time `json:"time"`
}

// Emitter receives an Event for every state-changing operation.
//
// Emit is called synchronously inside the mutating operation, so
// implementations must not block.
type Emitter interface {
	Emit(Event)
}

// NoopEmitter discards all events. It is the default.
type NoopEmitter struct{}

// Emit implements Emitter.
func (NoopEmitter) Emit(Event) {}

// LogEmitter writes every event as a structured log record.
type LogEmitter struct {
	logger *Logger
}

// NewLogEmitter creates a LogEmitter. If logger is nil, a default text
// logger is used.
func NewLogEmitter(logger *Logger) *LogEmitter {
	if logger == nil {
		logger = NewLogger(nil)
	}
	return &LogEmitter{logger: logger}
}

// Emit implements Emitter.
func (e *LogEmitter) Emit(ev Event) {
	e.logger.Info("queue event",
		"event", ev.Kind.String(),
		"value", ev.Value,
		"priority", ev.Priority,
		"old_priority", ev.OldPriority,
		"owner", ev.Owner,
		"count", ev.Count,
	)
}

// ChannelEmitter forwards events to a caller-owned channel without blocking.
// Events that would block are dropped and counted; the queue's mutation path
// never waits on a slow consumer.
type ChannelEmitter struct {
	ch      chan<- Event
	dropped atomic.Int64
}

// NewChannelEmitter creates a ChannelEmitter sending to ch.
func NewChannelEmitter(ch chan<- Event) *ChannelEmitter {
	return &ChannelEmitter{ch: ch}
}

// Emit implements Emitter.
func (e *ChannelEmitter) Emit(ev Event) {
	select {
	case e.ch <- ev:
	default:
		e.dropped.Add(1)
	}
}

// Dropped returns the number of events dropped because the channel was full.
func (e *ChannelEmitter) Dropped() int64 {
	return e.dropped.Load()
}

// ThrottledEmitter rate-limits another emitter. Events above the limit are
// dropped and counted. Useful to keep a LogEmitter from flooding logs under
// bulk mutation.
type ThrottledEmitter struct {
	next    Emitter
	limiter *rate.Limiter
	dropped atomic.Int64
}

// NewThrottledEmitter wraps next behind a limit of eventsPerSec with the
// given burst.
func NewThrottledEmitter(next Emitter, eventsPerSec float64, burst int) *ThrottledEmitter {
	return &ThrottledEmitter{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(eventsPerSec), burst),
	}
}

// Emit implements Emitter.
func (e *ThrottledEmitter) Emit(ev Event) {
	if !e.limiter.Allow() {
		e.dropped.Add(1)
		return
	}
	e.next.Emit(ev)
}

// Dropped returns the number of events suppressed by the rate limit.
func (e *ThrottledEmitter) Dropped() int64 {
	return e.dropped.Load()
}

func formatKey(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}
