package prioq

import (
	"time"
)

// Kind selects the ordering direction of a queue. It is fixed at construction.
type Kind uint8

const (
	// MinHeap keeps the element with the smallest priority at the top.
	MinHeap Kind = iota
	// MaxHeap keeps the element with the largest priority at the top.
	MaxHeap
)

func (k Kind) String() string {
	switch k {
	case MinHeap:
		return "min"
	case MaxHeap:
		return "max"
	default:
		return "unknown"
	}
}

// Element is a single live entry in the queue.
//
// Value is the caller-chosen unique key used for later updates and removals.
// Owner is opaque to the ordering logic and carried through for the caller's
// bookkeeping. Timestamp is stamped once at insertion and never changes.
type Element[K comparable] struct {
	Value     K         `json:"value"`
	Priority  float64   `json:"priority"`
	Owner     string    `json:"owner"`
	Timestamp time.Time `json:"timestamp"`
}

// Predicate selects elements during a Filter scan.
type Predicate[K comparable] func(value K, priority float64, owner string) bool

// Queue is an indexed binary heap: a heap-ordered array plus a position index
// mapping each live value to its current slot. The index is updated in
// lockstep with every swap, which is what makes UpdatePriority and Remove
// O(log n) instead of an O(n) scan.
//
// The zero value is not usable; construct with New or Restore.
//
// Queue is NOT safe for concurrent use. Wrap it in a SafeQueue or serialize
// access externally.
type Queue[K comparable] struct {
	kind     Kind
	elements []Element[K] // 0-based; parent (i-1)/2, children 2i+1, 2i+2
	pos      map[K]int    // value -> slot, bijective with live slots

	logger  *Logger
	emitter Emitter
	metrics MetricsCollector
	now     func() time.Time
}

// New creates an empty queue with the given ordering direction.
func New[K comparable](kind Kind, optFns ...Option) *Queue[K] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Queue[K]{
		kind:     kind,
		elements: make([]Element[K], 0, opts.capacity),
		pos:      make(map[K]int, opts.capacity),
		logger:   opts.logger,
		emitter:  opts.emitter,
		metrics:  opts.metrics,
		now:      opts.now,
	}
}

// Restore rebuilds a queue from a previously captured element list, keeping
// each element's original priority, owner and timestamp. Elements may arrive
// in any order; the heap is re-established bottom-up in O(n).
//
// A duplicate value in elements returns a DuplicateKeyError and no queue.
func Restore[K comparable](kind Kind, elements []Element[K], optFns ...Option) (*Queue[K], error) {
	q := New[K](kind, optFns...)

	for _, el := range elements {
		if _, ok := q.pos[el.Value]; ok {
			return nil, &DuplicateKeyError{Key: el.Value}
		}
		q.elements = append(q.elements, el)
		q.pos[el.Value] = len(q.elements) - 1
	}

	for i := len(q.elements)/2 - 1; i >= 0; i-- {
		q.siftDown(i)
	}

	return q, nil
}

// Kind returns the ordering direction fixed at construction.
func (q *Queue[K]) Kind() Kind { return q.kind }

// Len returns the number of live elements.
func (q *Queue[K]) Len() int { return len(q.elements) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[K]) IsEmpty() bool { return len(q.elements) == 0 }

// Contains reports whether value is currently live.
func (q *Queue[K]) Contains(value K) bool {
	_, ok := q.pos[value]
	return ok
}

// Elements returns a copy of all live elements in storage order (not
// priority order). The result is a faithful snapshot of the heap array.
func (q *Queue[K]) Elements() []Element[K] {
	out := make([]Element[K], len(q.elements))
	copy(out, q.elements)
	return out
}

// Insert adds a new element and restores the heap property by sifting the
// new slot upward. O(log n).
//
// Returns a DuplicateKeyError if value is already live; the queue is left
// unmodified in that case.
func (q *Queue[K]) Insert(value K, priority float64, owner string) error {
	start := time.Now()
	err := q.insert(value, priority, owner)
	q.metrics.RecordInsert(time.Since(start), err)
	q.logger.LogInsert(value, priority, owner, err)
	return err
}

func (q *Queue[K]) insert(value K, priority float64, owner string) error {
	if _, ok := q.pos[value]; ok {
		return &DuplicateKeyError{Key: value}
	}

	el := Element[K]{
		Value:     value,
		Priority:  priority,
		Owner:     owner,
		Timestamp: q.now(),
	}

	q.elements = append(q.elements, el)
	q.pos[value] = len(q.elements) - 1
	q.siftUp(len(q.elements) - 1)

	q.emit(Event{
		Kind:     EventInserted,
		Value:    formatKey(value),
		Priority: priority,
		Owner:    owner,
	})

	return nil
}

// ExtractTop removes and returns the top element (smallest priority for a
// min-heap, largest for a max-heap). O(log n).
//
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[K]) ExtractTop() (Element[K], error) {
	start := time.Now()
	el, err := q.extractTop()
	q.metrics.RecordExtract(time.Since(start), err)
	q.logger.LogExtract(el.Value, el.Priority, err)
	return el, err
}

func (q *Queue[K]) extractTop() (Element[K], error) {
	n := len(q.elements)
	if n == 0 {
		return Element[K]{}, ErrEmptyQueue
	}

	top := q.elements[0]
	last := q.elements[n-1]
	q.elements[n-1] = Element[K]{} // release references for GC
	q.elements = q.elements[:n-1]
	delete(q.pos, top.Value)

	if n-1 > 0 {
		q.elements[0] = last
		q.pos[last.Value] = 0
		q.siftDown(0)
	}

	q.emit(Event{
		Kind:     EventExtracted,
		Value:    formatKey(top.Value),
		Priority: top.Priority,
		Owner:    top.Owner,
	})

	return top, nil
}

// Peek returns the top element without removing it. O(1).
//
// Returns ErrEmptyQueue if the queue is empty.
func (q *Queue[K]) Peek() (Element[K], error) {
	if len(q.elements) == 0 {
		return Element[K]{}, ErrEmptyQueue
	}
	return q.elements[0], nil
}

// UpdatePriority overwrites the priority of a live element and restores the
// heap property with a single directional sift: the sign of the change
// relative to the ordering direction determines whether the element can only
// have moved toward the root or toward the leaves. O(log n).
//
// Returns a NotFoundError if value is not live.
func (q *Queue[K]) UpdatePriority(value K, priority float64) error {
	start := time.Now()
	err := q.updatePriority(value, priority)
	q.metrics.RecordUpdate(time.Since(start), err)
	return err
}

func (q *Queue[K]) updatePriority(value K, priority float64) error {
	i, ok := q.pos[value]
	if !ok {
		err := &NotFoundError{Key: value}
		q.logger.LogUpdate(value, 0, priority, err)
		return err
	}

	old := q.elements[i].Priority
	q.elements[i].Priority = priority
	el := q.elements[i]

	switch {
	case priority == old:
		// Equal priorities never violate the heap property.
	case (priority < old) == (q.kind == MinHeap):
		// Moved toward the top of the ordering.
		q.siftUp(i)
	default:
		q.siftDown(i)
	}

	q.logger.LogUpdate(value, old, priority, nil)
	q.emit(Event{
		Kind:        EventUpdated,
		Value:       formatKey(value),
		Priority:    priority,
		OldPriority: old,
		Owner:       el.Owner,
	})

	return nil
}

// Remove deletes an arbitrary live element by value and returns it. The last
// slot is moved into the hole; because its relation to the new neighbors is
// unknown, both an upward and a downward correction run. O(log n).
//
// Returns a NotFoundError if value is not live.
func (q *Queue[K]) Remove(value K) (Element[K], error) {
	start := time.Now()
	el, err := q.remove(value)
	q.metrics.RecordRemove(time.Since(start), err)
	q.logger.LogRemove(value, err)
	return el, err
}

func (q *Queue[K]) remove(value K) (Element[K], error) {
	i, ok := q.pos[value]
	if !ok {
		return Element[K]{}, &NotFoundError{Key: value}
	}

	removed := q.elements[i]
	n := len(q.elements)
	last := q.elements[n-1]
	q.elements[n-1] = Element[K]{}
	q.elements = q.elements[:n-1]
	delete(q.pos, value)

	if i < n-1 {
		q.elements[i] = last
		q.pos[last.Value] = i
		q.siftUp(i)
		q.siftDown(q.pos[last.Value])
	}

	q.emit(Event{
		Kind:     EventRemoved,
		Value:    formatKey(removed.Value),
		Priority: removed.Priority,
		Owner:    removed.Owner,
	})

	return removed, nil
}

// BatchInsert inserts each (value, priority, owner) tuple in order with full
// per-element semantics: per-element duplicate checking and per-element
// notifications. It is deliberately not a bulk heapify.
//
// Slice lengths are validated before any mutation; a LengthMismatchError
// commits nothing. A mid-batch failure stops the batch and reports the
// offending index; tuples inserted earlier in the batch remain live.
func (q *Queue[K]) BatchInsert(values []K, priorities []float64, owners []string) error {
	start := time.Now()

	if len(values) != len(priorities) || len(values) != len(owners) {
		err := &LengthMismatchError{
			Values:     len(values),
			Priorities: len(priorities),
			Owners:     len(owners),
		}
		q.metrics.RecordBatchInsert(len(values), len(values), time.Since(start))
		return err
	}

	for i := range values {
		if err := q.Insert(values[i], priorities[i], owners[i]); err != nil {
			q.metrics.RecordBatchInsert(len(values), len(values)-i, time.Since(start))
			return &BatchInsertError{Index: i, err: err}
		}
	}

	q.metrics.RecordBatchInsert(len(values), 0, time.Since(start))
	q.logger.LogBatchInsert(len(values), nil)
	return nil
}

// ExtractMultiple drains the top count elements in extraction order by
// calling ExtractTop count times.
//
// Returns an InsufficientElementsError if count exceeds the live element
// count (or is negative); the queue is left unmodified in that case.
func (q *Queue[K]) ExtractMultiple(count int) ([]Element[K], error) {
	if count < 0 || count > len(q.elements) {
		return nil, &InsufficientElementsError{Requested: count, Available: len(q.elements)}
	}

	out := make([]Element[K], 0, count)
	for i := 0; i < count; i++ {
		el, err := q.ExtractTop()
		if err != nil {
			return out, err
		}
		out = append(out, el)
	}

	return out, nil
}

// Merge drains other into q by repeated extract+insert, preserving
// per-element extraction-order semantics. O(m log(n+m)) for m elements in
// other; a structural O(n+m) union is intentionally not attempted.
//
// Both queues must share the same Kind (IncompatibleKindError otherwise).
// Key collisions between the two queues are detected before any element
// moves and reported as a DuplicateKeyError, leaving both queues unmodified.
func (q *Queue[K]) Merge(other *Queue[K]) error {
	start := time.Now()
	moved, err := q.merge(other)
	q.metrics.RecordMerge(moved, time.Since(start), err)
	q.logger.LogMerge(moved, err)
	return err
}

func (q *Queue[K]) merge(other *Queue[K]) (int, error) {
	if other == nil || other == q {
		return 0, nil
	}
	if q.kind != other.kind {
		return 0, &IncompatibleKindError{Dst: q.kind, Src: other.kind}
	}

	for i := range other.elements {
		if _, ok := q.pos[other.elements[i].Value]; ok {
			return 0, &DuplicateKeyError{Key: other.elements[i].Value}
		}
	}

	moved := 0
	for !other.IsEmpty() {
		el, err := other.ExtractTop()
		if err != nil {
			return moved, err
		}
		if err := q.Insert(el.Value, el.Priority, el.Owner); err != nil {
			return moved, err
		}
		moved++
	}

	return moved, nil
}

// Filter returns copies of all live elements matching pred, scanned in
// storage order (not priority order). Read-only, O(n).
func (q *Queue[K]) Filter(pred Predicate[K]) []Element[K] {
	var out []Element[K]
	for _, el := range q.elements {
		if pred(el.Value, el.Priority, el.Owner) {
			out = append(out, el)
		}
	}
	return out
}

// Clear removes all live elements and index entries while retaining the
// container and its ordering direction. Emptiness is a normal state, so
// Clear never fails.
func (q *Queue[K]) Clear() {
	n := len(q.elements)
	clear(q.elements)
	q.elements = q.elements[:0]
	clear(q.pos)

	q.logger.LogClear(n)
	q.emit(Event{
		Kind:  EventCleared,
		Count: n,
	})
}

// less reports whether the element at slot i must precede the element at
// slot j under the queue's ordering. Equal priorities never require a swap.
func (q *Queue[K]) less(i, j int) bool {
	if q.kind == MaxHeap {
		return q.elements[i].Priority > q.elements[j].Priority
	}
	return q.elements[i].Priority < q.elements[j].Priority
}

// swap exchanges two slots and updates both position-index entries together.
func (q *Queue[K]) swap(i, j int) {
	q.elements[i], q.elements[j] = q.elements[j], q.elements[i]
	q.pos[q.elements[i].Value] = i
	q.pos[q.elements[j].Value] = j
}

func (q *Queue[K]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.swap(i, p)
		i = p
	}
}

func (q *Queue[K]) siftDown(i int) {
	n := len(q.elements)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.swap(i, best)
		i = best
	}
}

func (q *Queue[K]) emit(ev Event) {
	if q.emitter == nil {
		return
	}
	ev.Time = q.now()
	q.emitter.Emit(ev)
}
