package prioq

import "sync"

// SafeQueue serializes access to a Queue behind a single reader-writer lock.
// Mutating operations take the write lock; read-only operations (Peek, Stats,
// Filter, Len, IsEmpty, Contains, Elements) share the read lock and observe a
// consistent snapshot.
//
// Merge locks the destination first and the source second. Callers must not
// run two Merges between the same pair of queues in opposite directions
// concurrently.
type SafeQueue[K comparable] struct {
	mu sync.RWMutex
	q  *Queue[K]
}

// NewSafe creates an empty thread-safe queue with the given ordering direction.
func NewSafe[K comparable](kind Kind, optFns ...Option) *SafeQueue[K] {
	return &SafeQueue[K]{q: New[K](kind, optFns...)}
}

// WrapSafe wraps an existing Queue. The caller must not use q directly
// afterwards.
func WrapSafe[K comparable](q *Queue[K]) *SafeQueue[K] {
	return &SafeQueue[K]{q: q}
}

// Kind returns the ordering direction fixed at construction.
func (s *SafeQueue[K]) Kind() Kind {
	return s.q.Kind() // immutable, no lock needed
}

// Len returns the number of live elements.
func (s *SafeQueue[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (s *SafeQueue[K]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q.IsEmpty()
}

// Contains reports whether value is currently live.
func (s *SafeQueue[K]) Contains(value K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q.Contains(value)
}

// Elements returns a copy of all live elements in storage order.
func (s *SafeQueue[K]) Elements() []Element[K] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q.Elements()
}

// Insert adds a new element. See Queue.Insert.
func (s *SafeQueue[K]) Insert(value K, priority float64, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Insert(value, priority, owner)
}

// BatchInsert inserts each tuple in order. See Queue.BatchInsert.
func (s *SafeQueue[K]) BatchInsert(values []K, priorities []float64, owners []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.BatchInsert(values, priorities, owners)
}

// ExtractTop removes and returns the top element. See Queue.ExtractTop.
func (s *SafeQueue[K]) ExtractTop() (Element[K], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.ExtractTop()
}

// ExtractMultiple drains the top count elements. See Queue.ExtractMultiple.
func (s *SafeQueue[K]) ExtractMultiple(count int) ([]Element[K], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.ExtractMultiple(count)
}

// Peek returns the top element without removing it. See Queue.Peek.
func (s *SafeQueue[K]) Peek() (Element[K], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q.Peek()
}

// UpdatePriority overwrites the priority of a live element. See
// Queue.UpdatePriority.
func (s *SafeQueue[K]) UpdatePriority(value K, priority float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.UpdatePriority(value, priority)
}

// Remove deletes an arbitrary live element by value. See Queue.Remove.
func (s *SafeQueue[K]) Remove(value K) (Element[K], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Remove(value)
}

// Merge drains other into s. See Queue.Merge.
func (s *SafeQueue[K]) Merge(other *SafeQueue[K]) error {
	if other == nil || other == s {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()
	return s.q.Merge(other.q)
}

// Filter returns copies of all live elements matching pred. See Queue.Filter.
func (s *SafeQueue[K]) Filter(pred Predicate[K]) []Element[K] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q.Filter(pred)
}

// Stats returns aggregate priority statistics. See Queue.Stats.
func (s *SafeQueue[K]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.q.Stats()
}

// Clear removes all live elements. See Queue.Clear.
func (s *SafeQueue[K]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.q.Clear()
}
