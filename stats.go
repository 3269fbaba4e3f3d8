package prioq

// Stats aggregates the priorities of all live elements.
//
// An empty queue is a normal state: Stats on an empty queue returns the zero
// value rather than an error.
type Stats struct {
	Size        int     `json:"size"`
	MinPriority float64 `json:"min_priority"`
	MaxPriority float64 `json:"max_priority"`
	AvgPriority float64 `json:"avg_priority"`
}

// Stats scans all live elements and returns size, minimum, maximum and
// average priority. Read-only, O(n).
func (q *Queue[K]) Stats() Stats {
	n := len(q.elements)
	if n == 0 {
		return Stats{}
	}

	minP := q.elements[0].Priority
	maxP := minP
	sum := 0.0

	for _, el := range q.elements {
		if el.Priority < minP {
			minP = el.Priority
		}
		if el.Priority > maxP {
			maxP = el.Priority
		}
		sum += el.Priority
	}

	return Stats{
		Size:        n,
		MinPriority: minP,
		MaxPriority: maxP,
		AvgPriority: sum / float64(n),
	}
}
