package prioq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	q := New[string](MinHeap, WithMetrics(m))

	require.NoError(t, q.Insert("A", 1, "o"))
	require.Error(t, q.Insert("A", 1, "o")) // duplicate

	_, err := q.ExtractTop()
	require.NoError(t, err)
	_, err = q.ExtractTop()
	require.Error(t, err) // empty

	require.Error(t, q.UpdatePriority("missing", 1))
	_, err = q.Remove("missing")
	require.Error(t, err)

	require.NoError(t, q.BatchInsert([]string{"B", "C"}, []float64{1, 2}, []string{"o", "o"}))

	src := New[string](MinHeap)
	require.NoError(t, src.Insert("D", 3, "o"))
	require.NoError(t, q.Merge(src))

	assert.Equal(t, int64(5), m.InsertCount.Load()) // A, dup A, B, C, merged D
	assert.Equal(t, int64(1), m.InsertErrors.Load())
	assert.Equal(t, int64(2), m.ExtractCount.Load())
	assert.Equal(t, int64(1), m.ExtractErrors.Load())
	assert.Equal(t, int64(1), m.UpdateErrors.Load())
	assert.Equal(t, int64(1), m.RemoveErrors.Load())
	assert.Equal(t, int64(1), m.BatchInsertCount.Load())
	assert.Equal(t, int64(2), m.BatchInsertItems.Load())
	assert.Equal(t, int64(0), m.BatchInsertFailed.Load())
	assert.Equal(t, int64(1), m.MergeCount.Load())
	assert.Equal(t, int64(1), m.MergeMoved.Load())
	assert.Positive(t, m.InsertTotalNanos.Load())
}
