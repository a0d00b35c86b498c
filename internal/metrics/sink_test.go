package metrics_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"scenario-server/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Record(t *testing.T) {
	t.Run("Partially filled buffer", func(t *testing.T) {
		sink := metrics.NewSink(10)
		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		sink.Record(metrics.Sample{Method: "GET", Path: "/api/scenarios", Status: 200, Latency: 10 * time.Millisecond, Observed: base})
		sink.Record(metrics.Sample{Method: "POST", Path: "/api/scenarios", Status: 201, Latency: 30 * time.Millisecond, Observed: base.Add(time.Minute)})

		summary := sink.Summarize()
		assert.Equal(t, 2, summary.Count)
		assert.Equal(t, 10, summary.Capacity)
		assert.Equal(t, 20*time.Millisecond, summary.AvgLatency)
		assert.Equal(t, 30*time.Millisecond, summary.MaxLatency)
		assert.Equal(t, map[int]int{200: 1, 201: 1}, summary.StatusCounts)
		assert.Equal(t, base, summary.OldestObserved)
		assert.Equal(t, base.Add(time.Minute), summary.NewestObserved)
	})

	t.Run("Wraparound evicts the oldest samples", func(t *testing.T) {
		sink := metrics.NewSink(4)
		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		// Шесть записей в буфер на четыре: первые две вытесняются
		for i := 0; i < 6; i++ {
			status := 200
			if i < 2 {
				status = 500
			}
			sink.Record(metrics.Sample{
				Method:   "GET",
				Path:     "/api/sessions",
				Status:   status,
				Latency:  time.Duration(i+1) * time.Millisecond,
				Observed: base.Add(time.Duration(i) * time.Second),
			})
		}

		summary := sink.Summarize()
		assert.Equal(t, 4, summary.Count)
		assert.Equal(t, 4, summary.Capacity)
		// Ошибочные статусы ушли вместе с вытесненными сэмплами
		assert.Equal(t, map[int]int{200: 4}, summary.StatusCounts)
		assert.Equal(t, 6*time.Millisecond, summary.MaxLatency)
		assert.Equal(t, base.Add(2*time.Second), summary.OldestObserved)
		assert.Equal(t, base.Add(5*time.Second), summary.NewestObserved)
	})

	t.Run("Zero capacity falls back to the default", func(t *testing.T) {
		sink := metrics.NewSink(0)
		summary := sink.Summarize()
		assert.Equal(t, 1000, summary.Capacity)
		assert.Zero(t, summary.Count)
	})

	t.Run("Observed time defaults to now", func(t *testing.T) {
		sink := metrics.NewSink(2)
		sink.Record(metrics.Sample{Method: "GET", Path: "/health", Status: 200})

		summary := sink.Summarize()
		require.Equal(t, 1, summary.Count)
		assert.False(t, summary.NewestObserved.IsZero())
	})
}

func TestSink_ConcurrentRecord(t *testing.T) {
	sink := metrics.NewSink(64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sink.Record(metrics.Sample{
					Method:  "GET",
					Path:    fmt.Sprintf("/api/scenarios/%d", worker),
					Status:  200,
					Latency: time.Millisecond,
				})
			}
		}(i)
	}
	wg.Wait()

	summary := sink.Summarize()
	assert.Equal(t, 64, summary.Count)
	assert.Equal(t, 64, summary.StatusCounts[200])
}
