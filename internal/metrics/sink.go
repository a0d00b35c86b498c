package metrics

import (
	"sync"
	"time"
)

const defaultCapacity = 1000

// Sample - одно обработанное HTTP-обращение.
type Sample struct {
	Method   string
	Path     string
	Status   int
	Latency  time.Duration
	Observed time.Time
}

// Summary - агрегат по текущему окну сэмплов.
type Summary struct {
	Count          int           `json:"count"`
	Capacity       int           `json:"capacity"`
	AvgLatency     time.Duration `json:"avgLatencyNs"`
	MaxLatency     time.Duration `json:"maxLatencyNs"`
	StatusCounts   map[int]int   `json:"statusCounts"`
	OldestObserved time.Time     `json:"oldestObserved"`
	NewestObserved time.Time     `json:"newestObserved"`
}

// Sink - кольцевой буфер последних запросов фиксированной емкости.
// Когда буфер полон, новый сэмпл вытесняет самый старый. Sink внедряется
// зависимостью (в middleware и в stats-хендлер), глобального состояния нет.
type Sink struct {
	mu      sync.Mutex
	samples []Sample
	next    int
	filled  bool
}

// NewSink создает sink. capacity <= 0 дает емкость по умолчанию (1000).
func NewSink(capacity int) *Sink {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Sink{samples: make([]Sample, capacity)}
}

// Record добавляет сэмпл, вытесняя самый старый при заполненном буфере.
func (s *Sink) Record(sample Sample) {
	if sample.Observed.IsZero() {
		sample.Observed = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples[s.next] = sample
	s.next++
	if s.next == len(s.samples) {
		s.next = 0
		s.filled = true
	}
}

// Summarize возвращает агрегат по всем сэмплам текущего окна.
func (s *Sink) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.next
	if s.filled {
		count = len(s.samples)
	}

	summary := Summary{
		Count:        count,
		Capacity:     len(s.samples),
		StatusCounts: make(map[int]int),
	}
	if count == 0 {
		return summary
	}

	var total time.Duration
	for i := 0; i < count; i++ {
		sample := &s.samples[i]
		total += sample.Latency
		if sample.Latency > summary.MaxLatency {
			summary.MaxLatency = sample.Latency
		}
		summary.StatusCounts[sample.Status]++
		if summary.OldestObserved.IsZero() || sample.Observed.Before(summary.OldestObserved) {
			summary.OldestObserved = sample.Observed
		}
		if sample.Observed.After(summary.NewestObserved) {
			summary.NewestObserved = sample.Observed
		}
	}
	summary.AvgLatency = total / time.Duration(count)
	return summary
}
