package buffer

import (
	"fmt"
	"math"
)

// Stats is a set of statistical properties of a set of numbers.
type Stats struct {
	count          int
	first, last    float64
	min, max       float64
	mean, dSquared float64
	ema            float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean

	w := 2 / float64(s.count)
	s.ema = v*w + s.ema*(1-w)

	if s.count == 1 {
		s.first = v
	}

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}

	s.last = v
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// EMA is the exponential moving average of the set.
func (s Stats) EMA() float64 {
	return s.ema
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// First returns the first element pushed.
func (s Stats) First() float64 {
	return s.first
}

// Last returns the last element pushed.
func (s Stats) Last() float64 {
	return s.last
}

// Min returns the smallest element, 0 for an empty set.
func (s Stats) Min() float64 {
	if s.count == 0 {
		return 0
	}
	return s.min
}

// Max returns the largest element, 0 for an empty set.
func (s Stats) Max() float64 {
	if s.count == 0 {
		return 0
	}
	return s.max
}

// Diff returns the difference of the last and the first element.
func (s Stats) Diff() float64 {
	return s.last - s.first
}

// Variance is the mathematical variance of the set.
func (s Stats) Variance() float64 {
	if s.count == 0 {
		return 0
	}
	return s.dSquared / float64(s.count)
}

// StDev is the standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// StatsCollector is a collection of Stats variables.
// This enabled multi-dimensional tracking.
type StatsCollector struct {
	dim   int
	stats []*Stats
}

// NewStatsCollector creates a new Stats collector.
func NewStatsCollector(dim int) *StatsCollector {
	stats := make([]*Stats, dim)
	for i := 0; i < dim; i++ {
		stats[i] = NewStats()
	}
	return &StatsCollector{
		dim:   dim,
		stats: stats,
	}
}

// Push pushes each value to the corresponding dimension.
func (sc *StatsCollector) Push(v ...float64) {
	if len(v) != sc.dim {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(v), sc.dim))
	}
	for i := 0; i < len(sc.stats); i++ {
		sc.stats[i].Push(v[i])
	}
}

// Stats returns the stats for each dimension.
func (sc StatsCollector) Stats() []*Stats {
	return sc.stats
}

// Size returns the number of elements pushed.
func (sc *StatsCollector) Size() int {
	// we expect all buffer to have the same size
	return sc.stats[0].count
}

// Bucket groups together the values pushed for an index range.
type Bucket struct {
	stats *StatsCollector
	index int
}

// NewBucket creates a new bucket
// with a collector of the given dimensions.
func NewBucket(index int, dim int) Bucket {
	return Bucket{
		stats: NewStatsCollector(dim),
		index: index,
	}
}

// Size returns the number of elements in the bucket.
func (b Bucket) Size() int {
	return b.stats.Size()
}

// Values returns the current Stats for the bucket.
func (b Bucket) Values() StatsCollector {
	return *b.stats
}

// Index returns the first index of the bucket.
func (b Bucket) Index() int {
	return b.index
}

// Window groups consecutive indexes into buckets of a fixed size e.g. epochs into reporting intervals.
type Window struct {
	size    int
	dim     int
	current *Bucket
}

// NewWindow creates a new window of the given size for values of the given dimension.
func NewWindow(size, dim int) *Window {
	if size < 1 {
		size = 1
	}
	return &Window{
		size: size,
		dim:  dim,
	}
}

// Push adds the values for the given index.
// It returns the bucket and true once the bucket holding the index is complete.
// The index must be increasing.
func (w *Window) Push(index int, value ...float64) (Bucket, bool) {
	start := index - index%w.size
	if w.current == nil || w.current.index != start {
		b := NewBucket(start, w.dim)
		w.current = &b
	}
	w.current.stats.Push(value...)
	if index == start+w.size-1 {
		b := *w.current
		w.current = nil
		return b, true
	}
	return Bucket{}, false
}

// Flush returns the incomplete bucket, if any.
func (w *Window) Flush() (Bucket, bool) {
	if w.current == nil {
		return Bucket{}, false
	}
	b := *w.current
	w.current = nil
	return b, true
}
