package interactome

import (
	"sync/atomic"
	"time"

	"github.com/rablab/interactome/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAggregate is called after each aggregation.
	// k is the number of collections, universe the number of distinct
	// identifiers (0 on failure), err is nil if successful.
	RecordAggregate(mode model.Mode, k, universe int, duration time.Duration, err error)

	// RecordNegativeTotal is called for every corrected singleton total
	// that came out negative.
	RecordNegativeTotal(collection string, value int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAggregate(model.Mode, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordNegativeTotal(string, int64)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StrictCount     atomic.Int64
	InclusiveCount  atomic.Int64
	Errors          atomic.Int64
	TotalNanos      atomic.Int64
	MaxCollections  atomic.Int64
	IdentifiersSeen atomic.Int64
	NegativeTotals  atomic.Int64
}

// RecordAggregate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAggregate(mode model.Mode, k, universe int, duration time.Duration, err error) {
	if err != nil {
		b.Errors.Add(1)
		return
	}
	switch mode {
	case model.Strict:
		b.StrictCount.Add(1)
	case model.Inclusive:
		b.InclusiveCount.Add(1)
	}
	b.TotalNanos.Add(duration.Nanoseconds())
	b.IdentifiersSeen.Add(int64(universe))
	for {
		cur := b.MaxCollections.Load()
		if int64(k) <= cur || b.MaxCollections.CompareAndSwap(cur, int64(k)) {
			break
		}
	}
}

// RecordNegativeTotal implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNegativeTotal(string, int64) {
	b.NegativeTotals.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StrictCount:     b.StrictCount.Load(),
		InclusiveCount:  b.InclusiveCount.Load(),
		Errors:          b.Errors.Load(),
		AvgNanos:        b.getAvgNanos(),
		MaxCollections:  b.MaxCollections.Load(),
		IdentifiersSeen: b.IdentifiersSeen.Load(),
		NegativeTotals:  b.NegativeTotals.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.StrictCount.Load() + b.InclusiveCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StrictCount     int64
	InclusiveCount  int64
	Errors          int64
	AvgNanos        int64
	MaxCollections  int64
	IdentifiersSeen int64
	NegativeTotals  int64
}
