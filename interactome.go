package interactome

import (
	"context"
	"time"

	"github.com/rablab/interactome/aggregate"
	"github.com/rablab/interactome/internal/membership"
	"github.com/rablab/interactome/model"
)

// Aggregate builds the cardinality table of the collections under mode.
//
// Strict returns the partition of the universe by exact membership; absent
// patterns count 0. Inclusive returns all 2^K-1 patterns with corrected
// singleton totals, which may be negative.
//
// The collections are not modified. Configuration errors match
// ErrInvalidConfig.
func Aggregate(collections []model.Collection, mode model.Mode, optFns ...Option) (*aggregate.Table, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	ctx := context.Background()
	log := o.logger.WithMode(mode)
	start := time.Now()

	t, universe, err := run(collections, mode)
	o.metricsCollector.RecordAggregate(mode, len(collections), universe, time.Since(start), err)
	if err != nil {
		log.LogAggregate(ctx, len(collections), 0, 0, err)
		return nil, err
	}
	log.LogAggregate(ctx, t.K(), universe, t.Len(), nil)

	if mode == model.Inclusive {
		names := t.Names()
		for _, p := range aggregate.NegativeSingletons(t) {
			name := p.Label(names)
			log.LogNegativeTotal(ctx, name, t.Get(p))
			o.metricsCollector.RecordNegativeTotal(name, t.Get(p))
		}
	}

	return t, nil
}

func run(collections []model.Collection, mode model.Mode) (*aggregate.Table, int, error) {
	if !mode.Valid() {
		return nil, 0, &ErrUnsupportedMode{Mode: mode}
	}

	m, err := membership.Build(collections)
	if err != nil {
		return nil, 0, translateError(err)
	}

	switch mode {
	case model.Strict:
		return aggregate.Strict(m), m.Len(), nil
	default:
		return aggregate.Inclusive(m), m.Len(), nil
	}
}

// Universe returns the sorted, deduplicated union of the collections.
func Universe(collections []model.Collection) ([]string, error) {
	m, err := membership.Build(collections)
	if err != nil {
		return nil, translateError(err)
	}
	return m.Universe(), nil
}
