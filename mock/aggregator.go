package mock

import (
	"context"

	"github.com/fwojciec/docquery"
)

var _ docquery.Aggregator = (*Aggregator)(nil)

// Aggregator is a mock implementation of docquery.Aggregator.
type Aggregator struct {
	AggregateFn func(ctx context.Context, query docquery.Query) (*docquery.Result, error)
}

func (a *Aggregator) Aggregate(ctx context.Context, query docquery.Query) (*docquery.Result, error) {
	return a.AggregateFn(ctx, query)
}
