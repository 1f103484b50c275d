package docquery

import "context"

// Aggregator runs one query across all relevant sources and returns the
// ranked, deduplicated result with per-source outcomes. Implementations
// return an error only for contract violations; upstream failures are data
// in the result.
type Aggregator interface {
	Aggregate(ctx context.Context, query Query) (*Result, error)
}
