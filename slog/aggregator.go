package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docquery"
)

// Ensure LoggingAggregator implements docquery.Aggregator.
var _ docquery.Aggregator = (*LoggingAggregator)(nil)

// LoggingAggregator wraps an Aggregator with structured query logging.
type LoggingAggregator struct {
	next   docquery.Aggregator
	logger *slog.Logger
}

// NewLoggingAggregator creates a new LoggingAggregator.
func NewLoggingAggregator(next docquery.Aggregator, logger *slog.Logger) *LoggingAggregator {
	return &LoggingAggregator{next: next, logger: logger}
}

// Aggregate delegates to the wrapped aggregator, logging the query shape,
// duration, record count, and how many sources ended in each status.
func (a *LoggingAggregator) Aggregate(ctx context.Context, query docquery.Query) (*docquery.Result, error) {
	begin := time.Now()
	result, err := a.next.Aggregate(ctx, query)
	if err != nil {
		a.logger.Warn("query rejected",
			"kind", string(query.Kind),
			"code", docquery.ErrorCode(err),
			"duration", time.Since(begin),
			"error", docquery.ErrorMessage(err),
		)
		return nil, err
	}

	usable := 0
	for i := range result.Outcomes {
		if result.Outcomes[i].Usable() {
			usable++
		}
	}
	a.logger.Info("query aggregated",
		"kind", string(query.Kind),
		"records", len(result.Records),
		"sources", len(result.Outcomes),
		"usable", usable,
		"duration", time.Since(begin),
	)
	return result, nil
}
