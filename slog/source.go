// Package slog provides logging decorators for docquery interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docquery"
)

// Ensure LoggingSource implements docquery.Source.
var _ docquery.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with structured fetch logging.
type LoggingSource struct {
	next   docquery.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next docquery.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingSource) Name() string {
	return s.next.Name()
}

// BaseURL delegates to the wrapped source.
func (s *LoggingSource) BaseURL() string {
	return s.next.BaseURL()
}

// Kinds delegates to the wrapped source.
func (s *LoggingSource) Kinds() []docquery.Kind {
	return s.next.Kinds()
}

// Fetch delegates to the wrapped source, logging duration, hit count,
// and the error code on failure.
func (s *LoggingSource) Fetch(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	begin := time.Now()
	hits, err := s.next.Fetch(ctx, query)
	if err != nil {
		s.logger.Warn("source fetch failed",
			"source", s.next.Name(),
			"kind", string(query.Kind),
			"code", docquery.ErrorCode(err),
			"duration", time.Since(begin),
			"error", docquery.ErrorMessage(err),
		)
		return nil, err
	}

	s.logger.Info("source fetch",
		"source", s.next.Name(),
		"kind", string(query.Kind),
		"hits", len(hits),
		"duration", time.Since(begin),
	)
	return hits, nil
}
