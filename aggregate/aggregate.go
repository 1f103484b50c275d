// Package aggregate provides the multi-source aggregation coordinator.
// It fans a query out to every relevant source concurrently, enforces
// per-source timeouts inside an overall query deadline, normalizes and
// ranks whatever arrives, and reports one outcome per dispatched source.
package aggregate

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/docquery"
	"golang.org/x/sync/errgroup"
)

// Ensure Aggregator implements docquery.Aggregator at compile time.
var _ docquery.Aggregator = (*Aggregator)(nil)

// Aggregator coordinates one query across all configured sources.
// The zero timing fields fall back to the docquery defaults. An Aggregator
// is stateless across queries and safe for concurrent use.
type Aggregator struct {
	Sources    []docquery.Source
	Normalizer docquery.Normalizer

	// SourceTimeout bounds each individual source call.
	SourceTimeout time.Duration

	// QueryDeadline bounds the whole fan-out. A source still running
	// when it fires is reported as timed out and its call cancelled.
	QueryDeadline time.Duration
}

// report carries one source's terminal state back to the coordinator.
// position preserves dispatch order so outcome ordering is deterministic.
type report struct {
	position int
	outcome  docquery.Outcome
	records  []docquery.Record
}

// Aggregate runs the query. It returns an error only for contract
// violations (invalid query, no source serving the kind); source failures
// of every sort are data in the result's outcome list, and a result with
// zero records and no OK outcome signals total upstream failure.
func (a *Aggregator) Aggregate(ctx context.Context, query docquery.Query) (*docquery.Result, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	query.Normalize()

	sources := docquery.SourcesFor(query.Kind, a.Sources)
	if len(sources) == 0 {
		return nil, docquery.Errorf(docquery.EINTERNAL, "no source serves kind %q", query.Kind)
	}

	deadline := a.QueryDeadline
	if deadline <= 0 {
		deadline = docquery.DefaultQueryDeadline
	}
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	reportCh := make(chan report, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			reportCh <- a.querySource(ctx, i, src, query)
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(reportCh)
	}()

	// Collect until every source reaches a terminal state. Each task is
	// bounded by the overall deadline through ctx, so the channel always
	// closes.
	outcomes := make([]docquery.Outcome, len(sources))
	var merged []docquery.Record
	for r := range reportCh {
		outcomes[r.position] = r.outcome
		merged = append(merged, r.records...)
	}

	return &docquery.Result{
		Records:  docquery.Rank(query, merged),
		Outcomes: outcomes,
	}, nil
}

// querySource runs one source call to a terminal state: succeeded, timed
// out, or failed. Hit-level normalization failures degrade the outcome
// without discarding the source's other hits.
func (a *Aggregator) querySource(ctx context.Context, position int, src docquery.Source, query docquery.Query) report {
	timeout := a.SourceTimeout
	if timeout <= 0 {
		timeout = docquery.DefaultSourceTimeout
	}
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	hits, err := src.Fetch(sctx, query)
	if err != nil {
		return report{position: position, outcome: failureOutcome(src.Name(), sctx, err)}
	}

	var records []docquery.Record
	dropped := 0
	for _, hit := range hits {
		record, err := a.Normalizer.Normalize(src.Name(), query.Kind, src.BaseURL(), hit)
		if err != nil {
			dropped++
			continue
		}
		records = append(records, *record)
	}

	outcome := docquery.Outcome{
		SourceName:  src.Name(),
		Status:      docquery.StatusOK,
		RecordCount: len(records),
	}
	if dropped > 0 {
		outcome.Status = docquery.StatusDegraded
		outcome.ErrorDetail = "some hits could not be normalized"
	}

	return report{position: position, outcome: outcome, records: records}
}

// failureOutcome classifies a source failure. Deadline expiry, whether
// from the per-source timeout or the overall query deadline, reports as
// timed out; everything else as failed.
func failureOutcome(sourceName string, ctx context.Context, err error) docquery.Outcome {
	status := docquery.StatusFailed
	if docquery.ErrorCode(err) == docquery.ETIMEOUT || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		status = docquery.StatusTimedOut
	}

	detail := docquery.ErrorMessage(err)
	if detail == "" || detail == "Internal error." {
		detail = err.Error()
	}

	return docquery.Outcome{
		SourceName:  sourceName,
		Status:      status,
		ErrorDetail: detail,
	}
}
