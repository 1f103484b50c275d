package docquery

// Status is the terminal state of one source within one aggregated query.
type Status string

// Source outcome statuses.
//
// StatusDegraded means the source responded but part of its payload was
// unusable (hit-level normalization failures). StatusTimedOut covers both
// the per-source timeout and the overall query deadline.
const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
	StatusFailed   Status = "failed"
	StatusTimedOut Status = "timed_out"
)

// Outcome records how one source fared for one query. Every source
// dispatched for a query produces exactly one Outcome.
type Outcome struct {
	SourceName  string `json:"sourceName"`
	Status      Status `json:"status"`
	RecordCount int    `json:"recordCount"`
	ErrorDetail string `json:"errorDetail,omitempty"`
}

// Usable reports whether the outcome contributed records to the result.
func (o *Outcome) Usable() bool {
	return o.Status == StatusOK || o.Status == StatusDegraded
}
