package docquery

// Result is the aggregated outcome of one query: ranked, deduplicated
// records plus one outcome per dispatched source. A Result is always
// well-formed, even when every source failed; total failure is data, not
// an error.
type Result struct {
	Records  []Record  `json:"records"`
	Outcomes []Outcome `json:"outcomes"`
}

// TotalFailure reports whether no source produced a usable payload.
func (r *Result) TotalFailure() bool {
	if len(r.Records) > 0 {
		return false
	}
	for i := range r.Outcomes {
		if r.Outcomes[i].Status == StatusOK {
			return false
		}
	}
	return true
}

// Partial reports whether at least one source degraded, failed, or timed
// out while the result still carries records.
func (r *Result) Partial() bool {
	if len(r.Records) == 0 {
		return false
	}
	for i := range r.Outcomes {
		if r.Outcomes[i].Status != StatusOK {
			return true
		}
	}
	return false
}

// Response is the caller-facing shape produced by the assembler. Field
// names and ordering are stable across calls for identical inputs.
type Response struct {
	QueryID  string    `json:"queryId"`
	Term     string    `json:"term"`
	Kind     Kind      `json:"kind"`
	Records  []Record  `json:"records"`
	Outcomes []Outcome `json:"outcomes"`
}
