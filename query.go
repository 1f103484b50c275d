package docquery

// Kind identifies the category of documentation a query targets.
// It determines which sources participate in the fan-out.
type Kind string

// Query kinds.
const (
	KindGeneral      Kind = "general"
	KindAPIReference Kind = "api_reference"
	KindExamples     Kind = "examples"
	KindTutorials    Kind = "tutorials"
	KindVersionInfo  Kind = "version_info"
)

// Valid reports whether k is a known query kind.
func (k Kind) Valid() bool {
	switch k {
	case KindGeneral, KindAPIReference, KindExamples, KindTutorials, KindVersionInfo:
		return true
	}
	return false
}

// Result count bounds for a single query.
const (
	MinResults     = 1
	MaxResults     = 50
	DefaultResults = 10
)

// Query represents a single documentation request. All entities derived from
// a Query live only for the duration of one aggregation call.
type Query struct {
	// Term is the search term or identifier. Required for every kind
	// except KindVersionInfo, which takes no term.
	Term string `json:"term"`

	// MaxResults bounds the number of records in the aggregated result.
	// Clamped to [MinResults, MaxResults] by Normalize.
	MaxResults int `json:"maxResults"`

	// Kind selects the documentation category and therefore the sources.
	Kind Kind `json:"kind"`
}

// Validate returns EINVALID if the query violates the engine contract.
// Contract violations are reported synchronously, before any source is
// dispatched.
func (q *Query) Validate() error {
	if !q.Kind.Valid() {
		return Errorf(EINVALID, "unknown query kind %q", q.Kind)
	}
	if q.Term == "" && q.Kind != KindVersionInfo {
		return Errorf(EINVALID, "query term required for kind %q", q.Kind)
	}
	return nil
}

// Normalize clamps MaxResults into [MinResults, MaxResults], applying
// DefaultResults when unset.
func (q *Query) Normalize() {
	switch {
	case q.MaxResults == 0:
		q.MaxResults = DefaultResults
	case q.MaxResults < MinResults:
		q.MaxResults = MinResults
	case q.MaxResults > MaxResults:
		q.MaxResults = MaxResults
	}
}
