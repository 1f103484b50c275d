package docquery

import "context"

// Canonical source names.
const (
	SourceDocsSite     = "docsite"
	SourceCodeRepo     = "code-repo"
	SourcePackageIndex = "package-index"
)

// Source retrieves raw hits from one external documentation source.
// Implementations are stateless across queries: configuration (base
// endpoint, timeout, credential) is fixed at construction and the same
// Source value is safe for concurrent use.
type Source interface {
	// Name returns the canonical source name used in outcomes and records.
	Name() string

	// BaseURL returns the configured base endpoint. The normalizer
	// resolves relative hit URLs against it.
	BaseURL() string

	// Kinds returns the query kinds this source participates in.
	Kinds() []Kind

	// Fetch executes the query against the external source and returns
	// unnormalized hits. The context controls timeout and cancellation.
	// Failures are reported as *Error values (EUNAVAILABLE, EUPSTREAM,
	// EPARSE, ETIMEOUT, ENOTFOUND); Fetch never retries.
	Fetch(ctx context.Context, query Query) ([]Hit, error)
}

// SupportsKind reports whether src participates in queries of kind k.
func SupportsKind(src Source, k Kind) bool {
	for _, sk := range src.Kinds() {
		if sk == k {
			return true
		}
	}
	return false
}

// SourcesFor filters sources down to those relevant to kind k,
// preserving order.
func SourcesFor(k Kind, sources []Source) []Source {
	var out []Source
	for _, src := range sources {
		if SupportsKind(src, k) {
			out = append(out, src)
		}
	}
	return out
}
