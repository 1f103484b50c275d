package docquery

import "time"

// Default timing and rate-limit values.
const (
	DefaultSourceTimeout  = 10 * time.Second
	DefaultQueryDeadline  = 25 * time.Second
	DefaultRequestsPerSec = 4.0
)

// Config holds the read-only engine configuration: source endpoints,
// timing bounds, and optional credentials. It is constructed once at
// process start and passed into the coordinator and sources explicitly;
// the engine never reads ambient global state.
type Config struct {
	// DocsBaseURL is the documentation website root.
	DocsBaseURL string

	// RepoAPIBaseURL is the code-repository API root for the upstream
	// project (e.g. a GitHub repos API endpoint).
	RepoAPIBaseURL string

	// IndexBaseURL is the package index root.
	IndexBaseURL string

	// PackageName is the upstream package queried for version info.
	PackageName string

	// RepoToken optionally authenticates code-repository calls for
	// higher rate limits. Empty means anonymous access.
	RepoToken string

	// SourceTimeout bounds each individual source call.
	SourceTimeout time.Duration

	// QueryDeadline bounds the whole fan-out regardless of how many
	// source calls are still outstanding.
	QueryDeadline time.Duration

	// RequestsPerSec limits outbound requests per source host.
	RequestsPerSec float64
}

// DefaultConfig returns a Config pointed at the upstream LangChain
// documentation, repository, and package index.
func DefaultConfig() Config {
	return Config{
		DocsBaseURL:    "https://python.langchain.com",
		RepoAPIBaseURL: "https://api.github.com/repos/langchain-ai/langchain",
		IndexBaseURL:   "https://pypi.org",
		PackageName:    "langchain",
		SourceTimeout:  DefaultSourceTimeout,
		QueryDeadline:  DefaultQueryDeadline,
		RequestsPerSec: DefaultRequestsPerSec,
	}
}
