package main

import (
	"time"

	"github.com/fwojciec/docquery"
)

// CLI defines the command-line surface. Inbound validation happens here,
// before the engine is invoked.
type CLI struct {
	Term       string `arg:"" optional:"" help:"Search term or identifier. Not required for version_info."`
	Kind       string `help:"Query kind." enum:"general,api_reference,examples,tutorials,version_info" default:"general"`
	MaxResults int    `help:"Maximum records returned (1-50)." default:"10"`

	DocsBase    string `help:"Documentation website root." default:"https://python.langchain.com"`
	RepoAPIBase string `help:"Code-repository API root." default:"https://api.github.com/repos/langchain-ai/langchain"`
	IndexBase   string `help:"Package index root." default:"https://pypi.org"`
	Package     string `help:"Package queried for version info." default:"langchain"`
	Token       string `help:"Optional code-repository API token." env:"DOCQUERY_REPO_TOKEN"`

	Timeout  time.Duration `help:"Per-source timeout." default:"10s"`
	Deadline time.Duration `help:"Overall query deadline." default:"25s"`
	Verbose  bool          `help:"Enable debug logging." short:"v"`
}

// Query builds and validates the engine query from the parsed flags.
func (c *CLI) Query() (docquery.Query, error) {
	q := docquery.Query{
		Term:       c.Term,
		MaxResults: c.MaxResults,
		Kind:       docquery.Kind(c.Kind),
	}
	q.Normalize()
	if err := q.Validate(); err != nil {
		return docquery.Query{}, err
	}
	return q, nil
}

// Config builds the engine configuration from the parsed flags.
func (c *CLI) Config() docquery.Config {
	return docquery.Config{
		DocsBaseURL:    c.DocsBase,
		RepoAPIBaseURL: c.RepoAPIBase,
		IndexBaseURL:   c.IndexBase,
		PackageName:    c.Package,
		RepoToken:      c.Token,
		SourceTimeout:  c.Timeout,
		QueryDeadline:  c.Deadline,
		RequestsPerSec: docquery.DefaultRequestsPerSec,
	}
}
