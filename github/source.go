// Package github implements the code-repository source. It searches the
// repository's code-search API for example files and resolves API-reference
// symbols to their defining source file.
package github

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/docquery"
	dqhttp "github.com/fwojciec/docquery/http"
)

// Ensure Source implements docquery.Source at compile time.
var _ docquery.Source = (*Source)(nil)

// maxFileBytes is the largest example file carried as a hit excerpt.
// Bigger files are skipped rather than truncated mid-code.
const maxFileBytes = 5000

// maxSearchItems caps how many search items one query processes; each item
// costs an extra raw-content fetch.
const maxSearchItems = 10

// Source searches a code repository through its hosting API.
type Source struct {
	client  *dqhttp.Client
	apiBase string
}

// New creates a code-repository source. apiBase is the repository API root
// (e.g. https://api.github.com/repos/langchain-ai/langchain).
func New(client *dqhttp.Client, apiBase string) *Source {
	return &Source{
		client:  client,
		apiBase: strings.TrimSuffix(apiBase, "/"),
	}
}

// Name returns the canonical source name.
func (s *Source) Name() string {
	return docquery.SourceCodeRepo
}

// BaseURL returns the configured repository API root.
func (s *Source) BaseURL() string {
	return s.apiBase
}

// Kinds returns the query kinds this source participates in.
func (s *Source) Kinds() []docquery.Kind {
	return []docquery.Kind{docquery.KindGeneral, docquery.KindExamples, docquery.KindAPIReference}
}

// searchResponse is the code-search API payload shape.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	HTMLURL string `json:"html_url"`
}

// Fetch executes the query against the repository API.
func (s *Source) Fetch(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	switch query.Kind {
	case docquery.KindGeneral, docquery.KindExamples:
		return s.searchExamples(ctx, query)
	case docquery.KindAPIReference:
		return s.lookupSymbol(ctx, query.Term)
	default:
		return nil, docquery.Errorf(docquery.EINVALID, "code-repo does not serve kind %q", query.Kind)
	}
}

// searchExamples finds Python files matching the term and carries their
// contents as excerpts. Oversized files are skipped.
func (s *Source) searchExamples(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	var resp searchResponse
	searchURL := s.apiBase + "/search/code?q=" + url.QueryEscape("extension:py "+query.Term)
	if err := s.client.GetJSON(ctx, searchURL, &resp); err != nil {
		return nil, err
	}

	limit := query.MaxResults
	if limit > maxSearchItems {
		limit = maxSearchItems
	}

	var hits []docquery.Hit
	for _, item := range resp.Items {
		if len(hits) >= limit {
			break
		}

		content, err := s.client.GetHTML(ctx, RawContentURL(item.HTMLURL))
		if err != nil || len(content) >= maxFileBytes {
			continue
		}

		hits = append(hits, docquery.Hit{
			Title:   item.Name,
			URL:     item.HTMLURL,
			Excerpt: query.Term + " example from " + item.Path + "\n" + content,
			Metadata: map[string]string{
				"path": item.Path,
			},
		})
	}
	return hits, nil
}

// lookupSymbol resolves an identifier to its defining source file and
// returns a single hit describing the symbol: its docstring-style
// description, exported methods, and module path.
func (s *Source) lookupSymbol(ctx context.Context, symbol string) ([]docquery.Hit, error) {
	var resp searchResponse
	searchURL := s.apiBase + "/search/code?q=" + url.QueryEscape(symbol+" language:python")
	if err := s.client.GetJSON(ctx, searchURL, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, docquery.Errorf(docquery.ENOTFOUND, "symbol %q not found in repository", symbol)
	}

	item := resp.Items[0]
	content, err := s.client.GetHTML(ctx, RawContentURL(item.HTMLURL))
	if err != nil {
		return nil, err
	}

	info := ExtractSymbolInfo(content, symbol)
	description := info.Description
	if description == "" {
		description = "Source definition of " + symbol
	}

	excerpt := description
	if len(info.Methods) > 0 {
		excerpt += "\nMethods: " + strings.Join(info.Methods, ", ")
	}

	return []docquery.Hit{{
		Title:   symbol,
		URL:     item.HTMLURL,
		Excerpt: excerpt,
		Metadata: map[string]string{
			"modulePath": ModulePath(item.Path),
			"methods":    strings.Join(info.Methods, ","),
		},
	}}, nil
}

// RawContentURL rewrites a repository HTML URL to its raw-content
// equivalent.
func RawContentURL(htmlURL string) string {
	raw := strings.Replace(htmlURL, "github.com", "raw.githubusercontent.com", 1)
	return strings.Replace(raw, "/blob/", "/", 1)
}

// ModulePath derives a dotted module path from a repository file path.
func ModulePath(filePath string) string {
	trimmed := strings.TrimSuffix(filePath, ".py")
	return strings.ReplaceAll(trimmed, "/", ".")
}
