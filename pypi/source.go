// Package pypi implements the package-index source. It serves version
// lookups and contributes the package summary to general searches.
package pypi

import (
	"context"
	"strings"

	"github.com/fwojciec/docquery"
	dqhttp "github.com/fwojciec/docquery/http"
)

// Ensure Source implements docquery.Source at compile time.
var _ docquery.Source = (*Source)(nil)

// Source queries a package index for one package.
type Source struct {
	client  *dqhttp.Client
	baseURL string
	pkg     string
}

// New creates a package-index source for pkg rooted at baseURL
// (e.g. https://pypi.org).
func New(client *dqhttp.Client, baseURL, pkg string) *Source {
	return &Source{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		pkg:     pkg,
	}
}

// Name returns the canonical source name.
func (s *Source) Name() string {
	return docquery.SourcePackageIndex
}

// BaseURL returns the configured index root.
func (s *Source) BaseURL() string {
	return s.baseURL
}

// Kinds returns the query kinds this source participates in.
func (s *Source) Kinds() []docquery.Kind {
	return []docquery.Kind{docquery.KindGeneral, docquery.KindVersionInfo}
}

// packageResponse is the index JSON payload shape.
type packageResponse struct {
	Info struct {
		Version        string `json:"version"`
		Summary        string `json:"summary"`
		Author         string `json:"author"`
		HomePage       string `json:"home_page"`
		RequiresPython string `json:"requires_python"`
	} `json:"info"`
	Releases map[string][]struct {
		UploadTime string `json:"upload_time_iso_8601"`
	} `json:"releases"`
}

// Fetch executes the query against the package index. Both supported kinds
// resolve through the same package JSON document; they differ only in the
// record shape.
func (s *Source) Fetch(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	switch query.Kind {
	case docquery.KindGeneral, docquery.KindVersionInfo:
	default:
		return nil, docquery.Errorf(docquery.EINVALID, "package-index does not serve kind %q", query.Kind)
	}

	var resp packageResponse
	if err := s.client.GetJSON(ctx, s.baseURL+"/pypi/"+s.pkg+"/json", &resp); err != nil {
		return nil, err
	}

	projectURL := s.baseURL + "/project/" + s.pkg + "/"

	if query.Kind == docquery.KindGeneral {
		return []docquery.Hit{{
			Title:   s.pkg,
			URL:     projectURL,
			Excerpt: resp.Info.Summary,
			Metadata: map[string]string{
				"version": resp.Info.Version,
			},
		}}, nil
	}

	var releaseDate string
	if files := resp.Releases[resp.Info.Version]; len(files) > 0 {
		releaseDate = files[0].UploadTime
	}

	return []docquery.Hit{{
		Title:   s.pkg + " " + resp.Info.Version,
		URL:     projectURL,
		Excerpt: resp.Info.Summary,
		Metadata: map[string]string{
			"version":        resp.Info.Version,
			"author":         resp.Info.Author,
			"homepage":       resp.Info.HomePage,
			"releaseDate":    releaseDate,
			"requiresPython": resp.Info.RequiresPython,
		},
	}}, nil
}
