// Package docsite implements the documentation-website source. It searches
// a fixed (or sitemap-discovered) set of section pages, walks the tutorials
// index, and scans the API-reference search page.
package docsite

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docquery"
	dqhttp "github.com/fwojciec/docquery/http"
)

// Ensure Source implements docquery.Source at compile time.
var _ docquery.Source = (*Source)(nil)

// DefaultSections are the documentation sections scanned for general
// searches when sitemap discovery is disabled or yields nothing.
var DefaultSections = []string{
	"/docs/introduction/",
	"/docs/tutorials/",
	"/docs/how_to/",
	"/docs/concepts/",
	"/docs/integrations/providers/",
	"/api_reference/",
}

// maxDiscoveredSections caps how many sitemap-discovered section pages a
// single query will scan.
const maxDiscoveredSections = 12

// maxTutorials caps the hits returned by a tutorials query before ranking.
const maxTutorials = 20

// Source searches a documentation website.
type Source struct {
	client    *dqhttp.Client
	baseURL   string
	sections  []string
	finder    docquery.SectionFinder
	extractor docquery.Extractor
	converter docquery.Converter
}

// Option configures a Source.
type Option func(*Source)

// WithSections overrides the default section pages scanned by searches.
func WithSections(sections []string) Option {
	return func(s *Source) {
		s.sections = sections
	}
}

// WithSectionFinder enables sitemap-based section discovery. Discovery is
// best-effort; the configured sections remain the fallback.
func WithSectionFinder(f docquery.SectionFinder) Option {
	return func(s *Source) {
		s.finder = f
	}
}

// WithExtractor sets the content extractor used to enrich API-reference
// hits with the target page's main content.
func WithExtractor(e docquery.Extractor) Option {
	return func(s *Source) {
		s.extractor = e
	}
}

// WithConverter sets the markdown converter applied to extracted content.
func WithConverter(c docquery.Converter) Option {
	return func(s *Source) {
		s.converter = c
	}
}

// New creates a documentation-website source rooted at baseURL.
func New(client *dqhttp.Client, baseURL string, opts ...Option) *Source {
	s := &Source{
		client:   client,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		sections: DefaultSections,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the canonical source name.
func (s *Source) Name() string {
	return docquery.SourceDocsSite
}

// BaseURL returns the configured documentation root.
func (s *Source) BaseURL() string {
	return s.baseURL
}

// Kinds returns the query kinds this source participates in.
func (s *Source) Kinds() []docquery.Kind {
	return []docquery.Kind{docquery.KindGeneral, docquery.KindTutorials, docquery.KindAPIReference}
}

// Fetch executes the query against the documentation website.
func (s *Source) Fetch(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	switch query.Kind {
	case docquery.KindGeneral:
		return s.searchSections(ctx, query)
	case docquery.KindTutorials:
		return s.tutorials(ctx)
	case docquery.KindAPIReference:
		return s.apiReference(ctx, query)
	default:
		return nil, docquery.Errorf(docquery.EINVALID, "docsite does not serve kind %q", query.Kind)
	}
}

// searchSections scans section pages for the query term. A section that
// fails to fetch is skipped; the whole call fails only when every section
// failed, reporting the first error.
func (s *Source) searchSections(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	sections := s.sectionURLs(ctx)

	var hits []docquery.Hit
	var firstErr error
	failed := 0

	for _, sectionURL := range sections {
		if len(hits) >= query.MaxResults {
			break
		}

		content, err := s.client.GetHTML(ctx, sectionURL)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if !strings.Contains(strings.ToLower(content), strings.ToLower(query.Term)) {
			continue
		}

		hit, err := s.sectionHit(sectionURL, content)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		hits = append(hits, *hit)
	}

	if len(hits) == 0 && failed == len(sections) && firstErr != nil {
		return nil, firstErr
	}
	return hits, nil
}

// sectionHit builds a hit for a section page whose content matched.
// The title comes from the page <title>; the excerpt prefers the meta
// description over the first paragraph.
func (s *Source) sectionHit(sectionURL, content string) (*docquery.Hit, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, docquery.Errorf(docquery.EPARSE, "parsing section %s: %v", sectionURL, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = titleFromPath(sectionURL)
	}

	excerpt, _ := doc.Find(`meta[name="description"]`).Attr("content")
	if excerpt == "" {
		excerpt = strings.TrimSpace(doc.Find("p").First().Text())
	}

	return &docquery.Hit{
		Title:   title,
		URL:     sectionURL,
		Excerpt: excerpt,
		Metadata: map[string]string{
			"category": CategoryFromPath(sectionURL),
		},
	}, nil
}

// tutorials walks the tutorials index page and returns one hit per
// distinct documentation link.
func (s *Source) tutorials(ctx context.Context) ([]docquery.Hit, error) {
	content, err := s.client.GetHTML(ctx, s.baseURL+"/docs/tutorials/")
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, docquery.Errorf(docquery.EPARSE, "parsing tutorials page: %v", err)
	}

	seen := make(map[string]bool)
	var hits []docquery.Hit

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.HasPrefix(href, "/docs/") || !hasDocKeyword(href) {
			return true
		}

		title := strings.TrimSpace(sel.Text())
		if len(title) <= 3 {
			return true
		}

		full := s.resolve(href)
		if full == "" || seen[full] {
			return true
		}
		seen[full] = true

		category := CategoryFromPath(href)
		hits = append(hits, docquery.Hit{
			Title:   title,
			URL:     full,
			Excerpt: "Tutorial: " + title,
			Metadata: map[string]string{
				"category": category,
				"topic":    strings.ReplaceAll(strings.ToLower(category), " ", "_"),
			},
		})
		return len(hits) < maxTutorials
	})

	return hits, nil
}

// apiReference scans the API-reference search page for links matching the
// query term. When an extractor and converter are configured, the best
// match's target page is fetched and its main content carried as a
// markdown excerpt.
func (s *Source) apiReference(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	searchURL := s.baseURL + "/api_reference/search.html?q=" + url.QueryEscape(query.Term)
	content, err := s.client.GetHTML(ctx, searchURL)
	if err != nil {
		// The search page is optional on some deployments; fall back
		// to scanning the API reference index.
		content, err = s.client.GetHTML(ctx, s.baseURL+"/api_reference/")
		if err != nil {
			return nil, err
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, docquery.Errorf(docquery.EPARSE, "parsing API reference page: %v", err)
	}

	term := strings.ToLower(query.Term)
	var hits []docquery.Hit

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if text == "" || !strings.Contains(href, "api_reference") {
			return true
		}
		if !strings.Contains(strings.ToLower(text), term) && !strings.Contains(strings.ToLower(href), term) {
			return true
		}

		excerpt := ""
		if parent := sel.Parent(); parent != nil {
			if surrounding := strings.TrimSpace(parent.Text()); len(surrounding) > len(text) {
				excerpt = surrounding
			}
		}
		if excerpt == "" {
			excerpt = "API reference for " + text
		}

		hits = append(hits, docquery.Hit{
			Title:   text,
			URL:     s.resolve(href),
			Excerpt: excerpt,
			Metadata: map[string]string{
				"category": "API Reference",
			},
		})
		return len(hits) < query.MaxResults
	})

	if len(hits) > 0 {
		s.enrich(ctx, &hits[0])
	}
	return hits, nil
}

// enrich replaces the hit excerpt with the target page's main content as
// markdown. Failures leave the original excerpt in place.
func (s *Source) enrich(ctx context.Context, hit *docquery.Hit) {
	if s.extractor == nil || s.converter == nil {
		return
	}

	content, err := s.client.GetHTML(ctx, hit.URL)
	if err != nil {
		return
	}
	extracted, err := s.extractor.Extract(content)
	if err != nil || extracted.ContentHTML == "" {
		return
	}
	markdown, err := s.converter.Convert(extracted.ContentHTML)
	if err != nil {
		return
	}

	hit.Excerpt = markdown
	if extracted.Title != "" {
		hit.Title = extracted.Title
	}
}

// sectionURLs returns the absolute section URLs to scan, preferring
// sitemap discovery when configured.
func (s *Source) sectionURLs(ctx context.Context) []string {
	if s.finder != nil {
		discovered, err := s.finder.FindSections(ctx, s.baseURL, maxDiscoveredSections)
		if err == nil && len(discovered) > 0 {
			return discovered
		}
	}

	urls := make([]string, 0, len(s.sections))
	for _, section := range s.sections {
		urls = append(urls, s.resolve(section))
	}
	return urls
}

// resolve turns a site-relative path into an absolute URL.
func (s *Source) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// hasDocKeyword checks whether a documentation link belongs to a section
// worth surfacing as a tutorial hit.
func hasDocKeyword(href string) bool {
	for _, keyword := range []string{"tutorials", "concepts", "introduction", "how_to", "integrations"} {
		if strings.Contains(href, keyword) {
			return true
		}
	}
	return false
}

// titleFromPath derives a readable title from the last URL path segment.
func titleFromPath(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	words := strings.Fields(strings.ReplaceAll(segments[len(segments)-1], "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
