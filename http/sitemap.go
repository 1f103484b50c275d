package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docquery"
)

// Ensure SitemapFinder implements docquery.SectionFinder.
var _ docquery.SectionFinder = (*SitemapFinder)(nil)

// SitemapFinder discovers documentation section URLs from a site's
// sitemap.xml. Sitemap indexes are resolved recursively.
type SitemapFinder struct {
	client *Client
}

// NewSitemapFinder creates a SitemapFinder backed by client.
func NewSitemapFinder(client *Client) *SitemapFinder {
	return &SitemapFinder{client: client}
}

// FindSections returns up to limit URLs from the sitemap under baseURL.
// When baseURL has a non-root path (e.g. https://example.com/docs/), only
// URLs under that path are returned. A site without a sitemap yields an
// empty slice, not an error: section discovery is best-effort and the
// caller falls back to its configured sections.
func (f *SitemapFinder) FindSections(ctx context.Context, baseURL string, limit int) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docquery.Errorf(docquery.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()

	seen := make(map[string]bool)
	urls, err := f.walk(ctx, sitemapURL, seen)
	if err != nil {
		if docquery.ErrorCode(err) == docquery.ENOTFOUND {
			return []string{}, nil
		}
		return nil, err
	}

	out := make([]string, 0, len(urls))
	dedup := make(map[string]bool, len(urls))
	for _, u := range urls {
		if dedup[u] || !underPrefix(u, pathPrefix) {
			continue
		}
		dedup[u] = true
		out = append(out, u)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// walk fetches and parses one sitemap document, recursing into sitemap
// indexes. seen guards against sitemap cycles.
func (f *SitemapFinder) walk(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := f.client.GetHTML(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, docquery.Errorf(docquery.EPARSE, "parsing sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, docquery.Errorf(docquery.EPARSE, "empty sitemap at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, child := range root.SelectElements("sitemap") {
			loc := child.SelectElement("loc")
			if loc == nil {
				continue
			}
			nested := strings.TrimSpace(loc.Text())
			if nested == "" {
				continue
			}
			urls, err := f.walk(ctx, nested, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	var urls []string
	for _, child := range root.SelectElements("url") {
		loc := child.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// underPrefix checks whether rawURL's path sits under prefix, respecting
// path boundaries (/docs matches /docs/intro but not /documentation).
func underPrefix(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix) || parsed.Path+"/" == prefix
}
