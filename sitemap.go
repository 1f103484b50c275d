package docquery

import "context"

// SectionFinder discovers documentation section URLs for a site.
// The docsite source uses it to extend the configured default sections
// with whatever the site's sitemap advertises.
type SectionFinder interface {
	// FindSections returns up to limit section URLs under baseURL.
	// Sitemap indexes are resolved recursively; URLs outside the
	// baseURL path are filtered out. Returns an empty slice (not nil)
	// when the site publishes no sitemap.
	FindSections(ctx context.Context, baseURL string, limit int) ([]string, error)
}
