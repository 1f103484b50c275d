package docquery

// ExtractResult holds the main content pulled out of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// Extractor extracts main content from arbitrarily-formatted documentation
// pages. The docsite source uses it to turn a matched page into a hit
// excerpt without carrying site chrome into the snippet.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
