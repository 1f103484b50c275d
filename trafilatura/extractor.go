// Package trafilatura extracts main content from documentation pages,
// removing navigation, sidebars, and other boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docquery.Extractor at compile time.
var _ docquery.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main content.
func (e *Extractor) Extract(rawHTML string) (*docquery.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docquery.Errorf(docquery.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docquery.Errorf(docquery.EPARSE, "content extraction failed: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &docquery.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", docquery.Errorf(docquery.EINTERNAL, "rendering extracted content: %v", err)
	}
	return buf.String(), nil
}
