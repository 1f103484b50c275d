// Package goquery provides the canonical hit normalizer. It strips markup
// from source content, resolves relative links, and produces deterministic
// docquery.Record values.
package goquery

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docquery"
)

// Ensure Normalizer implements docquery.Normalizer at compile time.
var _ docquery.Normalizer = (*Normalizer)(nil)

// Normalizer converts raw source hits into canonical records.
// It is stateless and safe for concurrent use.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize converts a single hit into a record. The title and excerpt are
// stripped down to plain text, the hit URL is resolved against baseURL, the
// snippet is truncated to docquery.SnippetMaxLen, and the score is left at
// zero for the ranker. Normalize is pure: identical inputs always yield an
// identical record.
func (n *Normalizer) Normalize(sourceName string, kind docquery.Kind, baseURL string, hit docquery.Hit) (*docquery.Record, error) {
	if hit.URL == "" {
		return nil, docquery.Errorf(docquery.EINVALID, "hit from %s has no URL", sourceName)
	}

	resolved, err := resolveURL(baseURL, hit.URL)
	if err != nil {
		return nil, err
	}

	title := StripText(hit.Title)
	if title == "" {
		title = resolved
	}
	snippet := Truncate(StripText(hit.Excerpt), docquery.SnippetMaxLen)

	return &docquery.Record{
		Title:       title,
		URL:         resolved,
		Snippet:     snippet,
		SourceName:  sourceName,
		Kind:        kind,
		Score:       0,
		ContentHash: contentHash(title, snippet),
	}, nil
}

// StripText reduces possibly-HTML content to whitespace-collapsed plain
// text. Script and style elements are dropped entirely. Content without
// markup passes through with whitespace collapsed.
func StripText(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsRune(s, '<') {
		return collapse(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapse(s)
	}
	doc.Find("script, style").Remove()
	return collapse(doc.Text())
}

// Truncate shortens s to at most max bytes on a rune boundary, appending
// an ellipsis when content was dropped.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	const ellipsis = "..."
	cut := max - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + ellipsis
}

// resolveURL resolves href against base, tolerating an empty base for
// sources that always report absolute URLs.
func resolveURL(base, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", docquery.Errorf(docquery.EINVALID, "invalid hit URL %q: %v", href, err)
	}
	if ref.IsAbs() || base == "" {
		return ref.String(), nil
	}

	b, err := url.Parse(base)
	if err != nil {
		return "", docquery.Errorf(docquery.EINVALID, "invalid base URL %q: %v", base, err)
	}
	return b.ResolveReference(ref).String(), nil
}

// contentHash fingerprints the normalized content so identical payloads
// served under different URLs are recognizable downstream.
func contentHash(title, snippet string) string {
	h := xxhash.New()
	_, _ = h.WriteString(title)
	_, _ = h.WriteString("\n")
	_, _ = h.WriteString(snippet)
	return fmt.Sprintf("%016x", h.Sum64())
}

// collapse normalizes all runs of whitespace to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
