package docquery

// Hit is the unnormalized result shape produced by a Source. Titles and
// excerpts may still contain markup and URLs may be relative to the source
// base; the Normalizer converts hits into canonical Records. Hits never
// cross the adapter + normalizer boundary.
type Hit struct {
	// Title is the raw title as reported by the source.
	Title string

	// URL is the hit location, possibly relative to the source base URL.
	URL string

	// Excerpt is raw source content: HTML for website hits, plain text or
	// code for repository and index hits.
	Excerpt string

	// Metadata carries source-specific fields (category, version,
	// file path) that survive into the record snippet or hash.
	Metadata map[string]string
}
