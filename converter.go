package docquery

// Converter converts HTML to Markdown. The docsite source uses it to carry
// readable excerpts for API-reference lookups, where code formatting in the
// snippet matters.
type Converter interface {
	Convert(html string) (string, error)
}
