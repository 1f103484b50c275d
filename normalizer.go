package docquery

// Normalizer converts raw source hits into canonical records.
// Normalize is pure: the same (sourceName, kind, hit) triple always yields
// the same record. Scoring is not a normalization concern; records leave
// the normalizer with Score 0.
type Normalizer interface {
	// Normalize converts a single hit. It strips markup from the title
	// and excerpt, resolves the hit URL against baseURL, and truncates
	// the snippet to SnippetMaxLen.
	Normalize(sourceName string, kind Kind, baseURL string, hit Hit) (*Record, error)
}
