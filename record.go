package docquery

// SnippetMaxLen is the maximum length of a record snippet in bytes.
// Normalizers truncate longer content on a rune boundary.
const SnippetMaxLen = 280

// Record is the canonical, source-independent representation of one
// documentation hit. Within one aggregated result, URL is unique.
type Record struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Snippet    string  `json:"snippet"`
	SourceName string  `json:"sourceName"`
	Kind       Kind    `json:"kind"`
	Score      float64 `json:"score"`

	// ContentHash is an xxhash of the normalized title and snippet,
	// useful for spotting identical content served under different URLs.
	ContentHash string `json:"contentHash,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.SourceName == "" {
		return Errorf(EINVALID, "record source name required")
	}
	if r.Score < 0 || r.Score > 1 {
		return Errorf(EINVALID, "record score %v outside [0,1]", r.Score)
	}
	return nil
}
