package docquery

import (
	"sort"
	"strings"
)

// Ranking scores. An exact (case-insensitive) title match outranks a title
// substring match, which outranks a snippet-only match. Records matching
// nowhere are excluded entirely: the engine never pads a result set with
// irrelevant records.
const (
	scoreExactTitle    = 1.0
	scoreTitleContains = 0.75
	scoreSnippet       = 0.4
)

// Rank scores, orders, deduplicates, and truncates records for a query.
//
// Ordering is deterministic: score descending, then shorter title, then
// lexicographic source name, then lexicographic URL. Duplicate URLs keep
// the best-ranked record. The result holds at most q.MaxResults records.
//
// Term-less queries (KindVersionInfo) skip matching: every record is the
// direct answer to the lookup and keeps the top score.
func Rank(q Query, records []Record) []Record {
	ranked := make([]Record, 0, len(records))
	for _, r := range records {
		score := Score(q.Term, r.Title, r.Snippet)
		if score == 0 {
			continue
		}
		r.Score = score
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if len(a.Title) != len(b.Title) {
			return len(a.Title) < len(b.Title)
		}
		if a.SourceName != b.SourceName {
			return a.SourceName < b.SourceName
		}
		return a.URL < b.URL
	})

	// Deduplicate by URL. After sorting, the first occurrence is the
	// best-ranked one.
	seen := make(map[string]bool, len(ranked))
	deduped := ranked[:0]
	for _, r := range ranked {
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		deduped = append(deduped, r)
	}

	if q.MaxResults > 0 && len(deduped) > q.MaxResults {
		deduped = deduped[:q.MaxResults]
	}
	return deduped
}

// Score computes the relevance of a single record for a term.
// Matching is case-insensitive. An empty term scores every record as an
// exact match (term-less lookup kinds).
func Score(term, title, snippet string) float64 {
	if term == "" {
		return scoreExactTitle
	}

	t := strings.ToLower(strings.TrimSpace(term))
	lowTitle := strings.ToLower(strings.TrimSpace(title))

	switch {
	case lowTitle == t:
		return scoreExactTitle
	case strings.Contains(lowTitle, t):
		return scoreTitleContains
	case strings.Contains(strings.ToLower(snippet), t):
		return scoreSnippet
	}
	return 0
}
