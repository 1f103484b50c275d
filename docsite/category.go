package docsite

import "strings"

// categoryKeywords maps URL path keywords to display categories, checked
// in a fixed order so classification is deterministic.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"introduction", "Introduction"},
	{"tutorials", "Tutorials"},
	{"how_to", "How-To Guides"},
	{"concepts", "Concepts"},
	{"integrations", "Integrations"},
	{"providers", "Providers"},
	{"api_reference", "API Reference"},
	{"chat", "Chat Models"},
	{"llms", "LLMs"},
	{"chains", "Chains"},
	{"agents", "Agents"},
	{"memory", "Memory"},
	{"retrievers", "Retrievers"},
	{"embeddings", "Embeddings"},
}

// CategoryFromPath determines a display category from a URL path.
// Unrecognized paths fall back to "General".
func CategoryFromPath(path string) string {
	low := strings.ToLower(path)
	for _, entry := range categoryKeywords {
		if strings.Contains(low, entry.keyword) {
			return entry.category
		}
	}
	return "General"
}
