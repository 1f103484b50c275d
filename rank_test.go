package docquery_test

import (
	"testing"

	"github.com/fwojciec/docquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		term    string
		title   string
		snippet string
		want    float64
	}{
		{"exact title match", "ChatOpenAI", "ChatOpenAI", "wrapper class", 1.0},
		{"exact title match is case-insensitive", "chatopenai", "ChatOpenAI", "", 1.0},
		{"title substring match", "OpenAI", "ChatOpenAI reference", "", 0.75},
		{"snippet-only match", "ChatOpenAI", "Chat models", "configure ChatOpenAI here", 0.4},
		{"no match scores zero", "ChatOpenAI", "Retrievers", "vector stores", 0},
		{"empty term scores every record top", "", "anything", "", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docquery.Score(tt.term, tt.title, tt.snippet))
		})
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	t.Run("orders by score then excludes non-matches", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Term: "ChatOpenAI", Kind: docquery.KindGeneral, MaxResults: 5}
		records := []docquery.Record{
			{Title: "Chat models", Snippet: "uses ChatOpenAI under the hood", URL: "https://a/1", SourceName: "docsite"},
			{Title: "ChatOpenAI", Snippet: "class reference", URL: "https://a/2", SourceName: "docsite"},
			{Title: "Retrievers", Snippet: "nothing relevant", URL: "https://a/3", SourceName: "docsite"},
		}

		ranked := docquery.Rank(q, records)

		require.Len(t, ranked, 2)
		assert.Equal(t, "https://a/2", ranked[0].URL)
		assert.Equal(t, 1.0, ranked[0].Score)
		assert.Equal(t, "https://a/1", ranked[1].URL)
		assert.Equal(t, 0.4, ranked[1].Score)
	})

	t.Run("breaks score ties by title length, source, then URL", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Term: "agent", Kind: docquery.KindGeneral, MaxResults: 10}
		records := []docquery.Record{
			{Title: "agent toolkits overview", URL: "https://b/2", SourceName: "docsite"},
			{Title: "agent basics", URL: "https://b/1", SourceName: "docsite"},
			{Title: "agent basics", URL: "https://a/1", SourceName: "code-repo"},
		}

		ranked := docquery.Rank(q, records)

		require.Len(t, ranked, 3)
		assert.Equal(t, "https://a/1", ranked[0].URL) // shorter title, code-repo < docsite
		assert.Equal(t, "https://b/1", ranked[1].URL)
		assert.Equal(t, "https://b/2", ranked[2].URL)
	})

	t.Run("deduplicates by URL keeping the best-ranked record", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Term: "embeddings", Kind: docquery.KindGeneral, MaxResults: 10}
		records := []docquery.Record{
			{Title: "Guide to embeddings", Snippet: "", URL: "https://a/1", SourceName: "docsite"},
			{Title: "embeddings", Snippet: "", URL: "https://a/1", SourceName: "code-repo"},
		}

		ranked := docquery.Rank(q, records)

		require.Len(t, ranked, 1)
		assert.Equal(t, "code-repo", ranked[0].SourceName)
		assert.Equal(t, 1.0, ranked[0].Score)
	})

	t.Run("truncates to max results", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Term: "embeddings", Kind: docquery.KindAPIReference, MaxResults: 10}
		var records []docquery.Record
		for i := 0; i < 12; i++ {
			records = append(records, docquery.Record{
				Title:      "embeddings",
				URL:        "https://a/" + string(rune('a'+i)),
				SourceName: "docsite",
			})
		}

		ranked := docquery.Rank(q, records)

		assert.Len(t, ranked, 10)
	})

	t.Run("is deterministic across repeat calls", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Term: "chain", Kind: docquery.KindGeneral, MaxResults: 10}
		records := []docquery.Record{
			{Title: "chain", URL: "https://a/2", SourceName: "docsite"},
			{Title: "chain", URL: "https://a/1", SourceName: "docsite"},
			{Title: "LLM chain how-to", URL: "https://a/3", SourceName: "code-repo"},
		}

		first := docquery.Rank(q, append([]docquery.Record(nil), records...))
		second := docquery.Rank(q, append([]docquery.Record(nil), records...))

		assert.Equal(t, first, second)
	})

	t.Run("keeps all records for a term-less query", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Kind: docquery.KindVersionInfo, MaxResults: 5}
		records := []docquery.Record{
			{Title: "langchain 1.2.3", URL: "https://pypi.org/project/langchain/", SourceName: "package-index"},
		}

		ranked := docquery.Rank(q, records)

		require.Len(t, ranked, 1)
		assert.Equal(t, 1.0, ranked[0].Score)
	})
}
