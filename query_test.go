package docquery_test

import (
	"testing"

	"github.com/fwojciec/docquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a search query with a term", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Term: "embeddings", Kind: docquery.KindGeneral}
		require.NoError(t, q.Validate())
	})

	t.Run("rejects an empty term for search kinds", func(t *testing.T) {
		t.Parallel()

		for _, kind := range []docquery.Kind{
			docquery.KindGeneral,
			docquery.KindAPIReference,
			docquery.KindExamples,
			docquery.KindTutorials,
		} {
			q := docquery.Query{Kind: kind}
			err := q.Validate()
			require.Error(t, err)
			assert.Equal(t, docquery.EINVALID, docquery.ErrorCode(err))
		}
	})

	t.Run("allows an empty term for version info", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Kind: docquery.KindVersionInfo}
		require.NoError(t, q.Validate())
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		t.Parallel()

		q := docquery.Query{Term: "x", Kind: docquery.Kind("bogus")}
		err := q.Validate()
		require.Error(t, err)
		assert.Equal(t, docquery.EINVALID, docquery.ErrorCode(err))
	})
}

func TestQuery_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero applies default", 0, docquery.DefaultResults},
		{"below minimum clamps up", -3, docquery.MinResults},
		{"above maximum clamps down", 500, docquery.MaxResults},
		{"in range passes through", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := docquery.Query{Term: "x", Kind: docquery.KindGeneral, MaxResults: tt.in}
			q.Normalize()
			assert.Equal(t, tt.want, q.MaxResults)
		})
	}
}
