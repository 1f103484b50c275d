package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docquery"
	"github.com/fwojciec/docquery/mock"
	dqslog "github.com/fwojciec/docquery/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSource_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs a successful fetch and passes hits through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.Source{
			NameFn:  func() string { return docquery.SourceDocsSite },
			KindsFn: func() []docquery.Kind { return []docquery.Kind{docquery.KindGeneral} },
			FetchFn: func(_ context.Context, _ docquery.Query) ([]docquery.Hit, error) {
				return []docquery.Hit{{Title: "hit", URL: "https://docs/1"}}, nil
			},
		}
		src := dqslog.NewLoggingSource(inner, logger)

		hits, err := src.Fetch(context.Background(), docquery.Query{Term: "x", Kind: docquery.KindGeneral})

		require.NoError(t, err)
		assert.Len(t, hits, 1)
		assert.Contains(t, buf.String(), "source fetch")
		assert.Contains(t, buf.String(), "source=docsite")
		assert.Contains(t, buf.String(), "hits=1")
	})

	t.Run("logs the error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.Source{
			NameFn:  func() string { return docquery.SourceCodeRepo },
			KindsFn: func() []docquery.Kind { return []docquery.Kind{docquery.KindGeneral} },
			FetchFn: func(_ context.Context, _ docquery.Query) ([]docquery.Hit, error) {
				return nil, docquery.Errorf(docquery.EUPSTREAM, "HTTP 500")
			},
		}
		src := dqslog.NewLoggingSource(inner, logger)

		_, err := src.Fetch(context.Background(), docquery.Query{Term: "x", Kind: docquery.KindGeneral})

		require.Error(t, err)
		assert.Equal(t, docquery.EUPSTREAM, docquery.ErrorCode(err))
		assert.Contains(t, buf.String(), "source fetch failed")
		assert.Contains(t, buf.String(), "code=upstream")
	})

	t.Run("delegates identity methods", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Source{
			NameFn:    func() string { return docquery.SourcePackageIndex },
			BaseURLFn: func() string { return "https://pypi.org" },
			KindsFn:   func() []docquery.Kind { return []docquery.Kind{docquery.KindVersionInfo} },
		}
		src := dqslog.NewLoggingSource(inner, slog.New(slog.DiscardHandler))

		assert.Equal(t, docquery.SourcePackageIndex, src.Name())
		assert.Equal(t, "https://pypi.org", src.BaseURL())
		assert.Equal(t, []docquery.Kind{docquery.KindVersionInfo}, src.Kinds())
	})
}
