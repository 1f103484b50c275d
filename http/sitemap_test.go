package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	dqhttp "github.com/fwojciec/docquery/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapFinder_FindSections(t *testing.T) {
	t.Parallel()

	t.Run("returns URLs from a urlset sitemap", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		var server *httptest.Server
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>` + server.URL + `/docs/intro/</loc></url>
  <url><loc>` + server.URL + `/docs/guide/</loc></url>
  <url><loc>` + server.URL + `/docs/intro/</loc></url>
</urlset>`))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		finder := dqhttp.NewSitemapFinder(dqhttp.NewClient())

		urls, err := finder.FindSections(context.Background(), server.URL, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/intro/", server.URL + "/docs/guide/"}, urls)
	})

	t.Run("resolves sitemap indexes recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		var server *httptest.Server
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<sitemapindex>
  <sitemap><loc>` + server.URL + `/sitemap-docs.xml</loc></sitemap>
</sitemapindex>`))
		})
		mux.HandleFunc("/sitemap-docs.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
  <url><loc>` + server.URL + `/docs/nested/</loc></url>
</urlset>`))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		finder := dqhttp.NewSitemapFinder(dqhttp.NewClient())

		urls, err := finder.FindSections(context.Background(), server.URL, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/nested/"}, urls)
	})

	t.Run("filters URLs outside the base path", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		var server *httptest.Server
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
  <url><loc>` + server.URL + `/docs/keep/</loc></url>
  <url><loc>` + server.URL + `/blog/skip/</loc></url>
</urlset>`))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		finder := dqhttp.NewSitemapFinder(dqhttp.NewClient())

		urls, err := finder.FindSections(context.Background(), server.URL+"/docs", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{server.URL + "/docs/keep/"}, urls)
	})

	t.Run("caps results at the limit", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		var server *httptest.Server
		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
  <url><loc>` + server.URL + `/a/</loc></url>
  <url><loc>` + server.URL + `/b/</loc></url>
  <url><loc>` + server.URL + `/c/</loc></url>
</urlset>`))
		})
		server = httptest.NewServer(mux)
		defer server.Close()

		finder := dqhttp.NewSitemapFinder(dqhttp.NewClient())

		urls, err := finder.FindSections(context.Background(), server.URL, 2)
		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})

	t.Run("treats a missing sitemap as empty", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NewServeMux()) // 404 everywhere
		defer server.Close()

		finder := dqhttp.NewSitemapFinder(dqhttp.NewClient())

		urls, err := finder.FindSections(context.Background(), server.URL, 10)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
