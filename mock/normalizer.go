package mock

import "github.com/fwojciec/docquery"

var _ docquery.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of docquery.Normalizer.
type Normalizer struct {
	NormalizeFn func(sourceName string, kind docquery.Kind, baseURL string, hit docquery.Hit) (*docquery.Record, error)
}

func (n *Normalizer) Normalize(sourceName string, kind docquery.Kind, baseURL string, hit docquery.Hit) (*docquery.Record, error) {
	return n.NormalizeFn(sourceName, kind, baseURL, hit)
}
