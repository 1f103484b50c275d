package mock

import "github.com/fwojciec/docquery"

var _ docquery.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docquery.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docquery.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docquery.ExtractResult, error) {
	return e.ExtractFn(html)
}
