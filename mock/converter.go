package mock

import "github.com/fwojciec/docquery"

var _ docquery.Converter = (*Converter)(nil)

// Converter is a mock implementation of docquery.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
