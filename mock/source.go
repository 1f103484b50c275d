package mock

import (
	"context"

	"github.com/fwojciec/docquery"
)

var _ docquery.Source = (*Source)(nil)

// Source is a mock implementation of docquery.Source.
type Source struct {
	NameFn    func() string
	BaseURLFn func() string
	KindsFn   func() []docquery.Kind
	FetchFn   func(ctx context.Context, query docquery.Query) ([]docquery.Hit, error)
}

func (s *Source) Name() string {
	return s.NameFn()
}

func (s *Source) BaseURL() string {
	if s.BaseURLFn == nil {
		return ""
	}
	return s.BaseURLFn()
}

func (s *Source) Kinds() []docquery.Kind {
	return s.KindsFn()
}

func (s *Source) Fetch(ctx context.Context, query docquery.Query) ([]docquery.Hit, error) {
	return s.FetchFn(ctx, query)
}
