package mock

import (
	"context"

	"github.com/fwojciec/docquery"
)

var _ docquery.SectionFinder = (*SectionFinder)(nil)

// SectionFinder is a mock implementation of docquery.SectionFinder.
type SectionFinder struct {
	FindSectionsFn func(ctx context.Context, baseURL string, limit int) ([]string, error)
}

func (f *SectionFinder) FindSections(ctx context.Context, baseURL string, limit int) ([]string, error) {
	return f.FindSectionsFn(ctx, baseURL, limit)
}
