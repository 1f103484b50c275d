package aggregate

import (
	"github.com/fwojciec/docquery"
	"github.com/google/uuid"
)

// Assembler maps an aggregated result to the caller-facing response.
// It adds no data beyond a correlation ID; record ordering and field
// names are stable across calls for identical inputs.
type Assembler struct {
	// NewID generates the response correlation ID. Defaults to
	// uuid.NewString; tests inject a fixed generator.
	NewID func() string
}

// Assemble builds the response for one completed query. The records and
// outcomes slices are never nil so the serialized shape is stable.
func (asm *Assembler) Assemble(query docquery.Query, result *docquery.Result) *docquery.Response {
	newID := asm.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	records := result.Records
	if records == nil {
		records = []docquery.Record{}
	}
	outcomes := result.Outcomes
	if outcomes == nil {
		outcomes = []docquery.Outcome{}
	}

	return &docquery.Response{
		QueryID:  newID(),
		Term:     query.Term,
		Kind:     query.Kind,
		Records:  records,
		Outcomes: outcomes,
	}
}
