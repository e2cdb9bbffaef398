package report

import (
	"context"
	"fmt"

	corereport "firmasecuador/ms_reportes_core/internal/core/report"
)

// TypedSource is a Source that knows which report types it can serve.
type TypedSource interface {
	Source
	Serves(t corereport.Type) bool
}

// routedSource dispatches each query to the first backend that serves its
// report type.
type routedSource struct {
	backends []TypedSource
}

// NewRoutedSource builds a Source over the given backends. Backends are
// consulted in order, so place the preferred one first.
func NewRoutedSource(backends ...TypedSource) Source {
	return &routedSource{backends: backends}
}

func (r *routedSource) Fetch(ctx context.Context, query Query) (any, error) {
	for _, backend := range r.backends {
		if backend.Serves(query.Type) {
			return backend.Fetch(ctx, query)
		}
	}
	return nil, fmt.Errorf("no backend serves report type %s", query.Type)
}
