package report

import (
	"context"
	"fmt"
	"log/slog"

	corereport "firmasecuador/ms_reportes_core/internal/core/report"
)

// Query carries the user-selected parameters of one report fetch.
// Dates accept dd/mm/yyyy or yyyy-mm-dd; they are normalized to ISO before
// the source is called.
type Query struct {
	Type              corereport.Type
	StartDate         string
	EndDate           string
	Estado            string
	CodDistribuidor   string
	CodigoEnganchador string
}

// ResultSet is the outcome of one fetch after normalization and mapping.
// ReportedPages carries the page count the endpoint itself claimed, when
// it claimed one; display pagination is computed from Rows.
type ResultSet struct {
	Rows          []any
	TotalRows     int
	ReportedPages int
}

// Source fetches the raw, shape-uncommitted JSON value for a query.
// Implementations wrap either the stored-procedure repository or the
// remote report API.
type Source interface {
	Fetch(ctx context.Context, query Query) (any, error)
}

// Service orchestrates report use cases: validate, fetch, normalize,
// decode, map.
type Service struct {
	source Source
	log    *slog.Logger
}

func NewService(source Source, log *slog.Logger) *Service {
	return &Service{source: source, log: log}
}

// ValidateQuery checks the query and normalizes its dates in place.
// It never performs I/O.
func (s *Service) ValidateQuery(query *Query) error {
	if _, ok := corereport.SchemaFor(query.Type); !ok {
		return fmt.Errorf("tipo de reporte desconocido: %s", query.Type)
	}

	// The sold-signatures summary is an aggregate with no date window.
	if query.Type != corereport.FirmasVendidas {
		start := corereport.NormalizeDate(query.StartDate)
		end := corereport.NormalizeDate(query.EndDate)
		if start == "" || end == "" {
			return fmt.Errorf("fecha_inicio y fecha_fin son requeridos en formato yyyy-mm-dd o dd/mm/yyyy")
		}
		if start > end {
			return fmt.Errorf("fecha_inicio no puede ser posterior a fecha_fin")
		}
		query.StartDate = start
		query.EndDate = end
	}

	if query.Type == corereport.FirmasPorEnganchador && query.CodigoEnganchador == "" {
		return fmt.Errorf("codigo_enganchador es requerido")
	}

	return nil
}

// Run executes the full pipeline for one query.
func (s *Service) Run(ctx context.Context, query Query) (ResultSet, error) {
	if err := s.ValidateQuery(&query); err != nil {
		return ResultSet{}, err
	}

	schema, _ := corereport.SchemaFor(query.Type)

	raw, err := s.source.Fetch(ctx, query)
	if err != nil {
		return ResultSet{}, fmt.Errorf("fetch %s: %w", query.Type, err)
	}

	normalized := corereport.Normalize(raw)
	if len(normalized.Rows) == 0 {
		// Indistinguishable from an empty result set at this layer.
		s.log.Debug("report returned no rows", "type", query.Type)
	}

	rows := make([]any, 0, len(normalized.Rows))
	for _, rawRow := range normalized.Rows {
		decoded := corereport.DeepDecode(rawRow)
		rows = append(rows, schema.MapRow(decoded))
	}

	return ResultSet{
		Rows:          rows,
		TotalRows:     len(rows),
		ReportedPages: normalized.TotalPages,
	}, nil
}
