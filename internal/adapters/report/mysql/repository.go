package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	appreport "firmasecuador/ms_reportes_core/internal/application/report"
	corereport "firmasecuador/ms_reportes_core/internal/core/report"
)

// Repository fetches report rows from the stored procedures the back
// office database exposes. Procedures are opaque: given a date window
// (and optional filters) they return a row set or fail.
type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRepository(db *sql.DB, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// Serves reports whether the repository backs the given report type.
// The remaining types live behind the remote report API.
func (r *Repository) Serves(t corereport.Type) bool {
	switch t {
	case corereport.FirmasFecha, corereport.FirmasCaducar:
		return true
	default:
		return false
	}
}

// Fetch implements the report Source contract over stored procedures.
func (r *Repository) Fetch(ctx context.Context, query appreport.Query) (any, error) {
	switch query.Type {
	case corereport.FirmasFecha:
		return r.callProcedure(ctx, "CALL obtener_registros_por_fechas(?, ?)",
			query.StartDate, query.EndDate)
	case corereport.FirmasCaducar:
		estado := query.Estado
		if estado == "" {
			estado = "Todos"
		}
		return r.callProcedure(ctx, "CALL FirmasporVencer(?, ?, ?)",
			query.StartDate, query.EndDate, estado)
	default:
		return nil, fmt.Errorf("report type %s is not database backed", query.Type)
	}
}

// FirmasPorFecha returns one page of signatures plus the total page count,
// in the envelope the legacy endpoint exposes. The procedure has no paging
// parameters, so the slice happens in memory and the total comes from a
// separate count query.
func (r *Repository) FirmasPorFecha(ctx context.Context, fechaInicio, fechaFin string, pagina, porPagina int) (map[string]any, error) {
	rows, err := r.callProcedure(ctx, "CALL obtener_registros_por_fechas(?, ?)", fechaInicio, fechaFin)
	if err != nil {
		return nil, err
	}

	if porPagina < 1 {
		porPagina = 10
	}

	var total int
	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) AS total_firmas FROM registroa WHERE DATE(horaIngreso) BETWEEN ? AND ?",
		fechaInicio, fechaFin,
	).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count firmas: %w", err)
	}

	page := corereport.Paginate(rows, pagina, porPagina)

	return map[string]any{
		"firmas":       page.Rows,
		"totalPaginas": corereport.TotalPages(total, porPagina),
	}, nil
}

// FirmasEstado returns the signatures-by-state rows, unpaged.
func (r *Repository) FirmasEstado(ctx context.Context, fechaInicio, fechaFin, estado string) (map[string]any, error) {
	if estado == "" {
		estado = "Todos"
	}

	rows, err := r.callProcedure(ctx, "CALL FirmasporVencer(?, ?, ?)", fechaInicio, fechaFin, estado)
	if err != nil {
		return nil, err
	}

	return map[string]any{"firmas": rows}, nil
}

func (r *Repository) callProcedure(ctx context.Context, call string, args ...any) ([]any, error) {
	rows, err := r.db.QueryContext(ctx, call, args...)
	if err != nil {
		r.log.Error("stored procedure failed", "call", call, "error", err)
		return nil, fmt.Errorf("call procedure: %w", err)
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan procedure rows: %w", err)
	}
	return result, nil
}

// scanRows materializes a result set into JSON-like row maps. Column types
// are unknown ahead of time; []byte values become strings so the pipeline
// sees the same value kinds a decoded JSON payload would carry.
func scanRows(rows *sql.Rows) ([]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			switch v := values[i].(type) {
			case []byte:
				row[col] = string(v)
			default:
				row[col] = v
			}
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
