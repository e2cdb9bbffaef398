package excel

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	appreport "firmasecuador/ms_reportes_core/internal/application/report"
	corereport "firmasecuador/ms_reportes_core/internal/core/report"
	"firmasecuador/ms_reportes_core/internal/infrastructure/security"
)

// Filename builds the download name for an export, with characters the
// browser would reject replaced.
func Filename(report, start, end string) string {
	return security.SanitizeFilename(fmt.Sprintf("%s_%s_%s.xlsx", report, start, end))
}

// Exporter writes report rows as an xlsx workbook with one sheet.
type Exporter struct {
	log *slog.Logger
}

func NewExporter(log *slog.Logger) *Exporter {
	return &Exporter{log: log}
}

// Write renders the rows to w using the schema's column order. An empty
// row set is rejected before any workbook is built.
func (e *Exporter) Write(w io.Writer, schema *corereport.Schema, rows []any) error {
	if len(rows) == 0 {
		return appreport.ErrNoRows
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := schema.Sheet
	if sheet == "" {
		sheet = "Reporte"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	headers := schema.Headers()
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, raw := range rows {
		row, _ := raw.(map[string]any)
		for col, h := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(row, h)); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if len(headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(headers))
		if err == nil {
			f.SetColWidth(sheet, "A", last, 22)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	e.log.Debug("exported workbook", "sheet", sheet, "rows", len(rows))
	return nil
}

// cellValue resolves a header against a row, tolerating rows that kept
// their source casing instead of the canonical one.
func cellValue(row map[string]any, header string) any {
	if row == nil {
		return ""
	}
	if v, ok := row[header]; ok && v != nil {
		return v
	}
	if v, ok := row[strings.ToLower(header)]; ok && v != nil {
		return v
	}
	if v, ok := row[strings.ToUpper(header)]; ok && v != nil {
		return v
	}
	return ""
}
