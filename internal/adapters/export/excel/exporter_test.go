package excel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	appreport "firmasecuador/ms_reportes_core/internal/application/report"
	corereport "firmasecuador/ms_reportes_core/internal/core/report"
	"firmasecuador/ms_reportes_core/internal/testutil"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		report, start, end string
		want               string
	}{
		{"firmas_fecha", "2024-01-01", "2024-01-31", "firmas_fecha_2024-01-01_2024-01-31.xlsx"},
		{"firmas_caducar", "01/02/2024", "28/02/2024", "firmas_caducar_01-02-2024_28-02-2024.xlsx"},
	}
	for _, tt := range tests {
		if got := Filename(tt.report, tt.start, tt.end); got != tt.want {
			t.Errorf("Filename(%q, %q, %q) = %q, want %q", tt.report, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestExporter_Write_EmptyRows(t *testing.T) {
	exporter := NewExporter(testutil.NewNullLogger())
	schema, _ := corereport.SchemaFor(corereport.FirmasFecha)

	var buf bytes.Buffer
	err := exporter.Write(&buf, schema, nil)
	if !errors.Is(err, appreport.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("no bytes should be written for an empty row set")
	}
}

func TestExporter_Write_HeadersAndCells(t *testing.T) {
	exporter := NewExporter(testutil.NewNullLogger())
	schema, ok := corereport.SchemaFor(corereport.FirmasFecha)
	if !ok {
		t.Fatal("missing schema for firmas_fecha")
	}
	headers := schema.Headers()

	rows := []any{
		map[string]any{headers[0]: "0912345678", headers[1]: "Maria Paredes"},
		map[string]any{headers[0]: "0101010101"},
	}

	var buf bytes.Buffer
	if err := exporter.Write(&buf, schema, rows); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != schema.Sheet {
		t.Errorf("expected sheet %q, got %q", schema.Sheet, sheet)
	}

	got, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected header plus 2 data rows, got %d", len(got))
	}
	for i, h := range headers {
		if i < len(got[0]) && got[0][i] != h {
			t.Errorf("header column %d = %q, want %q", i, got[0][i], h)
		}
	}
	if got[1][0] != "0912345678" || got[1][1] != "Maria Paredes" {
		t.Errorf("unexpected first data row: %v", got[1])
	}
}

func TestExporter_Write_ToleratesSourceCasing(t *testing.T) {
	exporter := NewExporter(testutil.NewNullLogger())
	schema, _ := corereport.SchemaFor(corereport.FirmasFecha)
	headers := schema.Headers()

	rows := []any{
		map[string]any{"CEDULA": "0912345678"},
	}

	var buf bytes.Buffer
	if err := exporter.Write(&buf, schema, rows); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	cedulaCol := -1
	for i, h := range headers {
		if h == "cedula" {
			cedulaCol = i
		}
	}
	if cedulaCol == -1 {
		t.Fatal("schema has no cedula column")
	}
	if got[1][cedulaCol] != "0912345678" {
		t.Errorf("expected upper-cased key resolved, got row %v", got[1])
	}
}
