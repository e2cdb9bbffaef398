package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	excelexport "firmasecuador/ms_reportes_core/internal/adapters/export/excel"
	appreport "firmasecuador/ms_reportes_core/internal/application/report"
	corereport "firmasecuador/ms_reportes_core/internal/core/report"
	infrahttp "firmasecuador/ms_reportes_core/internal/infrastructure/http"
)

// LegacyStore serves the two endpoints the back office calls directly,
// bypassing the report pipeline.
type LegacyStore interface {
	FirmasPorFecha(ctx context.Context, fechaInicio, fechaFin string, pagina, porPagina int) (map[string]any, error)
	FirmasEstado(ctx context.Context, fechaInicio, fechaFin, estado string) (map[string]any, error)
}

// Handler exposes the report pipeline and the legacy signature endpoints.
// Each report type gets one lazily built Session, the server-side
// counterpart of a back-office screen: loads hold the indicator open for
// minIndicator and page changes replay the committed rows in memory.
type Handler struct {
	service      *appreport.Service
	store        LegacyStore
	exporter     *excelexport.Exporter
	pageSize     int
	minIndicator time.Duration
	log          *slog.Logger

	mu       sync.Mutex
	sessions map[corereport.Type]*appreport.Session
}

func NewHandler(service *appreport.Service, store LegacyStore, exporter *excelexport.Exporter, pageSize int, minIndicator time.Duration, log *slog.Logger) *Handler {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Handler{
		service:      service,
		store:        store,
		exporter:     exporter,
		pageSize:     pageSize,
		minIndicator: minIndicator,
		log:          log,
		sessions:     make(map[corereport.Type]*appreport.Session),
	}
}

func (h *Handler) sessionFor(tipo corereport.Type) *appreport.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.sessions[tipo]
	if !ok {
		sess = appreport.NewSession(h.service, h.pageSize, h.minIndicator)
		h.sessions[tipo] = sess
	}
	return sess
}

// FirmasPorFecha handles GET /api/firmas.
func (h *Handler) FirmasPorFecha(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fechaInicio := corereport.NormalizeDate(q.Get("fecha_inicio"))
	fechaFin := corereport.NormalizeDate(q.Get("fecha_fin"))
	if fechaInicio == "" || fechaFin == "" {
		infrahttp.WriteError(w, http.StatusBadRequest,
			"Los parámetros fecha_inicio y fecha_fin son requeridos", nil, h.log)
		return
	}

	pagina := intParam(q.Get("pagina"), 1)
	porPagina := intParam(q.Get("por_pagina"), h.pageSize)

	result, err := h.store.FirmasPorFecha(r.Context(), fechaInicio, fechaFin, pagina, porPagina)
	if err != nil {
		h.log.Error("firmas por fecha failed", "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError,
			"Error al consultar las firmas", nil, h.log)
		return
	}

	infrahttp.WriteJSON(w, http.StatusOK, result, h.log)
}

// FirmasEstado handles GET /api/firmas-estado.
func (h *Handler) FirmasEstado(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fechaInicio := corereport.NormalizeDate(q.Get("fecha_inicio"))
	fechaFin := corereport.NormalizeDate(q.Get("fecha_fin"))
	if fechaInicio == "" || fechaFin == "" {
		infrahttp.WriteError(w, http.StatusBadRequest,
			"Los parámetros fecha_inicio y fecha_fin son requeridos", nil, h.log)
		return
	}

	result, err := h.store.FirmasEstado(r.Context(), fechaInicio, fechaFin, q.Get("estado"))
	if err != nil {
		h.log.Error("firmas por estado failed", "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError,
			"Error al consultar las firmas", nil, h.log)
		return
	}

	infrahttp.WriteJSON(w, http.StatusOK, result, h.log)
}

type reportRequest struct {
	FechaInicio       string `json:"fecha_inicio"`
	FechaFin          string `json:"fecha_fin"`
	CodDis            string `json:"cod_dis"`
	CodigoEnganchador string `json:"codigo_enganchador"`
	Estado            string `json:"estado"`
	GenerarExcel      bool   `json:"generarExcel"`
}

// Run handles POST /api/reportes/{tipo}. With generarExcel set, the rows
// come back as an xlsx attachment instead of JSON.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	tipo, ok := corereport.ParseType(chi.URLParam(r, "tipo"))
	if !ok {
		infrahttp.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Tipo de reporte desconocido: %s", chi.URLParam(r, "tipo")), nil, h.log)
		return
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		infrahttp.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil, h.log)
		return
	}

	query := appreport.Query{
		Type:              tipo,
		StartDate:         req.FechaInicio,
		EndDate:           req.FechaFin,
		Estado:            req.Estado,
		CodDistribuidor:   req.CodDis,
		CodigoEnganchador: req.CodigoEnganchador,
	}
	if err := h.service.ValidateQuery(&query); err != nil {
		infrahttp.WriteError(w, http.StatusBadRequest, err.Error(), nil, h.log)
		return
	}

	result, err := h.service.Run(r.Context(), query)
	if err != nil {
		h.log.Error("report run failed", "type", tipo, "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError,
			"Error al generar el reporte", nil, h.log)
		return
	}

	if req.GenerarExcel {
		h.writeWorkbook(w, tipo, query, result.Rows)
		return
	}

	infrahttp.WriteJSON(w, http.StatusOK, map[string]any{
		"rows":  result.Rows,
		"total": result.TotalRows,
	}, h.log)
}

// SessionLoad handles POST /api/reportes/{tipo}/sesion. A load that a newer
// one overtook answers 409; validation failures leave the session idle and
// answer 400.
func (h *Handler) SessionLoad(w http.ResponseWriter, r *http.Request) {
	tipo, ok := corereport.ParseType(chi.URLParam(r, "tipo"))
	if !ok {
		infrahttp.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Tipo de reporte desconocido: %s", chi.URLParam(r, "tipo")), nil, h.log)
		return
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		infrahttp.WriteError(w, http.StatusBadRequest, "Cuerpo de la petición inválido", nil, h.log)
		return
	}

	sess := h.sessionFor(tipo)
	if err := sess.Load(r.Context(), appreport.Query{
		Type:              tipo,
		StartDate:         req.FechaInicio,
		EndDate:           req.FechaFin,
		Estado:            req.Estado,
		CodDistribuidor:   req.CodDis,
		CodigoEnganchador: req.CodigoEnganchador,
	}); err != nil {
		switch {
		case errors.Is(err, appreport.ErrSuperseded):
			infrahttp.WriteError(w, http.StatusConflict,
				"La consulta fue reemplazada por una más reciente", nil, h.log)
		case sess.State() == appreport.StateIdle:
			infrahttp.WriteError(w, http.StatusBadRequest, err.Error(), nil, h.log)
		default:
			h.log.Error("session load failed", "type", tipo, "error", err)
			infrahttp.WriteError(w, http.StatusInternalServerError,
				"Error al generar el reporte", nil, h.log)
		}
		return
	}

	h.writeSession(w, sess)
}

// SessionPage handles GET /api/reportes/{tipo}/sesion. With pagina it jumps
// to an absolute page, with delta it moves relative to the current one;
// requests outside range leave the page untouched. Never performs I/O.
func (h *Handler) SessionPage(w http.ResponseWriter, r *http.Request) {
	tipo, ok := corereport.ParseType(chi.URLParam(r, "tipo"))
	if !ok {
		infrahttp.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("Tipo de reporte desconocido: %s", chi.URLParam(r, "tipo")), nil, h.log)
		return
	}

	sess := h.sessionFor(tipo)
	q := r.URL.Query()
	if raw := q.Get("pagina"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			sess.GoToPage(n)
		}
	} else if raw := q.Get("delta"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			sess.ChangePage(n)
		}
	}

	h.writeSession(w, sess)
}

func (h *Handler) writeSession(w http.ResponseWriter, sess *appreport.Session) {
	page := sess.CurrentPage()
	infrahttp.WriteJSON(w, http.StatusOK, map[string]any{
		"estado":       sess.State().String(),
		"rows":         page.Rows,
		"pagina":       page.Number,
		"totalPaginas": page.TotalPages,
	}, h.log)
}

// Export handles GET /exportar-excel, the legacy download endpoint for the
// two database-backed reports.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tipo, ok := corereport.ParseType(q.Get("tipo"))
	if !ok {
		tipo = corereport.FirmasFecha
	}

	query := appreport.Query{
		Type:      tipo,
		StartDate: q.Get("fecha_inicio"),
		EndDate:   q.Get("fecha_fin"),
		Estado:    q.Get("estado"),
	}
	if err := h.service.ValidateQuery(&query); err != nil {
		infrahttp.WriteError(w, http.StatusBadRequest, err.Error(), nil, h.log)
		return
	}

	result, err := h.service.Run(r.Context(), query)
	if err != nil {
		h.log.Error("export run failed", "type", tipo, "error", err)
		infrahttp.WriteError(w, http.StatusInternalServerError,
			"Error al generar el reporte", nil, h.log)
		return
	}

	h.writeWorkbook(w, tipo, query, result.Rows)
}

func (h *Handler) writeWorkbook(w http.ResponseWriter, tipo corereport.Type, query appreport.Query, rows []any) {
	if len(rows) == 0 {
		infrahttp.WriteError(w, http.StatusConflict, appreport.ErrNoRows.Error(), nil, h.log)
		return
	}

	schema, _ := corereport.SchemaFor(tipo)
	filename := excelexport.Filename(string(tipo), query.StartDate, query.EndDate)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exporter.Write(w, schema, rows); err != nil {
		// Headers are already out; the truncated stream is the client's signal.
		h.log.Error("workbook write failed", "type", tipo, "error", err)
	}
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
