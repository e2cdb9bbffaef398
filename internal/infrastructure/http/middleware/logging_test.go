package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"

	ctxutil "firmasecuador/ms_reportes_core/internal/infrastructure/context"
	"firmasecuador/ms_reportes_core/internal/testutil"
)

func TestRequestLogger_PassesResponseThrough(t *testing.T) {
	mw := RequestLogger(testutil.NewNullLogger())

	for _, status := range []int{
		http.StatusOK,
		http.StatusMovedPermanently,
		http.StatusBadRequest,
		http.StatusInternalServerError,
	} {
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte("body"))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/firmas", nil))

		if rec.Code != status {
			t.Errorf("status %d not passed through, got %d", status, rec.Code)
		}
		if rec.Body.String() != "body" {
			t.Errorf("body altered for status %d", status)
		}
	}
}

func TestRequestLogger_PromotesRequestIDToCorrelationID(t *testing.T) {
	mw := RequestLogger(testutil.NewNullLogger())

	var seen string
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/firmas", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimw.RequestIDKey, "req-42"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-42" {
		t.Errorf("correlation ID = %q, want %q", seen, "req-42")
	}
}

func TestResponseWriter_TracksStatusAndBytes(t *testing.T) {
	base := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: base}

	rw.WriteHeader(http.StatusNotFound)
	rw.Write([]byte("missing"))

	if rw.statusCode != http.StatusNotFound || base.Code != http.StatusNotFound {
		t.Errorf("status not recorded: rw=%d base=%d", rw.statusCode, base.Code)
	}
	if rw.bytesWritten != int64(len("missing")) {
		t.Errorf("bytesWritten = %d, want %d", rw.bytesWritten, len("missing"))
	}
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	rw.Write([]byte("x"))

	if rw.statusCode != http.StatusOK {
		t.Errorf("expected implicit 200, got %d", rw.statusCode)
	}
}
