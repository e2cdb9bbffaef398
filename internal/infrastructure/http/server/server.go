package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	authhandler "firmasecuador/ms_reportes_core/internal/adapters/http/auth"
	healthhandler "firmasecuador/ms_reportes_core/internal/adapters/http/health"
	reporthandler "firmasecuador/ms_reportes_core/internal/adapters/http/report"
	"firmasecuador/ms_reportes_core/internal/infrastructure/http/middleware"
)

// Server wraps the HTTP listener and its routed handlers.
type Server struct {
	log        *slog.Logger
	httpServer *http.Server
}

// Options carries everything the router needs. All handlers are required;
// the authenticator may be nil when auth is disabled.
type Options struct {
	Addr          string
	Logger        *slog.Logger
	Authenticator *middleware.JWTAuthenticator
	Health        *healthhandler.Handler
	Auth          *authhandler.Handler
	Report        *reporthandler.Handler

	// ExportTimeout bounds the spreadsheet endpoints, which can outlive the
	// default write window on large date ranges.
	ExportTimeout time.Duration
}

func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Health == nil || opts.Auth == nil || opts.Report == nil {
		return nil, errors.New("all handlers are required")
	}
	if opts.Addr == "" {
		opts.Addr = ":3000"
	}
	if opts.ExportTimeout <= 0 {
		opts.ExportTimeout = 2 * time.Minute
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))
	if opts.Authenticator != nil {
		r.Use(opts.Authenticator.Middleware)
	}

	r.Get("/health", opts.Health.Status)

	r.Post("/api/login", opts.Auth.Login)
	r.Post("/api/signup", opts.Auth.Signup)

	r.Get("/api/firmas", opts.Report.FirmasPorFecha)
	r.Get("/api/firmas-estado", opts.Report.FirmasEstado)

	r.Route("/api/reportes", func(r chi.Router) {
		r.Use(middleware.ExtendedTimeout(opts.ExportTimeout))
		r.Post("/{tipo}", opts.Report.Run)
		r.Post("/{tipo}/sesion", opts.Report.SessionLoad)
		r.Get("/{tipo}/sesion", opts.Report.SessionPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.ExtendedTimeout(opts.ExportTimeout))
		r.Get("/exportar-excel", opts.Report.Export)
	})

	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: opts.ExportTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{log: opts.Logger, httpServer: srv}, nil
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server started", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
