package health

import (
	"context"
	"time"

	corehealth "firmasecuador/ms_reportes_core/internal/core/health"
)

// Metadata contains immutable metadata about the running service.
type Metadata struct {
	Service     string
	Version     string
	Environment string
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service exposes health-check use cases to adapters.
type Service struct {
	meta      Metadata
	db        Pinger
	startedAt time.Time
}

func NewService(meta Metadata, db Pinger) *Service {
	return &Service{
		meta:      meta,
		db:        db,
		startedAt: time.Now().UTC(),
	}
}

// Status returns the current availability snapshot.
func (s *Service) Status(ctx context.Context) corehealth.Status {
	uptime := time.Since(s.startedAt)

	status := corehealth.Status{
		Service:     s.meta.Service,
		Version:     s.meta.Version,
		Environment: s.meta.Environment,
		Status:      "UP",
		StartedAt:   s.startedAt,
		Uptime:      uptime.String(),
		UptimeSecs:  int64(uptime.Seconds()),
	}

	if s.db != nil {
		status.Dependencies = map[string]string{"database": "UP"}
		if err := s.db.PingContext(ctx); err != nil {
			status.Dependencies["database"] = "DOWN"
			status.Status = "DEGRADED"
		}
	}

	return status
}
