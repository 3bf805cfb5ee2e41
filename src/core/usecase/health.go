package usecase

import (
	"context"
	"log/slog"

	"blogapi/src/core/ports"
)

// HealthService reports whether the application and its storage are up.
type HealthService struct {
	storage ports.Repository
	log     *slog.Logger
}

func NewHealthService(storage ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{storage: storage, log: log}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check pings the storage layer and reports overall status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if s.storage != nil {
		if err := s.storage.Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components["database"] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Components["database"] = ComponentHealth{Status: "healthy"}
		}
	}

	return status
}
