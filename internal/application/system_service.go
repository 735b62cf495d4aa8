package application

import (
	"context"
	"time"
)

// Pinger is the slice of the connection pool the health probe needs.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemService answers the health and metadata endpoints consumed by the
// traffic distributor and by operators.
type SystemService struct {
	DB         Pinger
	AppName    string
	AppVersion string
	InstanceID string
	DBHost     string
	DBName     string
	// HealthTimeout bounds the connectivity probe. Keep it under the load
	// balancer's health-check timeout so the instance answers unhealthy instead
	// of timing out and being dropped for the wrong reason.
	HealthTimeout time.Duration
}

type HealthStatus struct {
	Status     string    `json:"status"`
	Database   string    `json:"database"`
	InstanceID string    `json:"instance_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// Health probes store connectivity. The bool reports overall health; the
// status payload is safe to return to the caller either way.
func (s *SystemService) Health(ctx context.Context) (HealthStatus, bool) {
	st := HealthStatus{
		Status:     "healthy",
		Database:   "connected",
		InstanceID: s.InstanceID,
		Timestamp:  time.Now().UTC(),
	}
	timeout := s.HealthTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.Ping(ctx); err != nil {
		st.Status = "unhealthy"
		st.Database = "unreachable"
		return st, false
	}
	return st, true
}

// Home is the static payload for GET /.
func (s *SystemService) Home() map[string]any {
	return map[string]any{
		"message":       "Welcome to " + s.AppName,
		"status":        "healthy",
		"instance_id":   s.InstanceID,
		"database_host": s.DBHost,
		"timestamp":     time.Now().UTC(),
	}
}

// Info is the static payload for GET /info.
func (s *SystemService) Info() map[string]any {
	return map[string]any{
		"application":   s.AppName,
		"version":       s.AppVersion,
		"instance_id":   s.InstanceID,
		"database_host": s.DBHost,
		"database_name": s.DBName,
		"timestamp":     time.Now().UTC(),
	}
}
