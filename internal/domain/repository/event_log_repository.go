package repository

import (
	"context"

	"github.com/twotier/userapi/internal/domain/entity"
)

// EventLogRepository defines the interface for the persisted event log.
type EventLogRepository interface {
	Insert(ctx context.Context, e *entity.EventLog) error
	// List returns the most recent entries, newest first, optionally filtered by
	// level. limit caps the result size.
	List(ctx context.Context, level string, limit int) ([]entity.EventLog, error)
}
