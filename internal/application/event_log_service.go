package application

import (
	"context"
	"time"

	"github.com/twotier/userapi/internal/domain/entity"
	repo "github.com/twotier/userapi/internal/domain/repository"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

// EventLogService reads back the persisted event log for operators.
type EventLogService struct {
	Repo         repo.EventLogRepository
	StoreTimeout time.Duration
}

func NewEventLogService(r repo.EventLogRepository, storeTimeout time.Duration) *EventLogService {
	return &EventLogService{Repo: r, StoreTimeout: storeTimeout}
}

// Recent returns the newest entries, optionally filtered by level. Limits
// outside [1, maxLogLimit] fall back to the default.
func (s *EventLogService) Recent(ctx context.Context, level string, limit int) ([]entity.EventLog, error) {
	if limit <= 0 || limit > maxLogLimit {
		limit = defaultLogLimit
	}
	if s.StoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.StoreTimeout)
		defer cancel()
	}
	return s.Repo.List(ctx, level, limit)
}
