package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/twotier/userapi/internal/domain/entity"
	"github.com/twotier/userapi/internal/domain/repository"
)

type EventLogRepository struct {
	pool *pgxpool.Pool
}

func NewEventLogRepository(pool *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{pool: pool}
}

func (r *EventLogRepository) Insert(ctx context.Context, e *entity.EventLog) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO event_logs (level, message, instance_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, e.Level, e.Message, e.InstanceID)

	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return classify(err)
	}
	return nil
}

func (r *EventLogRepository) List(ctx context.Context, level string, limit int) ([]entity.EventLog, error) {
	query := `
		SELECT id, level, message, instance_id, created_at
		FROM event_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	args := []any{limit}
	if level != "" {
		query = `
			SELECT id, level, message, instance_id, created_at
			FROM event_logs
			WHERE level = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		`
		args = []any{level, limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	logs := make([]entity.EventLog, 0, limit)
	for rows.Next() {
		var e entity.EventLog
		if err := rows.Scan(&e.ID, &e.Level, &e.Message, &e.InstanceID, &e.CreatedAt); err != nil {
			return nil, classify(err)
		}
		logs = append(logs, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return logs, nil
}

var _ repository.EventLogRepository = (*EventLogRepository)(nil)
