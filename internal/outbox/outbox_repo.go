package outbox

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e Event) error
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, ids ...uuid.UUID) error
}

const (
	insertEvent = `INSERT INTO outbox_events (id, aggregate_type, aggregate_id, event_type, payload, status, attempts, created_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7)`

	listPending = `SELECT id, aggregate_type, aggregate_id, event_type, payload, status, attempts, created_at
FROM outbox_events
WHERE status IN ('PENDING', 'FAILED') AND attempts < $2
ORDER BY created_at
LIMIT $1`

	markSent = `UPDATE outbox_events SET status = 'SENT', sent_at = NOW() WHERE id = $1`

	markFailed = `UPDATE outbox_events SET status = 'FAILED', attempts = attempts + 1 WHERE id = ANY($1)`
)

// MaxAttempts bounds how often a failed event is picked up again.
const MaxAttempts = 5

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, insertEvent,
		e.ID, e.AggregateType, e.AggregateID, e.EventType, []byte(e.Payload), StatusPending, e.CreatedAt,
	)
	return err
}

func (r *repository) ListPending(ctx context.Context, limit int) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, listPending, limit, MaxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e       Event
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &e.EventType, &payload, &e.Status, &e.Attempts, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Payload = payload
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, markSent, id)
	return err
}

func (r *repository) MarkFailed(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	_, err := r.db.ExecContext(ctx, markFailed, pq.Array(raw))
	return err
}
