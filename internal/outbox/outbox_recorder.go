package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=outbox_recorder.go -destination=../mock/outbox/outbox_recorder_mock.go -package=mock
type Recorder interface {
	Record(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) error
}

type recorder struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewRecorder(repo Repository, logger *zap.Logger) Recorder {
	return &recorder{repo: repo, logger: logger.Named("outbox"), now: time.Now}
}

func (r *recorder) Record(ctx context.Context, aggregateType, aggregateID, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	e := Event{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
		CreatedAt:     r.now().UTC(),
	}
	if err := r.repo.Create(ctx, e); err != nil {
		r.logger.Warn("record event failed",
			zap.String("event_type", eventType),
			zap.String("aggregate_id", aggregateID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// NopRecorder discards events. Used when no database is configured.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, string, any) error { return nil }
