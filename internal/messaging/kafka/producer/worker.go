package producer

import (
	"context"
	"time"

	"go-clothing-store/internal/outbox"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 10
)

func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer Writer, logger *zap.Logger) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log := logger.Named("outbox.relay")
	log.Info("outbox processor started", zap.Duration("interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := ProcessPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process pending events", zap.Error(err))
			}
		}
	}
}

// ProcessPendingEvents relays one batch and returns how many events were sent.
func ProcessPendingEvents(ctx context.Context, repo outbox.Repository, writer Writer, log *zap.Logger) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	log.Debug("processing pending events", zap.Int("count", len(events)))

	sent := 0
	var failed []uuid.UUID
	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			log.Warn("publish event failed", zap.String("id", event.ID.String()), zap.Error(err))
			failed = append(failed, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			log.Warn("mark event sent failed", zap.String("id", event.ID.String()), zap.Error(err))
			continue
		}
		sent++
	}

	if len(failed) > 0 {
		if err := repo.MarkFailed(ctx, failed...); err != nil {
			return sent, err
		}
	}
	return sent, nil
}
