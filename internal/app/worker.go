package app

import (
	"context"
	"errors"

	"go-clothing-store/internal/config"
	"go-clothing-store/internal/messaging/kafka/producer"
	"go-clothing-store/internal/outbox"

	"go.uber.org/zap"
)

// RunWorker relays recorded storefront events to Kafka until ctx ends.
func RunWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.DBURL == "" {
		return errors.New("DB_URL is required for the outbox worker")
	}
	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required for the outbox worker")
	}

	logger.Info("starting outbox worker", zap.String("topic", cfg.Kafka.Topic))

	// 1. Connect to database
	db, err := connectDBWithRetry(cfg.DBURL, connectRetries, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	// 2. Setup Kafka writer
	writer, err := connectKafkaWithRetry(cfg.Kafka.Broker, cfg.Kafka.Topic, connectRetries, logger)
	if err != nil {
		return err
	}
	defer writer.Close()

	// 3. Start processor
	producer.ProcessOutboxEvents(ctx, outbox.NewRepository(db), writer, logger)

	logger.Info("outbox worker stopped")
	return nil
}
