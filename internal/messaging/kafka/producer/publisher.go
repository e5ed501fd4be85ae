package producer

import (
	"context"

	"go-clothing-store/internal/outbox"

	"github.com/segmentio/kafka-go"
)

// Writer is the subset of *kafka.Writer the relay needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// toMessage keys by aggregate so events of one cart stay ordered in a partition.
func toMessage(event outbox.Event) kafka.Message {
	return kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID.String())},
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	}
}

func publishEvent(ctx context.Context, writer Writer, event outbox.Event) error {
	return writer.WriteMessages(ctx, toMessage(event))
}
