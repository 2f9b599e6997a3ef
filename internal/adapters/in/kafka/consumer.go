// Package kafka consumes domain events from the bus and appends them to
// order event logs. Consumption is at-least-once: a message is committed
// only once handled or classified as undeliverable.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"
)

// eventIngestor is the slice of the command layer the consumer needs.
type eventIngestor interface {
	Handle(ctx context.Context, cmd commands.IngestEventCommand) error
}

// Consumer runs the ingestion loop over a Kafka consumer group.
type Consumer struct {
	reader   *kafka.Reader
	ingestor eventIngestor
	log      *slog.Logger
}

// NewConsumer creates a consumer for the given brokers, topic and group.
func NewConsumer(brokers []string, topic, groupID string, handler commands.IngestEventCommandHandler, log *slog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		ingestor: &handler,
		log:      log.With("component", "event-consumer"),
	}
}

// Run fetches, handles and commits messages until the context is cancelled.
// Undeliverable messages (malformed, or referencing an order that does not
// exist) are committed so they are not retried forever; transient handling
// failures leave the offset alone and the message is redelivered.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		message, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := c.process(ctx, message.Value); err != nil {
			c.log.ErrorContext(ctx, "event handling failed, message will be redelivered",
				"offset", message.Offset,
				"error", err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, message); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// process classifies one raw message. A nil return means the offset may be
// committed; a non-nil return means the message should be redelivered.
func (c *Consumer) process(ctx context.Context, value []byte) error {
	var event order.Event
	if err := json.Unmarshal(value, &event); err != nil {
		metrics.EventsMalformed.Inc()
		c.log.WarnContext(ctx, "dropping malformed event payload", "error", err)
		return nil
	}

	cmd, err := commands.NewIngestEventCommand(event)
	if err != nil {
		metrics.EventsMalformed.Inc()
		c.log.WarnContext(ctx, "dropping event missing routing fields", "error", err)
		return nil
	}

	if err := c.ingestor.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			c.log.WarnContext(ctx, "dropping event for unknown order",
				"order", event.TenantID+"/"+event.OrderID,
				"event_type", string(event.EventType))
			return nil
		}
		return err
	}

	metrics.EventsIngested.WithLabelValues(string(event.EventType)).Inc()
	return nil
}

// Close closes the underlying reader, releasing the group membership.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
