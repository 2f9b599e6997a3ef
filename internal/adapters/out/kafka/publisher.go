// Package kafka publishes domain events to the event bus. Delivery is
// best-effort and at-least-once; consumers own duplicate tolerance.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/metrics"
)

// EventPublisher implements ports.EventPublisher on a Kafka topic.
// Messages are keyed by tenant/order so one order's events stay in
// partition order even though cross-order ordering is not promised.
type EventPublisher struct {
	writer *kafka.Writer
	log    *slog.Logger
}

// NewEventPublisher creates a publisher writing to the given brokers and
// topic.
func NewEventPublisher(brokers []string, topic string, log *slog.Logger) *EventPublisher {
	return &EventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		log: log.With("component", "event-publisher"),
	}
}

// Publish writes one event as JSON. The error return is informational for
// the caller's log line; callers never fail their own operation on it.
func (p *EventPublisher) Publish(ctx context.Context, event order.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		metrics.EventsPublishFailed.Inc()
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.TenantID + "/" + event.OrderID),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		metrics.EventsPublishFailed.Inc()
		return err
	}

	metrics.EventsPublished.WithLabelValues(string(event.EventType)).Inc()
	p.log.DebugContext(ctx, "event published",
		"event_type", string(event.EventType),
		"order", event.TenantID+"/"+event.OrderID)
	return nil
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
