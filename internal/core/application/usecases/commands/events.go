package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// publishTransitionEvent announces a committed state change on the event bus.
// Failures are logged and swallowed: the state change already committed and
// the event bus is best-effort by contract.
func publishTransitionEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	log *slog.Logger,
	aggregate *order.Order,
	eventType order.EventType,
	entry order.HistoryEntry,
) {
	total := aggregate.Total()
	event := order.Event{
		EventType:  eventType,
		TenantID:   aggregate.Key().TenantID(),
		OrderID:    aggregate.Key().OrderID(),
		CustomerID: aggregate.CustomerID(),
		Status:     entry.Status,
		StaffID:    entry.StaffID,
		StaffName:  entry.StaffName,
		Reason:     entry.Reason,
		Total:      &total,
		EventTime:  time.Now().UTC(),
	}

	if err := publisher.Publish(ctx, event); err != nil {
		log.WarnContext(ctx, "event publication failed",
			"event_type", string(eventType),
			"order", aggregate.Key().String(),
			"error", err)
	}
}
