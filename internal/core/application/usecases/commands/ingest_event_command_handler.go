package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// IngestEventCommandHandler appends bus events to the order's event log.
// The bus is at-least-once: duplicate deliveries append additional entries
// and the log is never deduplicated. The workflow history is not touched.
type IngestEventCommandHandler struct {
	orders ports.OrderRepository
	log    *slog.Logger
}

// NewIngestEventCommandHandler creates a handler for event ingestion.
func NewIngestEventCommandHandler(orders ports.OrderRepository, log *slog.Logger) IngestEventCommandHandler {
	return IngestEventCommandHandler{
		orders: orders,
		log:    log.With("component", "ingest-event"),
	}
}

// Handle appends one event-log entry in a single atomic update. Fails with
// ObjectNotFound when the referenced order does not exist.
func (h *IngestEventCommandHandler) Handle(ctx context.Context, cmd IngestEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event := cmd.Event()
	key, err := kernel.NewOrderKey(event.TenantID, event.OrderID)
	if err != nil {
		return err
	}

	entry := order.EventEntry{
		EventType:  event.EventType,
		EventLabel: event.EventType.Label(),
		Timestamp:  time.Now().UTC(),
		EventTime:  event.EventTime,
		Status:     event.Status,
		CustomerID: event.CustomerID,
		StaffID:    event.StaffID,
		StaffName:  event.StaffName,
		Reason:     event.Reason,
		Total:      event.Total,
	}

	if err := h.orders.AppendEvent(ctx, key, entry); err != nil {
		return err
	}

	h.log.DebugContext(ctx, "event ingested",
		"order", key.String(),
		"event_type", string(event.EventType))
	return nil
}
