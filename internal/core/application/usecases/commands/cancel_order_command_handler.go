package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders and announces OrderCancelled.
type CancelOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	log       *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	log *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
		log:       log.With("component", "cancel-order"),
	}
}

// Handle processes the cancellation and returns the appended history entry.
// A second cancellation of the same order fails with StateConflict.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (order.HistoryEntry, error) {
	if err := cmd.Validate(); err != nil {
		return order.HistoryEntry{}, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.Key())
	if err != nil {
		return order.HistoryEntry{}, err
	}

	from := aggregate.Status()
	entry, err := aggregate.Cancel(cmd.Reason(), cmd.CancelledBy(), time.Now().UTC())
	if err != nil {
		return order.HistoryEntry{}, err
	}

	if err := h.orders.ApplyTransition(ctx, cmd.Key(), from, entry); err != nil {
		return order.HistoryEntry{}, err
	}

	publishTransitionEvent(ctx, h.publisher, h.log, aggregate, order.EventOrderCancelled, entry)
	return entry, nil
}
