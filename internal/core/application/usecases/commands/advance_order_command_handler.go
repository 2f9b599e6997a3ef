package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// AdvanceOrderCommandHandler applies flow actions to orders. The transition
// is one atomic status-guarded update; the matching domain event goes out
// best-effort afterwards.
type AdvanceOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	log       *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for order transitions.
func NewAdvanceOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	log *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
		log:       log.With("component", "advance-order"),
	}
}

// Handle processes the transition and returns the appended history entry.
// Fails with ObjectNotFound when the order is absent and StateConflict when
// the order is terminal or another writer moved the status first.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (order.HistoryEntry, error) {
	if err := cmd.Validate(); err != nil {
		return order.HistoryEntry{}, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.Key())
	if err != nil {
		return order.HistoryEntry{}, err
	}

	from := aggregate.Status()
	entry, err := aggregate.Advance(cmd.Action(), cmd.Actor(), time.Now().UTC())
	if err != nil {
		return order.HistoryEntry{}, err
	}

	if err := h.orders.ApplyTransition(ctx, cmd.Key(), from, entry); err != nil {
		return order.HistoryEntry{}, err
	}

	eventType, err := cmd.Action().EventType()
	if err != nil {
		return order.HistoryEntry{}, err
	}
	publishTransitionEvent(ctx, h.publisher, h.log, aggregate, eventType, entry)
	return entry, nil
}
