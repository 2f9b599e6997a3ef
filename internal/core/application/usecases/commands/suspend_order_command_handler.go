package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// SuspendOrderCommandHandler records suspension markers. Re-suspending the
// same order overwrites the previous marker: last write wins, because only
// one confirmation is outstanding per order at a time.
type SuspendOrderCommandHandler struct {
	orders ports.OrderRepository
	log    *slog.Logger
}

// NewSuspendOrderCommandHandler creates a handler for order suspension.
func NewSuspendOrderCommandHandler(orders ports.OrderRepository, log *slog.Logger) SuspendOrderCommandHandler {
	return SuspendOrderCommandHandler{
		orders: orders,
		log:    log.With("component", "suspend-order"),
	}
}

// Handle persists the suspension marker in one update.
func (h *SuspendOrderCommandHandler) Handle(ctx context.Context, cmd SuspendOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.Key())
	if err != nil {
		return err
	}

	suspension, err := aggregate.Suspend(cmd.Step(), cmd.TaskToken(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err := h.orders.SetSuspension(ctx, cmd.Key(), suspension); err != nil {
		return err
	}

	h.log.InfoContext(ctx, "order suspended",
		"order", cmd.Key().String(),
		"step", cmd.Step())
	return nil
}
