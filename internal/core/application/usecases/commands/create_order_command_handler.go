package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler places new orders: it builds the aggregate in
// PENDING with its INIT history entry, persists it, and announces
// OrderReceived on the event bus.
type CreateOrderCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
	log       *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
	log *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:    orders,
		publisher: publisher,
		log:       log.With("component", "create-order"),
	}
}

// Handle processes the order placement command and returns the created
// aggregate. The order identifier is generated here; callers read it off the
// returned order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	key, err := kernel.NewOrderKey(cmd.TenantID(), kernel.NewUUID().String())
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(input.ProductID, input.Quantity, input.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(key, cmd.CustomerID(), items, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := h.orders.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	history := aggregate.History()
	publishTransitionEvent(ctx, h.publisher, h.log, aggregate, order.EventOrderReceived, history[len(history)-1])
	return aggregate, nil
}
