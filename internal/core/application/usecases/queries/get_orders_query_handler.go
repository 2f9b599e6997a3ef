package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// GetOrdersQueryHandler resolves order listings for a tenant.
type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns summaries of the matching orders, most recent first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		aggregates []*order.Order
		err        error
	)
	if query.CustomerID() != "" {
		aggregates, err = h.orders.FindByCustomer(ctx, query.TenantID(), query.CustomerID())
	} else {
		aggregates, err = h.orders.FindByStatus(ctx, query.TenantID(), query.Status())
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(aggregates))
	for _, aggregate := range aggregates {
		summaries = append(summaries, OrderSummary{
			OrderID:    aggregate.Key().OrderID(),
			CustomerID: aggregate.CustomerID(),
			Status:     aggregate.Status(),
			Total:      aggregate.Total(),
			CreatedAt:  aggregate.CreatedAt(),
			UpdatedAt:  aggregate.UpdatedAt(),
		})
	}
	return summaries, nil
}
