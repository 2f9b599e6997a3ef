package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

// GetOrderStatusQueryHandler resolves status queries against the repository.
type GetOrderStatusQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderStatusQueryHandler creates a handler for status lookups.
func NewGetOrderStatusQueryHandler(orders ports.OrderRepository) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{orders: orders}
}

// Handle returns the order's current status with its coarse progress
// percentage and, when suspended, the step being waited on.
func (h GetOrderStatusQueryHandler) Handle(ctx context.Context, query GetOrderStatusQuery) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.Key())
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	response := GetOrderStatusQueryResponse{
		OrderID:   aggregate.Key().OrderID(),
		TenantID:  aggregate.Key().TenantID(),
		Status:    aggregate.Status(),
		Progress:  aggregate.Status().Progress(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
	if suspension := aggregate.Suspension(); suspension != nil {
		response.PendingStep = suspension.Step()
	}
	return response, nil
}
