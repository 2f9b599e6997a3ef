package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

// GetOrderTimelineQueryHandler reconstructs order timelines by merging the
// workflow history with the ingested-event log at read time. The two logs
// are written independently; this handler is the only place they meet.
type GetOrderTimelineQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
func NewGetOrderTimelineQueryHandler(orders ports.OrderRepository) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{orders: orders}
}

// Handle returns the merged timeline with its statistics. Elapsed minutes
// span creation to the latest transition.
func (h GetOrderTimelineQueryHandler) Handle(ctx context.Context, query GetOrderTimelineQuery) (GetOrderTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.Key())
	if err != nil {
		return GetOrderTimelineQueryResponse{}, err
	}

	elapsed := int(aggregate.UpdatedAt().Sub(aggregate.CreatedAt()).Minutes())
	return GetOrderTimelineQueryResponse{
		OrderID:  aggregate.Key().OrderID(),
		TenantID: aggregate.Key().TenantID(),
		Entries:  orderTimeline(aggregate),
		Statistics: TimelineStatistics{
			CurrentStatus:  aggregate.Status(),
			ElapsedMinutes: elapsed,
			TotalEntries:   len(aggregate.History()) + len(aggregate.EventHistory()),
			StepsCompleted: aggregate.StepsCompleted(),
		},
	}, nil
}
